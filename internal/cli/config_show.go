package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/tenets/internal/config"
	"github.com/mrz1836/tenets/internal/errors"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect tenets configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective tenets configuration.

Values are merged from, highest precedence first:
  - flags (--config, --ruleset, --save)
  - TENETS_* environment variables
  - .tenets/config.yaml in the working directory
  - ~/.tenets/config.yaml
  - built-in defaults

Examples:
  tenets config show             # YAML
  tenets config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.AddCommand(show)
	root.AddCommand(cmd)
}

// runConfigShow prints the effective configuration as YAML, or JSON with --output json.
func runConfigShow(ctx context.Context, w io.Writer, flags *GlobalFlags) error {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return newOutput(w, flags).JSON(cfg)
	}
	return writeConfigYAML(w, cfg)
}

// writeConfigYAML encodes cfg with two-space indentation.
func writeConfigYAML(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}
