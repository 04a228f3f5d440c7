package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/tenets/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and read through GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// It MUST only be called after the root command's PersistentPreRunE has
// run. Before that it returns a zero-value logger that discards output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the tenets CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "tenets",
		Short: "Choose the beliefs of your pantheon or religion",
		Long: `tenets manages the religion screen of a turn-based strategy game.

Pick pantheon, founder, follower and enhancer beliefs for a civilization,
found and name religions, and inspect what every civilization believes.

Commands:
  • pick       open the belief picker for a civilization
  • beliefs    list and describe the beliefs of the ruleset
  • religions  show the religions in play
  • name       check a religion name before founding
  • game       create a new game save
  • config     show the effective configuration`,
		Version: formatVersion(info),
		// RunE shows help so PersistentPreRunE still validates flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			applyEnvFlags(v, cmd, flags)

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		// We print our own error messages.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddPickCommand(cmd, flags)
	AddBeliefsCommand(cmd, flags)
	AddReligionsCommand(cmd, flags)
	AddNameCommand(cmd, flags)
	AddGameCommand(cmd, flags)
	AddConfigCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command and returns the process exit code.
// Errors are printed through the output format chosen with --output.
func Execute(ctx context.Context, info BuildInfo) int {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	defer CloseLogFile()

	if err != nil {
		reportError(cmd, flags, err)
	}
	return ExitCodeForError(err)
}
