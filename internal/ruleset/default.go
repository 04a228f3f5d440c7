package ruleset

import (
	_ "embed"
)

//go:embed default_ruleset.yaml
var defaultRulesetYAML []byte

// Default returns the built-in ruleset.
func Default() (*Ruleset, error) {
	return Parse(defaultRulesetYAML, "yaml")
}
