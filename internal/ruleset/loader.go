package ruleset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

// FileRuleset is the YAML/JSON structure of a ruleset file.
// Field names use both yaml and json tags for dual format support.
type FileRuleset struct {
	Name      string       `yaml:"name" json:"name"`
	Religions []string     `yaml:"religions" json:"religions"`
	Beliefs   []FileBelief `yaml:"beliefs" json:"beliefs"`
}

// FileBelief is one belief entry in a ruleset file.
// Type is parsed case-insensitively so "Pantheon" and "pantheon" both work.
type FileBelief struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Uniques     []string `yaml:"uniques,omitempty" json:"uniques,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Loader loads rulesets from files.
type Loader struct {
	basePath string
}

// NewLoader creates a new ruleset loader.
// basePath is used to resolve relative ruleset paths (typically the working directory).
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// Load returns the built-in ruleset when path is empty, otherwise the file at path.
func (l *Loader) Load(path string) (*Ruleset, error) {
	if path == "" {
		return Default()
	}
	return l.LoadFromFile(path)
}

// LoadFromFile loads a ruleset from a YAML or JSON file.
// The format is detected from the extension (.json for JSON, otherwise YAML).
func (l *Loader) LoadFromFile(path string) (*Ruleset, error) {
	resolvedPath := l.resolvePath(path)

	data, err := os.ReadFile(resolvedPath) //nolint:gosec // Path comes from user config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", tenetserrors.ErrRulesetFileMissing, resolvedPath)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: permission denied: %s", tenetserrors.ErrRulesetLoadFailed, resolvedPath)
		}
		return nil, fmt.Errorf("%w: %w", tenetserrors.ErrRulesetLoadFailed, err)
	}

	return Parse(data, detectFormat(path))
}

// Parse decodes ruleset bytes in the given format ("json" or "yaml") and validates the result.
func Parse(data []byte, format string) (*Ruleset, error) {
	var file FileRuleset
	if format == "json" {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", tenetserrors.ErrRulesetParse, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", tenetserrors.ErrRulesetParse, err)
		}
	}
	return file.toRuleset()
}

// toRuleset converts the file form into a validated Ruleset.
func (f *FileRuleset) toRuleset() (*Ruleset, error) {
	beliefs := make([]domain.Belief, 0, len(f.Beliefs))
	for _, fb := range f.Beliefs {
		category, err := domain.ParseBeliefCategory(fb.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: belief %q: %w", tenetserrors.ErrRulesetInvalid, fb.Name, err)
		}
		beliefs = append(beliefs, domain.Belief{
			Name:        fb.Name,
			Category:    category,
			Uniques:     fb.Uniques,
			Description: fb.Description,
		})
	}
	return New(f.Name, f.Religions, beliefs)
}

// resolvePath resolves a ruleset path, supporting both absolute and relative paths.
func (l *Loader) resolvePath(path string) string {
	if filepath.IsAbs(path) || l.basePath == "" {
		return path
	}
	return filepath.Join(l.basePath, path)
}

// detectFormat returns "json" for .json files, "yaml" for everything else.
func detectFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
