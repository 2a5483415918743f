// Package quote implements the multi-step quote wizard: per-step validation,
// the sequential state machine and the submission to the forms API.
package quote

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// Rules holds the tunable validation limits and the selectable option sets of
// the wizard. They ship with compiled-in defaults and can be replaced from a
// YAML file.
type Rules struct {
	MinDescriptionLength int `json:"minDescriptionLength" yaml:"min_description_length"`
	MinQuantity          int `json:"minQuantity" yaml:"min_quantity"`
	MaxQuantity          int `json:"maxQuantity" yaml:"max_quantity"`

	ProjectTypes []string `json:"projectTypes" yaml:"project_types"`
	Materials    []string `json:"materials" yaml:"materials"`
	Colors       []string `json:"colors" yaml:"colors"`
	BudgetRanges []string `json:"budgetRanges" yaml:"budget_ranges"`
}

// DefaultRules returns the built-in wizard rules.
func DefaultRules() *Rules {
	return &Rules{
		MinDescriptionLength: 20,
		MinQuantity:          1,
		MaxQuantity:          1000,
		ProjectTypes:         append([]string(nil), models.ProjectTypes...),
		Materials:            append([]string(nil), models.QuoteMaterials...),
		Colors:               append([]string(nil), models.QuoteColors...),
		BudgetRanges:         append([]string(nil), models.BudgetRanges...),
	}
}

// LoadRules parses a YAML rules file. Fields left empty in the file keep
// their defaults.
func LoadRules(filePath string) (*Rules, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadRulesFromReader(file)
}

// LoadRulesFromReader parses rules from an io.Reader.
func LoadRulesFromReader(r io.Reader) (*Rules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	rules := DefaultRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, err
	}

	return rules, nil
}

// Save writes the rules to a YAML file.
func (r *Rules) Save(filePath string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
