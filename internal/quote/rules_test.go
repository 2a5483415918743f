package quote

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohamedtouja/multipoles/internal/models"
)

func TestLoadRulesFromReader(t *testing.T) {
	yamlData := `
min_description_length: 40
max_quantity: 5000
project_types:
  - plv
  - packaging
`
	rules, err := LoadRulesFromReader(strings.NewReader(yamlData))
	if err != nil {
		t.Fatalf("LoadRulesFromReader: %v", err)
	}

	if rules.MinDescriptionLength != 40 {
		t.Errorf("MinDescriptionLength = %d, want 40", rules.MinDescriptionLength)
	}
	if rules.MaxQuantity != 5000 {
		t.Errorf("MaxQuantity = %d, want 5000", rules.MaxQuantity)
	}
	if len(rules.ProjectTypes) != 2 {
		t.Errorf("ProjectTypes = %v, want [plv packaging]", rules.ProjectTypes)
	}

	// Fields absent from the file keep their defaults.
	if rules.MinQuantity != 1 {
		t.Errorf("MinQuantity = %d, want default 1", rules.MinQuantity)
	}
	if len(rules.Materials) != len(DefaultRules().Materials) {
		t.Errorf("Materials = %v, want defaults", rules.Materials)
	}
}

func TestLoadRulesFromReader_Invalid(t *testing.T) {
	if _, err := LoadRulesFromReader(strings.NewReader("{not yaml")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestRules_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	rules := DefaultRules()
	rules.MinDescriptionLength = 30
	rules.BudgetRanges = []string{"less-than-5k", "not-defined"}

	if err := rules.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if loaded.MinDescriptionLength != 30 {
		t.Errorf("MinDescriptionLength = %d, want 30", loaded.MinDescriptionLength)
	}
	if len(loaded.BudgetRanges) != 2 {
		t.Errorf("BudgetRanges = %v, want 2 entries", loaded.BudgetRanges)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestToDevisRequest(t *testing.T) {
	form := validForm()
	req := ToDevisRequest(form)

	if req.Company != form.CompanyName {
		t.Errorf("Company = %q, want %q", req.Company, form.CompanyName)
	}
	if req.Budget != form.BudgetRange {
		t.Errorf("Budget = %q, want %q", req.Budget, form.BudgetRange)
	}
	if req.DesiredDeliveryDate != form.Deadline {
		t.Errorf("DesiredDeliveryDate = %q, want %q", req.DesiredDeliveryDate, form.Deadline)
	}
	if req.Dimensions == nil || req.Dimensions.Height != form.Dimensions.Height {
		t.Errorf("Dimensions = %v, want %v", req.Dimensions, form.Dimensions)
	}
	if !strings.Contains(req.Description, form.ProjectDescription) {
		t.Errorf("Description %q does not include the project description", req.Description)
	}
	for _, mat := range form.Materials {
		if !strings.Contains(req.Description, mat) {
			t.Errorf("Description missing material %q", mat)
		}
	}

	// Zero dimensions stay nil instead of serialising as zeros.
	form.Dimensions = models.Dimensions{}
	if req := ToDevisRequest(form); req.Dimensions != nil {
		t.Errorf("Dimensions = %v, want nil for zero value", req.Dimensions)
	}
}
