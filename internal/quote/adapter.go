package quote

import (
	"strings"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// ToDevisRequest maps the wizard's cumulative form data onto the forms API
// payload. Optional fields are omitted when unset so the backend's own
// defaults apply.
func ToDevisRequest(form models.QuoteFormData) models.DevisRequest {
	req := models.DevisRequest{
		FirstName:           form.FirstName,
		LastName:            form.LastName,
		Email:               form.Email,
		Phone:               form.Phone,
		Company:             form.CompanyName,
		ProjectType:         form.ProjectType,
		Description:         buildDescription(form),
		Budget:              form.BudgetRange,
		Quantity:            form.Quantity,
		DesiredDeliveryDate: form.Deadline,
		AcceptTerms:         form.AcceptTerms,
	}

	if form.Dimensions != (models.Dimensions{}) {
		dims := form.Dimensions
		req.Dimensions = &dims
	}

	return req
}

// buildDescription folds the free-form message and the selected materials
// and colors into the description field the backend expects.
func buildDescription(form models.QuoteFormData) string {
	parts := []string{form.ProjectDescription}

	if len(form.Materials) > 0 {
		parts = append(parts, "Matériaux: "+strings.Join(form.Materials, ", "))
	}
	if len(form.Colors) > 0 {
		parts = append(parts, "Couleurs: "+strings.Join(form.Colors, ", "))
	}
	if msg := strings.TrimSpace(form.Message); msg != "" {
		parts = append(parts, msg)
	}

	return strings.Join(parts, "\n\n")
}
