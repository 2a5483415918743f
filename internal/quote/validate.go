package quote

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// FieldErrors maps field names to their validation messages. Empty means the
// step passed.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// ValidateStep runs the validator for one wizard step over the cumulative
// form data. Validators are pure: they never mutate the form.
func ValidateStep(step int, form models.QuoteFormData, rules *Rules) FieldErrors {
	switch step {
	case 1:
		return validateProject(form, rules)
	case 2:
		return validateSpecifications(form, rules)
	case 3:
		return validateTimeline(form, rules, time.Now())
	case 4:
		return validateContact(form)
	default:
		errs := FieldErrors{}
		errs.add("step", fmt.Sprintf("unknown step %d", step))
		return errs
	}
}

func validateProject(form models.QuoteFormData, rules *Rules) FieldErrors {
	errs := FieldErrors{}

	if form.ProjectType == "" {
		errs.add("projectType", "Veuillez sélectionner un type de projet")
	} else if !contains(rules.ProjectTypes, form.ProjectType) {
		errs.add("projectType", "Type de projet inconnu")
	}

	desc := strings.TrimSpace(form.ProjectDescription)
	if desc == "" {
		errs.add("projectDescription", "Veuillez décrire votre projet")
	} else if len([]rune(desc)) < rules.MinDescriptionLength {
		errs.add("projectDescription", fmt.Sprintf(
			"Veuillez fournir une description plus détaillée (minimum %d caractères)",
			rules.MinDescriptionLength))
	}

	return errs
}

func validateSpecifications(form models.QuoteFormData, rules *Rules) FieldErrors {
	errs := FieldErrors{}

	if form.Dimensions.Width < 0 {
		errs.add("dimensions.width", "La valeur doit être positive")
	}
	if form.Dimensions.Height < 0 {
		errs.add("dimensions.height", "La valeur doit être positive")
	}
	if form.Dimensions.Depth < 0 {
		errs.add("dimensions.depth", "La valeur doit être positive")
	}

	if len(form.Materials) == 0 {
		errs.add("materials", "Veuillez sélectionner au moins un matériau")
	} else {
		for _, m := range form.Materials {
			if !contains(rules.Materials, m) {
				errs.add("materials", fmt.Sprintf("Matériau inconnu: %s", m))
			}
		}
	}

	if len(form.Colors) == 0 {
		errs.add("colors", "Veuillez sélectionner au moins une couleur")
	} else {
		for _, c := range form.Colors {
			if !contains(rules.Colors, c) {
				errs.add("colors", fmt.Sprintf("Couleur inconnue: %s", c))
			}
		}
	}

	if form.Quantity < rules.MinQuantity {
		errs.add("quantity", fmt.Sprintf("La quantité minimale est %d", rules.MinQuantity))
	} else if form.Quantity > rules.MaxQuantity {
		errs.add("quantity", fmt.Sprintf("La quantité maximale est %d", rules.MaxQuantity))
	}

	return errs
}

func validateTimeline(form models.QuoteFormData, rules *Rules, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if form.Deadline == "" {
		errs.add("deadline", "Veuillez indiquer une date de livraison souhaitée")
	} else if deadline, err := time.Parse("2006-01-02", form.Deadline); err != nil {
		errs.add("deadline", "Date invalide")
	} else if !deadline.After(now) {
		errs.add("deadline", "La date doit être dans le futur")
	}

	if form.BudgetRange == "" {
		errs.add("budgetRange", "Veuillez sélectionner une fourchette de budget")
	} else if !contains(rules.BudgetRanges, form.BudgetRange) {
		errs.add("budgetRange", "Fourchette de budget inconnue")
	}

	return errs
}

func validateContact(form models.QuoteFormData) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(form.FirstName) == "" {
		errs.add("firstName", "Prénom requis")
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs.add("lastName", "Nom requis")
	}
	if strings.TrimSpace(form.CompanyName) == "" {
		errs.add("companyName", "Nom de l'entreprise requis")
	}

	if form.Email == "" {
		errs.add("email", "Email requis")
	} else if !emailRegex.MatchString(form.Email) {
		errs.add("email", "Adresse email invalide")
	}

	if form.Phone == "" {
		errs.add("phone", "Numéro de téléphone requis")
	} else if !phoneRegex.MatchString(form.Phone) {
		errs.add("phone", "Numéro de téléphone invalide")
	}

	if !form.AcceptTerms {
		errs.add("acceptTerms", "Vous devez accepter les conditions générales")
	}

	return errs
}

// ValidateContactForm checks a standalone contact-page submission before it
// is forwarded to the forms API.
func ValidateContactForm(req models.ContactRequest) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs.add("firstName", "Prénom requis")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs.add("lastName", "Nom requis")
	}
	if req.Email == "" || !emailRegex.MatchString(req.Email) {
		errs.add("email", "Adresse email invalide")
	}
	if req.Phone == "" || !phoneRegex.MatchString(req.Phone) {
		errs.add("phone", "Numéro de téléphone invalide")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs.add("message", "Message requis")
	}
	if !req.AcceptTerms {
		errs.add("acceptTerms", "Vous devez accepter les conditions générales")
	}

	return errs
}
