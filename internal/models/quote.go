package models

// Canonical project type identifiers for the quote wizard.
//
// These values travel to the forms API unchanged; human-facing labels live in
// the templates.
const (
	ProjectTypePLV       = "plv"
	ProjectTypePackaging = "packaging"
	ProjectTypePrint     = "print"
	ProjectTypeDigital   = "digital"
	ProjectTypeOther     = "other"
)

// ProjectTypes is the full set of allowed project type identifiers.
var ProjectTypes = []string{
	ProjectTypePLV,
	ProjectTypePackaging,
	ProjectTypePrint,
	ProjectTypeDigital,
	ProjectTypeOther,
}

// QuoteMaterials is the set of selectable material identifiers on step 2.
var QuoteMaterials = []string{
	"cardboard",
	"plastic",
	"wood",
	"metal",
	"glass",
	"acrylic",
	"fabric",
	"eco",
}

// QuoteColors is the set of selectable color identifiers on step 2.
var QuoteColors = []string{
	"brand",
	"white",
	"black",
	"blue",
	"red",
	"green",
	"yellow",
	"transparent",
	"other",
}

// BudgetRanges is the set of allowed budget identifiers on step 3.
var BudgetRanges = []string{
	"less-than-5k",
	"5k-10k",
	"10k-20k",
	"20k-50k",
	"more-than-50k",
	"not-defined",
}

// Dimensions are physical product dimensions in centimeters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// QuoteFormData is the cumulative state of the quote wizard. It is populated
// step by step and mapped to a DevisRequest on submission.
type QuoteFormData struct {
	// Step 1 - project info
	ProjectType        string `json:"projectType"`
	ProjectDescription string `json:"projectDescription"`

	// Step 2 - specifications
	Dimensions Dimensions `json:"dimensions"`
	Materials  []string   `json:"materials"`
	Colors     []string   `json:"colors"`
	Quantity   int        `json:"quantity"`

	// Step 3 - timeline and budget
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	BudgetRange string `json:"budgetRange"`

	// Step 4 - contact info
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	AcceptTerms bool   `json:"acceptTerms"`
}

// DefaultQuoteFormData returns the wizard's initial form state.
func DefaultQuoteFormData() QuoteFormData {
	return QuoteFormData{
		Materials: make([]string, 0),
		Colors:    make([]string, 0),
		Quantity:  1,
	}
}
