package models

// DevisRequest is the POST /forms/devis payload.
type DevisRequest struct {
	FirstName           string      `json:"firstName"`
	LastName            string      `json:"lastName"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	Company             string      `json:"company"`
	ProjectType         string      `json:"projectType"`
	Description         string      `json:"description"`
	Budget              string      `json:"budget,omitempty"`
	Quantity            int         `json:"quantity,omitempty"`
	Dimensions          *Dimensions `json:"dimensions,omitempty"`
	DesiredDeliveryDate string      `json:"desiredDeliveryDate,omitempty"`
	AcceptTerms         bool        `json:"acceptTerms"`
}

// ContactRequest is the POST /forms/contact payload.
type ContactRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message"`
	AcceptTerms bool   `json:"acceptTerms"`
}
