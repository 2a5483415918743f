// handlers_contact.go - Standalone contact form handler
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/models"
	"github.com/mohamedtouja/multipoles/internal/quote"
)

// ContactHandlerImpl implements the ContactHandler interface
type ContactHandlerImpl struct {
	submitter ContactSubmitter
}

// NewContactHandler creates a new contact handler
func NewContactHandler(submitter ContactSubmitter) ContactHandler {
	return &ContactHandlerImpl{submitter: submitter}
}

// HandleSubmitContact validates and forwards a contact form submission. The
// response always uses the {success, message, errors} envelope the pages
// expect.
func (h *ContactHandlerImpl) HandleSubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	if errs := quote.ValidateContactForm(req); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, models.Envelope{
			Success: false,
			Message: "Veuillez corriger les erreurs du formulaire",
			Errors:  errs,
		})
	}

	result, err := h.submitter.SubmitContact(c.Request().Context(), req)
	if err != nil {
		var transportErr *forms.TransportError
		if errors.As(err, &transportErr) {
			return c.JSON(http.StatusBadGateway, models.Envelope{
				Success: false,
				Message: "Erreur de connexion au serveur. Veuillez réessayer.",
			})
		}
		return NewInternalError("failed to submit contact form", err)
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, models.Envelope{
		Success: result.Success,
		Message: result.Message,
		Errors:  result.Errors,
	})
}
