// handlers_quote.go - Quote wizard session handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/models"
	"github.com/mohamedtouja/multipoles/internal/quote"
)

// QuoteHandlerImpl implements the QuoteHandler interface
type QuoteHandlerImpl struct {
	manager   *quote.Manager
	rulesFile string
}

// NewQuoteHandler creates a new quote handler. rulesFile may be empty when
// rule updates should not persist across restarts.
func NewQuoteHandler(manager *quote.Manager, rulesFile string) QuoteHandler {
	return &QuoteHandlerImpl{
		manager:   manager,
		rulesFile: rulesFile,
	}
}

// HandleCreateSession starts a wizard session on the first step.
func (h *QuoteHandlerImpl) HandleCreateSession(c echo.Context) error {
	s, err := h.manager.Create()
	if err != nil {
		return NewInternalError("failed to create quote session", err)
	}
	return c.JSON(http.StatusCreated, s)
}

// HandleGetSession returns the current wizard state.
func (h *QuoteHandlerImpl) HandleGetSession(c echo.Context) error {
	id := c.Param("sessionId")
	s, ok := h.manager.Get(id)
	if !ok {
		return NewNotFoundError("quote session", id)
	}
	return c.JSON(http.StatusOK, s)
}

// HandleAdvance submits the cumulative form data and moves the wizard
// forward. Validation failures come back with 200 and per-field errors; the
// client renders them inline rather than treating them as a request failure.
func (h *QuoteHandlerImpl) HandleAdvance(c echo.Context) error {
	id := c.Param("sessionId")

	var form models.QuoteFormData
	if err := c.Bind(&form); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	res, err := h.manager.Advance(c.Request().Context(), id, form)
	if err != nil {
		return NewNotFoundError("quote session", id)
	}

	return c.JSON(http.StatusOK, res)
}

// HandleBack moves the wizard one step backward without validating.
func (h *QuoteHandlerImpl) HandleBack(c echo.Context) error {
	id := c.Param("sessionId")

	s, err := h.manager.Back(id)
	if err != nil {
		return NewNotFoundError("quote session", id)
	}

	return c.JSON(http.StatusOK, s)
}

// HandleGetRules returns the active validation rules.
func (h *QuoteHandlerImpl) HandleGetRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.Rules())
}

// HandleUpdateRules replaces the validation rules and persists them when a
// rules file is configured.
func (h *QuoteHandlerImpl) HandleUpdateRules(c echo.Context) error {
	var rules quote.Rules
	if err := c.Bind(&rules); err != nil {
		return NewBadRequestError("invalid rules body", err)
	}

	if rules.MinQuantity < 0 || rules.MaxQuantity < rules.MinQuantity {
		return NewValidationError("quantity bounds")
	}
	if len(rules.ProjectTypes) == 0 {
		return NewValidationError("projectTypes")
	}

	h.manager.SetRules(&rules)

	if h.rulesFile != "" {
		if err := rules.Save(h.rulesFile); err != nil {
			return NewInternalError("failed to persist rules", err)
		}
	}

	return c.JSON(http.StatusOK, &rules)
}
