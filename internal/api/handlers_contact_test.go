package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/models"
)

const validContactJSON = `{
	"firstName": "Paul",
	"lastName": "Martin",
	"email": "paul@exemple.fr",
	"phone": "0612345678",
	"message": "Bonjour, pouvez-vous me rappeler ?",
	"acceptTerms": true
}`

func postContact(e *echo.Echo, h ContactHandler, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.HandleSubmitContact(c)
}

func TestContactHandler_Success(t *testing.T) {
	e := echo.New()
	fake := &fakeForms{}
	h := NewContactHandler(fake)

	rec, err := postContact(e, h, validContactJSON)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var env models.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.EqualValues(t, 1, atomic.LoadInt32(&fake.contactCalls))
}

func TestContactHandler_LocalValidationShortCircuits(t *testing.T) {
	e := echo.New()
	fake := &fakeForms{}
	h := NewContactHandler(fake)

	rec, err := postContact(e, h, `{"firstName": "Paul"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var env models.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors["email"])

	// The forms API is never called for an invalid form
	assert.EqualValues(t, 0, atomic.LoadInt32(&fake.contactCalls))
}

func TestContactHandler_BackendErrorsSurfacedVerbatim(t *testing.T) {
	e := echo.New()
	fake := &fakeForms{result: &forms.Result{
		Success: false,
		Message: "Validation échouée",
		Errors:  map[string][]string{"email": {"Adresse bloquée"}},
	}}
	h := NewContactHandler(fake)

	rec, err := postContact(e, h, validContactJSON)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var env models.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, []string{"Adresse bloquée"}, env.Errors["email"])
}

func TestContactHandler_TransportFailure(t *testing.T) {
	e := echo.New()
	fake := &fakeForms{err: &forms.TransportError{Err: errors.New("dial tcp: refused")}}
	h := NewContactHandler(fake)

	rec, err := postContact(e, h, validContactJSON)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var env models.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "réessayer")
}
