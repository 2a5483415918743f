package forms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedtouja/multipoles/internal/models"
)

func TestSubmitDevis_Success(t *testing.T) {
	var received models.DevisRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/devis", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(models.Envelope{Success: true, Message: "Demande envoyée"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	result, err := c.SubmitDevis(context.Background(), models.DevisRequest{
		FirstName:   "Marie",
		LastName:    "Dupont",
		Email:       "marie@acme.fr",
		Phone:       "+33 612 345 678",
		Company:     "Acme",
		ProjectType: models.ProjectTypePLV,
		Description: "Présentoir de comptoir pour lancement produit",
		AcceptTerms: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Marie", received.FirstName)
	assert.Equal(t, models.ProjectTypePLV, received.ProjectType)
}

func TestSubmitDevis_FieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(models.Envelope{
			Success: false,
			Message: "Validation échouée",
			Errors: map[string][]string{
				"email": {"Adresse email invalide"},
				"phone": {"Numéro de téléphone invalide", "Format attendu: +33..."},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	result, err := c.SubmitDevis(context.Background(), models.DevisRequest{})
	require.NoError(t, err, "an API-reported failure is not a transport error")

	assert.False(t, result.Success)
	assert.Equal(t, "Validation échouée", result.Message)
	assert.Len(t, result.Errors["phone"], 2)
}

func TestSubmitContact_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.SubmitContact(context.Background(), models.ContactRequest{})
	require.Error(t, err)

	var transport *TransportError
	assert.True(t, errors.As(err, &transport), "expected TransportError, got %T", err)
}

func TestSubmit_NonEnvelopeFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	result, err := c.SubmitContact(context.Background(), models.ContactRequest{})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}
