// Package forms is the typed client for the remote forms API (quote and
// contact submissions).
package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// Result is the decoded forms API envelope for one submission.
type Result struct {
	Success bool
	Message string
	// Errors holds the backend's per-field validation messages. Client-side
	// validation is a UX affordance only; these are authoritative and are
	// surfaced verbatim.
	Errors map[string][]string
}

// TransportError marks a failure before an envelope was received: the user
// may retry with the same data.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("forms api unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client submits forms to the remote API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a forms client against baseURL with a submit timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitDevis posts a quote request.
func (c *Client) SubmitDevis(ctx context.Context, req models.DevisRequest) (*Result, error) {
	return c.post(ctx, "/forms/devis", req)
}

// SubmitContact posts a contact message.
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) (*Result, error) {
	return c.post(ctx, "/forms/contact", req)
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	result := &Result{
		Success: envelope.Success,
		Message: envelope.Message,
		Errors:  envelope.Errors,
	}

	// Some backends answer non-2xx without flipping the success flag
	if resp.StatusCode >= 400 {
		result.Success = false
		if result.Message == "" {
			result.Message = fmt.Sprintf("submission failed with status %d", resp.StatusCode)
		}
	}

	return result, nil
}
