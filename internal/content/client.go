// Package content is the typed client for the remote headless content API.
// Responses are treated as immutable snapshots; a refresh replaces the
// snapshot wholesale.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// Client talks to the content API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a content client against baseURL with a per-request
// timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// apiError carries the backend's error envelope when a call fails.
type apiError struct {
	Status  int
	Message string
	Errors  map[string][]string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("content api: status %d: %s", e.Status, e.Message)
}

// get fetches endpoint and decodes the body into out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{Status: resp.StatusCode, Message: "request failed"}
		var envelope models.Envelope
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// GetBlogPosts returns one page of blog posts.
func (c *Client) GetBlogPosts(ctx context.Context, params models.BlogListParams) (*models.BlogPage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Tag != "" {
		q.Set("tag", params.Tag)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Locale != "" {
		q.Set("locale", params.Locale)
	}

	var page models.BlogPage
	if err := c.get(ctx, "/content/blog", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBlogPostBySlug returns a single blog post.
func (c *Client) GetBlogPostBySlug(ctx context.Context, slug, locale string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.get(ctx, "/content/blog/"+url.PathEscape(slug), localeQuery(locale), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetRealisations returns the published portfolio entries, adapted from the
// backend record shape.
func (c *Client) GetRealisations(ctx context.Context, locale string) ([]models.Realisation, error) {
	var page models.RealisationPage
	if err := c.get(ctx, "/content/realisations", localeQuery(locale), &page); err != nil {
		return nil, err
	}

	out := make([]models.Realisation, 0, len(page.Data))
	for _, raw := range page.Data {
		out = append(out, AdaptRealisation(raw))
	}
	return out, nil
}

// GetCarouselSlides returns the home-page hero slides.
func (c *Client) GetCarouselSlides(ctx context.Context, locale string) ([]models.CarouselSlide, error) {
	var slides []models.CarouselSlide
	if err := c.get(ctx, "/content/carousel", localeQuery(locale), &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

// GetSolutions returns the offering cards.
func (c *Client) GetSolutions(ctx context.Context, locale string) ([]models.Solution, error) {
	var solutions []models.Solution
	if err := c.get(ctx, "/content/solutions", localeQuery(locale), &solutions); err != nil {
		return nil, err
	}
	return solutions, nil
}

// GetTeamMembers returns the staff profiles.
func (c *Client) GetTeamMembers(ctx context.Context, locale string) ([]models.TeamMember, error) {
	var team []models.TeamMember
	if err := c.get(ctx, "/content/team", localeQuery(locale), &team); err != nil {
		return nil, err
	}
	return team, nil
}

// GetModels3D returns the configurable product models.
func (c *Client) GetModels3D(ctx context.Context, params models.Model3DParams) ([]models.Model3D, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Locale != "" {
		q.Set("locale", params.Locale)
	}

	var list []models.Model3D
	if err := c.get(ctx, "/content/models-3d", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetModel3DByID returns a single product model.
func (c *Client) GetModel3DByID(ctx context.Context, id string) (*models.Model3D, error) {
	var m models.Model3D
	if err := c.get(ctx, "/content/models-3d/"+url.PathEscape(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func localeQuery(locale string) url.Values {
	if locale == "" {
		return nil
	}
	q := url.Values{}
	q.Set("locale", locale)
	return q
}
