package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mohamedtouja/multipoles/internal/models"
)

type stubContent struct {
	fail bool
}

func (s *stubContent) BlogPosts(_ context.Context, params models.BlogListParams) (*models.BlogPage, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return &models.BlogPage{
		Data: []models.BlogPost{{Slug: "premier-article", Title: "Premier article", Excerpt: "Extrait"}},
		Meta: models.PaginationMeta{CurrentPage: params.Page, TotalPages: 2},
	}, nil
}

func (s *stubContent) BlogPostBySlug(_ context.Context, slug, _ string) (*models.BlogPost, error) {
	if s.fail || slug != "premier-article" {
		return nil, errors.New("not found")
	}
	return &models.BlogPost{Slug: slug, Title: "Premier article", Content: "<p>Corps</p>"}, nil
}

func (s *stubContent) Realisations(_ context.Context, _ string) ([]models.Realisation, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []models.Realisation{{Title: "Stand Vinexpo", Category: "Stands", Year: 2024}}, nil
}

func (s *stubContent) CarouselSlides(_ context.Context, _ string) ([]models.CarouselSlide, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []models.CarouselSlide{{Title: "Votre marque en relief"}}, nil
}

func (s *stubContent) Solutions(_ context.Context, _ string) ([]models.Solution, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []models.Solution{{Title: "PLV sur mesure", Description: "Présentoirs"}}, nil
}

func (s *stubContent) TeamMembers(_ context.Context, _ string) ([]models.TeamMember, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []models.TeamMember{{Name: "Claire Morel", Position: "Directrice de projet"}}, nil
}

func (s *stubContent) Models3D(_ context.Context, _ models.Model3DParams) ([]models.Model3D, error) {
	if s.fail {
		return nil, errors.New("down")
	}
	return []models.Model3D{{ID: "m1", Name: "Présentoir comptoir"}}, nil
}

func (s *stubContent) Model3DByID(_ context.Context, id string) (*models.Model3D, error) {
	return nil, errors.New("not found")
}

func newTestEcho(t *testing.T, content *stubContent) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	e.Renderer = renderer
	NewPageHandler(content, "fr").RegisterPageRoutes(e)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPages_RenderWithContent(t *testing.T) {
	e := newTestEcho(t, &stubContent{})

	tests := []struct {
		path string
		want string
	}{
		{"/", "Votre marque en relief"},
		{"/solutions", "PLV sur mesure"},
		{"/realisations", "Stand Vinexpo"},
		{"/blog", "Premier article"},
		{"/blog/premier-article", "Corps"},
		{"/equipe", "Claire Morel"},
		{"/apropos", "Multipoles"},
		{"/contact", "contact-form"},
		{"/devis", "devis-wizard"},
		{"/simulateur", "Présentoir comptoir"},
	}

	for _, tt := range tests {
		rec := get(e, tt.path)
		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Contains(t, rec.Body.String(), tt.want, tt.path)
	}
}

func TestPages_BlogPagination(t *testing.T) {
	e := newTestEcho(t, &stubContent{})

	rec := get(e, "/blog?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/blog?page=1"`)
	assert.Contains(t, rec.Body.String(), `href="/blog?page=2"`)
}

func TestPages_DegradeWhenContentDown(t *testing.T) {
	e := newTestEcho(t, &stubContent{fail: true})

	for _, path := range []string{"/", "/solutions", "/realisations", "/blog", "/equipe", "/simulateur"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := get(e, "/blog/premier-article")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "introuvable")
}

func TestStaticRoutes(t *testing.T) {
	e := echo.New()
	assert.NoError(t, RegisterStaticRoutes(e))

	rec := get(e, "/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--navy")
}
