// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/models"
)

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// ContentHandler proxies the published site content
type ContentHandler interface {
	HandleGetBlogPosts(c echo.Context) error
	HandleGetBlogPost(c echo.Context) error
	HandleGetRealisations(c echo.Context) error
	HandleGetCarousel(c echo.Context) error
	HandleGetSolutions(c echo.Context) error
	HandleGetTeam(c echo.Context) error
	HandleGetModels3D(c echo.Context) error
	HandleGetModel3D(c echo.Context) error
}

// SimulatorHandler handles 3D configurator session operations
type SimulatorHandler interface {
	HandleCreateSession(c echo.Context) error
	HandleGetSession(c echo.Context) error
	HandleSetParams(c echo.Context) error
	HandleSelectModel(c echo.Context) error
	HandleSessionKeepAlive(c echo.Context) error
	HandleDeleteSession(c echo.Context) error
	HandleGetScene(c echo.Context) error
	HandleGetSceneMsgpack(c echo.Context) error
	HandleGetAsset(c echo.Context) error
}

// QuoteHandler handles quote wizard session operations
type QuoteHandler interface {
	HandleCreateSession(c echo.Context) error
	HandleGetSession(c echo.Context) error
	HandleAdvance(c echo.Context) error
	HandleBack(c echo.Context) error
	HandleGetRules(c echo.Context) error
	HandleUpdateRules(c echo.Context) error
}

// ContactHandler handles the standalone contact form
type ContactHandler interface {
	HandleSubmitContact(c echo.Context) error
}

// ContentProvider defines the slice of the content service the handlers
// need. This allows mocking in tests
type ContentProvider interface {
	BlogPosts(ctx context.Context, params models.BlogListParams) (*models.BlogPage, error)
	BlogPostBySlug(ctx context.Context, slug, locale string) (*models.BlogPost, error)
	Realisations(ctx context.Context, locale string) ([]models.Realisation, error)
	CarouselSlides(ctx context.Context, locale string) ([]models.CarouselSlide, error)
	Solutions(ctx context.Context, locale string) ([]models.Solution, error)
	TeamMembers(ctx context.Context, locale string) ([]models.TeamMember, error)
	Models3D(ctx context.Context, params models.Model3DParams) ([]models.Model3D, error)
	Model3DByID(ctx context.Context, id string) (*models.Model3D, error)
}

// ContactSubmitter forwards a validated contact form to the forms API
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, req models.ContactRequest) (*forms.Result, error)
}
