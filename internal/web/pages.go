package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/api"
	"github.com/mohamedtouja/multipoles/internal/models"
)

// PageHandler renders the site pages. Content comes from the content
// service; a failed fetch degrades to an empty section instead of a broken
// page.
type PageHandler struct {
	content api.ContentProvider
	locale  string
}

// NewPageHandler creates a page handler with a default locale.
func NewPageHandler(content api.ContentProvider, locale string) *PageHandler {
	if locale == "" {
		locale = "fr"
	}
	return &PageHandler{content: content, locale: locale}
}

// PageData is the payload every template receives.
type PageData struct {
	Title  string
	Active string
	Data   interface{}
}

// RegisterPageRoutes wires the page routes into Echo.
func (h *PageHandler) RegisterPageRoutes(e *echo.Echo) {
	e.GET("/", h.HandleHome)
	e.GET("/solutions", h.HandleSolutions)
	e.GET("/realisations", h.HandleRealisations)
	e.GET("/blog", h.HandleBlog)
	e.GET("/blog/:slug", h.HandleBlogPost)
	e.GET("/equipe", h.HandleTeam)
	e.GET("/apropos", h.HandleAbout)
	e.GET("/contact", h.HandleContact)
	e.GET("/devis", h.HandleDevis)
	e.GET("/simulateur", h.HandleSimulateur)
}

func (h *PageHandler) pageLocale(c echo.Context) string {
	if l := c.QueryParam("locale"); l != "" {
		return l
	}
	return h.locale
}

// HandleHome renders the landing page with the carousel and solutions.
func (h *PageHandler) HandleHome(c echo.Context) error {
	ctx := c.Request().Context()
	locale := h.pageLocale(c)

	slides, err := h.content.CarouselSlides(ctx, locale)
	if err != nil {
		fmt.Printf("Warning: carousel unavailable: %v\n", err)
	}
	solutions, err := h.content.Solutions(ctx, locale)
	if err != nil {
		fmt.Printf("Warning: solutions unavailable: %v\n", err)
	}

	return c.Render(http.StatusOK, "home.html", PageData{
		Title:  "Multipoles - PLV et packaging sur mesure",
		Active: "home",
		Data: map[string]interface{}{
			"Slides":    slides,
			"Solutions": solutions,
		},
	})
}

// HandleSolutions renders the offering catalogue.
func (h *PageHandler) HandleSolutions(c echo.Context) error {
	solutions, err := h.content.Solutions(c.Request().Context(), h.pageLocale(c))
	if err != nil {
		fmt.Printf("Warning: solutions unavailable: %v\n", err)
	}
	return c.Render(http.StatusOK, "solutions.html", PageData{
		Title:  "Nos solutions",
		Active: "solutions",
		Data:   solutions,
	})
}

// HandleRealisations renders the portfolio grid.
func (h *PageHandler) HandleRealisations(c echo.Context) error {
	items, err := h.content.Realisations(c.Request().Context(), h.pageLocale(c))
	if err != nil {
		fmt.Printf("Warning: realisations unavailable: %v\n", err)
	}
	return c.Render(http.StatusOK, "realisations.html", PageData{
		Title:  "Nos réalisations",
		Active: "realisations",
		Data:   items,
	})
}

// HandleBlog renders one page of articles with pagination controls.
func (h *PageHandler) HandleBlog(c echo.Context) error {
	params := models.BlogListParams{
		Page:     1,
		Category: c.QueryParam("category"),
		Locale:   h.pageLocale(c),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		params.Page = page
	}

	blogPage, err := h.content.BlogPosts(c.Request().Context(), params)
	if err != nil {
		fmt.Printf("Warning: blog unavailable: %v\n", err)
		blogPage = &models.BlogPage{}
	}

	return c.Render(http.StatusOK, "blog.html", PageData{
		Title:  "Blog",
		Active: "blog",
		Data: map[string]interface{}{
			"Posts": blogPage.Data,
			"Meta":  blogPage.Meta,
		},
	})
}

// HandleBlogPost renders a single article.
func (h *PageHandler) HandleBlogPost(c echo.Context) error {
	post, err := h.content.BlogPostBySlug(c.Request().Context(), c.Param("slug"), h.pageLocale(c))
	if err != nil {
		return c.Render(http.StatusNotFound, "notfound.html", PageData{Title: "Article introuvable"})
	}
	return c.Render(http.StatusOK, "blog_post.html", PageData{
		Title:  post.Title,
		Active: "blog",
		Data:   post,
	})
}

// HandleTeam renders the team page.
func (h *PageHandler) HandleTeam(c echo.Context) error {
	team, err := h.content.TeamMembers(c.Request().Context(), h.pageLocale(c))
	if err != nil {
		fmt.Printf("Warning: team unavailable: %v\n", err)
	}
	return c.Render(http.StatusOK, "equipe.html", PageData{
		Title:  "Notre équipe",
		Active: "equipe",
		Data:   team,
	})
}

// HandleAbout renders the static company page.
func (h *PageHandler) HandleAbout(c echo.Context) error {
	return c.Render(http.StatusOK, "apropos.html", PageData{
		Title:  "À propos",
		Active: "apropos",
	})
}

// HandleContact renders the contact form shell; submission goes through
// POST /api/contact.
func (h *PageHandler) HandleContact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", PageData{
		Title:  "Contact",
		Active: "contact",
	})
}

// HandleDevis renders the quote wizard shell; the steps run against the
// /api/quote session endpoints.
func (h *PageHandler) HandleDevis(c echo.Context) error {
	return c.Render(http.StatusOK, "devis.html", PageData{
		Title:  "Demande de devis",
		Active: "devis",
	})
}

// HandleSimulateur renders the 3D configurator shell with the selectable
// models; the viewer runs against the /api/simulator endpoints.
func (h *PageHandler) HandleSimulateur(c echo.Context) error {
	items, err := h.content.Models3D(c.Request().Context(), models.Model3DParams{Locale: h.pageLocale(c)})
	if err != nil {
		fmt.Printf("Warning: 3D models unavailable: %v\n", err)
	}
	return c.Render(http.StatusOK, "simulateur.html", PageData{
		Title:  "Simulateur 3D",
		Active: "simulateur",
		Data:   items,
	})
}
