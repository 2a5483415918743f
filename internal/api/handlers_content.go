// handlers_content.go - Proxies for the published site content
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// ContentHandlerImpl implements the ContentHandler interface
type ContentHandlerImpl struct {
	content ContentProvider
}

// NewContentHandler creates a new content handler
func NewContentHandler(content ContentProvider) ContentHandler {
	return &ContentHandlerImpl{content: content}
}

func envelopeOK(data interface{}) models.Envelope {
	return models.Envelope{Success: true, Data: data}
}

// HandleGetBlogPosts returns one page of blog posts.
// Query: page, limit, category, tag, search, locale
func (h *ContentHandlerImpl) HandleGetBlogPosts(c echo.Context) error {
	params := models.BlogListParams{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Search:   c.QueryParam("search"),
		Locale:   c.QueryParam("locale"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}

	pageData, err := h.content.BlogPosts(c.Request().Context(), params)
	if err != nil {
		return NewUpstreamError("failed to fetch blog posts", err)
	}

	return c.JSON(http.StatusOK, models.Envelope{Success: true, Data: pageData.Data, Meta: &pageData.Meta})
}

// HandleGetBlogPost returns a single post by slug.
func (h *ContentHandlerImpl) HandleGetBlogPost(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return NewValidationError("slug")
	}

	post, err := h.content.BlogPostBySlug(c.Request().Context(), slug, c.QueryParam("locale"))
	if err != nil {
		return NewNotFoundError("blog post", slug)
	}

	return c.JSON(http.StatusOK, envelopeOK(post))
}

// HandleGetRealisations returns the published portfolio entries.
func (h *ContentHandlerImpl) HandleGetRealisations(c echo.Context) error {
	items, err := h.content.Realisations(c.Request().Context(), c.QueryParam("locale"))
	if err != nil {
		return NewUpstreamError("failed to fetch realisations", err)
	}
	return c.JSON(http.StatusOK, envelopeOK(items))
}

// HandleGetCarousel returns the homepage carousel slides.
func (h *ContentHandlerImpl) HandleGetCarousel(c echo.Context) error {
	items, err := h.content.CarouselSlides(c.Request().Context(), c.QueryParam("locale"))
	if err != nil {
		return NewUpstreamError("failed to fetch carousel", err)
	}
	return c.JSON(http.StatusOK, envelopeOK(items))
}

// HandleGetSolutions returns the solutions catalogue.
func (h *ContentHandlerImpl) HandleGetSolutions(c echo.Context) error {
	items, err := h.content.Solutions(c.Request().Context(), c.QueryParam("locale"))
	if err != nil {
		return NewUpstreamError("failed to fetch solutions", err)
	}
	return c.JSON(http.StatusOK, envelopeOK(items))
}

// HandleGetTeam returns the team members.
func (h *ContentHandlerImpl) HandleGetTeam(c echo.Context) error {
	items, err := h.content.TeamMembers(c.Request().Context(), c.QueryParam("locale"))
	if err != nil {
		return NewUpstreamError("failed to fetch team", err)
	}
	return c.JSON(http.StatusOK, envelopeOK(items))
}

// HandleGetModels3D returns the configurable product models.
// Query: category, locale
func (h *ContentHandlerImpl) HandleGetModels3D(c echo.Context) error {
	params := models.Model3DParams{
		Category: c.QueryParam("category"),
		Locale:   c.QueryParam("locale"),
	}
	items, err := h.content.Models3D(c.Request().Context(), params)
	if err != nil {
		return NewUpstreamError("failed to fetch 3D models", err)
	}
	return c.JSON(http.StatusOK, envelopeOK(items))
}

// HandleGetModel3D returns a single product model by ID.
func (h *ContentHandlerImpl) HandleGetModel3D(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	model, err := h.content.Model3DByID(c.Request().Context(), id)
	if err != nil {
		return NewNotFoundError("3D model", id)
	}

	return c.JSON(http.StatusOK, envelopeOK(model))
}
