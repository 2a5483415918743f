// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/quote"
	"github.com/mohamedtouja/multipoles/internal/simulator"
	"github.com/mohamedtouja/multipoles/internal/storage"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Content      ContentProvider
	Forms        ContactSubmitter
	SimulatorMgr *simulator.Manager
	QuoteMgr     *quote.Manager
	Store        storage.Store
	RulesFile    string
	Version      string
}

// Handlers holds all handler instances
type Handlers struct {
	Health    HealthHandler
	Content   ContentHandler
	Simulator SimulatorHandler
	Quote     QuoteHandler
	Contact   ContactHandler
	Feed      *WebSocketHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Version, deps.SimulatorMgr, deps.QuoteMgr),
		Content:   NewContentHandler(deps.Content),
		Simulator: NewSimulatorHandler(deps.SimulatorMgr, deps.Content, deps.Store),
		Quote:     NewQuoteHandler(deps.QuoteMgr, deps.RulesFile),
		Contact:   NewContactHandler(deps.Forms),
		Feed:      NewWebSocketHandler(deps.SimulatorMgr),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	// Health check
	e.GET("/health", handlers.Health.HandleHealth)

	// Published content proxies
	contentGroup := e.Group("/api/content")
	contentGroup.GET("/blog", handlers.Content.HandleGetBlogPosts)
	contentGroup.GET("/blog/:slug", handlers.Content.HandleGetBlogPost)
	contentGroup.GET("/realisations", handlers.Content.HandleGetRealisations)
	contentGroup.GET("/carousel", handlers.Content.HandleGetCarousel)
	contentGroup.GET("/solutions", handlers.Content.HandleGetSolutions)
	contentGroup.GET("/team", handlers.Content.HandleGetTeam)
	contentGroup.GET("/models-3d", handlers.Content.HandleGetModels3D)
	contentGroup.GET("/models-3d/:id", handlers.Content.HandleGetModel3D)

	// Simulator session routes
	simGroup := e.Group("/api/simulator")
	simGroup.POST("/sessions", handlers.Simulator.HandleCreateSession)
	simGroup.GET("/sessions/:sessionId", handlers.Simulator.HandleGetSession)
	simGroup.DELETE("/sessions/:sessionId", handlers.Simulator.HandleDeleteSession)
	simGroup.PUT("/sessions/:sessionId/params", handlers.Simulator.HandleSetParams)
	simGroup.PUT("/sessions/:sessionId/model", handlers.Simulator.HandleSelectModel)
	simGroup.POST("/sessions/:sessionId/keepalive", handlers.Simulator.HandleSessionKeepAlive)
	simGroup.GET("/sessions/:sessionId/scene", handlers.Simulator.HandleGetScene)
	simGroup.GET("/sessions/:sessionId/scene/msgpack", handlers.Simulator.HandleGetSceneMsgpack)
	simGroup.GET("/assets/:id", handlers.Simulator.HandleGetAsset)

	// Quote wizard routes
	quoteGroup := e.Group("/api/quote")
	quoteGroup.POST("/sessions", handlers.Quote.HandleCreateSession)
	quoteGroup.GET("/sessions/:sessionId", handlers.Quote.HandleGetSession)
	quoteGroup.POST("/sessions/:sessionId/advance", handlers.Quote.HandleAdvance)
	quoteGroup.POST("/sessions/:sessionId/back", handlers.Quote.HandleBack)
	quoteGroup.GET("/rules", handlers.Quote.HandleGetRules)
	quoteGroup.PUT("/rules", handlers.Quote.HandleUpdateRules)

	// Contact form
	e.POST("/api/contact", handlers.Contact.HandleSubmitContact)
}

// RegisterWebSocketRoutes registers WebSocket routes
func RegisterWebSocketRoutes(e *echo.Echo, handlers *Handlers) {
	e.GET("/api/ws/simulator", handlers.Feed.HandleSimulatorFeed)
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo) {
	// Use custom error handler
	e.HTTPErrorHandler = ErrorHandler
}
