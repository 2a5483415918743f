package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mohamedtouja/multipoles/internal/api"
	"github.com/mohamedtouja/multipoles/internal/assets"
	"github.com/mohamedtouja/multipoles/internal/config"
	"github.com/mohamedtouja/multipoles/internal/content"
	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/quote"
	"github.com/mohamedtouja/multipoles/internal/simulator"
	"github.com/mohamedtouja/multipoles/internal/storage"
	"github.com/mohamedtouja/multipoles/internal/web"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	// Load XML configuration
	configPath := filepath.Join(exeDir, "Multipoles.exe.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Ensure all data directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	// Initialize the asset cache
	assetStore, err := storage.NewLocalStore(cfg.GetAssetCacheDir())
	if err != nil {
		fmt.Printf("Failed to initialize asset storage: %v\n", err)
		os.Exit(1)
	}

	// Remote API clients
	contentClient := content.NewClient(cfg.Content.APIBaseURL, time.Duration(cfg.Content.RequestTimeout)*time.Second)
	contentSvc := content.NewService(contentClient, time.Duration(cfg.Content.SnapshotTTLSeconds)*time.Second)
	formsClient := forms.NewClient(cfg.Forms.APIBaseURL, time.Duration(cfg.Forms.SubmitTimeout)*time.Second)

	// Simulator: asset loader plus session manager
	loader := assets.NewLoader(assetStore, time.Duration(cfg.Simulator.AssetLoadTimeout)*time.Second)
	simulatorMgr := simulator.NewManager(loader)

	// Quote wizard: rules file is optional, defaults apply without it
	rules, err := quote.LoadRules(cfg.Quote.RulesFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: failed to load quote rules: %v\n", err)
		}
		rules = quote.DefaultRules()
	} else {
		fmt.Println("Quote rules loaded from", cfg.Quote.RulesFile)
	}
	quoteMgr := quote.NewManager(rules, formsClient)

	// Background session cleanup
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Simulator.CleanupIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			simulatorMgr.CleanupOldSessions(time.Duration(cfg.Simulator.SessionTimeoutMinutes) * time.Minute)
			quoteMgr.CleanupOldSessions(time.Duration(cfg.Quote.SessionTimeoutMinutes) * time.Minute)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging if disabled in config
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			path := c.Request().URL.Path
			return path == "/health" ||
				strings.HasSuffix(path, "/scene") ||
				strings.HasSuffix(path, "/scene/msgpack") ||
				strings.HasSuffix(path, "/keepalive")
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
		LogLevel:          0,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/api/ws/") ||
				strings.Contains(path, "/scene")
		},
		ErrorMessage: "Request timeout - query took too long",
	}))

	// Compression middleware
	if cfg.Simulator.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.Simulator.CompressionLevel,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api/ws/")
			},
		}))
	}

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS configuration
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// API routes
	api.SetupMiddleware(e)
	handlers := api.NewHandlers(&api.Dependencies{
		Content:      contentSvc,
		Forms:        formsClient,
		SimulatorMgr: simulatorMgr,
		QuoteMgr:     quoteMgr,
		Store:        assetStore,
		RulesFile:    cfg.Quote.RulesFile,
		Version:      Version,
	})
	api.RegisterRoutes(e, handlers)
	api.RegisterWebSocketRoutes(e, handlers)

	// Server-rendered pages
	renderer, err := web.NewRenderer()
	if err != nil {
		fmt.Printf("Failed to load templates: %v\n", err)
		os.Exit(1)
	}
	e.Renderer = renderer
	web.NewPageHandler(contentSvc, cfg.Content.DefaultLocale).RegisterPageRoutes(e)
	if err := web.RegisterStaticRoutes(e); err != nil {
		fmt.Printf("Failed to register static routes: %v\n", err)
		os.Exit(1)
	}

	// Configure server with settings from XML config
	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Print startup banner
	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Multipoles Showcase Server                      ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:      %-44s║\n", configPath)
	fmt.Printf("║  Listen:      http://%-37s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Content API: %-44s║\n", cfg.Content.APIBaseURL)
	fmt.Printf("║  Forms API:   %-44s║\n", cfg.Forms.APIBaseURL)
	fmt.Printf("║  Asset Cache: %-44s║\n", cfg.GetAssetCacheDir())
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")
	fmt.Printf("Open http://localhost:%d in your browser\n\n", cfg.Server.Port)

	e.Logger.Fatal(e.StartServer(s))
}
