// Package config provides XML-based configuration management for self-hosted deployment.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AppConfig represents the root XML configuration structure
type AppConfig struct {
	XMLName xml.Name `xml:"Multipoles"`

	// Server configuration
	Server ServerConfig `xml:"Server"`

	// Content API configuration
	Content ContentConfig `xml:"Content"`

	// Forms API configuration
	Forms FormsConfig `xml:"Forms"`

	// 3D simulator configuration
	Simulator SimulatorConfig `xml:"Simulator"`

	// Quote wizard configuration
	Quote QuoteConfig `xml:"Quote"`

	// Advanced options
	Advanced AdvancedConfig `xml:"Advanced"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int    `xml:"Port"`
	BindAddress  string `xml:"BindAddress"`
	EnableCORS   bool   `xml:"EnableCORS"`
	AllowOrigins string `xml:"AllowOrigins"`
	ReadTimeout  int    `xml:"ReadTimeoutSeconds"`
	WriteTimeout int    `xml:"WriteTimeoutSeconds"`
	IdleTimeout  int    `xml:"IdleTimeoutSeconds"`
	BodyLimit    string `xml:"BodyLimit"`
}

// ContentConfig contains remote content API settings
type ContentConfig struct {
	APIBaseURL         string `xml:"APIBaseURL"`
	DefaultLocale      string `xml:"DefaultLocale"`
	SnapshotTTLSeconds int    `xml:"SnapshotTTLSeconds"`
	RequestTimeout     int    `xml:"RequestTimeoutSeconds"`
}

// FormsConfig contains remote forms API settings
type FormsConfig struct {
	APIBaseURL           string `xml:"APIBaseURL"`
	SubmitTimeout        int    `xml:"SubmitTimeoutSeconds"`
	PresentationVideoURL string `xml:"PresentationVideoURL"`
}

// SimulatorConfig contains 3D simulator settings
type SimulatorConfig struct {
	AssetCacheDirectory    string `xml:"AssetCacheDirectory"`
	AssetLoadTimeout       int    `xml:"AssetLoadTimeoutSeconds"`
	MaxSessions            int    `xml:"MaxSessions"`
	SessionTimeoutMinutes  int    `xml:"SessionTimeoutMinutes"`
	CleanupIntervalMinutes int    `xml:"CleanupIntervalMinutes"`
	EnableCompression      bool   `xml:"EnableCompression"`
	CompressionLevel       int    `xml:"CompressionLevel"`
}

// QuoteConfig contains quote wizard settings
type QuoteConfig struct {
	RulesFile             string `xml:"RulesFile"`
	SessionTimeoutMinutes int    `xml:"SessionTimeoutMinutes"`
}

// AdvancedConfig contains advanced/tuning options
type AdvancedConfig struct {
	LogLevel                string `xml:"LogLevel"`
	EnableRequestLogging    bool   `xml:"EnableRequestLogging"`
	WebSocketMaxMessageSize int    `xml:"WebSocketMaxMessageSizeKB"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8091,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
			BodyLimit:    "8M",
		},
		Content: ContentConfig{
			APIBaseURL:         "http://localhost:3000/api/v1",
			DefaultLocale:      "fr",
			SnapshotTTLSeconds: 60,
			RequestTimeout:     10,
		},
		Forms: FormsConfig{
			APIBaseURL:    "http://localhost:3000/api/v1",
			SubmitTimeout: 15,
		},
		Simulator: SimulatorConfig{
			AssetCacheDirectory:    "./data/assets",
			AssetLoadTimeout:       30,
			MaxSessions:            50,
			SessionTimeoutMinutes:  30,
			CleanupIntervalMinutes: 5,
			EnableCompression:      true,
			CompressionLevel:       5,
		},
		Quote: QuoteConfig{
			RulesFile:             "./data/quote_rules.yaml",
			SessionTimeoutMinutes: 60,
		},
		Advanced: AdvancedConfig{
			LogLevel:                "info",
			EnableRequestLogging:    true,
			WebSocketMaxMessageSize: 65536,
		},
	}
}

// LoadConfig loads configuration from XML file
func LoadConfig(configPath string) (*AppConfig, error) {
	// If file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AppConfig{}
	if err := xml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentOverrides()

	// Resolve relative paths
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save saves the configuration to XML file
func (c *AppConfig) Save(configPath string) error {
	output, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(xml.Header + "\n<!-- Multipoles Showcase Server Configuration -->\n<!-- This file is auto-generated on first run -->\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	// Port override
	if port := os.Getenv("MULTIPOLES_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	// Remote API overrides
	if url := os.Getenv("MULTIPOLES_CONTENT_API_URL"); url != "" {
		c.Content.APIBaseURL = url
	}
	if url := os.Getenv("MULTIPOLES_FORMS_API_URL"); url != "" {
		c.Forms.APIBaseURL = url
	}

	// Asset cache override
	if dir := os.Getenv("MULTIPOLES_ASSET_CACHE_DIR"); dir != "" {
		c.Simulator.AssetCacheDirectory = dir
	}
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if !filepath.IsAbs(c.Simulator.AssetCacheDirectory) {
		c.Simulator.AssetCacheDirectory = filepath.Join(configDir, c.Simulator.AssetCacheDirectory)
	}
	if !filepath.IsAbs(c.Quote.RulesFile) {
		c.Quote.RulesFile = filepath.Join(configDir, c.Quote.RulesFile)
	}
}

// GetAssetCacheDir returns the absolute asset cache directory path
func (c *AppConfig) GetAssetCacheDir() string {
	return c.Simulator.AssetCacheDirectory
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	dirs := []string{
		c.Simulator.AssetCacheDirectory,
		filepath.Dir(c.Quote.RulesFile),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
