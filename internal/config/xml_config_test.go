package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_CreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Multipoles.exe.config")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8091 {
		t.Errorf("Expected default port 8091, got %d", cfg.Server.Port)
	}
	if cfg.Content.SnapshotTTLSeconds != 60 {
		t.Errorf("Expected snapshot TTL 60, got %d", cfg.Content.SnapshotTTLSeconds)
	}
	if cfg.Simulator.AssetLoadTimeout != 30 {
		t.Errorf("Expected asset load timeout 30, got %d", cfg.Simulator.AssetLoadTimeout)
	}

	// The default file must have been written
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
}

func TestLoadConfig_ParsesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Multipoles.exe.config")

	content := `<?xml version="1.0" encoding="UTF-8"?>
<Multipoles>
  <Server>
    <Port>9000</Port>
    <BindAddress>127.0.0.1</BindAddress>
    <ReadTimeoutSeconds>10</ReadTimeoutSeconds>
  </Server>
  <Content>
    <APIBaseURL>https://api.example.com/v1</APIBaseURL>
    <SnapshotTTLSeconds>120</SnapshotTTLSeconds>
  </Content>
  <Simulator>
    <AssetCacheDirectory>cache/assets</AssetCacheDirectory>
    <AssetLoadTimeoutSeconds>5</AssetLoadTimeoutSeconds>
  </Simulator>
</Multipoles>`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Content.APIBaseURL != "https://api.example.com/v1" {
		t.Errorf("Unexpected content API base URL: %s", cfg.Content.APIBaseURL)
	}
	if cfg.Simulator.AssetLoadTimeout != 5 {
		t.Errorf("Expected asset load timeout 5, got %d", cfg.Simulator.AssetLoadTimeout)
	}

	// Relative asset cache path resolves against the config directory
	want := filepath.Join(dir, "cache/assets")
	if cfg.Simulator.AssetCacheDirectory != want {
		t.Errorf("Expected asset cache dir %s, got %s", want, cfg.Simulator.AssetCacheDirectory)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Multipoles.exe.config")

	t.Setenv("MULTIPOLES_PORT", "8200")
	t.Setenv("MULTIPOLES_CONTENT_API_URL", "https://cms.example.com/api/v1")
	t.Setenv("MULTIPOLES_FORMS_API_URL", "https://forms.example.com/api/v1")

	// Write a file first; overrides only apply to loaded files
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8200 {
		t.Errorf("Expected port override 8200, got %d", cfg.Server.Port)
	}
	if cfg.Content.APIBaseURL != "https://cms.example.com/api/v1" {
		t.Errorf("Content API URL override not applied: %s", cfg.Content.APIBaseURL)
	}
	if cfg.Forms.APIBaseURL != "https://forms.example.com/api/v1" {
		t.Errorf("Forms API URL override not applied: %s", cfg.Forms.APIBaseURL)
	}
}
