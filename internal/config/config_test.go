package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Catalog.SiteTitle != "Maurice Burns Estate" {
		t.Errorf("Catalog.SiteTitle = %q, want %q", cfg.Catalog.SiteTitle, "Maurice Burns Estate")
	}
	if cfg.Catalog.DefaultStatus != "Available" {
		t.Errorf("Catalog.DefaultStatus = %q, want %q", cfg.Catalog.DefaultStatus, "Available")
	}
	if cfg.Catalog.ExcludedStatus != "Removed" {
		t.Errorf("Catalog.ExcludedStatus = %q, want %q", cfg.Catalog.ExcludedStatus, "Removed")
	}
	if cfg.Image.CacheMaxAge != 86400 {
		t.Errorf("Image.CacheMaxAge = %d, want %d", cfg.Image.CacheMaxAge, 86400)
	}
	if !strings.Contains(cfg.Image.ThumbnailURL, "%s") {
		t.Errorf("Image.ThumbnailURL = %q, want a %%s placeholder", cfg.Image.ThumbnailURL)
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("CATALOG_CSV_URL", "https://docs.example.com/export?format=csv")
	os.Setenv("CATALOG_DEFAULT_STATUS", "")
	os.Setenv("CATALOG_FETCH_TIMEOUT", "5s")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("CATALOG_CSV_URL")
		os.Unsetenv("CATALOG_DEFAULT_STATUS")
		os.Unsetenv("CATALOG_FETCH_TIMEOUT")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Catalog.SourceURL != "https://docs.example.com/export?format=csv" {
		t.Errorf("Catalog.SourceURL = %q", cfg.Catalog.SourceURL)
	}
	if cfg.Catalog.FetchTimeout != 5*time.Second {
		t.Errorf("Catalog.FetchTimeout = %v, want %v", cfg.Catalog.FetchTimeout, 5*time.Second)
	}
	if cfg.Catalog.DefaultStatus != "" {
		t.Errorf("Catalog.DefaultStatus = %q, want %q (empty overrides the default)", cfg.Catalog.DefaultStatus, "")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_EmptyDisablesStatusPolicy(t *testing.T) {
	// An empty value is distinct from an unset variable: it turns the
	// corresponding status behavior off rather than falling back to the
	// built-in default.
	os.Setenv("CATALOG_DEFAULT_STATUS", "")
	os.Setenv("CATALOG_EXCLUDED_STATUS", "")
	defer func() {
		os.Unsetenv("CATALOG_DEFAULT_STATUS")
		os.Unsetenv("CATALOG_EXCLUDED_STATUS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.DefaultStatus != "" {
		t.Errorf("Catalog.DefaultStatus = %q, want %q (defaulting disabled)", cfg.Catalog.DefaultStatus, "")
	}
	if cfg.Catalog.ExcludedStatus != "" {
		t.Errorf("Catalog.ExcludedStatus = %q, want %q (filtering disabled)", cfg.Catalog.ExcludedStatus, "")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// Test that CATALOG_SOURCE_URL works as fallback
	os.Setenv("CATALOG_SOURCE_URL", "https://sheets.example.com/pub?output=csv")
	defer os.Unsetenv("CATALOG_SOURCE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.SourceURL != "https://sheets.example.com/pub?output=csv" {
		t.Errorf("Catalog.SourceURL = %q, want alt env var value", cfg.Catalog.SourceURL)
	}
}

func TestLoad_InvalidSourceURL(t *testing.T) {
	os.Setenv("CATALOG_CSV_URL", "not a url")
	defer os.Unsetenv("CATALOG_CSV_URL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for relative source URL")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	os.Setenv("SERVER_PORT", "99999")
	defer os.Unsetenv("SERVER_PORT")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for out-of-range port")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "verbose")
	defer os.Unsetenv("LOG_LEVEL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unknown log level")
	}
}

func TestValidate_ThumbnailPlaceholder(t *testing.T) {
	os.Setenv("IMAGE_THUMBNAIL_URL", "https://drive.google.com/thumbnail?id=fixed")
	defer os.Unsetenv("IMAGE_THUMBNAIL_URL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for template without placeholder")
	}
}

func TestConfig_String_ShowsPolicy(t *testing.T) {
	cfg := MustLoad()
	s := cfg.String()
	if !strings.Contains(s, "Catalog:") || !strings.Contains(s, "Logging:") {
		t.Errorf("String() = %q, missing sections", s)
	}
}
