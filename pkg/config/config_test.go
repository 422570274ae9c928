package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.HikerAPI.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL to be %s, got %s", DefaultBaseURL, config.HikerAPI.BaseURL)
	}

	if config.HikerAPI.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout to be 30s, got %v", config.HikerAPI.Timeout)
	}

	if config.Export.DefaultPath != "profiles.csv" {
		t.Errorf("Expected default export path to be profiles.csv, got %s", config.Export.DefaultPath)
	}

	if config.HikerAPI.APIKey != "" {
		t.Errorf("Expected no default API key, got %s", config.HikerAPI.APIKey)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IGSTATS_API_KEY", "env-api-key")
	t.Setenv("IGSTATS_BASE_URL", "http://localhost:8080")
	t.Setenv("IGSTATS_USER_AGENT", "test-agent")
	t.Setenv("IGSTATS_TIMEOUT", "5s")
	t.Setenv("IGSTATS_EXPORT_PATH", "/tmp/out.csv")
	t.Setenv("IGSTATS_LOG_LEVEL", "debug")
	t.Setenv("IGSTATS_LOG_FILE", "/tmp/igstats.log")

	config := DefaultConfig()
	err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	if config.HikerAPI.APIKey != "env-api-key" {
		t.Errorf("Expected API key to be env-api-key, got %s", config.HikerAPI.APIKey)
	}

	if config.HikerAPI.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected base URL to be http://localhost:8080, got %s", config.HikerAPI.BaseURL)
	}

	if config.HikerAPI.UserAgent != "test-agent" {
		t.Errorf("Expected user agent to be test-agent, got %s", config.HikerAPI.UserAgent)
	}

	if config.HikerAPI.Timeout != 5*time.Second {
		t.Errorf("Expected timeout to be 5s, got %v", config.HikerAPI.Timeout)
	}

	if config.Export.DefaultPath != "/tmp/out.csv" {
		t.Errorf("Expected export path to be /tmp/out.csv, got %s", config.Export.DefaultPath)
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}

	if config.Logging.File != "/tmp/igstats.log" {
		t.Errorf("Expected log file to be /tmp/igstats.log, got %s", config.Logging.File)
	}
}

func TestLoadFromEnvInvalidTimeout(t *testing.T) {
	t.Setenv("IGSTATS_TIMEOUT", "soon")

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid timeout")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "missing api key is allowed",
			mutate:    func(c *Config) { c.HikerAPI.APIKey = "" },
			wantError: false,
		},
		{
			name:      "missing base URL",
			mutate:    func(c *Config) { c.HikerAPI.BaseURL = "" },
			wantError: true,
		},
		{
			name:      "relative base URL",
			mutate:    func(c *Config) { c.HikerAPI.BaseURL = "api.hikerapi.com" },
			wantError: true,
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.HikerAPI.Timeout = 0 },
			wantError: true,
		},
		{
			name:      "missing export path",
			mutate:    func(c *Config) { c.Export.DefaultPath = "" },
			wantError: true,
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Logging.Level = "invalid" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()

	flags := map[string]interface{}{
		"api-key":     "flag-api-key",
		"base-url":    "http://flag.example",
		"timeout":     10 * time.Second,
		"export-path": "/flag/out.csv",
		"log-level":   "error",
	}

	config.MergeCommandLineFlags(flags)

	if config.HikerAPI.APIKey != "flag-api-key" {
		t.Errorf("Expected API key to be flag-api-key, got %s", config.HikerAPI.APIKey)
	}

	if config.HikerAPI.BaseURL != "http://flag.example" {
		t.Errorf("Expected base URL to be http://flag.example, got %s", config.HikerAPI.BaseURL)
	}

	if config.HikerAPI.Timeout != 10*time.Second {
		t.Errorf("Expected timeout to be 10s, got %v", config.HikerAPI.Timeout)
	}

	if config.Export.DefaultPath != "/flag/out.csv" {
		t.Errorf("Expected export path to be /flag/out.csv, got %s", config.Export.DefaultPath)
	}

	if config.Logging.Level != "error" {
		t.Errorf("Expected log level to be error, got %s", config.Logging.Level)
	}
}

func TestSaveAndLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "test-config.yaml")

	config := DefaultConfig()
	config.HikerAPI.APIKey = "save-test-key"
	config.HikerAPI.Timeout = 12 * time.Second
	config.Export.DefaultPath = "saved.csv"

	err := config.Save(configPath)
	if err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Saved config missing: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected config file mode 0600, got %v", info.Mode().Perm())
	}

	loadedConfig := DefaultConfig()
	err = loadedConfig.LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.HikerAPI.APIKey != "save-test-key" {
		t.Errorf("Expected loaded API key to be save-test-key, got %s", loadedConfig.HikerAPI.APIKey)
	}

	if loadedConfig.HikerAPI.Timeout != 12*time.Second {
		t.Errorf("Expected loaded timeout to be 12s, got %v", loadedConfig.HikerAPI.Timeout)
	}

	if loadedConfig.Export.DefaultPath != "saved.csv" {
		t.Errorf("Expected loaded export path to be saved.csv, got %s", loadedConfig.Export.DefaultPath)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("hikerapi: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	if err := config.LoadFromFile(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestMaskSecret(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"short":            "********",
		"12345678":         "********",
		"abcd1234efgh5678": "abcd...5678",
	}

	for in, want := range tests {
		if got := MaskSecret(in); got != want {
			t.Errorf("MaskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
