package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for igstats
type Config struct {
	// HikerAPI access
	HikerAPI HikerAPIConfig `yaml:"hikerapi" json:"hikerapi"`

	// CSV export settings
	Export ExportConfig `yaml:"export" json:"export"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// HikerAPIConfig holds HikerAPI-specific configuration
type HikerAPIConfig struct {
	APIKey    string        `yaml:"api_key" json:"api_key"`
	BaseURL   string        `yaml:"base_url" json:"base_url"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	DefaultPath string `yaml:"default_path" json:"default_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

const (
	// DefaultBaseURL is the public HikerAPI endpoint
	DefaultBaseURL = "https://api.hikerapi.com"

	// DefaultTimeout bounds every HTTP request to HikerAPI
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every HikerAPI request
	DefaultUserAgent = "igstats/1.0"

	// DefaultExportPath is where the browser writes CSV exports
	DefaultExportPath = "profiles.csv"

	// EnvPrefix prefixes every environment variable read by LoadFromEnv
	EnvPrefix = "IGSTATS_"
)

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HikerAPI: HikerAPIConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Export: ExportConfig{
			DefaultPath: DefaultExportPath,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if apiKey := os.Getenv(EnvPrefix + "API_KEY"); apiKey != "" {
		c.HikerAPI.APIKey = apiKey
	}
	if baseURL := os.Getenv(EnvPrefix + "BASE_URL"); baseURL != "" {
		c.HikerAPI.BaseURL = baseURL
	}
	if userAgent := os.Getenv(EnvPrefix + "USER_AGENT"); userAgent != "" {
		c.HikerAPI.UserAgent = userAgent
	}
	if timeout := os.Getenv(EnvPrefix + "TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT: %w", EnvPrefix, err)
		}
		c.HikerAPI.Timeout = d
	}

	if exportPath := os.Getenv(EnvPrefix + "EXPORT_PATH"); exportPath != "" {
		c.Export.DefaultPath = exportPath
	}

	if logLevel := os.Getenv(EnvPrefix + "LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv(EnvPrefix + "LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// ConfigLocations lists the default config file locations in order of precedence
func ConfigLocations() []string {
	home := os.Getenv("HOME")
	return []string{
		".igstats.yaml",
		".igstats.yml",
		filepath.Join(home, ".config", "igstats", "config.yaml"),
		filepath.Join(home, ".config", "igstats", "config.yml"),
		filepath.Join(home, ".igstats.yaml"),
		filepath.Join(home, ".igstats.yml"),
	}
}

// FindConfigFile returns the first existing default config file, or ""
func FindConfigFile() string {
	for _, loc := range ConfigLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Validate checks if the configuration is valid.
// A missing API key is not an error here; the key may come from the key store.
func (c *Config) Validate() error {
	var errs []error

	if c.HikerAPI.BaseURL == "" {
		errs = append(errs, errors.New("hikerapi base URL is required"))
	} else if u, err := url.Parse(c.HikerAPI.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("hikerapi base URL is invalid: %q", c.HikerAPI.BaseURL))
	}
	if c.HikerAPI.Timeout <= 0 {
		errs = append(errs, errors.New("hikerapi timeout must be positive"))
	}

	if c.Export.DefaultPath == "" {
		errs = append(errs, errors.New("export default path is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Sanitized returns a copy with the API key masked, suitable for display
func (c *Config) Sanitized() *Config {
	cp := *c
	cp.HikerAPI.APIKey = MaskSecret(c.HikerAPI.APIKey)
	return &cp
}

// MaskSecret masks all but the first 4 and last 4 characters of a secret
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if apiKey, ok := flags["api-key"].(string); ok && apiKey != "" {
		c.HikerAPI.APIKey = apiKey
	}
	if baseURL, ok := flags["base-url"].(string); ok && baseURL != "" {
		c.HikerAPI.BaseURL = baseURL
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.HikerAPI.Timeout = timeout
	}
	if exportPath, ok := flags["export-path"].(string); ok && exportPath != "" {
		c.Export.DefaultPath = exportPath
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".igstats.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
