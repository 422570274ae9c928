package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"igstats/pkg/config"
	"igstats/pkg/ui"
)

// defaultConfigName is written by config init when --config is not given
const defaultConfigName = ".igstats.yaml"

// exampleConfig is the commented template written by config init
const exampleConfig = `# igstats configuration file
#
# Every value can also be set with an environment variable prefixed with
# IGSTATS_, for example IGSTATS_API_KEY or IGSTATS_LOG_LEVEL.

# HikerAPI access
hikerapi:
  # Access key (optional here)
  # Prefer 'igstats auth set-key', which keeps the key out of this file
  api_key: ""

  # API host
  base_url: "https://api.hikerapi.com"

  # Request timeout
  timeout: 30s

  # User agent sent with every request
  user_agent: "igstats/1.0"

# CSV export
export:
  # File written by ctrl+e in the browser
  default_path: "profiles.csv"

# Logging configuration
logging:
  # Log level: debug, info, warn, error, disabled
  level: "info"

  # Log file path (optional)
  # Leave empty to log to stderr only
  file: ""
`

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage igstats configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables
  - .env files
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.igstats.yaml'
unless a different path is specified with the --config flag.`,
	Run: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the current configuration including values from all sources.

The access key is masked for security.`,
	Run: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Required fields
  - Base URL and timeout
  - Path accessibility`,
	Run: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = defaultConfigName
	}

	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists", configPath)
		fmt.Fprintln(ui.Out, "\nTo overwrite, first remove the existing file:")
		fmt.Fprintf(ui.Out, "  rm %s\n", configPath)
		os.Exit(1)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			exitWithError("Failed to create configuration directory", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0600); err != nil {
		exitWithError("Failed to create configuration file", err)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	fmt.Fprintln(ui.Out, "\nNext steps:")
	fmt.Fprintln(ui.Out, "1. Store your HikerAPI key with 'igstats auth set-key'")
	fmt.Fprintln(ui.Out, "2. Run 'igstats config validate' to check the configuration")
	fmt.Fprintln(ui.Out, "3. Look up a profile with 'igstats lookup <handle>'")
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError("Failed to load configuration", err)
	}

	data, err := yaml.Marshal(cfg.Sanitized())
	if err != nil {
		exitWithError("Failed to format configuration", err)
	}

	ui.PrintHighlight("Current Configuration")
	fmt.Fprintln(ui.Out)
	fmt.Fprint(ui.Out, string(data))

	fmt.Fprintln(ui.Out, "\nConfiguration sources (in order of priority):")
	fmt.Fprintln(ui.Out, "1. Command line flags")
	fmt.Fprintf(ui.Out, "2. Environment variables (%s*)\n", config.EnvPrefix)
	fmt.Fprintln(ui.Out, "3. .env files")
	if path := configPathInUse(); path != "" {
		fmt.Fprintf(ui.Out, "4. Configuration file: %s\n", path)
	} else {
		fmt.Fprintln(ui.Out, "4. Configuration file: (none found)")
	}
	fmt.Fprintln(ui.Out, "5. Default values")
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	path := configPathInUse()
	if path == "" {
		exitWithError("No configuration file found", fmt.Errorf("specify a file with --config or run 'igstats config init'"))
	}

	ui.PrintInfo("Validating configuration", path)

	cfg, err := config.Load(path, nil)
	if err != nil {
		exitWithError("Configuration validation failed", err)
	}

	warnings, problems := checkConfig(cfg)

	if len(problems) > 0 {
		ui.PrintError("Configuration has errors:")
		for _, p := range problems {
			fmt.Fprintf(ui.ErrOut, "  - %s\n", p)
		}
		os.Exit(1)
	}

	if len(warnings) > 0 {
		ui.PrintWarning("Configuration warnings:")
		for _, w := range warnings {
			fmt.Fprintf(ui.ErrOut, "  - %s\n", w)
		}
		fmt.Fprintln(ui.ErrOut)
	}

	ui.PrintSuccess("Configuration is valid")

	fmt.Fprintln(ui.Out, "\nConfiguration summary:")
	fmt.Fprintf(ui.Out, "  Base URL: %s\n", cfg.HikerAPI.BaseURL)
	fmt.Fprintf(ui.Out, "  Timeout: %s\n", cfg.HikerAPI.Timeout)
	fmt.Fprintf(ui.Out, "  Export path: %s\n", cfg.Export.DefaultPath)
	fmt.Fprintf(ui.Out, "  Log level: %s\n", cfg.Logging.Level)
}

// configPathInUse returns the --config path or the first default file found
func configPathInUse() string {
	if configFile != "" {
		return configFile
	}
	return config.FindConfigFile()
}

// checkConfig returns warnings and errors beyond what Validate reports
func checkConfig(cfg *config.Config) (warnings, problems []string) {
	if cfg.HikerAPI.APIKey == "" {
		warnings = append(warnings, "hikerapi.api_key not set, the stored key or "+config.EnvPrefix+"API_KEY will be used")
	}

	if dir := filepath.Dir(cfg.Export.DefaultPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			problems = append(problems, fmt.Sprintf("Cannot create export directory: %v", err))
		}
	}

	if cfg.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err != nil {
			problems = append(problems, fmt.Sprintf("Cannot create log directory: %v", err))
		}
	}

	return warnings, problems
}
