package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"igstats/pkg/auth"
	"igstats/pkg/config"
	"igstats/pkg/hikerapi"
	"igstats/pkg/logger"
	"igstats/pkg/lookup"
	"igstats/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	apiKeyFlag string
	logLevel   string
	quiet      bool
	verbose    bool
)

// errMissingKey is returned when no HikerAPI key is found anywhere
var errMissingKey = fmt.Errorf("no HikerAPI key configured, run 'igstats auth set-key' or set %sAPI_KEY", config.EnvPrefix)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "igstats",
	Short: "Look up Instagram profile statistics through HikerAPI",
	Long: `igstats looks up public Instagram profiles through HikerAPI and reports
follower counts and engagement averaged over the most recent posts.

Features:
  - Single handle or comma-separated multi-handle lookup
  - Results table with a details pane
  - CSV export
  - Interactive profile browser
  - Secure API key storage using the system keychain`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showLogo(cmd) {
			ui.PrintLogo()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.igstats.yaml or ~/.config/igstats/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "HikerAPI access key")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug logs")

	rootCmd.SetVersionTemplate(`igstats {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// showLogo reports whether the logo should be printed before cmd runs
func showLogo(cmd *cobra.Command) bool {
	if quiet {
		return false
	}
	switch cmd.Name() {
	case "version", "help", "browse":
		return false
	case "lookup":
		return !csvOutput
	}
	return true
}

// effectiveLogLevel folds -q and -v into the --log-level flag
func effectiveLogLevel() string {
	switch {
	case quiet:
		return "error"
	case verbose:
		return "debug"
	default:
		return logLevel
	}
}

// loadConfig loads configuration from every source with the global flags applied
func loadConfig() (*config.Config, error) {
	flags := map[string]interface{}{
		"api-key":   apiKeyFlag,
		"log-level": effectiveLogLevel(),
	}
	return config.Load(configFile, flags)
}

// keySource returns the key held in the credential store
type keySource func() (string, error)

// storedKey reads the default key from the credential manager
func storedKey() (string, error) {
	manager, err := auth.NewManager()
	if err != nil {
		return "", err
	}
	return manager.GetKey()
}

// resolveAPIKey picks the configured key, falling back to the credential store.
// The configured key already reflects flag, environment and file precedence.
func resolveAPIKey(cfg *config.Config, stored keySource) (string, error) {
	if cfg.HikerAPI.APIKey != "" {
		return cfg.HikerAPI.APIKey, nil
	}
	if stored != nil {
		if key, err := stored(); err == nil && key != "" {
			return key, nil
		}
	}
	return "", errMissingKey
}

// newService wires the HikerAPI client into a lookup service
func newService(cfg *config.Config, log logger.Logger) (*lookup.Service, error) {
	key, err := resolveAPIKey(cfg, storedKey)
	if err != nil {
		return nil, err
	}

	apiCfg := cfg.HikerAPI
	apiCfg.APIKey = key
	client := hikerapi.NewClientWithConfig(&apiCfg, log)
	logger.LogComponentStart(log, "hikerapi", map[string]interface{}{
		"base_url": client.BaseURL(),
		"timeout":  apiCfg.Timeout,
	})

	return lookup.NewService(client, log), nil
}

// exitWithError prints msg and err then exits with status 1
func exitWithError(msg string, err error) {
	if err != nil {
		ui.PrintError(msg, err.Error())
	} else {
		ui.PrintError(msg)
	}
	os.Exit(1)
}
