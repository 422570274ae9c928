package main

import (
	"github.com/spf13/cobra"

	"igstats/pkg/export"
	"igstats/pkg/logger"
	"igstats/pkg/ui/tui"
)

var browseExportPath string

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse profiles in an interactive terminal UI",
	Long: `Start the interactive profile browser.

Type a handle, or a comma-separated list of handles, and press enter.
Use tab to move between the input and the results, and ctrl+e to export
the current results to CSV. Logs go to the configured log file only.`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseExportPath, "export", "e", "", "CSV path used by ctrl+e (default from config)")
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError("Failed to load configuration", err)
	}

	log, err := logger.NewFileOnly(&cfg.Logging)
	if err != nil {
		exitWithError("Failed to initialize logger", err)
	}
	logger.SetLogger(log)

	svc, err := newService(cfg, log)
	if err != nil {
		exitWithError("Missing HikerAPI key", err)
	}

	path := cfg.Export.DefaultPath
	if browseExportPath != "" {
		path = browseExportPath
	}

	log.WithField("export_path", path).Info("Starting profile browser")

	terminal := tui.NewTUI(svc, export.NewCSVExporter(log), path)
	if err := terminal.Start(); err != nil {
		log.WithError(err).Error("TUI failed")
		exitWithError("Browser failed", err)
	}
}
