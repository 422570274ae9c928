package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"igstats/pkg/errors"
	"igstats/pkg/export"
	"igstats/pkg/logger"
	"igstats/pkg/ui"
)

var (
	// Lookup command flags
	exportPath string
	csvOutput  bool
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <handle>[,<handle>...]",
	Short: "Look up one or more Instagram profiles",
	Long: `Look up Instagram profiles through HikerAPI.

A single handle is looked up directly. When that fails, the query is treated
as a comma-separated list of handles and each one is looked up in order.
Engagement is averaged over the most recent posts.`,
	Example: `  # Look up one profile
  igstats lookup johndoe

  # Look up several profiles
  igstats lookup johndoe,janedoe

  # Save the results as CSV
  igstats lookup johndoe,janedoe --export profiles.csv

  # Write CSV to stdout
  igstats lookup johndoe --csv > profiles.csv`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringVarP(&exportPath, "export", "e", "", "write the results to a CSV file")
	lookupCmd.Flags().BoolVar(&csvOutput, "csv", false, "write CSV to stdout instead of a table")
}

func runLookup(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		exitWithError("Failed to load configuration", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		exitWithError("Failed to initialize logger", err)
	}
	log := logger.GetLogger()

	svc, err := newService(cfg, log)
	if err != nil {
		exitWithError("Missing HikerAPI key", err)
	}

	if !csvOutput && !quiet {
		ui.PrintInfo("Query", query)
	}

	profiles, err := ui.Resolve(svc, query)
	if err != nil {
		if errors.IsValidation(err) {
			exitWithError("Invalid query", err)
		}
		log.WithError(err).WithField("query", query).Error("Lookup failed")
		exitWithError("Lookup failed", err)
	}

	if csvOutput {
		if err := export.WriteProfiles(os.Stdout, profiles); err != nil {
			exitWithError("Failed to write CSV", err)
		}
	} else {
		fmt.Fprintln(ui.Out, ui.RenderProfiles(profiles))
		if len(profiles) == 1 {
			fmt.Fprintln(ui.Out)
			fmt.Fprintln(ui.Out, ui.RenderDetails(&profiles[0]))
		}
	}

	if exportPath != "" {
		if err := export.NewCSVExporter(log).ExportProfiles(profiles, exportPath); err != nil {
			exitWithError("Export failed", err)
		}
		if !quiet {
			ui.PrintSuccess(fmt.Sprintf("Exported %d profile(s) to %s", len(profiles), exportPath))
		}
	}
}
