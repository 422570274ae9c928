// Package export writes looked-up profiles to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"igstats/pkg/errors"
	"igstats/pkg/logger"
	"igstats/pkg/models"
)

// TimeFormat is the layout of the last_updated column
const TimeFormat = "2006-01-02 15:04:05"

// Header is the first row of every export
var Header = []string{
	"handle",
	"display_name",
	"is_verified",
	"is_private",
	"followers_count",
	"following_count",
	"recent_avg_likes",
	"recent_avg_comments",
	"recent_avg_reshares",
	"posts_count",
	"last_updated",
}

// CSVExporter writes profiles to CSV files
type CSVExporter struct {
	logger logger.Logger
}

// NewCSVExporter creates an exporter. A nil log uses the global logger.
func NewCSVExporter(log logger.Logger) *CSVExporter {
	if log == nil {
		log = logger.GetLogger()
	}
	return &CSVExporter{logger: log}
}

// ExportProfiles writes profiles to path, replacing any existing file.
// The parent directory is created when missing. An empty slice writes nothing.
func (e *CSVExporter) ExportProfiles(profiles []models.Profile, path string) error {
	if len(profiles) == 0 {
		return errors.EmptyInput("no profiles to export")
	}

	err := writeFile(path, profiles)
	logger.LogExport(e.logger, path, len(profiles), err)
	return err
}

// writeFile writes to a temporary sibling and renames it over path
func writeFile(path string, profiles []models.Profile) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	tempFile := path + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	err = WriteProfiles(out, profiles)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return err
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to close file: %w", closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// WriteProfiles writes the header and one row per profile to w
func WriteProfiles(w io.Writer, profiles []models.Profile) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range profiles {
		if err := writer.Write(Row(&profiles[i])); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// Row formats a profile in Header column order
func Row(p *models.Profile) []string {
	return []string{
		p.Handle,
		p.DisplayNameOrEmpty(),
		strconv.FormatBool(p.IsVerified),
		strconv.FormatBool(p.IsPrivate),
		strconv.Itoa(p.Statistics.FollowersCount),
		strconv.Itoa(p.Statistics.FollowingCount),
		strconv.Itoa(p.Engagement.RecentAvgLikes),
		strconv.Itoa(p.Engagement.RecentAvgComments),
		strconv.Itoa(p.Engagement.RecentAvgReshares),
		strconv.Itoa(p.Statistics.PostsCount),
		p.Statistics.LastUpdated.Format(TimeFormat),
	}
}
