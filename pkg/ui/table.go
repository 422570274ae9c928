package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"igstats/pkg/hikerapi"
	"igstats/pkg/models"
)

// DetailsTimeFormat is the layout of the last-updated line in the details pane
const DetailsTimeFormat = "2006-01-02 15:04:05"

// Columns of the results table, in display order
var Columns = []string{
	"Handle",
	"Name",
	"Followers",
	"Following",
	"Avg Likes",
	"Avg Comments",
	"Avg Reshares",
	"Recent Posts",
	"Verified",
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

// ProfileRow formats a profile as a results table row
func ProfileRow(p *models.Profile) []string {
	return []string{
		p.Handle,
		p.DisplayNameOrEmpty(),
		FormatCount(p.Statistics.FollowersCount),
		FormatCount(p.Statistics.FollowingCount),
		FormatCount(p.Engagement.RecentAvgLikes),
		FormatCount(p.Engagement.RecentAvgComments),
		FormatCount(p.Engagement.RecentAvgReshares),
		strconv.Itoa(p.Engagement.RecentPostCount),
		CheckMark(p.IsVerified),
	}
}

// ProfileRows formats every profile with ProfileRow
func ProfileRows(profiles []models.Profile) [][]string {
	rows := make([][]string, 0, len(profiles))
	for i := range profiles {
		rows = append(rows, ProfileRow(&profiles[i]))
	}
	return rows
}

// RenderProfiles renders profiles as a bordered table
func RenderProfiles(profiles []models.Profile) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(Columns...).
		Rows(ProfileRows(profiles)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2 && col <= 7:
				return numberStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

// DetailLines returns the label and value pairs of the details pane
func DetailLines(p *models.Profile) [][2]string {
	account := "Public"
	if p.IsPrivate {
		account = "Private"
	}
	if p.IsVerified {
		account += ", Verified"
	}

	return [][2]string{
		{"ID", orNA(p.ID)},
		{"Handle", "@" + p.Handle},
		{"Name", orNA(p.DisplayNameOrEmpty())},
		{"Bio", orNA(p.BioOrEmpty())},
		{"Account", account},
		{"Followers", FormatCount(p.Statistics.FollowersCount)},
		{"Following", FormatCount(p.Statistics.FollowingCount)},
		{"Posts", FormatCount(p.Statistics.PostsCount)},
		{"Engagement", fmt.Sprintf("%s avg likes, %s avg comments, %s avg reshares over %d recent posts",
			FormatCount(p.Engagement.RecentAvgLikes),
			FormatCount(p.Engagement.RecentAvgComments),
			FormatCount(p.Engagement.RecentAvgReshares),
			p.Engagement.RecentPostCount)},
		{"Avatar", orNA(p.AvatarURLOrEmpty())},
		{"Profile", hikerapi.GetUserProfileURL(p.Handle)},
		{"Last Updated", p.Statistics.LastUpdated.Format(DetailsTimeFormat)},
	}
}

// RenderDetails renders the details pane for one profile
func RenderDetails(p *models.Profile) string {
	if p == nil {
		return ""
	}

	lines := DetailLines(p)
	width := 0
	for _, l := range lines {
		if len(l[0]) > width {
			width = len(l[0])
		}
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := fmt.Sprintf("%-*s", width+1, l[0]+":")
		b.WriteString(labelStyle.Render(label))
		b.WriteByte(' ')
		b.WriteString(valueStyle.Render(l[1]))
	}
	return b.String()
}

// FormatCount formats n with thousands separators
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// CheckMark renders a boolean as a tick or a cross
func CheckMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
