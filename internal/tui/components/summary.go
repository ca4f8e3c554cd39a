package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// SummaryData describes one export for the terminal report.
type SummaryData struct {
	Project      string
	Framework    string
	Format       string
	CSSFramework string
	Target       string
	DryRun       bool
	Files        []FileEntry
	Delivered    int
	Error        string
}

// Summary renders an export report.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	d := s.data
	if d.Project == "" && len(d.Files) == 0 && d.Error == "" {
		return ""
	}

	var lines []string
	title := d.Project
	if title == "" {
		title = "Export"
	}
	if d.DryRun {
		title += " (dry run)"
	}
	lines = append(lines, headingStyle.Render(title))

	for _, field := range [][2]string{
		{"Framework", d.Framework},
		{"Format", d.Format},
		{"CSS", d.CSSFramework},
		{"Target", d.Target},
	} {
		if field[1] != "" {
			lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render(field[0]+":"), field[1]))
		}
	}

	if len(d.Files) > 0 {
		lines = append(lines, "", NewFileList(d.Files).View())
		if !d.DryRun {
			lines = append(lines, "", NewProgress(d.Files).View(d.Delivered))
		}
	}

	switch {
	case d.Error != "":
		lines = append(lines, "", failedStyle.Render("Export failed: "+d.Error))
	case d.DryRun:
		lines = append(lines, "", fmt.Sprintf("%d files would be written", len(d.Files)))
	case len(d.Files) > 0 && d.Delivered == len(d.Files):
		lines = append(lines, "", deliveredStyle.Render("Export finished successfully"))
	}

	return strings.Join(lines, "\n")
}
