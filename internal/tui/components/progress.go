// Package components holds the lipgloss building blocks of forgeui's terminal
// reports.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how much of an export has been delivered. Files are
// delivered in order, so the first n entries are the delivered ones and the
// bar fills by bytes rather than by file count.
type Progress struct {
	bar   progress.Model
	files []FileEntry
	bytes int
}

// NewProgress creates a progress component for the files of one export.
func NewProgress(files []FileEntry) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	total := 0
	for _, f := range files {
		total += f.Bytes
	}
	return Progress{bar: bar, files: append([]FileEntry(nil), files...), bytes: total}
}

// Ratio returns the delivered share of the export's bytes in [0, 1]. Exports
// of empty files fall back to the file count.
func (p Progress) Ratio(delivered int) float64 {
	if len(p.files) == 0 || delivered <= 0 {
		return 0
	}
	if delivered >= len(p.files) {
		return 1
	}
	if p.bytes == 0 {
		return float64(delivered) / float64(len(p.files))
	}
	return float64(p.deliveredBytes(delivered)) / float64(p.bytes)
}

// View renders the bar for the provided delivered count.
func (p Progress) View(delivered int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d files", delivered, len(p.files)))
	size := mutedStyle.Render(fmt.Sprintf("%s of %s", FormatBytes(p.deliveredBytes(delivered)), FormatBytes(p.bytes)))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(delivered)), " ", size)
}

func (p Progress) deliveredBytes(delivered int) int {
	n := 0
	for i := 0; i < delivered && i < len(p.files); i++ {
		n += p.files[i].Bytes
	}
	return n
}
