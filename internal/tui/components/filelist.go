package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FileStatus is the state of one generated file in a report.
type FileStatus string

const (
	FilePending   FileStatus = "pending"
	FileDelivered FileStatus = "delivered"
	FileNew       FileStatus = "new"
	FileChanged   FileStatus = "changed"
	FileUnchanged FileStatus = "unchanged"
	FileFailed    FileStatus = "failed"
)

var (
	deliveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// FileEntry is one row of a FileList.
type FileEntry struct {
	Name    string
	Bytes   int
	Status  FileStatus
	Added   int
	Removed int
}

// FileList renders generated files with their status.
type FileList struct {
	entries []FileEntry
}

// NewFileList constructs a file list component.
func NewFileList(entries []FileEntry) FileList {
	return FileList{entries: append([]FileEntry(nil), entries...)}
}

// Entries returns the rows in order.
func (l FileList) Entries() []FileEntry {
	clone := make([]FileEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// View renders one line per file.
func (l FileList) View() string {
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		line := fmt.Sprintf(" %s %s %s", StatusIcon(e.Status), e.Name, mutedStyle.Render(FormatBytes(e.Bytes)))
		if e.Status == FileChanged {
			line += " " + changedStyle.Render(fmt.Sprintf("+%d -%d", e.Added, e.Removed))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// StatusIcon returns the glyph representing a file status.
func StatusIcon(status FileStatus) string {
	switch status {
	case FileDelivered:
		return deliveredStyle.Render("✓")
	case FileNew:
		return deliveredStyle.Render("+")
	case FileChanged:
		return changedStyle.Render("~")
	case FileUnchanged:
		return mutedStyle.Render("=")
	case FileFailed:
		return failedStyle.Render("✗")
	default:
		return mutedStyle.Render("…")
	}
}

// FormatBytes renders a byte count as B, KB or MB.
func FormatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
