package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleEntries() []FileEntry {
	return []FileEntry{
		{Name: "index.html", Bytes: 512, Status: FileDelivered},
		{Name: "src/App.jsx", Bytes: 4096, Status: FileChanged, Added: 3, Removed: 1},
		{Name: "src/App.css", Bytes: 2 * 1024 * 1024, Status: FileUnchanged},
	}
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("empty data renders nothing", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", NewSummary(SummaryData{}).View())
	})

	t.Run("successful export", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{
			Project:   "Landing",
			Framework: "react",
			Format:    "modular",
			Target:    "./out",
			Files:     sampleEntries(),
			Delivered: 3,
		}).View()
		require.Contains(t, view, "Landing")
		require.Contains(t, view, "Framework: react")
		require.Contains(t, view, "Target: ./out")
		require.Contains(t, view, "3/3 files")
		require.Contains(t, view, "Export finished successfully")
		require.NotContains(t, view, "CSS:")
	})

	t.Run("dry run", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Project: "Landing", DryRun: true, Files: sampleEntries()}).View()
		require.Contains(t, view, "Landing (dry run)")
		require.Contains(t, view, "3 files would be written")
		require.NotContains(t, view, "0/3 files")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Files: sampleEntries(), Delivered: 1, Error: "disk full"}).View()
		require.Contains(t, view, "Export")
		require.Contains(t, view, "1/3 files")
		require.Contains(t, view, "Export failed: disk full")
		require.NotContains(t, view, "successfully")
	})
}

func TestFileListView(t *testing.T) {
	t.Parallel()

	list := NewFileList(sampleEntries())
	view := list.View()
	require.Contains(t, view, "✓ index.html 512 B")
	require.Contains(t, view, "src/App.jsx 4.0 KB +3 -1")
	require.Contains(t, view, "= src/App.css 2.0 MB")
	require.Len(t, list.Entries(), 3)
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	cases := map[FileStatus]string{
		FileDelivered: "✓",
		FileNew:       "+",
		FileChanged:   "~",
		FileUnchanged: "=",
		FileFailed:    "✗",
		FilePending:   "…",
		"":            "…",
	}
	for status, icon := range cases {
		require.Contains(t, StatusIcon(status), icon, status)
	}
}
