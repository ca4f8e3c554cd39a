package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	p := NewProgress([]FileEntry{{Name: "index.html", Bytes: 300}, {Name: "styles.css", Bytes: 100}})
	require.Len(t, p.files, 2)
	require.Equal(t, 400, p.bytes)
	require.Equal(t, 30, p.bar.Width)
}

func TestProgressRatioFollowsBytes(t *testing.T) {
	t.Parallel()

	files := []FileEntry{
		{Name: "index.html", Bytes: 300},
		{Name: "styles.css", Bytes: 100},
		{Name: "script.js", Bytes: 600},
	}
	empty := []FileEntry{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	cases := []struct {
		name      string
		files     []FileEntry
		delivered int
		ratio     float64
	}{
		{"nothing delivered", files, 0, 0},
		{"first file", files, 1, 0.3},
		{"two files", files, 2, 0.4},
		{"all files", files, 3, 1},
		{"beyond total", files, 5, 1},
		{"no files", nil, 0, 0},
		{"empty files count instead", empty, 1, 0.25},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.ratio, NewProgress(tc.files).Ratio(tc.delivered), 1e-9)
		})
	}
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	files := []FileEntry{
		{Name: "index.html", Bytes: 512},
		{Name: "src/App.jsx", Bytes: 4096},
	}

	cases := []struct {
		name      string
		files     []FileEntry
		delivered int
		want      []string
	}{
		{"zero files", nil, 0, []string{"0/0 files", "0 B of 0 B"}},
		{"partial", files, 1, []string{"1/2 files", "512 B of 4.5 KB"}},
		{"complete", files, 2, []string{"2/2 files", "4.5 KB of 4.5 KB"}},
		{"beyond total keeps the count", files, 3, []string{"3/2 files", "4.5 KB of 4.5 KB"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view := NewProgress(tc.files).View(tc.delivered)
			for _, want := range tc.want {
				require.Contains(t, view, want)
			}
		})
	}
}
