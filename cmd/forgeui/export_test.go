package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_SingleFileToDirectory(t *testing.T) {
	path := writeLandingProject(t)
	out := t.TempDir()

	stdout, _, err := executeCommand("export", "-p", path, "-o", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Export finished successfully")

	data, err := os.ReadFile(filepath.Join(out, "landing.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), "Ship faster")
}

func TestExportCommand_DryRunWritesNothing(t *testing.T) {
	path := writeLandingProject(t)
	out := filepath.Join(t.TempDir(), "site")

	stdout, _, err := executeCommand("export", "-p", path, "-o", out, "--format", "modular", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, stdout, "(dry run)")
	require.Contains(t, stdout, "index.html")
	require.Contains(t, stdout, "package.json")

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}

func TestExportCommand_ModularZip(t *testing.T) {
	path := writeLandingProject(t)
	archive := filepath.Join(t.TempDir(), "site.zip")

	_, _, err := executeCommand("export", "-p", path, "--format", "modular", "--framework", "react", "--include-assets", "--zip", archive)
	require.NoError(t, err)

	reader, err := zip.OpenReader(archive)
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "src/App.jsx")
	require.Contains(t, names, "package.json")
	require.Contains(t, names, "README.md")
}

func TestExportCommand_GitCommit(t *testing.T) {
	path := writeLandingProject(t)
	out := t.TempDir()

	_, _, err := executeCommand("export", "-p", path, "-o", out, "--git")
	require.NoError(t, err)

	repo, err := git.PlainOpen(out)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	_, err = commit.File("landing.html")
	require.NoError(t, err)
}

func TestExportCommand_ZipAndGitConflict(t *testing.T) {
	path := writeLandingProject(t)

	_, _, err := executeCommand("export", "-p", path, "--zip", filepath.Join(t.TempDir(), "a.zip"), "--git")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--git")
}

func TestExportCommand_DiffAgainstExistingFiles(t *testing.T) {
	path := writeLandingProject(t)
	out := t.TempDir()

	_, _, err := executeCommand("export", "-p", path, "-o", out)
	require.NoError(t, err)

	stdout, _, err := executeCommand("export", "-p", path, "-o", out, "--diff")
	require.NoError(t, err)
	require.NotContains(t, stdout, "--- a/landing.html", "unchanged output has no diff")

	target := filepath.Join(out, "landing.html")
	require.NoError(t, os.WriteFile(target, []byte("<p>old</p>\n"), 0o644))

	stdout, _, err = executeCommand("export", "-p", path, "-o", out, "--diff")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- a/landing.html")
	require.Contains(t, stdout, "+++ b/landing.html")
	require.Contains(t, stdout, "-<p>old</p>")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "<p>old</p>\n", string(data), "--diff never writes")
}

func TestExportCommand_MinifyOverride(t *testing.T) {
	path := writeLandingProject(t)
	out := t.TempDir()

	_, _, err := executeCommand("export", "-p", path, "-o", out, "--minify", "--name", "Min Page")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "min-page.html"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "\n  ")
}
