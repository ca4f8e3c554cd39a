package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/config"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

func TestInitCommand_WritesSampleProject(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site.toml")

	stdout, _, err := executeCommand("init", "-o", out, "--name", "Landing Page", "--framework", "svelte", "--theme", "forest")
	require.NoError(t, err)
	require.Contains(t, stdout, "Created")

	project, err := config.ParseProject(out)
	require.NoError(t, err)
	require.Equal(t, "Landing Page", project.Name)
	require.Equal(t, model.FrameworkSvelte, project.Framework)
	require.Equal(t, "forest", project.Theme)
	require.Len(t, project.Components, 5)

	seen := map[string]bool{}
	for _, c := range project.Components {
		require.True(t, strings.HasPrefix(c.ID, "c"), c.ID)
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "project.yaml")

	_, _, err := executeCommand("init", "-o", out)
	require.NoError(t, err)

	_, _, err = executeCommand("init", "-o", out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")

	_, _, err = executeCommand("init", "-o", out, "--force")
	require.NoError(t, err)
}

func TestInitCommand_RejectsUnknownTheme(t *testing.T) {
	out := filepath.Join(t.TempDir(), "project.yaml")

	_, _, err := executeCommand("init", "-o", out, "--theme", "lava")
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme")
}

func TestInitThenGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "project.json")

	_, _, err := executeCommand("init", "-o", out, "--framework", "angular")
	require.NoError(t, err)

	stdout, _, err := executeCommand("generate", "-p", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "@Component")
}
