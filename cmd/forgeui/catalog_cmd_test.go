package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemesCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand("themes")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "PRIMARY")
	for _, id := range []string{"midnight", "ocean", "sunset", "forest", "neon", "minimal", "aurora"} {
		require.Contains(t, stdout, id)
	}
	require.Contains(t, stdout, " *")
}

func TestThemesCommand_JSONOutput(t *testing.T) {
	stdout, _, err := executeCommand("themes", "--json")
	require.NoError(t, err)

	var themes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &themes))
	require.Len(t, themes, 7)
	require.Contains(t, themes[0], "colors")
}

func TestFrameworksCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand("frameworks")
	require.NoError(t, err)
	for _, want := range []string{"html", "react", "vue", "svelte", "angular", ".component.ts", "tailwind", "bootstrap", "bulma"} {
		require.Contains(t, stdout, want)
	}
}

func TestFrameworksCommand_JSONOutput(t *testing.T) {
	stdout, _, err := executeCommand("frameworks", "--json")
	require.NoError(t, err)

	var listing frameworksListing
	require.NoError(t, json.Unmarshal([]byte(stdout), &listing))
	require.Len(t, listing.Frameworks, 5)
	require.Len(t, listing.CSSFrameworks, 4)
}
