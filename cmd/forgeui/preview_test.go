package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/tui"
)

func TestPreviewCommand_PlainOutputWithoutTerminal(t *testing.T) {
	path := writeLandingProject(t)

	called := false
	original := previewProgramRunner
	t.Cleanup(func() { previewProgramRunner = original })
	previewProgramRunner = func(_ *cobra.Command, _ tui.Model) error {
		called = true
		return nil
	}

	stdout, _, err := executeCommand("preview", "-p", path)
	require.NoError(t, err)
	require.False(t, called)
	for _, title := range []string{"HTML: landing.html", "React: landing.jsx", "Vue: landing.vue", "Svelte: landing.svelte", "Angular: landing.component.ts"} {
		require.Contains(t, stdout, title)
	}
	require.Contains(t, stdout, "Ship faster")
}

func TestServeCommand_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := executeCommandContext(ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
}
