package svelte

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

func TestProgram(t *testing.T) {
	t.Parallel()

	components := []model.Component{
		model.RawComponent{ID: "a", Type: "alert", Props: map[string]any{"dismissible": true}}.Component(),
		model.RawComponent{ID: "f", Type: "form"}.Component(),
	}
	out := New(catalog.MustDefault()).Program(emitter.Input{Components: components, Theme: catalog.MustDefault().DefaultTheme()})

	require.Contains(t, out, "  let c0Visible = 1;")
	require.Contains(t, out, "{#if c0Visible === 1}")
	require.Contains(t, out, "{/if}")
	require.Contains(t, out, "on:click={() => (c0Visible = 0)}")
	require.Contains(t, out, "on:submit|preventDefault")
	require.Contains(t, out, "<svelte:head>")
	require.Contains(t, out, "const styles = `")
}

func TestFiles(t *testing.T) {
	t.Parallel()

	files := New(nil).Files(emitter.Input{
		Components: []model.Component{model.RawComponent{ID: "b", Type: "button"}.Component()},
		Theme:      catalog.MustDefault().DefaultTheme(),
	})
	require.Len(t, files, 5)
	require.Equal(t, "src/App.svelte", files[2].Name)
	require.NotContains(t, files[2].Content, "<script>")
	require.NotContains(t, files[2].Content, "svelte:head")
	require.Contains(t, files[4].Content, "plugins: [svelte()],")
}
