package vue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

func TestProgram(t *testing.T) {
	t.Parallel()

	components := []model.Component{
		model.RawComponent{ID: "t", Type: "tabs", Props: map[string]any{"tabs": []any{"A", "B"}}}.Component(),
		model.RawComponent{ID: "x", Type: "text", Props: map[string]any{"content": "{{ secret }}"}}.Component(),
	}
	out := New(catalog.MustDefault()).Program(emitter.Input{Components: components, Theme: catalog.MustDefault().DefaultTheme()})

	require.True(t, strings.HasPrefix(out, "<script setup>\nimport { ref } from 'vue';\n"))
	require.Contains(t, out, "const c0Tab = ref(0);")
	require.Contains(t, out, `@click="c0Tab = 1"`)
	require.Contains(t, out, `v-if="c0Tab === 1"`)
	require.Contains(t, out, "<template>\n  <div class=\"canvas\">")
	require.Contains(t, out, "\n<style>\n")
	require.Contains(t, out, "&#123;&#123; secret &#125;&#125;")
	require.NotContains(t, out, "{{ secret }}")
}

func TestFilesOmitInlineStyles(t *testing.T) {
	t.Parallel()

	files := New(nil).Files(emitter.Input{
		Components: []model.Component{model.RawComponent{ID: "b", Type: "button"}.Component()},
		Theme:      catalog.MustDefault().DefaultTheme(),
	})
	require.Len(t, files, 5)
	require.Equal(t, "src/App.vue", files[2].Name)
	require.NotContains(t, files[2].Content, "<style>")
	require.NotContains(t, files[2].Content, "<script setup>")
	require.Contains(t, files[1].Content, "import './style.css';")
}
