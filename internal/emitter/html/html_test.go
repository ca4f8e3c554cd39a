package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

func midnight(t *testing.T) model.Theme {
	t.Helper()
	th, ok := catalog.MustDefault().Theme("midnight")
	require.True(t, ok)
	return th
}

func component(id, typ string, props map[string]any) model.Component {
	return model.RawComponent{
		ID:       id,
		Type:     typ,
		Props:    props,
		Position: model.Position{X: 40, Y: 24, Width: 200, Height: 48},
	}.Component()
}

func TestRenderButton(t *testing.T) {
	t.Parallel()

	e := New(catalog.MustDefault())
	out := e.Render(component("b1", "button", map[string]any{"text": "Launch <now>"}), midnight(t), model.CSSVanilla)

	require.Contains(t, out, `data-component-id="b1"`)
	require.Contains(t, out, "position: absolute; top: 24px; width: 200px")
	require.Contains(t, out, "left: 40px")
	require.Contains(t, out, "Launch &lt;now&gt;")
	require.Contains(t, out, "background-color: #6366f1")
	require.NotContains(t, out, "class=")
}

func TestRenderUsesCSSFrameworkClasses(t *testing.T) {
	t.Parallel()

	e := New(catalog.MustDefault())
	button := component("b1", "button", map[string]any{"variant": "danger"})

	require.Contains(t, e.Render(button, midnight(t), model.CSSBootstrap), `class="btn btn-danger"`)
	require.Contains(t, e.Render(button, midnight(t), model.CSSBulma), `class="button is-danger"`)
	require.NotContains(t, e.Render(button, midnight(t), model.CSSVanilla), "btn")
}

func TestProgramIncludesFrameworkCDN(t *testing.T) {
	t.Parallel()

	e := New(catalog.MustDefault())
	in := emitter.Input{
		Components:   []model.Component{component("b1", "button", nil)},
		Theme:        midnight(t),
		CSSFramework: model.CSSBootstrap,
	}

	out := e.Program(in)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, `<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css">`)
	require.Contains(t, out, `<div class="canvas">`)
	require.Contains(t, out, "<title>Generated App</title>")
	require.NotContains(t, out, "<script>")

	in.CSSFramework = model.CSSVanilla
	require.NotContains(t, e.Program(in), "cdn.jsdelivr.net")
}

func TestProgramInteractiveRuntime(t *testing.T) {
	t.Parallel()

	e := New(catalog.MustDefault())
	in := emitter.Input{
		Components: []model.Component{component("t", "tabs", map[string]any{"tabs": []any{"One", "Two"}})},
		Theme:      midnight(t),
	}

	out := e.Program(in)
	require.Contains(t, out, `data-set="c0Tab:1"`)
	require.Contains(t, out, `data-if="c0Tab:0">`)
	require.Contains(t, out, `data-if="c0Tab:1" hidden>`)
	require.Contains(t, out, "c0Tab: 0,")
	require.Contains(t, out, "<script>")
}

func TestProgramFormOnlyPreventsSubmission(t *testing.T) {
	t.Parallel()

	e := New(nil)
	out := e.Program(emitter.Input{
		Components: []model.Component{component("f", "form", nil)},
		Theme:      midnight(t),
	})

	require.Contains(t, out, "data-prevent")
	require.Contains(t, out, "<script>")
	require.Contains(t, out, "event.preventDefault()")
	require.Contains(t, out, "const state = {};")
}

func TestFiles(t *testing.T) {
	t.Parallel()

	e := New(nil)
	files := e.Files(emitter.Input{
		Components: []model.Component{component("f", "form", nil)},
		Theme:      midnight(t),
		Title:      "Contact",
	})
	require.Len(t, files, 3)

	index := files[0].Content
	require.Contains(t, index, `<link rel="stylesheet" href="styles.css">`)
	require.Contains(t, index, `<script src="script.js"></script>`)
	require.Contains(t, index, "<title>Contact</title>")
	require.Contains(t, index, "data-prevent")
	require.NotContains(t, index, "<style>")

	require.Contains(t, files[1].Content, ".canvas {")
	require.Contains(t, files[2].Content, "const state = {};")
}
