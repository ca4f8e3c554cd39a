package react

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

func component(id, typ string, props map[string]any) model.Component {
	return model.RawComponent{
		ID:       id,
		Type:     typ,
		Props:    props,
		Position: model.Position{Width: 300, Height: 200},
	}.Component()
}

func TestRenderJSXSyntax(t *testing.T) {
	t.Parallel()

	th := catalog.MustDefault().DefaultTheme()
	out := New(nil).Render(component("in", "input", map[string]any{"label": "Name {first}"}), th, model.CSSBootstrap)

	require.Contains(t, out, `htmlFor="cIn-input"`)
	require.Contains(t, out, "style={{ ")
	require.Contains(t, out, `position: "absolute"`)
	require.Contains(t, out, "Name &#123;first&#125;")
	require.Contains(t, out, "/>")
	require.NotContains(t, out, "class=")
	require.NotContains(t, out, "form-control")
}

func TestProgramWithState(t *testing.T) {
	t.Parallel()

	e := New(catalog.MustDefault())
	out := e.Program(emitter.Input{
		Components: []model.Component{component("acc", "accordion", nil)},
		Theme:      catalog.MustDefault().DefaultTheme(),
	})

	require.True(t, strings.HasPrefix(out, "import { useState } from 'react';\n"))
	require.Contains(t, out, "const [c0Open0, setC0Open0] = useState(1);")
	require.Contains(t, out, "const [c0Open1, setC0Open1] = useState(0);")
	require.Contains(t, out, "onClick={() => setC0Open0((v) => (v === 1 ? 0 : 1))}")
	require.Contains(t, out, "{c0Open0 === 1 && (")
	require.Contains(t, out, "<style>{styles}</style>")
	require.Contains(t, out, `className="canvas"`)
	require.Contains(t, out, "export default function App() {")
}

func TestProgramWithoutState(t *testing.T) {
	t.Parallel()

	out := New(nil).Program(emitter.Input{
		Components: []model.Component{component("b", "button", nil)},
		Theme:      catalog.MustDefault().DefaultTheme(),
	})
	require.NotContains(t, out, "useState")
	require.True(t, strings.HasPrefix(out, "const styles = `\n"))
}

func TestFiles(t *testing.T) {
	t.Parallel()

	files := New(nil).Files(emitter.Input{
		Components: []model.Component{component("f", "form", nil)},
		Theme:      catalog.MustDefault().DefaultTheme(),
	})
	require.Len(t, files, 5)

	app := files[2]
	require.Equal(t, "src/App.jsx", app.Name)
	require.True(t, strings.HasPrefix(app.Content, "import './App.css';\n"))
	require.Contains(t, app.Content, "onSubmit={(e) => e.preventDefault()}")
	require.NotContains(t, app.Content, "styles")

	require.Contains(t, files[0].Content, `<script type="module" src="/src/main.jsx"></script>`)
	require.Contains(t, files[4].Content, "plugins: [react()],")
}
