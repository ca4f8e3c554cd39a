// Package react emits React function components written in JSX.
package react

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Emitter generates React.
type Emitter struct {
	assets emitter.Assets
}

// New returns a React emitter.
func New(assets emitter.Assets) *Emitter {
	return &Emitter{assets: assets}
}

// Info describes the emitter.
func (e *Emitter) Info() emitter.Info {
	return emitter.Info{
		Name:       string(model.FrameworkReact),
		Title:      "React",
		Version:    "1.0.0",
		APIVersion: "1.x",
		Extension:  ".jsx",
		Language:   "react",
		Dependencies: map[string]string{
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@vitejs/plugin-react": "^4.2.0",
			"vite":                 "^5.0.0",
		},
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
	}
}

var dialect = emitter.Dialect{
	Syntax: style.SyntaxObject,
	AttrNames: map[string]string{
		"class":    "className",
		"for":      "htmlFor",
		"tabindex": "tabIndex",
		"readonly": "readOnly",
	},
	SelfClose: true,
	Text:      emitter.EscapeJSX,
	Value:     emitter.EscapeHTML,
	Style: func(t style.Translated) string {
		if len(t.Properties) == 0 {
			return ""
		}
		return "style={" + t.Object() + "}"
	},
	Event: func(ev render.Event) string {
		switch ev.Action.Kind {
		case render.ActionSet:
			return fmt.Sprintf("onClick={() => %s(%d)}", emitter.Setter(ev.Action.Var), ev.Action.Value)
		case render.ActionToggle:
			return fmt.Sprintf("onClick={() => %s((v) => (v === 1 ? 0 : 1))}", emitter.Setter(ev.Action.Var))
		case render.ActionPrevent:
			return "onSubmit={(e) => e.preventDefault()}"
		default:
			return ""
		}
	},
	Cond: func(c render.Cond, _ int) ([]string, string, string) {
		return nil, fmt.Sprintf("{%s === %d && (", c.Var, c.Value), ")}"
	},
}

// Render returns the JSX of one component.
func (e *Emitter) Render(c model.Component, theme model.Theme, _ model.CSSFramework) string {
	return emitter.RenderComponent(dialect, c, theme)
}

// Program returns App.jsx with the stylesheet inlined in a style element.
func (e *Emitter) Program(in emitter.Input) string {
	doc := emitter.Compose(in.Components, in.Theme)

	var b strings.Builder
	writeImports(&b, doc, "")
	b.WriteString("const styles = `\n")
	b.WriteString(emitter.TemplateLiteral(emitter.Stylesheet(doc, in.Theme, e.assets)))
	b.WriteString("`;\n\n")
	writeComponent(&b, doc, in.Theme, true)
	return b.String()
}

// Files returns a Vite project layout.
func (e *Emitter) Files(in emitter.Input) []model.File {
	doc := emitter.Compose(in.Components, in.Theme)

	var app strings.Builder
	writeImports(&app, doc, "import './App.css';\n")
	writeComponent(&app, doc, in.Theme, false)

	return []model.File{
		{Name: "index.html", Content: emitter.ViteIndex(in.PageTitle(), "root", "/src/main.jsx")},
		{Name: "src/main.jsx", Content: mainJSX},
		{Name: "src/App.jsx", Content: app.String()},
		{Name: "src/App.css", Content: emitter.Stylesheet(doc, in.Theme, e.assets)},
		{Name: "vite.config.js", Content: emitter.ViteConfig("import react from '@vitejs/plugin-react';", "react()")},
	}
}

const mainJSX = `import React from 'react';
import ReactDOM from 'react-dom/client';
import App from './App.jsx';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
);
`

func writeImports(b *strings.Builder, doc emitter.Document, extra string) {
	if len(doc.State) > 0 {
		b.WriteString("import { useState } from 'react';\n")
	}
	b.WriteString(extra)
	if len(doc.State) > 0 || extra != "" {
		b.WriteString("\n")
	}
}

func writeComponent(b *strings.Builder, doc emitter.Document, theme model.Theme, inlineStyles bool) {
	b.WriteString("export default function App() {\n")
	for _, v := range doc.State {
		fmt.Fprintf(b, "  const [%s, %s] = useState(%d);\n", v.Name, emitter.Setter(v.Name), v.Initial)
	}
	if len(doc.State) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("  return (\n")
	if inlineStyles {
		b.WriteString("    <>\n")
		b.WriteString("      <style>{styles}</style>\n")
		b.WriteString(doc.Markup(dialect, theme, 3) + "\n")
		b.WriteString("    </>\n")
	} else {
		b.WriteString(doc.Markup(dialect, theme, 2) + "\n")
	}
	b.WriteString("  );\n")
	b.WriteString("}\n")
}
