// Package svelte emits Svelte components.
package svelte

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Emitter generates Svelte.
type Emitter struct {
	assets emitter.Assets
}

// New returns a Svelte emitter.
func New(assets emitter.Assets) *Emitter {
	return &Emitter{assets: assets}
}

// Info describes the emitter.
func (e *Emitter) Info() emitter.Info {
	return emitter.Info{
		Name:         string(model.FrameworkSvelte),
		Title:        "Svelte",
		Version:      "1.0.0",
		APIVersion:   "1.x",
		Extension:    ".svelte",
		Language:     "svelte",
		Dependencies: map[string]string{},
		DevDependencies: map[string]string{
			"@sveltejs/vite-plugin-svelte": "^3.0.0",
			"svelte":                       "^4.2.0",
			"vite":                         "^5.0.0",
		},
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
	}
}

var dialect = emitter.Dialect{
	Syntax:    style.SyntaxCSS,
	SelfClose: true,
	Text:      emitter.EscapeTemplate,
	Value:     emitter.EscapeTemplate,
	Style: func(t style.Translated) string {
		declarations := t.CSS()
		if declarations == "" {
			return ""
		}
		return `style="` + emitter.EscapeTemplate(declarations) + `"`
	},
	Event: func(ev render.Event) string {
		switch ev.Action.Kind {
		case render.ActionSet:
			return fmt.Sprintf("on:click={() => (%s = %d)}", ev.Action.Var, ev.Action.Value)
		case render.ActionToggle:
			return "on:click={() => (" + emitter.Toggle(ev.Action.Var) + ")}"
		case render.ActionPrevent:
			return "on:submit|preventDefault"
		default:
			return ""
		}
	},
	Cond: func(c render.Cond, _ int) ([]string, string, string) {
		return nil, fmt.Sprintf("{#if %s === %d}", c.Var, c.Value), "{/if}"
	},
}

// Render returns the markup of one component.
func (e *Emitter) Render(c model.Component, theme model.Theme, _ model.CSSFramework) string {
	return emitter.RenderComponent(dialect, c, theme)
}

// Program returns App.svelte. Styles are injected through svelte:head so they
// apply globally instead of being scoped and pruned by the compiler.
func (e *Emitter) Program(in emitter.Input) string {
	doc := emitter.Compose(in.Components, in.Theme)
	return component(doc, in.Theme, emitter.Stylesheet(doc, in.Theme, e.assets))
}

// Files returns a Vite project layout.
func (e *Emitter) Files(in emitter.Input) []model.File {
	doc := emitter.Compose(in.Components, in.Theme)
	return []model.File{
		{Name: "index.html", Content: emitter.ViteIndex(in.PageTitle(), "app", "/src/main.js")},
		{Name: "src/main.js", Content: mainJS},
		{Name: "src/App.svelte", Content: component(doc, in.Theme, "")},
		{Name: "src/app.css", Content: emitter.Stylesheet(doc, in.Theme, e.assets)},
		{Name: "vite.config.js", Content: emitter.ViteConfig("import { svelte } from '@sveltejs/vite-plugin-svelte';", "svelte()")},
	}
}

const mainJS = `import App from './App.svelte';
import './app.css';

const app = new App({
  target: document.getElementById('app'),
});

export default app;
`

func component(doc emitter.Document, theme model.Theme, stylesheet string) string {
	var b strings.Builder
	if len(doc.State) > 0 || stylesheet != "" {
		b.WriteString("<script>\n")
		for _, v := range doc.State {
			fmt.Fprintf(&b, "  let %s = %d;\n", v.Name, v.Initial)
		}
		if stylesheet != "" {
			if len(doc.State) > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  const styles = `\n")
			b.WriteString(emitter.TemplateLiteral(stylesheet))
			b.WriteString("`;\n")
		}
		b.WriteString("</script>\n\n")
	}
	if stylesheet != "" {
		b.WriteString("<svelte:head>\n")
		b.WriteString("  {@html `<style>${styles}</style>`}\n")
		b.WriteString("</svelte:head>\n\n")
	}
	b.WriteString(doc.Markup(dialect, theme, 0) + "\n")
	return b.String()
}
