// Package vue emits Vue 3 single-file components using <script setup>.
package vue

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Emitter generates Vue.
type Emitter struct {
	assets emitter.Assets
}

// New returns a Vue emitter.
func New(assets emitter.Assets) *Emitter {
	return &Emitter{assets: assets}
}

// Info describes the emitter.
func (e *Emitter) Info() emitter.Info {
	return emitter.Info{
		Name:         string(model.FrameworkVue),
		Title:        "Vue",
		Version:      "1.0.0",
		APIVersion:   "1.x",
		Extension:    ".vue",
		Language:     "vue",
		Dependencies: map[string]string{"vue": "^3.4.0"},
		DevDependencies: map[string]string{
			"@vitejs/plugin-vue": "^5.0.0",
			"vite":               "^5.0.0",
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
	Value:     emitter.EscapeHTML,
	Style: func(t style.Translated) string {
		declarations := t.CSS()
		if declarations == "" {
			return ""
		}
		return `style="` + emitter.EscapeHTML(declarations) + `"`
	},
	Event: func(ev render.Event) string {
		switch ev.Action.Kind {
		case render.ActionSet:
			return fmt.Sprintf(`@click="%s = %d"`, ev.Action.Var, ev.Action.Value)
		case render.ActionToggle:
			return `@click="` + emitter.Toggle(ev.Action.Var) + `"`
		case render.ActionPrevent:
			return "@submit.prevent"
		default:
			return ""
		}
	},
	Cond: func(c render.Cond, _ int) ([]string, string, string) {
		return []string{fmt.Sprintf(`v-if="%s === %d"`, c.Var, c.Value)}, "", ""
	},
}

// Render returns the template markup of one component.
func (e *Emitter) Render(c model.Component, theme model.Theme, _ model.CSSFramework) string {
	return emitter.RenderComponent(dialect, c, theme)
}

// Program returns App.vue with a global style block.
func (e *Emitter) Program(in emitter.Input) string {
	doc := emitter.Compose(in.Components, in.Theme)
	return sfc(doc, in.Theme, emitter.Stylesheet(doc, in.Theme, e.assets))
}

// Files returns a Vite project layout.
func (e *Emitter) Files(in emitter.Input) []model.File {
	doc := emitter.Compose(in.Components, in.Theme)
	return []model.File{
		{Name: "index.html", Content: emitter.ViteIndex(in.PageTitle(), "app", "/src/main.js")},
		{Name: "src/main.js", Content: mainJS},
		{Name: "src/App.vue", Content: sfc(doc, in.Theme, "")},
		{Name: "src/style.css", Content: emitter.Stylesheet(doc, in.Theme, e.assets)},
		{Name: "vite.config.js", Content: emitter.ViteConfig("import vue from '@vitejs/plugin-vue';", "vue()")},
	}
}

const mainJS = `import { createApp } from 'vue';
import App from './App.vue';
import './style.css';

createApp(App).mount('#app');
`

// sfc assembles a single-file component; an empty stylesheet omits the style
// block.
func sfc(doc emitter.Document, theme model.Theme, stylesheet string) string {
	var b strings.Builder
	if len(doc.State) > 0 {
		b.WriteString("<script setup>\n")
		b.WriteString("import { ref } from 'vue';\n\n")
		for _, v := range doc.State {
			fmt.Fprintf(&b, "const %s = ref(%d);\n", v.Name, v.Initial)
		}
		b.WriteString("</script>\n\n")
	}
	b.WriteString("<template>\n")
	b.WriteString(doc.Markup(dialect, theme, 1) + "\n")
	b.WriteString("</template>\n")
	if stylesheet != "" {
		b.WriteString("\n<style>\n")
		b.WriteString(stylesheet)
		b.WriteString("</style>\n")
	}
	return b.String()
}
