// Package html emits plain HTML documents with a small runtime script for
// interactive components. It is the only emitter that decorates markup with
// CSS-framework classes.
package html

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/cssbridge"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Assets is the reference data the HTML emitter reads.
type Assets interface {
	emitter.Assets
	CSSFramework(id model.CSSFramework) (catalog.CSSFramework, bool)
	Bridge() *cssbridge.Bridge
}

// Emitter generates HTML.
type Emitter struct {
	assets Assets
}

// New returns an HTML emitter. assets may be nil, in which case no keyframes
// or CSS-framework classes are emitted.
func New(assets Assets) *Emitter {
	return &Emitter{assets: assets}
}

// Info describes the emitter.
func (e *Emitter) Info() emitter.Info {
	return emitter.Info{
		Name:            string(model.FrameworkHTML),
		Title:           "HTML",
		Version:         "1.0.0",
		APIVersion:      "1.x",
		Extension:       ".html",
		Language:        "html",
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{"vite": "^5.0.0"},
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
	}
}

// Render returns the markup of one component.
func (e *Emitter) Render(c model.Component, theme model.Theme, css model.CSSFramework) string {
	return emitter.RenderComponent(e.dialect(css), c, theme)
}

// Program returns a standalone HTML document with inline styles and script.
func (e *Emitter) Program(in emitter.Input) string {
	doc := emitter.Compose(in.Components, in.Theme)

	head := e.frameworkTags(in.CSSFramework)
	head = append(head,
		"<style>",
		emitter.Indent(e.stylesheet(doc, in.Theme), 1),
		"</style>",
	)

	var tail []string
	if needsRuntime(doc) {
		tail = append(tail, "<script>", emitter.Indent(runtime(doc.State), 1), "</script>")
	}
	return e.page(in, doc, head, tail)
}

// needsRuntime reports whether the page holds state or any event binding,
// such as a form whose submission must be prevented.
func needsRuntime(doc emitter.Document) bool {
	if len(doc.State) > 0 {
		return true
	}
	found := false
	if doc.Canvas != nil {
		doc.Canvas.Walk(func(n *render.Node) {
			if len(n.Events) > 0 {
				found = true
			}
		})
	}
	return found
}

// Files returns index.html, styles.css and script.js.
func (e *Emitter) Files(in emitter.Input) []model.File {
	doc := emitter.Compose(in.Components, in.Theme)

	head := e.frameworkTags(in.CSSFramework)
	head = append(head, `<link rel="stylesheet" href="styles.css">`)
	tail := []string{`<script src="script.js"></script>`}

	return []model.File{
		{Name: "index.html", Content: e.page(in, doc, head, tail)},
		{Name: "styles.css", Content: e.stylesheet(doc, in.Theme)},
		{Name: "script.js", Content: runtime(doc.State)},
	}
}

func (e *Emitter) page(in emitter.Input, doc emitter.Document, head, tail []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="UTF-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString("  <title>" + emitter.EscapeHTML(in.PageTitle()) + "</title>\n")
	for _, line := range head {
		b.WriteString(emitter.Indent(strings.TrimRight(line, "\n"), 1) + "\n")
	}
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(doc.Markup(e.dialect(in.CSSFramework), in.Theme, 1) + "\n")
	for _, line := range tail {
		b.WriteString(emitter.Indent(strings.TrimRight(line, "\n"), 1) + "\n")
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

func (e *Emitter) stylesheet(doc emitter.Document, theme model.Theme) string {
	var assets emitter.Assets
	if e.assets != nil {
		assets = e.assets
	}
	return emitter.Stylesheet(doc, theme, assets)
}

// frameworkTags returns the CDN tags of a non-vanilla CSS framework.
func (e *Emitter) frameworkTags(css model.CSSFramework) []string {
	if css.IsVanilla() || e.assets == nil {
		return nil
	}
	fw, ok := e.assets.CSSFramework(css)
	if !ok {
		return nil
	}
	var tags []string
	if fw.CDN.Stylesheet != "" {
		tags = append(tags, `<link rel="stylesheet" href="`+emitter.EscapeHTML(fw.CDN.Stylesheet)+`">`)
	}
	if fw.CDN.Script != "" {
		tags = append(tags, `<script src="`+emitter.EscapeHTML(fw.CDN.Script)+`"></script>`)
	}
	return tags
}

func (e *Emitter) dialect(css model.CSSFramework) emitter.Dialect {
	d := emitter.Dialect{
		Syntax: style.SyntaxCSS,
		Text:   emitter.EscapeHTML,
		Value:  emitter.EscapeHTML,
		Style: func(t style.Translated) string {
			declarations := t.CSS()
			if declarations == "" {
				return ""
			}
			return `style="` + emitter.EscapeHTML(declarations) + `"`
		},
		Event: event,
		Cond:  cond,
	}
	if !css.IsVanilla() && e.assets != nil {
		bridge := e.assets.Bridge()
		d.Class = func(intent render.ClassIntent) string {
			return bridge.ClassFor(css, intent.Component, intent.Variant)
		}
	}
	return d
}

func event(ev render.Event) string {
	switch ev.Action.Kind {
	case render.ActionSet:
		return fmt.Sprintf(`data-set="%s:%d"`, ev.Action.Var, ev.Action.Value)
	case render.ActionToggle:
		return fmt.Sprintf(`data-toggle="%s"`, ev.Action.Var)
	case render.ActionPrevent:
		return "data-prevent"
	default:
		return ""
	}
}

func cond(c render.Cond, initial int) ([]string, string, string) {
	attrs := []string{fmt.Sprintf(`data-if="%s:%d"`, c.Var, c.Value)}
	if initial != c.Value {
		attrs = append(attrs, "hidden")
	}
	return attrs, "", ""
}
