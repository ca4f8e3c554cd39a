package emitter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Document is the resolved plan of a whole component collection.
type Document struct {
	// Canvas is the container holding every component wrapper in
	// collection order.
	Canvas *render.Node
	// State lists every state variable in declaration order.
	State []render.StateVar
	// Animations lists every animation preset used, sorted.
	Animations []string
	Width      float64
	Height     float64
}

// Compose resolves every component. Component i is scoped "c<i>".
func Compose(components []model.Component, theme model.Theme) Document {
	canvas := &render.Node{Tag: "div", Attrs: []render.Attr{{Name: "class", Value: "canvas"}}}
	var state []render.StateVar
	seen := map[string]struct{}{}
	var animations []string

	for i, c := range components {
		plan := render.Resolve(c, theme, fmt.Sprintf("c%d", i))
		canvas.Children = append(canvas.Children, plan.Root)
		state = append(state, plan.State...)
		for _, name := range plan.Animations {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			animations = append(animations, name)
		}
	}
	sort.Strings(animations)

	width, height := model.Bounds(components)
	return Document{
		Canvas:     canvas,
		State:      state,
		Animations: animations,
		Width:      width,
		Height:     height,
	}
}

// Markup prints the canvas with d.
func (doc Document) Markup(d Dialect, theme model.Theme, depth int) string {
	return d.Print(doc.Canvas, theme, doc.State, depth)
}

// RenderComponent prints a single component with d. The scope is derived
// from the component id.
func RenderComponent(d Dialect, c model.Component, theme model.Theme) string {
	plan := render.Resolve(c, theme, render.Scope(c.ID))
	return d.Print(plan.Root, theme, plan.State, 0)
}

// Stylesheet returns the shared stylesheet of doc: page defaults from the
// theme, the canvas sized to the component bounds and one keyframes rule per
// animation preset the catalog knows.
func Stylesheet(doc Document, theme model.Theme, assets Assets) string {
	var b strings.Builder

	b.WriteString("* {\n  box-sizing: border-box;\n}\n\n")

	body := style.Resolve(model.StyleMap{
		"margin":          "0",
		"minHeight":       "100vh",
		"backgroundColor": "$background",
		"color":           "$text",
		"fontFamily":      "$fontFamily",
	}, theme, style.SyntaxCSS)
	writeRule(&b, "body", body)

	headings := style.Resolve(model.StyleMap{"fontFamily": "$headingFont"}, theme, style.SyntaxCSS)
	writeRule(&b, "h1, h2, h3, h4, h5, h6", headings)

	canvas := style.Resolve(model.StyleMap{
		"position": "relative",
		"margin":   "0 auto",
		"width":    dimension(doc.Width, "100%"),
		"height":   dimension(doc.Height, "100vh"),
	}, theme, style.SyntaxCSS)
	writeRule(&b, ".canvas", canvas)

	b.WriteString("[hidden] {\n  display: none !important;\n}\n")

	for _, name := range doc.Animations {
		if assets == nil {
			break
		}
		frames, ok := assets.Keyframes(name)
		if !ok {
			continue
		}
		b.WriteString("\n@keyframes " + name + " {\n  " + strings.TrimSpace(frames) + "\n}\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, t style.Translated) {
	b.WriteString(selector + " {\n")
	for _, p := range t.Properties {
		b.WriteString("  " + p.Name + ": " + p.Value + ";\n")
	}
	b.WriteString("}\n\n")
}

func dimension(v float64, fallback string) string {
	if v <= 0 {
		return fallback
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Indent prefixes every non-empty line of s with depth levels of indentation.
func Indent(s string, depth int) string {
	prefix := indent(depth)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
