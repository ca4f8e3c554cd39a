package emitter

import (
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/render"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Dialect holds the syntax hooks a framework needs to print a render plan.
// Hooks left nil are skipped.
type Dialect struct {
	// Syntax selects how node styles are translated.
	Syntax style.Syntax
	// AttrNames renames plan attributes, e.g. class to className.
	AttrNames map[string]string
	// SelfClose prints void elements as <tag />.
	SelfClose bool
	// Text escapes text content.
	Text func(string) string
	// Value escapes a double-quoted attribute value.
	Value func(string) string
	// Style returns the complete style attribute, or "" to omit it.
	Style func(style.Translated) string
	// Event returns the complete event binding attribute.
	Event func(render.Event) string
	// Cond returns attributes to add to a conditional node and the lines to
	// print before and after it. initial is the starting value of the
	// variable.
	Cond func(c render.Cond, initial int) (attrs []string, open, close string)
	// Class resolves a class intent to a class string.
	Class func(render.ClassIntent) string
}

// Print renders the subtree at n starting at the given indentation depth.
// state supplies the initial values of the variables conditions read.
func (d Dialect) Print(n *render.Node, theme model.Theme, state []render.StateVar, depth int) string {
	p := &printer{dialect: d, theme: theme, initial: make(map[string]int, len(state))}
	for _, v := range state {
		p.initial[v.Name] = v.Initial
	}
	p.node(n, depth)
	return strings.TrimSuffix(p.b.String(), "\n")
}

type printer struct {
	dialect Dialect
	theme   model.Theme
	initial map[string]int
	b       strings.Builder
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func (p *printer) line(depth int, s string) {
	p.b.WriteString(indent(depth))
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *printer) node(n *render.Node, depth int) {
	if n == nil {
		return
	}
	var condAttrs []string
	var open, close string
	if n.If != nil && p.dialect.Cond != nil {
		condAttrs, open, close = p.dialect.Cond(*n.If, p.initial[n.If.Var])
	}
	if open != "" {
		p.line(depth, open)
		depth++
	}

	tag := "<" + n.Tag + p.attributes(n, condAttrs)
	switch {
	case n.Void && p.dialect.SelfClose:
		p.line(depth, tag+" />")
	case n.Void:
		p.line(depth, tag+">")
	case len(n.Children) == 0:
		p.line(depth, tag+">"+p.text(n.Text)+"</"+n.Tag+">")
	default:
		p.line(depth, tag+">")
		if n.Text != "" {
			p.line(depth+1, p.text(n.Text))
		}
		for _, child := range n.Children {
			p.node(child, depth+1)
		}
		p.line(depth, "</"+n.Tag+">")
	}

	if close != "" {
		p.line(depth-1, close)
	}
}

func (p *printer) text(s string) string {
	if p.dialect.Text == nil {
		return s
	}
	return p.dialect.Text(s)
}

func (p *printer) value(s string) string {
	if p.dialect.Value == nil {
		return s
	}
	return p.dialect.Value(s)
}

func (p *printer) name(attr string) string {
	if renamed, ok := p.dialect.AttrNames[attr]; ok {
		return renamed
	}
	return attr
}

// attributes returns the attribute list with a leading space, in order:
// class, plan attributes, style, events, condition attributes.
func (p *printer) attributes(n *render.Node, condAttrs []string) string {
	var parts []string

	classes := p.classes(n)
	if classes != "" {
		parts = append(parts, p.name("class")+`="`+p.value(classes)+`"`)
	}
	for _, a := range n.Attrs {
		if a.Name == "class" {
			continue
		}
		if a.Flag {
			parts = append(parts, p.name(a.Name))
			continue
		}
		parts = append(parts, p.name(a.Name)+`="`+p.value(a.Value)+`"`)
	}
	if p.dialect.Style != nil && len(n.Style) > 0 {
		if attr := p.dialect.Style(style.Resolve(n.Style, p.theme, p.dialect.Syntax)); attr != "" {
			parts = append(parts, attr)
		}
	}
	if p.dialect.Event != nil {
		for _, ev := range n.Events {
			if attr := p.dialect.Event(ev); attr != "" {
				parts = append(parts, attr)
			}
		}
	}
	parts = append(parts, condAttrs...)

	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (p *printer) classes(n *render.Node) string {
	var classes []string
	if static, ok := n.Attr("class"); ok && static != "" {
		classes = append(classes, static)
	}
	if n.Class != nil && p.dialect.Class != nil {
		if resolved := strings.TrimSpace(p.dialect.Class(*n.Class)); resolved != "" {
			classes = append(classes, resolved)
		}
	}
	return strings.Join(classes, " ")
}

// Setter returns the React-style setter name of a state variable:
// "c0Tab" becomes "setC0Tab".
func Setter(name string) string {
	if name == "" {
		return "set"
	}
	return "set" + strings.ToUpper(name[:1]) + name[1:]
}

// Toggle returns the expression that flips a 0/1 variable.
func Toggle(name string) string {
	return name + " = " + name + " === 1 ? 0 : 1"
}
