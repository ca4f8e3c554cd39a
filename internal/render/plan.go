// Package render resolves a component and a theme into a framework-agnostic
// render plan. Emitters print plans; they never look at props directly.
package render

import "github.com/alexisbeaulieu97/forgeui/internal/model"

// Plan is the resolved visual intent of one component.
type Plan struct {
	// Root is the absolutely positioned wrapper around the component body.
	Root *Node
	// State lists the interactive state variables the plan reads or writes.
	State []StateVar
	// Animations lists the animation presets referenced, in first-use order.
	Animations []string
}

// StateVar is one integer state variable owned by a component.
type StateVar struct {
	Name    string
	Initial int
}

// ClassIntent names a component part for CSS-framework class lookup.
type ClassIntent struct {
	Component string
	Variant   string
}

// Attr is a static attribute. Flag attributes are printed without a value.
type Attr struct {
	Name  string
	Value string
	Flag  bool
}

// ActionKind enumerates event actions.
type ActionKind int

const (
	// ActionSet assigns Value to Var.
	ActionSet ActionKind = iota
	// ActionToggle flips Var between 0 and 1.
	ActionToggle
	// ActionPrevent cancels the browser default.
	ActionPrevent
)

// Action is what an event does.
type Action struct {
	Kind  ActionKind
	Var   string
	Value int
}

// Event binds an action to a DOM event name (click or submit).
type Event struct {
	Name   string
	Action Action
}

// Cond renders a node only while Var equals Value.
type Cond struct {
	Var   string
	Value int
}

// Node is one element of a plan.
type Node struct {
	Tag      string
	Class    *ClassIntent
	Attrs    []Attr
	Style    model.StyleMap
	Text     string
	Children []*Node
	Events   []Event
	If       *Cond
	Void     bool
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth first, in document order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Find returns every node of the subtree with the given tag.
func (n *Node) Find(tag string) []*Node {
	var out []*Node
	n.Walk(func(node *Node) {
		if node.Tag == tag {
			out = append(out, node)
		}
	})
	return out
}

func el(tag string, style model.StyleMap, children ...*Node) *Node {
	return &Node{Tag: tag, Style: style, Children: children}
}

func textEl(tag, text string, style model.StyleMap) *Node {
	return &Node{Tag: tag, Style: style, Text: text}
}

func void(tag string, style model.StyleMap, attrs ...Attr) *Node {
	return &Node{Tag: tag, Style: style, Attrs: attrs, Void: true}
}

func (n *Node) withClass(component, variant string) *Node {
	n.Class = &ClassIntent{Component: component, Variant: variant}
	return n
}

func (n *Node) withAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) withFlag(name string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Flag: true})
	return n
}

func (n *Node) on(name string, action Action) *Node {
	n.Events = append(n.Events, Event{Name: name, Action: action})
	return n
}

func (n *Node) when(variable string, value int) *Node {
	n.If = &Cond{Var: variable, Value: value}
	return n
}
