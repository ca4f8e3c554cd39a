package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComponentType identifies the kind of a placed component.
type ComponentType string

const (
	TypeButton    ComponentType = "button"
	TypeNavbar    ComponentType = "navbar"
	TypeAside     ComponentType = "aside"
	TypeHero      ComponentType = "hero"
	TypeFooter    ComponentType = "footer"
	TypeCard      ComponentType = "card"
	TypeInput     ComponentType = "input"
	TypeText      ComponentType = "text"
	TypeForm      ComponentType = "form"
	TypeTable     ComponentType = "table"
	TypeGrid      ComponentType = "grid"
	TypeBadge     ComponentType = "badge"
	TypeAlert     ComponentType = "alert"
	TypeProgress  ComponentType = "progress"
	TypeTabs      ComponentType = "tabs"
	TypeAccordion ComponentType = "accordion"
	TypeImage     ComponentType = "image"
	TypeDivider   ComponentType = "divider"
	TypeAvatar    ComponentType = "avatar"
)

// KnownTypes lists every component type with a dedicated rendering rule, in
// palette order.
var KnownTypes = []ComponentType{
	TypeButton, TypeNavbar, TypeAside, TypeHero, TypeFooter, TypeCard,
	TypeInput, TypeText, TypeForm, TypeTable, TypeGrid, TypeBadge,
	TypeAlert, TypeProgress, TypeTabs, TypeAccordion, TypeImage,
	TypeDivider, TypeAvatar,
}

// Known reports whether t has a dedicated rendering rule.
func (t ComponentType) Known() bool {
	for _, known := range KnownTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Position is the absolute placement of a component on the canvas, in pixels.
type Position struct {
	X      float64 `json:"x" yaml:"x" toml:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width" validate:"gte=0"`
	Height float64 `json:"height" yaml:"height" toml:"height" validate:"gte=0"`
}

// Bottom returns the y coordinate of the lower edge.
func (p Position) Bottom() float64 { return p.Y + p.Height }

// Right returns the x coordinate of the right edge.
func (p Position) Right() float64 { return p.X + p.Width }

// Animation describes one entry of a component's animation list.
type Animation struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Duration  string `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Timing    string `json:"timing,omitempty" yaml:"timing,omitempty" toml:"timing,omitempty"`
	Delay     string `json:"delay,omitempty" yaml:"delay,omitempty" toml:"delay,omitempty"`
	Iteration string `json:"iteration,omitempty" yaml:"iteration,omitempty" toml:"iteration,omitempty"`
}

// WithDefaults fills absent fields and normalises the iteration count.
func (a Animation) WithDefaults() Animation {
	a.Name = strings.TrimSpace(a.Name)
	if strings.TrimSpace(a.Duration) == "" {
		a.Duration = "1s"
	}
	if strings.TrimSpace(a.Timing) == "" {
		a.Timing = "ease"
	}
	if strings.TrimSpace(a.Delay) == "" {
		a.Delay = "0s"
	}
	if !validIteration(a.Iteration) {
		a.Iteration = "1"
	}
	return a
}

func validIteration(v string) bool {
	v = strings.TrimSpace(v)
	if v == "infinite" {
		return true
	}
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.TrimLeft(v, "0") != ""
}

// Component is one placed element on the canvas.
type Component struct {
	ID         string
	Type       ComponentType
	Name       string
	Props      Props
	Style      StyleMap
	Position   Position
	Animations []Animation
}

// RawComponent is the wire form of a component as produced by the builder UI:
// props and style are open maps.
type RawComponent struct {
	ID         string         `json:"id" yaml:"id" toml:"id" validate:"required"`
	Type       string         `json:"type" yaml:"type" toml:"type" validate:"required"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Props      map[string]any `json:"props,omitempty" yaml:"props,omitempty" toml:"props,omitempty"`
	Style      map[string]any `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Position   Position       `json:"position" yaml:"position" toml:"position"`
	Animations []Animation    `json:"animations,omitempty" yaml:"animations,omitempty" toml:"animations,omitempty"`
}

// Component converts the wire form into a typed component.
func (r RawComponent) Component() Component {
	t := ComponentType(strings.TrimSpace(r.Type))
	name := r.Name
	if strings.TrimSpace(name) == "" {
		name = string(t)
	}
	return Component{
		ID:         r.ID,
		Type:       t,
		Name:       name,
		Props:      DecodeProps(t, r.Props),
		Style:      DecodeStyle(r.Style),
		Position:   r.Position,
		Animations: append([]Animation(nil), r.Animations...),
	}
}

// encodedComponent mirrors RawComponent but carries typed props for output.
type encodedComponent struct {
	ID         string      `json:"id" yaml:"id"`
	Type       string      `json:"type" yaml:"type"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Props      any         `json:"props,omitempty" yaml:"props,omitempty"`
	Style      StyleMap    `json:"style,omitempty" yaml:"style,omitempty"`
	Position   Position    `json:"position" yaml:"position"`
	Animations []Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

func (c Component) encoded() encodedComponent {
	props := c.Props
	if _, unknown := props.(UnknownProps); unknown {
		props = nil
	}
	return encodedComponent{
		ID:         c.ID,
		Type:       string(c.Type),
		Name:       c.Name,
		Props:      props,
		Style:      c.Style,
		Position:   c.Position,
		Animations: c.Animations,
	}
}

// UnmarshalJSON decodes the builder's wire form.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw RawComponent
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode component: %w", err)
	}
	*c = raw.Component()
	return nil
}

// MarshalJSON encodes the component with typed props.
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.encoded())
}

// UnmarshalYAML decodes the wire form from a YAML document.
func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	var raw RawComponent
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = raw.Component()
	return nil
}

// MarshalYAML encodes the component with typed props. Props pass through
// their JSON form so an explicit empty list is written as [] while an unset
// one is left out.
func (c Component) MarshalYAML() (any, error) {
	enc := c.encoded()
	if enc.Props == nil {
		return enc, nil
	}
	data, err := json.Marshal(enc.Props)
	if err != nil {
		return nil, fmt.Errorf("encode props: %w", err)
	}
	var props map[string]any
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("encode props: %w", err)
	}
	enc.Props = props
	return enc, nil
}

// Bounds returns the smallest width and height containing every component.
func Bounds(components []Component) (width, height float64) {
	for _, c := range components {
		if r := c.Position.Right(); r > width {
			width = r
		}
		if b := c.Position.Bottom(); b > height {
			height = b
		}
	}
	return width, height
}
