package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/style"
)

// Resolve builds the render plan of c under theme. scope prefixes the names of
// the component's state variables so several components can share one
// program. Resolve never fails: unknown types yield a placeholder.
func Resolve(c model.Component, theme model.Theme, scope string) Plan {
	if scope == "" {
		scope = Scope(c.ID)
	}
	r := &resolver{theme: theme, scope: scope}

	props := c.Props
	if props == nil {
		props = model.DecodeProps(c.Type, nil)
	}

	body, effects := r.body(c.Type, props)
	body.Style = style.Merge(
		fill,
		body.Style,
		effects,
		c.Style,
		animationLayer(c.Animations),
	)

	root := el("div", positionStyle(c.Position), body)
	root.withAttr("data-component-id", c.ID)
	root.withAttr("data-component-type", string(c.Type))

	return Plan{
		Root:       root,
		State:      r.state,
		Animations: style.AnimationNames(c.Animations),
	}
}

// Scope derives a state prefix from a component id: "hero-1" becomes
// "cHero1". Ids without letters or digits yield "c".
func Scope(id string) string {
	var b strings.Builder
	b.WriteByte('c')
	upper := true
	for _, r := range id {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

var fill = model.StyleMap{
	"width":     "100%",
	"height":    "100%",
	"boxSizing": "border-box",
}

type resolver struct {
	theme model.Theme
	scope string
	state []StateVar
}

func (r *resolver) stateVar(suffix string, initial int) string {
	name := r.scope + suffix
	r.state = append(r.state, StateVar{Name: name, Initial: initial})
	return name
}

// body dispatches on the props record and returns the body node together with
// the theme effect layer for it.
func (r *resolver) body(t model.ComponentType, props model.Props) (*Node, model.StyleMap) {
	switch p := props.(type) {
	case model.ButtonProps:
		return r.button(p.WithDefaults()), r.effects(glowEffect, neonEffect)
	case model.NavbarProps:
		return r.navbar(p.WithDefaults()), r.effects(glassEffect)
	case model.AsideProps:
		return r.aside(p.WithDefaults()), r.effects(glassEffect)
	case model.HeroProps:
		return r.hero(p.WithDefaults()), r.effects(glowEffect)
	case model.FooterProps:
		return r.footer(p.WithDefaults()), nil
	case model.CardProps:
		return r.card(p.WithDefaults()), r.effects(glowEffect, glassEffect)
	case model.InputProps:
		return r.input(p.WithDefaults()), nil
	case model.TextProps:
		return r.text(p.WithDefaults()), nil
	case model.FormProps:
		return r.form(p.WithDefaults()), nil
	case model.TableProps:
		return r.table(p.WithDefaults()), nil
	case model.GridProps:
		return r.grid(p.WithDefaults()), nil
	case model.BadgeProps:
		return r.badge(p.WithDefaults()), nil
	case model.AlertProps:
		return r.alert(p.WithDefaults()), nil
	case model.ProgressProps:
		return r.progress(p), nil
	case model.TabsProps:
		return r.tabs(p.WithDefaults()), nil
	case model.AccordionProps:
		return r.accordion(p.WithDefaults()), nil
	case model.ImageProps:
		return r.image(p.WithDefaults()), nil
	case model.DividerProps:
		return r.divider(p.WithDefaults()), nil
	case model.AvatarProps:
		return r.avatar(p.WithDefaults()), nil
	default:
		return placeholder(t), nil
	}
}

type effect int

const (
	glowEffect effect = iota
	glassEffect
	neonEffect
)

func (r *resolver) effects(wanted ...effect) model.StyleMap {
	out := model.StyleMap{}
	for _, e := range wanted {
		switch {
		case e == glowEffect && r.theme.Effects.Glow:
			out["boxShadow"] = "0 0 20px $primary"
		case e == glassEffect && r.theme.Effects.Glassmorphism:
			out["backgroundColor"] = "rgba(255, 255, 255, 0.1)"
			out["backdropFilter"] = "blur(10px)"
			out["border"] = "1px solid rgba(255, 255, 255, 0.2)"
		case e == neonEffect && r.theme.Effects.Neon:
			out["textShadow"] = neonShadow
		}
	}
	return out
}

const neonShadow = "0 0 10px $accent"

// heading returns the base style of a heading, carrying the neon glow when the
// theme enables it.
func (r *resolver) heading(size string) model.StyleMap {
	s := model.StyleMap{
		"fontFamily": "$headingFont",
		"fontSize":   size,
		"margin":     "0",
	}
	if r.theme.Effects.Neon {
		s["textShadow"] = neonShadow
	}
	return s
}

func positionStyle(p model.Position) model.StyleMap {
	return model.StyleMap{
		"position": "absolute",
		"left":     px(p.X),
		"top":      px(p.Y),
		"width":    px(p.Width),
		"height":   px(p.Height),
	}
}

func animationLayer(animations []model.Animation) model.StyleMap {
	value := style.AnimationValue(animations)
	if value == "" {
		return nil
	}
	return model.StyleMap{"animation": value}
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
