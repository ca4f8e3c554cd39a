package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// fieldLabel capitalises each word of a field name and keeps inner capitals,
// so "firstName" reads "FirstName". Casers are stateful, hence one per call.
func fieldLabel(field string) string {
	return cases.Title(language.English, cases.NoLower).String(field)
}

var buttonPadding = map[string]string{
	"sm": "6px 12px",
	"md": "10px 20px",
	"lg": "14px 28px",
}

var buttonFontSize = map[string]string{
	"sm": "13px",
	"md": "15px",
	"lg": "17px",
}

func (r *resolver) button(p model.ButtonProps) *Node {
	base := model.StyleMap{
		"display":        "inline-flex",
		"alignItems":     "center",
		"justifyContent": "center",
		"border":         "none",
		"borderRadius":   "8px",
		"cursor":         "pointer",
		"fontFamily":     "$fontFamily",
		"fontSize":       buttonFontSize[p.Size],
		"fontWeight":     "600",
		"padding":        buttonPadding[p.Size],
		"textDecoration": "none",
	}
	for k, v := range variantStyle(p.Variant) {
		base[k] = v
	}
	if p.Disabled {
		base["opacity"] = "0.5"
		base["cursor"] = "not-allowed"
	}

	tag := "button"
	if p.Href != "" {
		tag = "a"
	}
	n := textEl(tag, p.Text, base).withClass("button", p.Variant)
	switch {
	case p.Href != "":
		n.withAttr("href", p.Href)
		if p.Disabled {
			n.withAttr("aria-disabled", "true")
		}
	default:
		n.withAttr("type", "button")
		if p.Disabled {
			n.withFlag("disabled")
		}
	}
	return n
}

func (r *resolver) navbar(p model.NavbarProps) *Node {
	links := el("div", model.StyleMap{"display": "flex", "gap": "24px"})
	for _, item := range p.Items {
		link := textEl("a", item, model.StyleMap{"color": "$text", "textDecoration": "none"}).
			withClass("navbar-item", "").
			withAttr("href", "#"+anchor(item))
		links.Children = append(links.Children, link)
	}
	brand := textEl("div", p.Brand, model.StyleMap{
		"fontFamily": "$headingFont",
		"fontSize":   "20px",
		"fontWeight": "700",
		"color":      "$primary",
	})
	return el("nav", model.StyleMap{
		"display":         "flex",
		"alignItems":      "center",
		"justifyContent":  "space-between",
		"padding":         "0 24px",
		"backgroundColor": "$surface",
		"color":           "$text",
	}, brand, links).withClass("navbar", "")
}

func (r *resolver) aside(p model.AsideProps) *Node {
	n := el("aside", model.StyleMap{
		"display":         "flex",
		"flexDirection":   "column",
		"gap":             "8px",
		"padding":         "16px",
		"backgroundColor": "$surface",
		"color":           "$text",
	}, textEl("h3", p.Title, r.heading("18px"))).withClass("aside", "")
	for _, item := range p.Items {
		link := textEl("a", item, model.StyleMap{
			"color":          "$textSecondary",
			"textDecoration": "none",
			"padding":        "8px 12px",
			"borderRadius":   "6px",
		}).withAttr("href", "#"+anchor(item))
		n.Children = append(n.Children, link)
	}
	return n
}

var flexAlign = map[string]string{
	"left":   "flex-start",
	"center": "center",
	"right":  "flex-end",
}

func (r *resolver) hero(p model.HeroProps) *Node {
	title := textEl("h1", p.Title, r.heading("48px"))
	title.Style["marginBottom"] = "16px"
	subtitle := textEl("p", p.Subtitle, model.StyleMap{
		"fontSize": "20px",
		"opacity":  "0.9",
		"margin":   "0 0 24px",
	})
	actions := el("div", model.StyleMap{"display": "flex", "gap": "12px"},
		textEl("button", p.CTAText, model.StyleMap{
			"backgroundColor": "#ffffff",
			"color":           "$primary",
			"border":          "none",
			"borderRadius":    "8px",
			"padding":         "12px 24px",
			"fontWeight":      "600",
			"cursor":          "pointer",
		}).withClass("button", "primary").withAttr("type", "button"),
	)
	if p.SecondaryCTA != "" {
		actions.Children = append(actions.Children, textEl("button", p.SecondaryCTA, model.StyleMap{
			"backgroundColor": "transparent",
			"color":           "#ffffff",
			"border":          "2px solid #ffffff",
			"borderRadius":    "8px",
			"padding":         "12px 24px",
			"fontWeight":      "600",
			"cursor":          "pointer",
		}).withClass("button", "outline").withAttr("type", "button"))
	}
	return el("section", model.StyleMap{
		"display":        "flex",
		"flexDirection":  "column",
		"alignItems":     flexAlign[p.Align],
		"justifyContent": "center",
		"textAlign":      p.Align,
		"padding":        "48px",
		"background":     "linear-gradient(135deg, $primary, $secondary)",
		"color":          "#ffffff",
	}, title, subtitle, actions).withClass("hero", "")
}

func (r *resolver) footer(p model.FooterProps) *Node {
	links := el("div", model.StyleMap{"display": "flex", "gap": "16px"})
	for _, link := range p.Links {
		links.Children = append(links.Children, textEl("a", link, model.StyleMap{
			"color":          "$textSecondary",
			"textDecoration": "none",
		}).withAttr("href", "#"+anchor(link)))
	}
	return el("footer", model.StyleMap{
		"display":         "flex",
		"alignItems":      "center",
		"justifyContent":  "space-between",
		"padding":         "16px 24px",
		"backgroundColor": "$surface",
		"color":           "$textSecondary",
		"fontSize":        "14px",
	}, textEl("span", p.Text, nil), links).withClass("footer", "")
}

func (r *resolver) card(p model.CardProps) *Node {
	n := el("div", model.StyleMap{
		"backgroundColor": "$surface",
		"borderRadius":    "12px",
		"overflow":        "hidden",
		"color":           "$text",
		"boxShadow":       "0 4px 6px rgba(0, 0, 0, 0.1)",
	}).withClass("card", "")
	if p.Image != "" {
		n.Children = append(n.Children, void("img", model.StyleMap{
			"width":     "100%",
			"height":    "160px",
			"objectFit": "cover",
			"display":   "block",
		}, Attr{Name: "src", Value: p.Image}, Attr{Name: "alt", Value: p.Title}))
	}
	body := el("div", model.StyleMap{"padding": "24px"},
		textEl("h3", p.Title, r.heading("20px")).withClass("card-title", ""),
		textEl("p", p.Content, model.StyleMap{"color": "$textSecondary", "margin": "8px 0 0", "lineHeight": "1.5"}),
	).withClass("card-body", "")
	if p.ButtonText != "" {
		body.Children = append(body.Children, textEl("button", p.ButtonText, model.StyleMap{
			"marginTop":       "16px",
			"backgroundColor": "$primary",
			"color":           "#ffffff",
			"border":          "none",
			"borderRadius":    "6px",
			"padding":         "8px 16px",
			"cursor":          "pointer",
		}).withClass("button", "primary").withAttr("type", "button"))
	}
	n.Children = append(n.Children, body)
	return n
}

func (r *resolver) input(p model.InputProps) *Node {
	id := r.scope + "-input"
	n := el("div", model.StyleMap{"display": "flex", "flexDirection": "column", "gap": "6px"})
	if p.Label != "" {
		n.Children = append(n.Children, label(id, p.Label))
	}
	n.Children = append(n.Children, void("input", fieldStyle(),
		Attr{Name: "id", Value: id},
		Attr{Name: "type", Value: p.InputType},
		Attr{Name: "placeholder", Value: p.Placeholder},
	).withClass("input", ""))
	return n
}

var textSizes = map[string]string{
	"h1": "40px", "h2": "32px", "h3": "26px", "h4": "22px", "h5": "18px", "h6": "16px",
	"p": "16px", "span": "16px",
}

func (r *resolver) text(p model.TextProps) *Node {
	var s model.StyleMap
	if strings.HasPrefix(p.Tag, "h") {
		s = r.heading(textSizes[p.Tag])
	} else {
		s = model.StyleMap{"fontFamily": "$fontFamily", "fontSize": textSizes[p.Tag], "margin": "0", "lineHeight": "1.6"}
	}
	s["color"] = "$text"
	return textEl(p.Tag, p.Content, s).withClass("text", "")
}

// form renders one labelled control per field. "message" is a textarea;
// "email" and "password" pick their input type, other names are plain text.
func (r *resolver) form(p model.FormProps) *Node {
	n := el("form", model.StyleMap{
		"display":         "flex",
		"flexDirection":   "column",
		"gap":             "16px",
		"padding":         "24px",
		"backgroundColor": "$surface",
		"borderRadius":    "12px",
		"color":           "$text",
	}).withClass("form", "").on("submit", Action{Kind: ActionPrevent})
	if p.Title != "" {
		n.Children = append(n.Children, textEl("h3", p.Title, r.heading("22px")))
	}
	for i, field := range p.Fields {
		id := fmt.Sprintf("%s-%s", r.scope, anchor(field))
		if anchor(field) == "" {
			id = fmt.Sprintf("%s-field%d", r.scope, i)
		}
		var control *Node
		if field == "message" {
			control = &Node{Tag: "textarea", Style: fieldStyle()}
			control.withAttr("id", id).withAttr("name", field).withAttr("rows", "4")
			control.Style["resize"] = "vertical"
		} else {
			control = void("input", fieldStyle(),
				Attr{Name: "id", Value: id},
				Attr{Name: "name", Value: field},
				Attr{Name: "type", Value: fieldInputType(field)},
			)
		}
		control.withClass("input", "")
		group := el("div", model.StyleMap{"display": "flex", "flexDirection": "column", "gap": "6px"},
			label(id, fieldLabel(field)),
			control,
		)
		n.Children = append(n.Children, group)
	}
	n.Children = append(n.Children, textEl("button", p.SubmitText, model.StyleMap{
		"backgroundColor": "$primary",
		"color":           "#ffffff",
		"border":          "none",
		"borderRadius":    "8px",
		"padding":         "12px",
		"fontWeight":      "600",
		"cursor":          "pointer",
	}).withClass("button", "primary").withAttr("type", "submit"))
	return n
}

func fieldInputType(field string) string {
	switch field {
	case "email":
		return "email"
	case "password":
		return "password"
	default:
		return "text"
	}
}

func label(forID, text string) *Node {
	return textEl("label", text, model.StyleMap{
		"fontSize":   "14px",
		"fontWeight": "500",
		"color":      "$textSecondary",
	}).withClass("label", "").withAttr("for", forID)
}

func fieldStyle() model.StyleMap {
	return model.StyleMap{
		"padding":         "10px 12px",
		"borderRadius":    "8px",
		"border":          "1px solid $textSecondary",
		"backgroundColor": "$background",
		"color":           "$text",
		"fontFamily":      "$fontFamily",
		"fontSize":        "14px",
	}
}

// table renders exactly the cells each row carries; short and long rows are
// kept as given.
func (r *resolver) table(p model.TableProps) *Node {
	headRow := el("tr", nil)
	for _, header := range p.Headers {
		headRow.Children = append(headRow.Children, textEl("th", header, model.StyleMap{
			"padding":      "12px",
			"textAlign":    "left",
			"borderBottom": "2px solid $primary",
		}))
	}
	body := el("tbody", nil)
	for _, row := range p.Rows {
		tr := el("tr", nil)
		for _, cell := range row {
			tr.Children = append(tr.Children, textEl("td", cell, model.StyleMap{
				"padding":      "12px",
				"borderBottom": "1px solid $surface",
			}))
		}
		body.Children = append(body.Children, tr)
	}
	return el("table", model.StyleMap{
		"borderCollapse": "collapse",
		"color":          "$text",
		"fontFamily":     "$fontFamily",
	}, el("thead", nil, headRow), body).withClass("table", "")
}

func (r *resolver) grid(p model.GridProps) *Node {
	n := el("div", model.StyleMap{
		"display":             "grid",
		"gridTemplateColumns": fmt.Sprintf("repeat(%d, 1fr)", p.Columns),
		"gap":                 p.Gap,
	}).withClass("grid", "")
	for _, item := range p.Items {
		n.Children = append(n.Children, textEl("div", item, model.StyleMap{
			"backgroundColor": "$surface",
			"color":           "$text",
			"padding":         "16px",
			"borderRadius":    "8px",
			"textAlign":       "center",
		}))
	}
	return n
}

func (r *resolver) badge(p model.BadgeProps) *Node {
	s := model.StyleMap{
		"display":      "inline-flex",
		"alignItems":   "center",
		"padding":      "4px 12px",
		"borderRadius": "9999px",
		"fontSize":     "12px",
		"fontWeight":   "600",
	}
	for k, v := range variantStyle(p.Variant) {
		s[k] = v
	}
	return textEl("span", p.Text, s).withClass("badge", p.Variant)
}

func (r *resolver) alert(p model.AlertProps) *Node {
	n := el("div", model.StyleMap{
		"display":         "flex",
		"alignItems":      "flex-start",
		"gap":             "12px",
		"padding":         "16px",
		"borderRadius":    "8px",
		"borderLeft":      "4px solid " + variantColor(p.Variant),
		"backgroundColor": "$surface",
		"color":           "$text",
	}).withClass("alert", p.Variant).withAttr("role", "alert")

	content := el("div", model.StyleMap{"flex": "1"})
	if p.Title != "" {
		content.Children = append(content.Children, textEl("strong", p.Title, model.StyleMap{"display": "block", "marginBottom": "4px"}))
	}
	content.Children = append(content.Children, textEl("span", p.Message, nil))
	n.Children = append(n.Children, content)

	if p.Dismissible {
		visible := r.stateVar("Visible", 1)
		n.when(visible, 1)
		closer := textEl("button", "×", model.StyleMap{
			"background": "none",
			"border":     "none",
			"color":      "$textSecondary",
			"fontSize":   "18px",
			"cursor":     "pointer",
		}).withAttr("type", "button").withAttr("aria-label", "Dismiss").
			on("click", Action{Kind: ActionSet, Var: visible, Value: 0})
		n.Children = append(n.Children, closer)
	}
	return n
}

func (r *resolver) progress(p model.ProgressProps) *Node {
	d := p.WithDefaults()
	pct := math.Round(p.Percent()*10) / 10
	value := strconv.FormatFloat(pct, 'f', -1, 64) + "%"

	bar := el("div", model.StyleMap{
		"width":           value,
		"height":          "100%",
		"backgroundColor": "$primary",
		"transition":      "width 0.3s ease",
	}).withClass("progress-bar", "")
	track := el("div", model.StyleMap{
		"width":           "100%",
		"height":          "12px",
		"backgroundColor": "$surface",
		"borderRadius":    "9999px",
		"overflow":        "hidden",
	}, bar).withClass("progress", "").
		withAttr("role", "progressbar").
		withAttr("aria-valuenow", strconv.FormatFloat(*d.Value, 'f', -1, 64)).
		withAttr("aria-valuemin", "0").
		withAttr("aria-valuemax", strconv.FormatFloat(*d.Max, 'f', -1, 64))

	n := el("div", model.StyleMap{"display": "flex", "flexDirection": "column", "gap": "6px", "justifyContent": "center"}, track)
	if *d.ShowValue {
		n.Children = append(n.Children, textEl("span", value, model.StyleMap{"fontSize": "12px", "color": "$textSecondary"}))
	}
	return n
}

func (r *resolver) tabs(p model.TabsProps) *Node {
	active := r.stateVar("Tab", p.Active)
	strip := el("div", model.StyleMap{
		"display":      "flex",
		"borderBottom": "1px solid $textSecondary",
	}).withClass("tabs", "").withAttr("role", "tablist")
	panels := el("div", model.StyleMap{"padding": "16px", "color": "$text"})
	for i, tab := range p.Tabs {
		strip.Children = append(strip.Children, textEl("button", tab, model.StyleMap{
			"background": "none",
			"border":     "none",
			"padding":    "10px 16px",
			"color":      "$text",
			"cursor":     "pointer",
			"fontFamily": "$fontFamily",
		}).withClass("tab", "").withAttr("type", "button").withAttr("role", "tab").
			on("click", Action{Kind: ActionSet, Var: active, Value: i}))
		panels.Children = append(panels.Children, textEl("div", p.Content(i), nil).
			withAttr("role", "tabpanel").
			when(active, i))
	}
	return el("div", model.StyleMap{"backgroundColor": "$surface", "borderRadius": "8px", "overflow": "hidden"}, strip, panels)
}

func (r *resolver) accordion(p model.AccordionProps) *Node {
	n := el("div", model.StyleMap{
		"borderRadius": "8px",
		"overflow":     "hidden",
		"border":       "1px solid $surface",
	}).withClass("accordion", "")
	for i, item := range p.Items {
		initial := 0
		if i == 0 {
			initial = 1
		}
		open := r.stateVar(fmt.Sprintf("Open%d", i), initial)
		header := textEl("button", item.Title, model.StyleMap{
			"display":         "block",
			"width":           "100%",
			"textAlign":       "left",
			"padding":         "12px 16px",
			"backgroundColor": "$surface",
			"color":           "$text",
			"border":          "none",
			"fontWeight":      "600",
			"cursor":          "pointer",
		}).withAttr("type", "button").on("click", Action{Kind: ActionToggle, Var: open})
		panel := textEl("div", item.Content, model.StyleMap{
			"padding": "12px 16px",
			"color":   "$textSecondary",
		}).when(open, 1)
		n.Children = append(n.Children, el("div", nil, header, panel))
	}
	return n
}

func (r *resolver) image(p model.ImageProps) *Node {
	return void("img", model.StyleMap{"objectFit": p.Fit, "display": "block"},
		Attr{Name: "src", Value: p.Src},
		Attr{Name: "alt", Value: p.Alt},
	).withClass("image", "")
}

func (r *resolver) divider(p model.DividerProps) *Node {
	if p.Label == "" {
		return void("hr", model.StyleMap{
			"border":    "none",
			"borderTop": p.Thickness + " solid $textSecondary",
			"margin":    "0",
			"height":    "0",
		}).withClass("divider", "")
	}
	line := func() *Node {
		return el("div", model.StyleMap{"flex": "1", "height": p.Thickness, "backgroundColor": "$textSecondary"})
	}
	return el("div", model.StyleMap{
		"display":    "flex",
		"alignItems": "center",
		"gap":        "12px",
		"color":      "$textSecondary",
		"fontSize":   "14px",
	}, line(), textEl("span", p.Label, nil), line()).withClass("divider", "")
}

func (r *resolver) avatar(p model.AvatarProps) *Node {
	s := model.StyleMap{
		"width":        p.Size,
		"height":       p.Size,
		"borderRadius": "50%",
	}
	if p.Src != "" {
		s["objectFit"] = "cover"
		return void("img", s, Attr{Name: "src", Value: p.Src}, Attr{Name: "alt", Value: p.Name}).withClass("avatar", "")
	}
	s["display"] = "flex"
	s["alignItems"] = "center"
	s["justifyContent"] = "center"
	s["backgroundColor"] = "$primary"
	s["color"] = "#ffffff"
	s["fontWeight"] = "600"
	return textEl("div", initials(p.Name), s).withClass("avatar", "").withAttr("title", p.Name)
}

func placeholder(t model.ComponentType) *Node {
	name := string(t)
	if strings.TrimSpace(name) == "" {
		name = "unknown"
	}
	return textEl("div", "Unknown component: "+name, model.StyleMap{
		"display":        "flex",
		"alignItems":     "center",
		"justifyContent": "center",
		"border":         "2px dashed $textSecondary",
		"borderRadius":   "8px",
		"color":          "$textSecondary",
		"fontFamily":     "$fontFamily",
	})
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			out = append(out, unicode.ToUpper(r))
			break
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// anchor lowercases s and joins its alphanumeric runs with hyphens.
func anchor(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
