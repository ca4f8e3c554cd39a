package style

import (
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// shorthand describes one shorthand property and the longhands that override
// it. expand fills the longhands from the shorthand value; it returns nil when
// the value cannot be parsed.
type shorthand struct {
	name      string
	longhands []string
	expand    func(value string) map[string]string
}

var shorthands = []shorthand{
	{name: "border", longhands: lineLonghands("border"), expand: expandLine("border")},
	{name: "outline", longhands: lineLonghands("outline"), expand: expandLine("outline")},
	{name: "margin", longhands: boxLonghands("margin"), expand: expandBox("margin")},
	{name: "padding", longhands: boxLonghands("padding"), expand: expandBox("padding")},
	{
		name:      "background",
		longhands: []string{"backgroundColor", "backgroundImage", "backgroundPosition", "backgroundRepeat", "backgroundSize"},
		expand:    expandBackground,
	},
}

var lineStyles = map[string]struct{}{
	"none": {}, "hidden": {}, "dotted": {}, "dashed": {}, "solid": {},
	"double": {}, "groove": {}, "ridge": {}, "inset": {}, "outset": {}, "auto": {},
}

// applyPrecedence resolves shorthand/longhand conflicts in place: when a
// shorthand and any of its longhands are present the shorthand is removed and
// the longhands it implied are written out explicitly, never overriding a
// longhand that was given.
func applyPrecedence(style model.StyleMap) {
	for _, sh := range shorthands {
		value, ok := style[sh.name]
		if !ok {
			continue
		}
		if !anyPresent(style, sh.longhands) {
			continue
		}
		delete(style, sh.name)
		for name, implied := range sh.expand(value) {
			if _, given := style[name]; !given {
				style[name] = implied
			}
		}
	}
}

func anyPresent(style model.StyleMap, names []string) bool {
	for _, name := range names {
		if _, ok := style[name]; ok {
			return true
		}
	}
	return false
}

func lineLonghands(prefix string) []string {
	return []string{prefix + "Width", prefix + "Style", prefix + "Color"}
}

func boxLonghands(prefix string) []string {
	return []string{prefix + "Top", prefix + "Right", prefix + "Bottom", prefix + "Left"}
}

// expandLine splits a border-like shorthand into width, style and color.
// Parts missing from the shorthand take their CSS initial values, as the
// shorthand itself would have reset them.
func expandLine(prefix string) func(string) map[string]string {
	return func(value string) map[string]string {
		out := map[string]string{
			prefix + "Width": "medium",
			prefix + "Style": "none",
			prefix + "Color": "currentcolor",
		}
		for _, token := range splitTokens(value) {
			lower := strings.ToLower(token)
			switch {
			case isLineStyle(lower):
				out[prefix+"Style"] = lower
			case isLength(lower):
				out[prefix+"Width"] = token
			default:
				out[prefix+"Color"] = token
			}
		}
		return out
	}
}

func isLineStyle(token string) bool {
	_, ok := lineStyles[token]
	return ok
}

func isLength(token string) bool {
	switch token {
	case "thin", "medium", "thick":
		return true
	}
	if strings.HasPrefix(token, "calc(") || strings.HasPrefix(token, "var(") {
		return true
	}
	c := token[0]
	return (c >= '0' && c <= '9') || c == '.'
}

// expandBox applies the one-to-four value box syntax of margin and padding.
func expandBox(prefix string) func(string) map[string]string {
	return func(value string) map[string]string {
		tokens := splitTokens(value)
		var top, right, bottom, left string
		switch len(tokens) {
		case 1:
			top, right, bottom, left = tokens[0], tokens[0], tokens[0], tokens[0]
		case 2:
			top, right, bottom, left = tokens[0], tokens[1], tokens[0], tokens[1]
		case 3:
			top, right, bottom, left = tokens[0], tokens[1], tokens[2], tokens[1]
		case 4:
			top, right, bottom, left = tokens[0], tokens[1], tokens[2], tokens[3]
		default:
			return nil
		}
		return map[string]string{
			prefix + "Top":    top,
			prefix + "Right":  right,
			prefix + "Bottom": bottom,
			prefix + "Left":   left,
		}
	}
}

// expandBackground keeps the part of a background shorthand that maps onto a
// single longhand: an image layer or a plain colour.
func expandBackground(value string) map[string]string {
	tokens := splitTokens(value)
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	lower := strings.ToLower(token)
	if strings.HasPrefix(lower, "url(") || strings.Contains(lower, "gradient(") {
		return map[string]string{"backgroundImage": token}
	}
	return map[string]string{"backgroundColor": token}
}

// splitTokens splits a CSS value on whitespace outside parentheses so that
// "1px solid rgb(0, 0, 0)" yields three tokens.
func splitTokens(value string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}
