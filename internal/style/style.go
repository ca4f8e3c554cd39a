// Package style translates component style maps into target syntax: inline
// style objects for component frameworks and CSS declaration strings for
// markup.
package style

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// Syntax selects the output form of a translated style.
type Syntax int

const (
	// SyntaxObject produces camelCase properties for inline style objects.
	SyntaxObject Syntax = iota
	// SyntaxCSS produces kebab-case declarations joined into one string.
	SyntaxCSS
)

// Property is one translated declaration.
type Property struct {
	Name  string
	Value string
}

// Translated is the result of resolving a style map for one syntax.
type Translated struct {
	Syntax     Syntax
	Properties []Property
}

var (
	tokenPattern    = regexp.MustCompile(`\$([A-Za-z][A-Za-z0-9]*)`)
	propertyPattern = regexp.MustCompile(`^-?[A-Za-z][A-Za-z0-9-]*$`)
	valueStripper   = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "")
)

// Resolve translates style for the given syntax. Theme tokens in values are
// substituted, longhand properties take precedence over their shorthand and
// properties are sorted by name. An empty style yields an empty, non-nil
// result.
func Resolve(style model.StyleMap, theme model.Theme, syntax Syntax) Translated {
	normalized := Normalize(style)
	for name, value := range normalized {
		value = strings.TrimSpace(valueStripper.Replace(substituteTokens(value, theme)))
		if value == "" {
			delete(normalized, name)
			continue
		}
		normalized[name] = value
	}
	applyPrecedence(normalized)

	names := normalized.Keys()
	props := make([]Property, 0, len(names))
	for _, name := range names {
		out := name
		if syntax == SyntaxCSS {
			out = Kebab(name)
		}
		props = append(props, Property{Name: out, Value: normalized[name]})
	}
	return Translated{Syntax: syntax, Properties: props}
}

// CSS joins the declarations as "property: value" pairs separated by "; ".
func (t Translated) CSS() string {
	parts := make([]string, 0, len(t.Properties))
	for _, p := range t.Properties {
		name := p.Name
		if t.Syntax == SyntaxObject {
			name = Kebab(name)
		}
		parts = append(parts, name+": "+p.Value)
	}
	return strings.Join(parts, "; ")
}

// Object renders a JavaScript object literal such as
// { backgroundColor: "#fff", padding: "8px" }.
func (t Translated) Object() string {
	if len(t.Properties) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(t.Properties))
	for _, p := range t.Properties {
		name := p.Name
		if t.Syntax == SyntaxCSS {
			name = Camel(name)
		}
		parts = append(parts, objectKey(name)+": "+strconv.Quote(p.Value))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Has reports whether a property with the given camelCase name is present.
func (t Translated) Has(name string) bool {
	for _, p := range t.Properties {
		if p.Name == name || p.Name == Kebab(name) {
			return true
		}
	}
	return false
}

// Normalize returns a copy of style with camelCase property names. Invalid
// names are dropped. When two spellings of one property collide, the
// camelCase spelling wins.
func Normalize(style model.StyleMap) model.StyleMap {
	out := make(model.StyleMap, len(style))
	for _, key := range style.Keys() {
		trimmed := strings.TrimSpace(key)
		if !propertyPattern.MatchString(trimmed) {
			continue
		}
		name := Camel(trimmed)
		if _, exists := out[name]; exists && trimmed != name {
			continue
		}
		out[name] = style[key]
	}
	return out
}

// Merge normalises each layer and overlays them in order; later layers win.
// A shorthand in a later layer clears the longhands earlier layers set for
// it, so "background: red" replaces an inherited backgroundColor.
func Merge(layers ...model.StyleMap) model.StyleMap {
	out := model.StyleMap{}
	for _, layer := range layers {
		normalized := Normalize(layer)
		for _, sh := range shorthands {
			if _, ok := normalized[sh.name]; !ok {
				continue
			}
			for _, longhand := range sh.longhands {
				delete(out, longhand)
			}
		}
		for name, value := range normalized {
			out[name] = value
		}
	}
	return out
}

// Camel converts a kebab-case property name to camelCase. Vendor prefixes
// become capitalised ("-webkit-transition" -> "WebkitTransition").
func Camel(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	vendor := strings.HasPrefix(name, "-")
	parts := strings.Split(strings.TrimPrefix(name, "-"), "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 && !vendor {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// Kebab converts a camelCase property name to kebab-case.
func Kebab(name string) string {
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 || isVendor(name) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVendor(name string) bool {
	for _, prefix := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) && unicode.IsUpper(rune(name[len(prefix)])) {
			return true
		}
	}
	return false
}

func objectKey(name string) string {
	for i, r := range name {
		if !(unicode.IsLetter(r) || r == '_' || r == '$' || (i > 0 && unicode.IsDigit(r))) {
			return strconv.Quote(name)
		}
	}
	return name
}

func substituteTokens(value string, theme model.Theme) string {
	if !strings.Contains(value, "$") {
		return value
	}
	return tokenPattern.ReplaceAllStringFunc(value, func(match string) string {
		if resolved, ok := theme.Token(match[1:]); ok && resolved != "" {
			return resolved
		}
		return match
	})
}
