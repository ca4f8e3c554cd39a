package emitter

import (
	"html"
	"strings"
)

var (
	braceEscaper   = strings.NewReplacer("{", "&#123;", "}", "&#125;")
	jsxEscaper     = strings.NewReplacer("{", "&#123;", "}", "&#125;", "/", "&#47;")
	angularEscaper = strings.NewReplacer("{", "&#123;", "}", "&#125;", "@", "&#64;")
	literalEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", "\\${")
)

// EscapeHTML escapes text for HTML content and attribute values.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeTemplate escapes text for templates that treat braces as
// interpolation (Vue, Svelte).
func EscapeTemplate(s string) string {
	return braceEscaper.Replace(html.EscapeString(s))
}

// EscapeJSX escapes text for JSX children. Slashes become entities so text
// can never open a JavaScript comment.
func EscapeJSX(s string) string {
	return jsxEscaper.Replace(html.EscapeString(s))
}

// EscapeAngular escapes text for Angular templates, where @ opens a control
// flow block.
func EscapeAngular(s string) string {
	return angularEscaper.Replace(html.EscapeString(s))
}

// TemplateLiteral escapes s for embedding in a JavaScript template literal.
func TemplateLiteral(s string) string {
	return literalEscaper.Replace(s)
}
