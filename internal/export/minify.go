package export

import (
	"path"
	"regexp"
	"strings"
)

var (
	htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)
	codeBlock   = regexp.MustCompile(`(?is)(<(?:script|style)\b[^>]*>)(.*?)(</(?:script|style)\s*>)`)
)

// Minify strips comments and indentation from generated source. Comments are
// only recognised where the language has them: CSS and JavaScript bodies, and
// HTML comments in markup, so text content is never touched. Markdown files
// only lose trailing whitespace and repeated blank lines. The pass is lossy
// and idempotent.
func Minify(name, content string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".md":
		return minifyMarkdown(content)
	case ".css", ".scss":
		content = fixpoint(content, func(s string) string { return stripCode(s, false) })
	case ".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx", ".json":
		content = fixpoint(content, func(s string) string { return stripCode(s, true) })
	default:
		content = fixpoint(content, stripMarkup)
	}

	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func fixpoint(content string, strip func(string) string) string {
	for {
		stripped := strip(content)
		if stripped == content {
			return content
		}
		content = stripped
	}
}

// stripMarkup removes HTML comments outside script and style elements and
// code comments inside them.
func stripMarkup(content string) string {
	var b strings.Builder
	last := 0
	for _, m := range codeBlock.FindAllStringSubmatchIndex(content, -1) {
		b.WriteString(htmlComment.ReplaceAllString(content[last:m[0]], ""))
		open := content[m[2]:m[3]]
		b.WriteString(open)
		b.WriteString(stripCode(content[m[4]:m[5]], strings.HasPrefix(strings.ToLower(open), "<script")))
		b.WriteString(content[m[6]:m[7]])
		last = m[1]
	}
	b.WriteString(htmlComment.ReplaceAllString(content[last:], ""))
	return b.String()
}

// stripCode removes block comments, and line comments when lineComments is
// set, from CSS or JavaScript source. Quoted strings are copied verbatim; an
// unterminated block comment is kept.
func stripCode(src string, lineComments bool) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			j := quoted(src, i)
			b.WriteString(src[i:j])
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				b.WriteString(src[i:])
				return b.String()
			}
			i += end + 4
		case lineComments && c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return b.String()
			}
			i += end
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// quoted returns the index just past the string literal opening at src[start].
// Single and double quoted strings also end at a newline.
func quoted(src string, start int) int {
	q := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case q:
			return i + 1
		case '\n':
			if q != '`' {
				return i
			}
		}
	}
	return len(src)
}

func minifyMarkdown(content string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
