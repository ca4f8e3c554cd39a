package export

import (
	"strings"
	"unicode"
)

// FileName turns a user supplied name into a safe base name: a trailing ext
// is removed, the rest is lowercased and runs of other characters become a
// single hyphen. An empty result falls back to "app".
func FileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if ext != "" && strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		name = name[:len(name)-len(ext)]
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
