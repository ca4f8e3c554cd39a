package model

import (
	"sort"
	"strconv"
	"strings"
)

// StyleMap maps CSS-like property names to values. Names may be camelCase or
// kebab-case; the style translator normalises them.
type StyleMap map[string]string

// Keys returns the property names in sorted order.
func (s StyleMap) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (s StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

var unitlessProperties = map[string]struct{}{
	"opacity": {}, "zIndex": {}, "z-index": {}, "fontWeight": {}, "font-weight": {},
	"lineHeight": {}, "line-height": {}, "flex": {}, "flexGrow": {}, "flex-grow": {},
	"flexShrink": {}, "flex-shrink": {}, "order": {}, "zoom": {},
}

// DecodeStyle converts an open style bag into a StyleMap. Bare numbers get a
// px unit unless the property is unitless.
func DecodeStyle(raw map[string]any) StyleMap {
	out := make(StyleMap, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[key] = v
		case int:
			out[key] = withUnit(key, strconv.Itoa(v))
		case int64:
			out[key] = withUnit(key, strconv.FormatInt(v, 10))
		case float64:
			out[key] = withUnit(key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			out[key] = strings.TrimSpace(scalarString(v))
		}
	}
	return out
}

func withUnit(property, number string) string {
	if _, ok := unitlessProperties[property]; ok || number == "0" {
		return number
	}
	return number + "px"
}
