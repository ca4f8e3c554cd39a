package style

import (
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// AnimationValue joins animation descriptors, in list order, into a single
// value for the CSS animation property. Descriptors without a name are
// skipped. An empty list yields "".
func AnimationValue(animations []model.Animation) string {
	parts := make([]string, 0, len(animations))
	for _, a := range animations {
		a = a.WithDefaults()
		if a.Name == "" || strings.ContainsAny(a.Name, " ,;{}") {
			continue
		}
		parts = append(parts, strings.Join([]string{a.Name, a.Duration, a.Timing, a.Delay, a.Iteration}, " "))
	}
	return strings.Join(parts, ", ")
}

// AnimationNames returns the distinct preset names referenced by animations,
// in first-use order.
func AnimationNames(animations []model.Animation) []string {
	seen := make(map[string]struct{}, len(animations))
	var names []string
	for _, a := range animations {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
