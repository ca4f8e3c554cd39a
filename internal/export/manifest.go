package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

type packageManifest struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// manifest renders package.json. Map keys are sorted by the encoder.
func (s *Service) manifest(info emitter.Info, name string, css model.CSSFramework) string {
	m := packageManifest{
		Name:            name,
		Private:         true,
		Version:         "0.1.0",
		Scripts:         copyMap(info.Scripts),
		Dependencies:    copyMap(info.Dependencies),
		DevDependencies: copyMap(info.DevDependencies),
	}
	if info.Name != string(model.FrameworkAngular) {
		m.Type = "module"
	}
	if !css.IsVanilla() && s.frameworks != nil {
		if fw, ok := s.frameworks.CSSFramework(css); ok && fw.Package != "" {
			m.Dependencies[fw.Package] = fw.Version
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("encode package manifest: %v", err))
	}
	return string(data) + "\n"
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func readme(info emitter.Info, in emitter.Input, name string, files []model.File) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", in.PageTitle())
	fmt.Fprintf(&b, "%s project generated by forgeui.\n\n", info.Title)
	b.WriteString("## Details\n\n")
	fmt.Fprintf(&b, "- Package: `%s`\n", name)
	fmt.Fprintf(&b, "- Framework: %s\n", info.Title)
	fmt.Fprintf(&b, "- Theme: %s\n", themeName(in.Theme))
	css := in.CSSFramework
	if css == "" {
		css = model.CSSVanilla
	}
	fmt.Fprintf(&b, "- CSS framework: %s\n", css)
	fmt.Fprintf(&b, "- Components: %d\n\n", len(in.Components))

	b.WriteString("## Getting started\n\n")
	b.WriteString("```sh\nnpm install\n")
	if _, ok := info.Scripts["dev"]; ok {
		b.WriteString("npm run dev\n")
	} else if _, ok := info.Scripts["start"]; ok {
		b.WriteString("npm start\n")
	}
	b.WriteString("```\n\n")

	b.WriteString("## Files\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s`\n", f.Name)
	}
	b.WriteString("- `README.md`\n")
	return b.String()
}

func themeName(t model.Theme) string {
	if t.Name != "" {
		return t.Name
	}
	if t.ID != "" {
		return t.ID
	}
	return "custom"
}
