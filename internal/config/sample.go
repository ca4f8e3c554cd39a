package config

import (
	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// sampleLayout lists the component types of a new project from top to bottom.
var sampleLayout = []model.ComponentType{
	model.TypeNavbar,
	model.TypeHero,
	model.TypeCard,
	model.TypeForm,
	model.TypeFooter,
}

// Sample builds a starter project from catalog templates. Components are
// stacked vertically with a gap and receive ids from newID.
func Sample(name string, templates []catalog.Template, newID func() string) *Project {
	byType := make(map[model.ComponentType]catalog.Template, len(templates))
	for _, tpl := range templates {
		byType[tpl.Type] = tpl
	}

	const gap = 24.0
	project := &Project{
		Version:   CurrentVersion,
		Name:      name,
		Framework: model.FrameworkHTML,
		Export: model.ExportOptions{
			FileName:     name,
			Format:       model.FormatSingle,
			CSSFramework: model.CSSVanilla,
		},
	}

	y := 0.0
	for _, t := range sampleLayout {
		tpl, ok := byType[t]
		if !ok {
			continue
		}
		project.Components = append(project.Components, model.RawComponent{
			ID:       newID(),
			Type:     string(tpl.Type),
			Name:     tpl.Name,
			Props:    copyProps(tpl.Props),
			Position: model.Position{X: 0, Y: y, Width: tpl.Width, Height: tpl.Height},
		})
		y += tpl.Height + gap
	}
	if len(project.Components) > 1 {
		project.Components[1].Animations = []model.Animation{{Name: "fadeIn", Duration: "0.6s", Timing: "ease-out"}}
	}
	return project
}

func copyProps(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
