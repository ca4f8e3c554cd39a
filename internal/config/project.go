// Package config loads, validates and writes forgeui project documents.
package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

// CurrentVersion is written into new project documents.
const CurrentVersion = "1.0"

// Project is one forgeui project document: a canvas of components plus the
// theme and export settings used to generate code from it.
type Project struct {
	Version     string               `yaml:"version" json:"version" toml:"version" validate:"required,semver"`
	Name        string               `yaml:"name" json:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Framework   model.Framework      `yaml:"framework" json:"framework" toml:"framework" validate:"required,oneof=html react vue svelte angular"`
	Theme       string               `yaml:"theme,omitempty" json:"theme,omitempty" toml:"theme,omitempty"`
	CustomTheme *model.Theme         `yaml:"customTheme,omitempty" json:"customTheme,omitempty" toml:"customTheme,omitempty"`
	Export      model.ExportOptions  `yaml:"export,omitempty" json:"export,omitempty" toml:"export,omitempty"`
	Components  []model.RawComponent `yaml:"components" json:"components" toml:"components" validate:"dive"`
}

// ThemeSource resolves catalog themes.
type ThemeSource interface {
	Theme(id string) (model.Theme, bool)
	DefaultTheme() model.Theme
}

// ResolveTheme returns the theme the project renders with. An inline custom
// theme wins over the theme id; an empty id selects the catalog default.
func (p *Project) ResolveTheme(themes ThemeSource) (model.Theme, error) {
	if p.CustomTheme != nil {
		theme := *p.CustomTheme
		if theme.ID == "" {
			theme.ID = "custom"
		}
		if theme.Name == "" {
			theme.Name = "Custom"
		}
		return theme, nil
	}
	if p.Theme == "" {
		return themes.DefaultTheme(), nil
	}
	theme, ok := themes.Theme(p.Theme)
	if !ok {
		return model.Theme{}, forgeerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", p.Theme), nil)
	}
	return theme, nil
}

// ComponentList converts the wire-form components into typed components.
func (p *Project) ComponentList() []model.Component {
	components := make([]model.Component, 0, len(p.Components))
	for _, raw := range p.Components {
		components = append(components, raw.Component())
	}
	return components
}
