// Package catalog holds the built-in reference data: themes, animation
// presets, component templates and CSS framework descriptors. The data is
// embedded in the binary and parsed once per process.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/forgeui/internal/cssbridge"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

//go:embed data/*.yaml
var embedded embed.FS

// Template is a palette entry used to seed new components.
type Template struct {
	Type     model.ComponentType `yaml:"type" json:"type" validate:"required"`
	Name     string              `yaml:"name" json:"name" validate:"required"`
	Category string              `yaml:"category" json:"category"`
	Width    float64             `yaml:"width" json:"width" validate:"gt=0"`
	Height   float64             `yaml:"height" json:"height" validate:"gt=0"`
	Props    map[string]any      `yaml:"props,omitempty" json:"props,omitempty"`
}

// CDN lists the hosted assets of a CSS framework.
type CDN struct {
	Stylesheet string `yaml:"stylesheet,omitempty" json:"stylesheet,omitempty" validate:"omitempty,url"`
	Script     string `yaml:"script,omitempty" json:"script,omitempty" validate:"omitempty,url"`
}

// CSSFramework describes one selectable CSS framework.
type CSSFramework struct {
	ID      model.CSSFramework `yaml:"id" json:"id" validate:"required"`
	Name    string             `yaml:"name" json:"name" validate:"required"`
	Package string             `yaml:"package,omitempty" json:"package,omitempty"`
	Version string             `yaml:"version,omitempty" json:"version,omitempty" validate:"required_with=Package"`
	CDN     CDN                `yaml:"cdn,omitempty" json:"cdn"`
	Classes cssbridge.Table    `yaml:"classes,omitempty" json:"-"`
}

// Catalog is immutable once loaded. Accessors return copies.
type Catalog struct {
	themes     []model.Theme
	keyframes  map[string]string
	templates  []Template
	frameworks []CSSFramework
	bridge     *cssbridge.Bridge
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog built from the embedded data.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog, defaultErr = Load(sub)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot proceed without the catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("load built-in catalog: %v", err))
	}
	return c
}

// Load parses themes.yaml, animations.yaml, templates.yaml and
// cssframeworks.yaml from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var themes struct {
		Themes []model.Theme `yaml:"themes"`
	}
	var animations struct {
		Animations map[string]string `yaml:"animations"`
	}
	var templates struct {
		Templates []Template `yaml:"templates"`
	}
	var frameworks struct {
		Frameworks []CSSFramework `yaml:"frameworks"`
	}

	docs := []struct {
		name   string
		target any
	}{
		{"themes.yaml", &themes},
		{"animations.yaml", &animations},
		{"templates.yaml", &templates},
		{"cssframeworks.yaml", &frameworks},
	}
	for _, doc := range docs {
		if err := decode(fsys, doc.name, doc.target); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		themes:     themes.Themes,
		keyframes:  animations.Animations,
		templates:  templates.Templates,
		frameworks: frameworks.Frameworks,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	tables := make(map[model.CSSFramework]cssbridge.Table, len(c.frameworks))
	for _, fw := range c.frameworks {
		if len(fw.Classes) > 0 {
			tables[fw.ID] = fw.Classes
		}
	}
	c.bridge = cssbridge.New(tables)
	return c, nil
}

func decode(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	v := validator.New()
	if len(c.themes) == 0 {
		return fmt.Errorf("catalog defines no themes")
	}
	seen := make(map[string]struct{}, len(c.themes))
	for i, theme := range c.themes {
		if theme.ID == "" {
			return fmt.Errorf("themes[%d]: id is required", i)
		}
		if _, dup := seen[theme.ID]; dup {
			return fmt.Errorf("themes[%d]: duplicate id %q", i, theme.ID)
		}
		seen[theme.ID] = struct{}{}
		if err := v.Struct(theme); err != nil {
			return fmt.Errorf("themes[%d] (%s): %w", i, theme.ID, err)
		}
	}
	for i, tmpl := range c.templates {
		if err := v.Struct(tmpl); err != nil {
			return fmt.Errorf("templates[%d]: %w", i, err)
		}
	}
	for i, fw := range c.frameworks {
		if err := v.Struct(fw); err != nil {
			return fmt.Errorf("frameworks[%d]: %w", i, err)
		}
	}
	return nil
}

// Theme looks up a theme by id.
func (c *Catalog) Theme(id string) (model.Theme, bool) {
	for _, theme := range c.themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return model.Theme{}, false
}

// DefaultTheme returns the first theme of the catalog.
func (c *Catalog) DefaultTheme() model.Theme {
	return c.themes[0]
}

// Themes returns every theme in catalog order.
func (c *Catalog) Themes() []model.Theme {
	return append([]model.Theme(nil), c.themes...)
}

// Keyframes returns the keyframe body of an animation preset.
func (c *Catalog) Keyframes(name string) (string, bool) {
	body, ok := c.keyframes[name]
	return body, ok
}

// Animations returns the names of every animation preset, sorted.
func (c *Catalog) Animations() []string {
	names := make([]string, 0, len(c.keyframes))
	for name := range c.keyframes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns every palette entry in catalog order.
func (c *Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// Template looks up the palette entry of a component type.
func (c *Catalog) Template(t model.ComponentType) (Template, bool) {
	for _, tmpl := range c.templates {
		if tmpl.Type == t {
			return tmpl, true
		}
	}
	return Template{}, false
}

// CSSFramework looks up a CSS framework descriptor.
func (c *Catalog) CSSFramework(id model.CSSFramework) (CSSFramework, bool) {
	if id == "" {
		id = model.CSSVanilla
	}
	for _, fw := range c.frameworks {
		if fw.ID == id {
			return fw, true
		}
	}
	return CSSFramework{}, false
}

// CSSFrameworks returns every CSS framework descriptor in catalog order.
func (c *Catalog) CSSFrameworks() []CSSFramework {
	return append([]CSSFramework(nil), c.frameworks...)
}

// Bridge returns the class bridge built from the framework class tables.
func (c *Catalog) Bridge() *cssbridge.Bridge {
	return c.bridge
}
