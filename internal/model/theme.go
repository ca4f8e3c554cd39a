package model

// Theme is a named palette, typography and effect bundle applied uniformly to
// every component of an export.
type Theme struct {
	ID         string     `json:"id" yaml:"id" toml:"id"`
	Name       string     `json:"name" yaml:"name" toml:"name"`
	Colors     Colors     `json:"colors" yaml:"colors" toml:"colors"`
	Typography Typography `json:"typography" yaml:"typography" toml:"typography"`
	Effects    Effects    `json:"effects" yaml:"effects" toml:"effects"`
}

// Colors is the theme palette.
type Colors struct {
	Primary       string `json:"primary" yaml:"primary" toml:"primary" validate:"required"`
	Secondary     string `json:"secondary" yaml:"secondary" toml:"secondary" validate:"required"`
	Accent        string `json:"accent" yaml:"accent" toml:"accent" validate:"required"`
	Background    string `json:"background" yaml:"background" toml:"background" validate:"required"`
	Surface       string `json:"surface" yaml:"surface" toml:"surface" validate:"required"`
	Text          string `json:"text" yaml:"text" toml:"text" validate:"required"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary" toml:"textSecondary" validate:"required"`
}

// Typography holds font stacks. HeadingFont falls back to FontFamily.
type Typography struct {
	FontFamily  string `json:"fontFamily" yaml:"fontFamily" toml:"fontFamily" validate:"required"`
	HeadingFont string `json:"headingFont,omitempty" yaml:"headingFont,omitempty" toml:"headingFont,omitempty"`
}

// Effects gate optional visual embellishment.
type Effects struct {
	Glow          bool `json:"glow" yaml:"glow" toml:"glow"`
	Glassmorphism bool `json:"glassmorphism" yaml:"glassmorphism" toml:"glassmorphism"`
	Neon          bool `json:"neon" yaml:"neon" toml:"neon"`
}

// Token resolves a theme token name such as "primary" or "headingFont".
func (t Theme) Token(name string) (string, bool) {
	switch name {
	case "primary":
		return t.Colors.Primary, true
	case "secondary":
		return t.Colors.Secondary, true
	case "accent":
		return t.Colors.Accent, true
	case "background":
		return t.Colors.Background, true
	case "surface":
		return t.Colors.Surface, true
	case "text":
		return t.Colors.Text, true
	case "textSecondary":
		return t.Colors.TextSecondary, true
	case "fontFamily":
		return t.Typography.FontFamily, true
	case "headingFont":
		if t.Typography.HeadingFont != "" {
			return t.Typography.HeadingFont, true
		}
		return t.Typography.FontFamily, true
	default:
		return "", false
	}
}
