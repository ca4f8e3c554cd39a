package model

import "strings"

// Framework names a code-generation target.
type Framework string

const (
	FrameworkHTML    Framework = "html"
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkSvelte  Framework = "svelte"
	FrameworkAngular Framework = "angular"
)

// CSSFramework names the CSS framework whose classes decorate markup output.
type CSSFramework string

const (
	CSSVanilla   CSSFramework = "vanilla"
	CSSTailwind  CSSFramework = "tailwind"
	CSSBootstrap CSSFramework = "bootstrap"
	CSSBulma     CSSFramework = "bulma"
)

// IsVanilla reports whether no CSS framework is selected.
func (c CSSFramework) IsVanilla() bool {
	return c == "" || c == CSSVanilla
}

// ExportFormat selects single-file or multi-file output.
type ExportFormat string

const (
	FormatSingle  ExportFormat = "single"
	FormatModular ExportFormat = "modular"
)

// ExportOptions configures one export.
type ExportOptions struct {
	FileName      string       `json:"fileName" yaml:"fileName" toml:"fileName"`
	IncludeAssets bool         `json:"includeAssets" yaml:"includeAssets" toml:"includeAssets"`
	Minify        bool         `json:"minify" yaml:"minify" toml:"minify"`
	Format        ExportFormat `json:"format" yaml:"format" toml:"format" validate:"omitempty,oneof=single modular"`
	CSSFramework  CSSFramework `json:"cssFramework" yaml:"cssFramework" toml:"cssFramework" validate:"omitempty,oneof=vanilla tailwind bootstrap bulma"`
}

// File is one generated text file. Name is a slash-separated relative path.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Ext returns the final extension of the file name including the dot.
func (f File) Ext() string {
	base := f.Name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[i:]
	}
	return ""
}
