// Package emitter defines the contract shared by the per-framework code
// emitters, a registry to look them up by name, and the plan printer and
// stylesheet helpers they are built from.
package emitter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	apiverPattern = regexp.MustCompile(`^\d+\.x$`)
)

// Emitter turns components into source code for one target framework.
type Emitter interface {
	Info() Info
	// Render returns the markup of a single component. It never fails and
	// never returns an empty string.
	Render(c model.Component, theme model.Theme, css model.CSSFramework) string
	// Program returns a complete single-file program.
	Program(in Input) string
	// Files returns the source files of a modular project, excluding the
	// package manifest and readme.
	Files(in Input) []model.File
}

// Input is everything an emitter needs to produce a program.
type Input struct {
	Components   []model.Component
	Theme        model.Theme
	CSSFramework model.CSSFramework
	Title        string
}

// PageTitle returns the document title, defaulting to "Generated App".
func (in Input) PageTitle() string {
	if strings.TrimSpace(in.Title) == "" {
		return "Generated App"
	}
	return in.Title
}

// Info describes an emitter and the project it generates.
type Info struct {
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Version         string            `json:"version"`
	APIVersion      string            `json:"apiVersion"`
	Extension       string            `json:"extension"`
	Language        string            `json:"language"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
}

// Validate ensures the info is well-formed.
func (i Info) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("emitter info requires a non-empty Name")
	}
	if !semverPattern.MatchString(i.Version) {
		return fmt.Errorf("emitter '%s' has invalid Version '%s' (expected format: X.Y.Z)", i.Name, i.Version)
	}
	if !apiverPattern.MatchString(i.APIVersion) {
		return fmt.Errorf("emitter '%s' has invalid APIVersion '%s' (expected format: N.x)", i.Name, i.APIVersion)
	}
	if !strings.HasPrefix(i.Extension, ".") {
		return fmt.Errorf("emitter '%s' has invalid Extension '%s' (expected a leading dot)", i.Name, i.Extension)
	}
	return nil
}

// Assets is the reference data emitters read keyframes from.
type Assets interface {
	Keyframes(name string) (string, bool)
}
