package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

const validYAML = `version: "1.0"
name: Landing
framework: react
theme: ocean
export:
  fileName: landing
  format: modular
  cssFramework: tailwind
components:
  - id: hero-1
    type: hero
    props:
      title: Hello
      ctaText: Go
    position: {x: 0, y: 0, width: 800, height: 300}
    animations:
      - name: fadeIn
  - id: grid-1
    type: grid
    props:
      columns: 3
    style:
      padding: 12
    position: {x: 0, y: 320, width: 800, height: 200}
`

const validJSON = `{
  "version": "1.0",
  "name": "Landing",
  "framework": "vue",
  "components": [
    {"id": "b1", "type": "button", "props": {"text": "Buy", "disabled": true}, "position": {"x": 1, "y": 2, "width": 100, "height": 40}}
  ]
}
`

const validTOML = `version = "1.0"
name = "Landing"
framework = "svelte"

[export]
fileName = "landing"
minify = true

[[components]]
id = "p1"
type = "progress"
position = { x = 0, y = 0, width = 300, height = 24 }

[components.props]
value = 40
max = 80
`

func writeTempProject(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseProjectFormats(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		project, err := ParseProject(writeTempProject(t, "project.yaml", validYAML))
		require.NoError(t, err)
		require.Equal(t, model.FrameworkReact, project.Framework)
		require.Equal(t, model.FormatModular, project.Export.Format)
		require.Equal(t, model.CSSTailwind, project.Export.CSSFramework)
		require.Len(t, project.Components, 2)

		components := project.ComponentList()
		require.Equal(t, model.HeroProps{Title: "Hello", CTAText: "Go"}, components[0].Props)
		require.Equal(t, model.GridProps{Columns: 3}, components[1].Props)
		require.Equal(t, "12px", components[1].Style["padding"])
		require.Equal(t, "fadeIn", components[0].Animations[0].Name)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		project, err := ParseProject(writeTempProject(t, "project.json", validJSON))
		require.NoError(t, err)
		require.Equal(t, model.FrameworkVue, project.Framework)
		button := project.ComponentList()[0].Props.(model.ButtonProps)
		require.Equal(t, "Buy", button.Text)
		require.True(t, button.Disabled)
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		project, err := ParseProject(writeTempProject(t, "project.toml", validTOML))
		require.NoError(t, err)
		require.Equal(t, model.FrameworkSvelte, project.Framework)
		require.True(t, project.Export.Minify)
		progress := project.ComponentList()[0].Props.(model.ProgressProps)
		require.InDelta(t, 50.0, progress.Percent(), 0.001)
	})
}

func TestParseProjectErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		line     int
		field    string
	}{
		{
			name:     "yaml type error carries a line",
			file:     "p.yaml",
			contents: "version: \"1.0\"\nname: [1, 2]\nframework: html\n",
			line:     2,
		},
		{
			name:     "json syntax error carries a line",
			file:     "p.json",
			contents: "{\n  \"version\": \"1.0\",\n  \"name\": ,\n}\n",
			line:     3,
		},
		{
			name:     "toml syntax error carries a line",
			file:     "p.toml",
			contents: "version = \"1.0\"\nname = \n",
			line:     2,
		},
		{
			name:     "unsupported extension",
			file:     "p.ini",
			contents: "x",
		},
		{
			name:     "unknown framework",
			file:     "p.yaml",
			contents: "version: \"1.0\"\nname: x\nframework: solid\n",
			field:    "framework",
		},
		{
			name:     "bad version",
			file:     "p.yaml",
			contents: "version: beta\nname: x\nframework: html\n",
			field:    "version",
		},
		{
			name:     "bad export format",
			file:     "p.yaml",
			contents: "version: \"1.0\"\nname: x\nframework: html\nexport:\n  format: tarball\n",
			field:    "export.format",
		},
		{
			name:     "missing component id",
			file:     "p.yaml",
			contents: "version: \"1.0\"\nname: x\nframework: html\ncomponents:\n  - type: button\n",
			field:    "components[0].id",
		},
		{
			name:     "negative width",
			file:     "p.yaml",
			contents: "version: \"1.0\"\nname: x\nframework: html\ncomponents:\n  - id: a\n    type: text\n    position: {width: -1}\n",
			field:    "components[0].position.width",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseProject(writeTempProject(t, tc.file, tc.contents))
			require.Error(t, err)
			if tc.field != "" {
				var validationErr *forgeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tc.field, validationErr.Field)
				return
			}
			var parseErr *forgeerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.line, parseErr.Line)
		})
	}
}

func TestParseProjectMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseProject(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *forgeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestWriteProjectRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"out.yaml", "out.json", "out.toml", "out"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			original, err := ParseProject(writeTempProject(t, "project.yaml", validYAML))
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, WriteProject(path, original))

			format, ok := FormatFor(path)
			if !ok {
				format = FormatYAML
			}
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			decoded, err := ParseProjectData(path, format, data)
			require.NoError(t, err)
			require.Equal(t, original.Name, decoded.Name)
			require.Equal(t, original.Export, decoded.Export)
			require.Equal(t, original.ComponentList(), decoded.ComponentList())
		})
	}
}
