package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

// Format is the encoding of a project document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor selects the document format from a file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// ParseProject loads a project document from disk, validates it and returns
// the resulting model.
func ParseProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, forgeerrors.NewParseError(path, 0, err)
	}
	format, ok := FormatFor(path)
	if !ok {
		return nil, forgeerrors.NewParseError(path, 0, fmt.Errorf("unsupported project format %q", filepath.Ext(path)))
	}
	return ParseProjectData(path, format, data)
}

// ParseProjectData decodes and validates a project document held in memory.
// name is only used in error messages.
func ParseProjectData(name string, format Format, data []byte) (*Project, error) {
	var project Project
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, forgeerrors.NewParseError(name, extractLine(err), err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &project); err != nil {
			return nil, forgeerrors.NewParseError(name, jsonLine(data, err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &project); err != nil {
			return nil, forgeerrors.NewParseError(name, tomlLine(err), err)
		}
	default:
		return nil, forgeerrors.NewParseError(name, 0, fmt.Errorf("unsupported project format %q", format))
	}

	if err := ValidateProject(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
