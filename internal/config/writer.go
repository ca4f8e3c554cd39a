package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WriteProject encodes project in the format implied by the path extension,
// YAML when there is none, and writes it to path.
func WriteProject(path string, project *Project) error {
	if project == nil {
		return fmt.Errorf("write project: project is nil")
	}
	format, ok := FormatFor(path)
	if !ok {
		format = FormatYAML
	}
	data, err := EncodeProject(project, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write project: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// EncodeProject renders project as a document in format.
func EncodeProject(project *Project, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(project)
		if err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(project); err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode project: %w", err)
		}
		return buf.Bytes(), nil
	}
}
