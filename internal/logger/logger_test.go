package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"framework": "react", "files": 5})
	log.Info("project built")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "project built", entry["message"])
	require.Equal(t, "react", entry["framework"])
	require.Equal(t, float64(5), entry["files"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"file": "src/App.jsx"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "src/App.jsx", entry["file"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerForExport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		opts   model.ExportOptions
		format string
		css    any
	}{
		{"defaults to single file", model.ExportOptions{}, "single", nil},
		{"vanilla css is omitted", model.ExportOptions{Format: model.FormatModular, CSSFramework: model.CSSVanilla}, "modular", nil},
		{"css framework is tagged", model.ExportOptions{Minify: true, CSSFramework: model.CSSBootstrap}, "single", "bootstrap"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log, err := New(Options{Level: "debug", Writer: buf})
			require.NoError(t, err)

			log.ForExport(model.FrameworkVue, tc.opts).Debug("project built")

			var entry logEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, "vue", entry["framework"])
			require.Equal(t, tc.format, entry["format"])
			require.Equal(t, tc.opts.Minify, entry["minify"])
			require.Equal(t, tc.css, entry["css"])
		})
	}
}

func TestLoggerForFile(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.ForFile(model.File{Name: "src/App.vue", Content: "<template></template>"}).Debug("file delivered")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "src/App.vue", entry["file"])
	require.Equal(t, float64(21), entry["bytes"])
	require.Equal(t, "file delivered", entry["message"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNopAndNilLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.WithFields(map[string]any{"a": 1}).Warn("ignored")
		Nop().WithFields(map[string]any{"a": 1}).Error(errors.New("x"), "ignored")
		nilLogger.ForExport(model.FrameworkHTML, model.ExportOptions{}).ForFile(model.File{}).Debug("ignored")
	})
}
