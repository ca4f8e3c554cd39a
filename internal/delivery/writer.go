package delivery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Highlight enables ANSI syntax highlighting.
	Highlight bool
	// Style names the chroma style; unknown names fall back to monokai.
	Style string
	// Headers prints a file name banner before each file.
	Headers bool
}

// Writer prints files to a stream, typically stdout.
type Writer struct {
	out       io.Writer
	opts      WriterOptions
	header    lipgloss.Style
	formatter chroma.Formatter
	style     *chroma.Style
	count     int
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer, opts WriterOptions) *Writer {
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	name := opts.Style
	if _, ok := styles.Registry[name]; !ok {
		name = "monokai"
	}
	return &Writer{
		out:       out,
		opts:      opts,
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		formatter: formatter,
		style:     styles.Get(name),
	}
}

// Deliver prints f.
func (w *Writer) Deliver(ctx context.Context, f model.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.opts.Headers {
		if w.count > 0 {
			if _, err := io.WriteString(w.out, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w.out, w.header.Render("==> "+f.Name+" <==")); err != nil {
			return err
		}
	}
	w.count++

	content := f.Content
	if w.opts.Highlight {
		highlighted, err := w.highlight(f.Name, content)
		if err == nil {
			content = highlighted
		}
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(w.out, content)
	return err
}

func (w *Writer) highlight(name, content string) (string, error) {
	lexer := Lexer(name, content)
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := w.formatter.Format(&b, w.style, iterator); err != nil {
		return "", err
	}
	return b.String(), nil
}

// lexerAliases maps generated file extensions to chroma lexer names where the
// file name alone does not select one.
var lexerAliases = map[string]string{
	".vue":    "html",
	".svelte": "html",
	".jsx":    "react",
}

// Lexer selects a chroma lexer for a file: by extension alias, then by file
// name, then by content analysis.
func Lexer(name, content string) chroma.Lexer {
	var lexer chroma.Lexer
	if alias, ok := lexerAliases[model.File{Name: name}.Ext()]; ok {
		lexer = lexers.Get(alias)
	}
	if lexer == nil {
		lexer = lexers.Match(name)
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
