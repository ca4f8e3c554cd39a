package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/config"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/builtin"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/logger"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Log      *logger.Logger
	Catalog  *catalog.Catalog
	Registry *emitter.Registry
	Exporter *export.Service
}

// newAppContext wires the catalog, emitters and export service. Logs go to
// the command's stderr at level, or debug with --verbose.
func newAppContext(cmd *cobra.Command, flags *rootFlags, level string) (*AppContext, error) {
	if flags != nil && flags.verbose {
		level = "debug"
	}
	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{Level: level, HumanReadable: isTerminal(errOut), Writer: errOut})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	reg, err := builtin.NewRegistry(cat)
	if err != nil {
		return nil, fmt.Errorf("register emitters: %w", err)
	}

	return &AppContext{
		Log:      log,
		Catalog:  cat,
		Registry: reg,
		Exporter: export.NewService(reg, cat, log),
	}, nil
}

// projectFlags are shared by the commands that read a project document.
type projectFlags struct {
	path      string
	framework string
	css       string
	theme     string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "project", "p", "", "Path to the project document (.yaml, .json or .toml)")
	cmd.Flags().StringVarP(&f.framework, "framework", "f", "", "Override the target framework")
	cmd.Flags().StringVar(&f.css, "css", "", "Override the CSS framework (vanilla, tailwind, bootstrap, bulma)")
	cmd.Flags().StringVarP(&f.theme, "theme", "t", "", "Override the catalog theme")
	cmd.MarkFlagRequired("project") //nolint:errcheck
}

// loadProject parses the project, applies flag overrides and mutate, then
// validates the result and resolves its theme.
func loadProject(app *AppContext, f *projectFlags, mutate func(p *config.Project)) (*config.Project, model.Theme, error) {
	project, err := config.ParseProject(f.path)
	if err != nil {
		return nil, model.Theme{}, newCommandError("load project", f.path, err, "Fix the reported field and try again.")
	}

	if f.framework != "" {
		project.Framework = model.Framework(f.framework)
	}
	if f.css != "" {
		project.Export.CSSFramework = model.CSSFramework(f.css)
	}
	if f.theme != "" {
		project.Theme = f.theme
		project.CustomTheme = nil
	}
	if mutate != nil {
		mutate(project)
	}
	if err := config.ValidateProject(project); err != nil {
		return nil, model.Theme{}, newCommandError("load project", f.path, err, "Run 'forgeui frameworks' and 'forgeui themes' to see accepted values.")
	}

	theme, err := project.ResolveTheme(app.Catalog)
	if err != nil {
		return nil, model.Theme{}, newCommandError("load project", f.path, err, "Run 'forgeui themes' to list the available themes.")
	}
	return project, theme, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
