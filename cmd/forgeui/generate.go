package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/delivery"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

type generateOptions struct {
	project   projectFlags
	highlight string
	style     string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the single-file program for a project",
		Long: `Generate the program for the project's target framework and print it.
Output is syntax highlighted when stdout is a terminal.`,
		Example: `  forgeui generate -p landing.yaml
  forgeui generate -p landing.yaml --framework react --css tailwind`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "warn")
			if err != nil {
				return err
			}
			return runGenerate(cmd, app, opts)
		},
	}

	opts.project.register(cmd)
	cmd.Flags().StringVar(&opts.highlight, "highlight", "auto", "Syntax highlighting: auto, always or never")
	cmd.Flags().StringVar(&opts.style, "style", "monokai", "Highlighting style")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *AppContext, opts *generateOptions) error {
	highlight, err := highlightMode(opts.highlight, cmd)
	if err != nil {
		return err
	}

	project, theme, err := loadProject(app, &opts.project, nil)
	if err != nil {
		return err
	}

	code, err := app.Exporter.GenerateCode(project.ComponentList(), project.Framework, theme, project.Export.CSSFramework)
	if err != nil {
		return newCommandError("generate code", string(project.Framework), err, "Run 'forgeui frameworks' to list supported targets.")
	}
	info, err := app.Exporter.Info(project.Framework)
	if err != nil {
		return err
	}

	w := delivery.NewWriter(cmd.OutOrStdout(), delivery.WriterOptions{Highlight: highlight, Style: opts.style})
	name := export.FileName(project.Export.FileName, info.Extension) + info.Extension
	return w.Deliver(cmd.Context(), model.File{Name: name, Content: code})
}

func highlightMode(mode string, cmd *cobra.Command) (bool, error) {
	switch mode {
	case "", "auto":
		return isTerminal(cmd.OutOrStdout()), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --highlight %q: use auto, always or never", mode)
	}
}
