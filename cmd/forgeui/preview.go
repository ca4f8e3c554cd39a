package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/delivery"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/tui"
)

var previewProgramRunner = runPreviewProgram

type previewOptions struct {
	project projectFlags
	style   string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the generated program for every framework",
		Long: `Generate the project for every registered framework and show the results
side by side in an interactive viewer. When stdout is not a terminal the
programs are printed one after another.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "warn")
			if err != nil {
				return err
			}
			return runPreview(cmd, app, opts)
		},
	}

	opts.project.register(cmd)
	cmd.Flags().StringVar(&opts.style, "style", "monokai", "Highlighting style")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts *previewOptions) error {
	project, theme, err := loadProject(app, &opts.project, nil)
	if err != nil {
		return err
	}

	interactive := isTerminal(cmd.OutOrStdout())
	var tabs []tui.Tab
	for _, info := range app.Exporter.Frameworks() {
		framework := model.Framework(info.Name)
		code, err := app.Exporter.GenerateCode(project.ComponentList(), framework, theme, project.Export.CSSFramework)
		if err != nil {
			return newCommandError("generate preview", info.Name, err, "Run 'forgeui generate' for this framework to see the full error.")
		}
		name := export.FileName(project.Export.FileName, info.Extension) + info.Extension
		if interactive {
			var highlighted strings.Builder
			w := delivery.NewWriter(&highlighted, delivery.WriterOptions{Highlight: true, Style: opts.style})
			if err := w.Deliver(cmd.Context(), model.File{Name: name, Content: code}); err == nil {
				code = highlighted.String()
			}
		}
		tabs = append(tabs, tui.Tab{Title: info.Title, Name: name, Content: code})
	}

	if !interactive {
		w := delivery.NewWriter(cmd.OutOrStdout(), delivery.WriterOptions{Headers: true})
		for _, tab := range tabs {
			if err := w.Deliver(cmd.Context(), model.File{Name: tab.Title + ": " + tab.Name, Content: tab.Content}); err != nil {
				return err
			}
		}
		return nil
	}

	return previewProgramRunner(cmd, tui.NewModel(project.Name, tabs))
}

func runPreviewProgram(cmd *cobra.Command, m tui.Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
	_, err := program.Run()
	return err
}
