package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/config"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

type initOptions struct {
	out       string
	name      string
	framework string
	theme     string
	force     bool
}

func newInitCmd(root *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter project document",
		Long: `Write a project with a navbar, hero, card, form and footer stacked on the
canvas. The file format follows the extension: .yaml, .json or .toml.`,
		Example: `  forgeui init
  forgeui init -o landing.toml --name "Landing Page" --framework vue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "warn")
			if err != nil {
				return err
			}
			return runInit(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "output", "o", "project.yaml", "Where to write the project")
	cmd.Flags().StringVar(&opts.name, "name", "My Project", "Project name")
	cmd.Flags().StringVarP(&opts.framework, "framework", "f", string(model.FrameworkHTML), "Target framework")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Catalog theme")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, app *AppContext, opts *initOptions) error {
	if _, err := os.Stat(opts.out); err == nil && !opts.force {
		return newCommandError("create project", opts.out, errors.New("file already exists"), "Pass --force to overwrite it or choose another path with -o.")
	}

	project := config.Sample(opts.name, app.Catalog.Templates(), newComponentID)
	project.Framework = model.Framework(opts.framework)
	project.Theme = opts.theme
	if err := config.ValidateProject(project); err != nil {
		return newCommandError("create project", opts.out, err, "Run 'forgeui frameworks' and 'forgeui themes' to see accepted values.")
	}
	if _, err := project.ResolveTheme(app.Catalog); err != nil {
		return newCommandError("create project", opts.out, err, "Run 'forgeui themes' to list the available themes.")
	}

	if err := config.WriteProject(opts.out, project); err != nil {
		return newCommandError("write project", opts.out, err, "Check that the directory exists and is writable.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d components\n", opts.out, len(project.Components))
	return nil
}

func newComponentID() string {
	return "c" + strings.ToLower(ulid.Make().String())
}
