package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/config"
	"github.com/alexisbeaulieu97/forgeui/internal/delivery"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	"github.com/alexisbeaulieu97/forgeui/internal/tui/components"
	"github.com/alexisbeaulieu97/forgeui/pkg/diff"
	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

type exportOptions struct {
	project       projectFlags
	out           string
	zip           string
	format        string
	fileName      string
	minify        bool
	includeAssets bool
	git           bool
	diff          bool
	dryRun        bool
	pace          time.Duration
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write generated files to a directory or zip archive",
		Example: `  forgeui export -p landing.yaml -o ./site
  forgeui export -p landing.yaml --format modular --zip site.zip
  forgeui export -p landing.yaml -o ./site --diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "warn")
			if err != nil {
				return err
			}
			return runExport(cmd, app, opts)
		},
	}

	opts.project.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "output", "o", ".", "Directory to write files into")
	cmd.Flags().StringVar(&opts.zip, "zip", "", "Write a zip archive instead of a directory")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: single or modular")
	cmd.Flags().StringVar(&opts.fileName, "name", "", "Base file name for the exported program")
	cmd.Flags().BoolVar(&opts.minify, "minify", false, "Strip comments and blank lines")
	cmd.Flags().BoolVar(&opts.includeAssets, "include-assets", false, "Add a README to modular exports")
	cmd.Flags().BoolVar(&opts.git, "git", false, "Commit the written files to a git repository in the output directory")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show differences against the files already in the output directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "List the files without writing them")
	cmd.Flags().DurationVar(&opts.pace, "pace", 0, "Pause between files, e.g. 200ms")

	return cmd
}

func runExport(cmd *cobra.Command, app *AppContext, opts *exportOptions) error {
	if opts.zip != "" && opts.git {
		return newCommandError("export", "--zip", errors.New("--git needs a directory target"), "Drop --git or write to a directory with -o.")
	}

	flags := cmd.Flags()
	project, theme, err := loadProject(app, &opts.project, func(p *config.Project) {
		if flags.Changed("format") {
			p.Export.Format = model.ExportFormat(opts.format)
		}
		if flags.Changed("name") {
			p.Export.FileName = opts.fileName
		}
		if flags.Changed("minify") {
			p.Export.Minify = opts.minify
		}
		if flags.Changed("include-assets") {
			p.Export.IncludeAssets = opts.includeAssets
		}
	})
	if err != nil {
		return err
	}

	base := components.SummaryData{
		Project:      project.Name,
		Framework:    string(project.Framework),
		Format:       string(formatOf(project.Export)),
		CSSFramework: string(cssOf(project.Export)),
	}

	switch {
	case opts.dryRun:
		return runExportDryRun(cmd, app, opts, project, theme, base)
	case opts.diff:
		return runExportDiff(cmd, app, opts, project, theme, base)
	default:
		return runExportDeliver(cmd, app, opts, project, theme, base)
	}
}

func runExportDryRun(cmd *cobra.Command, app *AppContext, opts *exportOptions, project *config.Project, theme model.Theme, data components.SummaryData) error {
	files, err := app.Exporter.Build(project.ComponentList(), project.Framework, theme, project.Export)
	if err != nil {
		return newCommandError("build files", project.Name, err, "Check the project components and try again.")
	}

	data.DryRun = true
	data.Target = exportTarget(opts)
	for _, f := range files {
		data.Files = append(data.Files, components.FileEntry{Name: f.Name, Bytes: len(f.Content), Status: components.FilePending})
	}
	fmt.Fprintln(cmd.OutOrStdout(), components.NewSummary(data).View())
	return nil
}

// runExportDiff compares generated files with those already present in the
// output directory and prints a unified diff for each changed file.
func runExportDiff(cmd *cobra.Command, app *AppContext, opts *exportOptions, project *config.Project, theme model.Theme, data components.SummaryData) error {
	if opts.zip != "" {
		return newCommandError("diff export", opts.zip, errors.New("--diff compares against a directory"), "Use -o to point at the exported directory.")
	}
	files, err := app.Exporter.Build(project.ComponentList(), project.Framework, theme, project.Export)
	if err != nil {
		return newCommandError("build files", project.Name, err, "Check the project components and try again.")
	}

	out := cmd.OutOrStdout()
	data.DryRun = true
	data.Target = opts.out
	for _, f := range files {
		entry := components.FileEntry{Name: f.Name, Bytes: len(f.Content)}
		existing, err := os.ReadFile(filepath.Join(opts.out, filepath.FromSlash(f.Name)))
		switch {
		case errors.Is(err, os.ErrNotExist):
			entry.Status = components.FileNew
			entry.Added, _ = diff.Stats(diff.GenerateUnifiedDiff(nil, []byte(f.Content), "/dev/null", "b/"+f.Name))
		case err != nil:
			return newCommandError("read existing file", f.Name, err, "Check the permissions of the output directory.")
		default:
			unified := diff.GenerateUnifiedDiff(existing, []byte(f.Content), "a/"+f.Name, "b/"+f.Name)
			if unified == "" {
				entry.Status = components.FileUnchanged
				break
			}
			entry.Status = components.FileChanged
			entry.Added, entry.Removed = diff.Stats(unified)
			fmt.Fprint(out, unified)
		}
		data.Files = append(data.Files, entry)
	}
	fmt.Fprintln(out, components.NewSummary(data).View())
	return nil
}

func runExportDeliver(cmd *cobra.Command, app *AppContext, opts *exportOptions, project *config.Project, theme model.Theme, data components.SummaryData) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	d, closeTarget, target, err := openTarget(opts)
	if err != nil {
		return err
	}
	data.Target = target

	result, exportErr := app.Exporter.Export(ctx, project.ComponentList(), project.Framework, theme, project.Export, delivery.Paced(d, opts.pace))
	if err := closeTarget(); err != nil && exportErr == nil {
		exportErr = forgeerrors.NewDeliveryError("", err)
	}

	if result != nil {
		delivered := make(map[string]struct{}, len(result.Delivered))
		for _, name := range result.Delivered {
			delivered[name] = struct{}{}
		}
		var failed *forgeerrors.DeliveryError
		errors.As(exportErr, &failed)
		for _, f := range result.Files {
			entry := components.FileEntry{Name: f.Name, Bytes: len(f.Content), Status: components.FilePending}
			if _, ok := delivered[f.Name]; ok {
				entry.Status = components.FileDelivered
			} else if failed != nil && failed.File == f.Name {
				entry.Status = components.FileFailed
			}
			data.Files = append(data.Files, entry)
		}
		data.Delivered = len(result.Delivered)
	}
	if exportErr != nil {
		data.Error = exportErr.Error()
	}
	fmt.Fprintln(cmd.OutOrStdout(), components.NewSummary(data).View())

	if exportErr != nil {
		return newCommandError("export", target, exportErr, "Fix the problem and run the export again; delivered files are left in place.")
	}
	return nil
}

// openTarget returns the deliverer for the chosen output and a function
// releasing it.
func openTarget(opts *exportOptions) (export.Deliverer, func() error, string, error) {
	if opts.zip != "" {
		file, err := os.Create(opts.zip)
		if err != nil {
			return nil, nil, "", newCommandError("create archive", opts.zip, err, "Check that the parent directory exists and is writable.")
		}
		return delivery.NewArchive(file), file.Close, opts.zip, nil
	}

	dir, err := delivery.NewDirectory(opts.out, delivery.DirectoryOptions{Git: opts.git})
	if err != nil {
		return nil, nil, "", newCommandError("open output directory", opts.out, err, "Choose a directory path with -o.")
	}
	return dir, func() error { return nil }, dir.Root(), nil
}

func exportTarget(opts *exportOptions) string {
	if opts.zip != "" {
		return opts.zip
	}
	return opts.out
}

func formatOf(opts model.ExportOptions) model.ExportFormat {
	if opts.Format == "" {
		return model.FormatSingle
	}
	return opts.Format
}

func cssOf(opts model.ExportOptions) model.CSSFramework {
	if opts.CSSFramework == "" {
		return model.CSSVanilla
	}
	return opts.CSSFramework
}
