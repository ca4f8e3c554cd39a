// Package export turns a component collection into generated files and hands
// them to a deliverer.
package export

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/logger"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

// Deliverer receives generated files one at a time.
type Deliverer interface {
	Deliver(ctx context.Context, f model.File) error
}

// Finisher is implemented by deliverers that need a final step once every
// file has been delivered, such as closing an archive.
type Finisher interface {
	Finish(ctx context.Context) error
}

// Frameworks looks up CSS framework descriptors for the package manifest.
type Frameworks interface {
	CSSFramework(id model.CSSFramework) (catalog.CSSFramework, bool)
}

// Result describes one export. Files is always the complete generated set;
// Delivered lists the names handed to the deliverer successfully.
type Result struct {
	Framework model.Framework
	Format    model.ExportFormat
	Files     []model.File
	Delivered []string
}

// Pending returns the files that have not been delivered.
func (r *Result) Pending() []model.File {
	done := make(map[string]struct{}, len(r.Delivered))
	for _, name := range r.Delivered {
		done[name] = struct{}{}
	}
	var pending []model.File
	for _, f := range r.Files {
		if _, ok := done[f.Name]; !ok {
			pending = append(pending, f)
		}
	}
	return pending
}

// Service generates code with the emitters of a registry.
type Service struct {
	registry   *emitter.Registry
	frameworks Frameworks
	log        *logger.Logger
}

// NewService returns a service. frameworks may be nil, in which case the
// manifest never lists a CSS framework package. log may be nil.
func NewService(registry *emitter.Registry, frameworks Frameworks, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{registry: registry, frameworks: frameworks, log: log}
}

// GenerateCode returns the single-file program for framework.
func (s *Service) GenerateCode(components []model.Component, framework model.Framework, theme model.Theme, css model.CSSFramework) (string, error) {
	e, err := s.emitter(framework)
	if err != nil {
		return "", err
	}
	var code string
	err = guard(framework, func() {
		code = e.Program(emitter.Input{Components: components, Theme: theme, CSSFramework: css})
	})
	return code, err
}

// Build generates every file of an export without delivering anything.
func (s *Service) Build(components []model.Component, framework model.Framework, theme model.Theme, opts model.ExportOptions) ([]model.File, error) {
	e, err := s.emitter(framework)
	if err != nil {
		return nil, err
	}
	info := e.Info()
	name := FileName(opts.FileName, info.Extension)
	in := emitter.Input{
		Components:   components,
		Theme:        theme,
		CSSFramework: opts.CSSFramework,
		Title:        opts.FileName,
	}

	var files []model.File
	err = guard(framework, func() {
		switch opts.Format {
		case model.FormatSingle, "":
			files = []model.File{{Name: name + info.Extension, Content: e.Program(in)}}
		case model.FormatModular:
			files = e.Files(in)
			files = append(files, model.File{Name: "package.json", Content: s.manifest(info, name, opts.CSSFramework)})
			if opts.IncludeAssets {
				files = append(files, model.File{Name: "README.md", Content: readme(info, in, name, files)})
			}
		default:
			panic(fmt.Sprintf("unsupported export format %q", opts.Format))
		}
	})
	if err != nil {
		return nil, err
	}

	if opts.Minify {
		for i := range files {
			files[i].Content = Minify(files[i].Name, files[i].Content)
		}
	}

	s.log.ForExport(framework, opts).WithFields(map[string]any{"files": len(files)}).Debug("project built")
	return files, nil
}

// Export builds the project and delivers every file in order. A generation
// failure returns a GenerationError and delivers nothing. A delivery failure
// returns a DeliveryError together with the result, whose Pending files can
// be delivered again with Deliver.
func (s *Service) Export(ctx context.Context, components []model.Component, framework model.Framework, theme model.Theme, opts model.ExportOptions, d Deliverer) (*Result, error) {
	files, err := s.Build(components, framework, theme, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Framework: framework, Format: formatOf(opts), Files: files}

	delivered, err := s.Deliver(ctx, files, d)
	result.Delivered = delivered
	if err != nil {
		return result, err
	}

	s.log.ForExport(framework, opts).WithFields(map[string]any{"files": len(delivered)}).Info("export delivered")
	return result, nil
}

// Deliver hands files to d in order and finishes d when it is a Finisher. It
// stops at the first failure or when ctx is cancelled and returns the names
// delivered so far.
func (s *Service) Deliver(ctx context.Context, files []model.File, d Deliverer) ([]string, error) {
	if d == nil {
		return nil, forgeerrors.NewDeliveryError("", fmt.Errorf("no deliverer configured"))
	}
	delivered := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return delivered, forgeerrors.NewDeliveryError(f.Name, err)
		}
		if err := d.Deliver(ctx, f); err != nil {
			s.log.ForFile(f).Error(err, "delivery failed")
			return delivered, forgeerrors.NewDeliveryError(f.Name, err)
		}
		s.log.ForFile(f).Debug("file delivered")
		delivered = append(delivered, f.Name)
	}
	if fin, ok := d.(Finisher); ok {
		if err := fin.Finish(ctx); err != nil {
			return delivered, forgeerrors.NewDeliveryError("", err)
		}
	}
	return delivered, nil
}

// Frameworks returns the info of every registered emitter.
func (s *Service) Frameworks() []emitter.Info {
	return s.registry.List()
}

// Info returns the info of the emitter for framework.
func (s *Service) Info(framework model.Framework) (emitter.Info, error) {
	e, err := s.emitter(framework)
	if err != nil {
		return emitter.Info{}, err
	}
	return e.Info(), nil
}

func (s *Service) emitter(framework model.Framework) (emitter.Emitter, error) {
	if s.registry == nil {
		return nil, forgeerrors.NewGenerationError(string(framework), fmt.Errorf("no emitters registered"))
	}
	e, err := s.registry.Get(string(framework))
	if err != nil {
		return nil, forgeerrors.NewGenerationError(string(framework), err)
	}
	return e, nil
}

// guard runs fn and converts a panic into a GenerationError so that one bad
// export cannot take the process down.
func guard(framework model.Framework, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = forgeerrors.NewGenerationError(string(framework), fmt.Errorf("%v", r))
		}
	}()
	fn()
	return nil
}

func formatOf(opts model.ExportOptions) model.ExportFormat {
	if opts.Format == "" {
		return model.FormatSingle
	}
	return opts.Format
}
