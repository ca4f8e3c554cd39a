// Package delivery provides destinations for generated files: a directory on
// disk, a zip archive and a terminal writer.
package delivery

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// Func adapts a plain function to export.Deliverer.
type Func func(ctx context.Context, f model.File) error

// Deliver calls fn.
func (fn Func) Deliver(ctx context.Context, f model.File) error {
	return fn(ctx, f)
}

// Paced wraps d so that consecutive files are delivered at least interval
// apart. Waiting honours ctx cancellation. A non-positive interval returns d
// unchanged.
func Paced(d export.Deliverer, interval time.Duration) export.Deliverer {
	if interval <= 0 {
		return d
	}
	return &paced{next: d, interval: interval}
}

type paced struct {
	next     export.Deliverer
	interval time.Duration
	started  bool
}

func (p *paced) Deliver(ctx context.Context, f model.File) error {
	if p.started {
		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	p.started = true
	return p.next.Deliver(ctx, f)
}

func (p *paced) Finish(ctx context.Context) error {
	if fin, ok := p.next.(export.Finisher); ok {
		return fin.Finish(ctx)
	}
	return nil
}

// cleanName validates a generated file name and returns it in canonical
// slash form. Absolute names and names leaving the destination are rejected.
func cleanName(name string) (string, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("file name %q must be relative", name)
	}
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("file name %q escapes the destination", name)
	}
	return cleaned, nil
}
