package delivery

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// archiveTime is stamped on every entry so identical exports produce
// identical archives.
var archiveTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Archive writes files into a zip stream. Finish must be called to write the
// central directory.
type Archive struct {
	zw    *zip.Writer
	names map[string]struct{}
}

// NewArchive returns an Archive writing to w.
func NewArchive(w io.Writer) *Archive {
	return &Archive{zw: zip.NewWriter(w), names: map[string]struct{}{}}
}

// Deliver adds f as a compressed entry. A name delivered twice is an error.
func (a *Archive) Deliver(ctx context.Context, f model.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := cleanName(f.Name)
	if err != nil {
		return err
	}
	if _, dup := a.names[name]; dup {
		return fmt.Errorf("duplicate archive entry %s", name)
	}

	entry, err := a.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: archiveTime,
	})
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.WriteString(entry, f.Content); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	a.names[name] = struct{}{}
	return nil
}

// Finish closes the archive.
func (a *Archive) Finish(context.Context) error {
	return a.zw.Close()
}
