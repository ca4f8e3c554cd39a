package delivery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// DirectoryOptions configures a Directory.
type DirectoryOptions struct {
	// Git initialises a repository in the root, if none exists, and commits
	// the delivered files when the export finishes.
	Git           bool
	CommitMessage string
	AuthorName    string
	AuthorEmail   string
}

// Directory writes files below a root directory.
type Directory struct {
	root    string
	opts    DirectoryOptions
	written []string
}

// NewDirectory returns a Directory rooted at root. A leading "~" is expanded
// and the root is made absolute.
func NewDirectory(root string, opts DirectoryOptions) (*Directory, error) {
	expanded, err := expandPath(root)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}
	if info, err := os.Stat(expanded); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", expanded)
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = "Initial commit from forgeui"
	}
	if opts.AuthorName == "" {
		opts.AuthorName = "forgeui"
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = "forgeui@localhost"
	}
	return &Directory{root: expanded, opts: opts}, nil
}

// Root returns the absolute output directory.
func (d *Directory) Root() string {
	return d.root
}

// Written returns the relative names written so far.
func (d *Directory) Written() []string {
	return append([]string(nil), d.written...)
}

// Deliver writes f atomically below the root.
func (d *Directory) Deliver(ctx context.Context, f model.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := cleanName(f.Name)
	if err != nil {
		return err
	}
	target := filepath.Join(d.root, filepath.FromSlash(name))
	if err := writeFileAtomic(target, []byte(f.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	d.written = append(d.written, name)
	return nil
}

// Finish commits the written files when Git is enabled.
func (d *Directory) Finish(ctx context.Context) error {
	if !d.opts.Git || len(d.written) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainInit(d.root, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(d.root)
	}
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	for _, name := range d.written {
		if _, err := wt.Add(name); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
	}

	_, err = wt.Commit(d.opts.CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  d.opts.AuthorName,
			Email: d.opts.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			path = home
		} else if strings.HasPrefix(path, "~/") {
			path = filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(path)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".forgeui-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
