package meshviewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileTarget writes artifacts into a directory.
type FileTarget struct {
	dir     string
	perm    os.FileMode
	mu      sync.Mutex
	created bool
}

// FileOption configures a FileTarget.
type FileOption func(*FileTarget)

// WithFileMode sets the permission bits of written files.
func WithFileMode(perm os.FileMode) FileOption {
	return func(t *FileTarget) {
		t.perm = perm
	}
}

// NewFileTarget creates a target that writes artifacts into dir.
// The directory is created on the first write.
func NewFileTarget(dir string, opts ...FileOption) *FileTarget {
	if dir == "" {
		dir = "."
	}
	target := &FileTarget{
		dir:  dir,
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(target)
	}
	return target
}

// Name implements Target.
func (t *FileTarget) Name() string {
	return fmt.Sprintf("FileTarget(%s)", t.dir)
}

// Path returns the location an artifact named name is written to.
func (t *FileTarget) Path(name string) string {
	return filepath.Join(t.dir, name)
}

// Write implements Target.
func (t *FileTarget) Write(ctx context.Context, artifact *Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.ensureDir(); err != nil {
		return err
	}

	path := t.Path(artifact.Name)
	if err := os.WriteFile(path, artifact.Data, t.perm); err != nil {
		return WrapError(CodeRenderIOFailure, "write "+path, err)
	}
	return nil
}

func (t *FileTarget) ensureDir() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.created {
		return nil
	}
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return WrapError(CodeRenderIOFailure, "create output directory "+t.dir, err)
	}
	t.created = true
	return nil
}

// Close implements Target.
func (t *FileTarget) Close() error {
	return nil
}

var _ Target = (*FileTarget)(nil)
