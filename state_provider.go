package meshviewer

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// SnapshotProvider provides the snapshots of one simulation run.
type SnapshotProvider interface {
	// GetSnapshots returns the snapshots in the order they were recorded.
	GetSnapshots() ([]Snapshot, error)
}

// FileSnapshotProvider reads snapshots from a JSON file written by the simulator.
type FileSnapshotProvider struct {
	path string
}

// NewFileSnapshotProvider creates a SnapshotProvider reading path.
func NewFileSnapshotProvider(path string) *FileSnapshotProvider {
	return &FileSnapshotProvider{path: path}
}

// Path returns the file the provider reads.
func (p *FileSnapshotProvider) Path() string {
	return p.path
}

// GetSnapshots implements SnapshotProvider.
// The file is fully read and closed before decoding starts.
func (p *FileSnapshotProvider) GetSnapshots() ([]Snapshot, error) {
	data, err := p.read()
	if err != nil {
		return nil, err
	}
	return DecodeSnapshots(data)
}

func (p *FileSnapshotProvider) read() ([]byte, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, WrapError(CodeInputMissing, p.path+" not found", err)
		}
		return nil, WrapError(CodeDecodeFailure, "open "+p.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, WrapError(CodeDecodeFailure, "read "+p.path, err)
	}
	return data, nil
}

// StaticSnapshotProvider wraps a fixed list of snapshots.
type StaticSnapshotProvider struct {
	snapshots []Snapshot
}

// NewStaticSnapshotProvider creates a SnapshotProvider from fixed snapshots.
func NewStaticSnapshotProvider(snapshots []Snapshot) *StaticSnapshotProvider {
	return &StaticSnapshotProvider{snapshots: snapshots}
}

// GetSnapshots implements SnapshotProvider.
func (p *StaticSnapshotProvider) GetSnapshots() ([]Snapshot, error) {
	return p.snapshots, nil
}

// CallbackSnapshotProvider calls a function to get snapshots.
type CallbackSnapshotProvider struct {
	fn func() ([]Snapshot, error)
}

// NewCallbackSnapshotProvider creates a SnapshotProvider from a callback function.
func NewCallbackSnapshotProvider(fn func() ([]Snapshot, error)) *CallbackSnapshotProvider {
	return &CallbackSnapshotProvider{fn: fn}
}

// GetSnapshots implements SnapshotProvider.
func (p *CallbackSnapshotProvider) GetSnapshots() ([]Snapshot, error) {
	return p.fn()
}
