package meshviewer

import (
	"context"
	"sync"
)

// MemoryTarget keeps written artifacts in memory, in write order.
type MemoryTarget struct {
	mu        sync.RWMutex
	artifacts []*Artifact
	closed    bool
}

// NewMemoryTarget creates an empty MemoryTarget.
func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{}
}

// Name implements Target.
func (t *MemoryTarget) Name() string {
	return "MemoryTarget"
}

// Write implements Target. An artifact with an existing name replaces the
// stored one in place.
func (t *MemoryTarget) Write(ctx context.Context, artifact *Artifact) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return NewError(CodeRenderIOFailure, "memory target closed")
	}
	for i, a := range t.artifacts {
		if a.Name == artifact.Name {
			t.artifacts[i] = artifact
			return nil
		}
	}
	t.artifacts = append(t.artifacts, artifact)
	return nil
}

// Artifacts returns the stored artifacts.
func (t *MemoryTarget) Artifacts() []*Artifact {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]*Artifact, len(t.artifacts))
	copy(result, t.artifacts)
	return result
}

// Get returns the artifact named name.
func (t *MemoryTarget) Get(name string) (*Artifact, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, a := range t.artifacts {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Close implements Target. Later writes fail.
func (t *MemoryTarget) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

var _ Target = (*MemoryTarget)(nil)
