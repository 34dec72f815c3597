package meshviewer

import "context"

// Target represents an artifact output destination.
type Target interface {
	// Write stores a rendered artifact, replacing any previous one with the same name.
	Write(ctx context.Context, artifact *Artifact) error

	// Close cleans up the target.
	Close() error

	// Name returns a descriptive name for logging.
	Name() string
}
