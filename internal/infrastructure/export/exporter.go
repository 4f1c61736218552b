// Package export serializes engine outputs (declarations, summaries, match
// lists) into deliverable artifacts. Serializers return raw bytes; delivery
// goes through a Sink so tests capture output instead of touching the host.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is one named, ready-to-deliver export payload.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Sink delivers artifacts. Implementations must not be assumed durable
// until Deliver returns nil.
type Sink interface {
	Deliver(ctx context.Context, artifact Artifact) error
}

// DirectorySink writes artifacts into a local directory.
type DirectorySink struct {
	Dir string
}

// NewDirectorySink creates a sink rooted at dir
func NewDirectorySink(dir string) *DirectorySink {
	return &DirectorySink{Dir: dir}
}

// Deliver writes the artifact to <dir>/<filename>. A failure here concerns
// this delivery only; computed figures held by the caller stay intact.
func (s *DirectorySink) Deliver(_ context.Context, artifact Artifact) error {
	if artifact.Filename == "" {
		return fmt.Errorf("artifact filename is required")
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
