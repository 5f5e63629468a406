// Package writer persists generated pages. Existing files are never
// overwritten: a rerun leaves earlier output untouched.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Outcome reports what happened to one file.
type Outcome int

const (
	Written Outcome = iota + 1
	// Skipped means a file already existed at the destination.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Writer creates files under directories it creates on demand. It is safe
// for concurrent use; directory creation and file creation are serialized.
type Writer struct {
	mu  sync.Mutex
	log zerolog.Logger
}

// New returns a Writer logging through log.
func New(log zerolog.Logger) *Writer {
	return &Writer{log: log.With().Str("component", "writer").Logger()}
}

// Write creates dir (recursively) and writes content to dir/name unless a
// file already exists there.
func (w *Writer) Write(dir, name, content string) (Outcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("writer: create %s: %w", dir, err)
	}
	target := filepath.Join(dir, name)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return Skipped, nil
	}
	if err != nil {
		return 0, fmt.Errorf("writer: create %s: %w", target, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return 0, fmt.Errorf("writer: write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("writer: close %s: %w", target, err)
	}
	w.log.Debug().Str("path", target).Int("bytes", len(content)).Msg("page written")
	return Written, nil
}
