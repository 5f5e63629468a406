package writer

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "src", "math")
	w := New(zerolog.Nop())

	got, err := w.Write(dir, "add.md", "# add")
	require.NoError(t, err)
	assert.Equal(t, Written, got)

	data, err := os.ReadFile(filepath.Join(dir, "add.md"))
	require.NoError(t, err)
	assert.Equal(t, "# add", string(data))
}

func TestWriteNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "add.md")
	require.NoError(t, os.WriteFile(target, []byte("edited by hand"), 0o644))

	got, err := New(zerolog.Nop()).Write(dir, "add.md", "# add\n\nregenerated")
	require.NoError(t, err)
	assert.Equal(t, Skipped, got)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "edited by hand", string(data))
}

func TestWriteConcurrent(t *testing.T) {
	dir := t.TempDir()
	w := New(zerolog.Nop())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		written int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := w.Write(filepath.Join(dir, "nested"), "page.md", "content")
			assert.NoError(t, err)
			if got == Written {
				mu.Lock()
				written++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, written)
}

func TestWriteErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := New(zerolog.Nop()).Write(filepath.Join(blocker, "sub"), "x.md", "x")
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "written", Written.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
