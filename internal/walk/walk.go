// Package walk lists the eligible source files under a project root and
// reads their content.
package walk

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/agentflare-ai/boring-docs/internal/ignore"
)

// File is one eligible source file.
type File struct {
	// Root-relative path using forward slashes (e.g., "src/app.ts").
	Path    string
	AbsPath string
	Content string
}

// Dir is one directory of the walked tree. Files and Dirs are sorted by name.
type Dir struct {
	Path  string
	Files []File
	Dirs  []*Dir
}

// Options controls a walk.
type Options struct {
	// Accept reports whether a file path is a source file of interest.
	Accept func(rel string) bool
	// Ignore filters directories and files; nil applies ignore.Default only.
	Ignore *ignore.Matcher
}

// Walk reads the tree under root. Symlinks are not followed. Directories that
// end up without eligible files are kept; pruning is up to the caller.
func Walk(root string, opts Options) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walk: %s is not a directory", root)
	}
	return walkDir(root, "", opts)
}

func walkDir(root, rel string, opts Options) (*Dir, error) {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	dir := &Dir{Path: rel}
	for _, entry := range entries {
		child := path.Join(rel, entry.Name())
		if opts.Ignore.Match(child) {
			continue
		}
		switch {
		case entry.IsDir():
			sub, err := walkDir(root, child, opts)
			if err != nil {
				return nil, err
			}
			dir.Dirs = append(dir.Dirs, sub)
		case entry.Type().IsRegular():
			if opts.Accept != nil && !opts.Accept(child) {
				continue
			}
			abs := filepath.Join(root, filepath.FromSlash(child))
			data, err := os.ReadFile(abs)
			if err != nil {
				return nil, fmt.Errorf("walk: read %s: %w", child, err)
			}
			dir.Files = append(dir.Files, File{Path: child, AbsPath: abs, Content: string(data)})
		}
	}
	return dir, nil
}

// AllFiles flattens the tree in walk order: a directory's files, then each
// child directory in turn.
func (d *Dir) AllFiles() []File {
	if d == nil {
		return nil
	}
	out := append([]File(nil), d.Files...)
	for _, c := range d.Dirs {
		out = append(out, c.AllFiles()...)
	}
	return out
}
