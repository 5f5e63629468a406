package docmodel

import (
	"github.com/agentflare-ai/boring-docs/internal/walk"
)

// Build folds the walked tree and the parsed functions (keyed by file path)
// into a Directory tree. Files absent from parsed get no functions.
func Build(root *walk.Dir, parsed map[string][]Function) *Directory {
	if root == nil {
		return nil
	}
	dir := &Directory{Path: root.Path}
	for _, f := range root.Files {
		dir.Files = append(dir.Files, File{
			Path:      f.Path,
			Language:  LanguageForPath(f.Path),
			Content:   f.Content,
			Functions: parsed[f.Path],
		})
	}
	for _, c := range root.Dirs {
		dir.Children = append(dir.Children, Build(c, parsed))
	}
	return dir
}

// Prune returns a copy of the tree without undocumented files and without
// directories that hold no documented file at any depth. The root is always
// returned, possibly empty.
func (d *Directory) Prune() *Directory {
	if d == nil {
		return nil
	}
	out := &Directory{Path: d.Path}
	for _, f := range d.Files {
		if len(f.Functions) > 0 {
			out.Files = append(out.Files, f)
		}
	}
	for _, c := range d.Children {
		if c.Documented() {
			out.Children = append(out.Children, c.Prune())
		}
	}
	return out
}
