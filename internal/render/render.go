// Package render turns the documentation tree into Markdown pages.
package render

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// Page is one generated Markdown file. Dir is relative to the output root
// and slash separated; the root is "".
type Page struct {
	Filename string
	Dir      string
	Content  string
	// Source is the root-relative source path; empty for the home page.
	Source string
}

// Path is the page location relative to the output root.
func (p Page) Path() string {
	return path.Join(p.Dir, p.Filename)
}

// Options tunes page output.
type Options struct {
	// ShowReturns adds a Returns table to each function section.
	ShowReturns bool
}

// Renderer renders pages. It holds no per-run state.
type Renderer struct {
	options Options
}

// New returns a renderer.
func New(opts Options) *Renderer {
	return &Renderer{options: opts}
}

// Pages renders one page per file in tree order: a directory's files, then
// its children.
func (r *Renderer) Pages(root *docmodel.Directory) []Page {
	var pages []Page
	root.Walk(func(dir *docmodel.Directory, f docmodel.File) {
		pages = append(pages, r.File(f))
	})
	return pages
}

// File renders a single file page.
func (r *Renderer) File(f docmodel.File) Page {
	dir, base := path.Split(f.Path)
	name := strings.TrimSuffix(base, path.Ext(base))
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s", name)
	for _, fn := range f.Functions {
		r.renderFunction(&buf, fn)
	}
	return Page{
		Filename: name + ".md",
		Dir:      strings.TrimSuffix(dir, "/"),
		Content:  buf.String(),
		Source:   f.Path,
	}
}

func (r *Renderer) renderFunction(w io.Writer, fn docmodel.Function) {
	fmt.Fprintf(w, "\n\n## <code>%s</code>\n\n", fn.Name)
	if fn.Description != "" {
		fmt.Fprintf(w, "%s\n\n", fn.Description)
	}
	if len(fn.Params) > 0 {
		fmt.Fprintln(w, "### Parameters:")
		writeTableHeader(w, "Name", "Type", "Description")
		for _, p := range fn.Params {
			writeTableRow(w, p.Name, p.Type, p.Description)
		}
		fmt.Fprintln(w)
	}
	if r.options.ShowReturns && len(fn.Returns) > 0 {
		fmt.Fprintln(w, "### Returns:")
		writeTableHeader(w, "Type", "Description")
		for _, ret := range fn.Returns {
			writeTableRow(w, ret.Type, ret.Description)
		}
		fmt.Fprintln(w)
	}
	if len(fn.Throws) > 0 {
		fmt.Fprintln(w, "### Throws:")
		writeTableHeader(w, "Type", "Description")
		for _, t := range fn.Throws {
			writeTableRow(w, t.Type, t.Description)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "---\n\n")
}

func writeTableHeader(w io.Writer, cols ...string) {
	rule := make([]string, len(cols))
	for i, c := range cols {
		rule[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	fmt.Fprintf(w, "| %s |\n", strings.Join(rule, " | "))
}

func writeTableRow(w io.Writer, cells ...string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = tableCell(c)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | "))
}

func tableCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
