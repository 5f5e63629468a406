package render

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// DescriptionPlaceholder is shown when the project has no description.
const DescriptionPlaceholder = "Description"

// Home carries what the index page shows.
type Home struct {
	Filename    string
	Title       string
	Description string
	License     string
	// RootName labels the top of the tree, usually the project directory.
	RootName string
	Tree     *docmodel.Directory
	// Pages are linked from the reference list, in the given order.
	Pages []Page
}

// Home renders the index page.
func (r *Renderer) Home(h Home) Page {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", h.Title)
	desc := strings.TrimSpace(h.Description)
	if desc == "" {
		desc = DescriptionPlaceholder
	}
	fmt.Fprintf(&buf, "%s\n\n", desc)

	fmt.Fprint(&buf, "## Project Structure\n\n")
	fmt.Fprintf(&buf, "```text\n%s\n```\n\n", Tree(h.RootName, h.Tree))

	if len(h.Pages) > 0 {
		fmt.Fprint(&buf, "## Reference\n\n")
		for _, p := range h.Pages {
			title := strings.TrimSuffix(p.Path(), ".md")
			if p.Source != "" {
				title = p.Source
			}
			fmt.Fprintf(&buf, "- [%s](%s)\n", title, p.Path())
		}
		fmt.Fprintln(&buf)
	}
	if h.License != "" {
		fmt.Fprintf(&buf, "## License\n\n%s\n", h.License)
	}
	return Page{Filename: h.Filename, Content: buf.String()}
}

// Tree draws dir the way the tree command does:
//
//	project
//	├── src
//	│   └── add.ts
//	└── index.ts
//
// Directories and files are interleaved alphabetically.
func Tree(rootName string, dir *docmodel.Directory) string {
	if rootName == "" {
		rootName = "."
	}
	var sb strings.Builder
	sb.WriteString(rootName)
	sb.WriteString("\n")
	renderTree(&sb, dir, "")
	return strings.TrimRight(sb.String(), "\n")
}

type treeNode struct {
	name string
	dir  *docmodel.Directory
}

func renderTree(sb *strings.Builder, dir *docmodel.Directory, prefix string) {
	if dir == nil {
		return
	}
	nodes := make([]treeNode, 0, len(dir.Files)+len(dir.Children))
	for _, f := range dir.Files {
		nodes = append(nodes, treeNode{name: path.Base(f.Path)})
	}
	for _, c := range dir.Children {
		nodes = append(nodes, treeNode{name: path.Base(c.Path), dir: c})
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].name < nodes[j].name })

	for i, n := range nodes {
		isLast := i == len(nodes)-1
		sb.WriteString(prefix)
		if isLast {
			sb.WriteString("└── ")
		} else {
			sb.WriteString("├── ")
		}
		sb.WriteString(n.name)
		sb.WriteString("\n")

		if n.dir != nil {
			next := prefix
			if isLast {
				next += "    "
			} else {
				next += "│   "
			}
			renderTree(sb, n.dir, next)
		}
	}
}
