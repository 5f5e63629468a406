// Package docmodel holds the normalized documentation schema shared by every
// source language, and folds walked files plus their parsed functions into a
// directory-shaped tree.
package docmodel

// UnknownType is the type recorded when the source carries no annotation.
const UnknownType = "any"

// Param describes one declared parameter.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Return describes one documented return value.
type Return struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Throw describes one documented exception.
type Throw struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Function is the normalized documentation of one declaration. Name is never
// empty.
type Function struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []Param  `json:"params"`
	Returns     []Return `json:"returns"`
	Throws      []Throw  `json:"throws"`
	Doc         string   `json:"doc"`
	Line        int      `json:"line"`
}

// File is one source file with the functions found in it, in source order.
type File struct {
	Path      string     `json:"path"`
	Language  Language   `json:"language"`
	Content   string     `json:"-"`
	Functions []Function `json:"functions"`
}

// Directory mirrors one directory of the scanned tree. Path is relative to
// the root and slash separated; the root itself has an empty Path.
type Directory struct {
	Path     string       `json:"path"`
	Files    []File       `json:"files"`
	Children []*Directory `json:"children"`
}

// Documented reports whether the directory or any descendant holds a file
// with at least one function.
func (d *Directory) Documented() bool {
	if d == nil {
		return false
	}
	for _, f := range d.Files {
		if len(f.Functions) > 0 {
			return true
		}
	}
	for _, c := range d.Children {
		if c.Documented() {
			return true
		}
	}
	return false
}

// Walk visits every file depth first: a directory's own files come before
// its children.
func (d *Directory) Walk(fn func(dir *Directory, f File)) {
	if d == nil {
		return
	}
	for _, f := range d.Files {
		fn(d, f)
	}
	for _, c := range d.Children {
		c.Walk(fn)
	}
}

// FunctionCount returns the number of functions in the whole tree.
func (d *Directory) FunctionCount() int {
	n := 0
	d.Walk(func(_ *Directory, f File) { n += len(f.Functions) })
	return n
}
