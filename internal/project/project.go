// Package project detects which kind of project lives at a root directory by
// looking for marker files, and reads its name, description and license from
// the manifest.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

// ErrNotDetected is returned when no marker file is present.
var ErrNotDetected = errors.New("no supported project detected")

// Kind is the detected project flavor.
type Kind string

const (
	KindTypeScript Kind = "ts"
	KindJavaScript Kind = "js"
	KindPython     Kind = "py"
)

const (
	packageJSON   = "package.json"
	tsconfigJSON  = "tsconfig.json"
	pyprojectTOML = "pyproject.toml"
)

// Info describes a detected project.
type Info struct {
	Kind        Kind   `json:"language" yaml:"language"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	License     string `json:"license,omitempty" yaml:"license,omitempty"`
}

// Language maps the project kind to the grammar family.
func (i Info) Language() docmodel.Language {
	switch i.Kind {
	case KindTypeScript, KindJavaScript:
		return docmodel.LanguageJS
	case KindPython:
		return docmodel.LanguagePython
	default:
		return docmodel.LanguageUnknown
	}
}

// DisplayName is the human name of the project kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindTypeScript:
		return "TypeScript"
	case KindJavaScript:
		return "JavaScript"
	case KindPython:
		return "Python"
	default:
		return string(k)
	}
}

// Extensions lists the source extensions scanned for this kind. JavaScript
// projects skip TypeScript sources; TypeScript projects include both.
func (i Info) Extensions() []string {
	if i.Kind == KindJavaScript {
		return []string{".cjs", ".js", ".jsx", ".mjs"}
	}
	return docmodel.Extensions(i.Language())
}

// Detect inspects root. A pyproject.toml wins over package.json; a
// package.json is TypeScript when tsconfig.json sits next to it.
func Detect(root string) (Info, error) {
	switch {
	case exists(filepath.Join(root, pyprojectTOML)):
		return readPyProject(filepath.Join(root, pyprojectTOML))
	case exists(filepath.Join(root, packageJSON)):
		kind := KindJavaScript
		if exists(filepath.Join(root, tsconfigJSON)) {
			kind = KindTypeScript
		}
		info, err := readPackageJSON(filepath.Join(root, packageJSON))
		info.Kind = kind
		return info, err
	default:
		return Info{}, ErrNotDetected
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type packageManifest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	License     json.RawMessage `json:"license"`
}

func readPackageJSON(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	var m packageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Info{}, fmt.Errorf("project: parse %s: %w", packageJSON, err)
	}
	info := Info{Name: m.Name, Description: m.Description}
	// "license" is usually a string; the legacy form is {"type": "MIT"}.
	var license string
	if json.Unmarshal(m.License, &license) == nil {
		info.License = license
	} else {
		var legacy struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(m.License, &legacy) == nil {
			info.License = legacy.Type
		}
	}
	return info, nil
}

type pyprojectManifest struct {
	Project struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
		License     any    `toml:"license"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name        string `toml:"name"`
			Description string `toml:"description"`
			License     string `toml:"license"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func readPyProject(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	var m pyprojectManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Info{}, fmt.Errorf("project: parse %s: %w", pyprojectTOML, err)
	}
	info := Info{
		Kind:        KindPython,
		Name:        m.Tool.Poetry.Name,
		Description: m.Tool.Poetry.Description,
		License:     m.Tool.Poetry.License,
	}
	if info.Name == "" {
		info.Name = m.Project.Name
	}
	if info.Description == "" {
		info.Description = m.Project.Description
	}
	if info.License == "" {
		info.License = pep621License(m.Project.License)
	}
	return info, nil
}

// pep621License accepts both `license = "MIT"` and `license = { text = "MIT" }`.
func pep621License(v any) string {
	switch l := v.(type) {
	case string:
		return strings.TrimSpace(l)
	case map[string]any:
		if text, ok := l["text"].(string); ok {
			return strings.TrimSpace(text)
		}
	}
	return ""
}
