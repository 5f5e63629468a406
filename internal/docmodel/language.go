package docmodel

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedLanguage is returned when extraction or parsing is asked to
// handle a language other than the JavaScript family or Python.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects the extraction and annotation grammar for a file.
type Language int

const (
	LanguageUnknown Language = iota
	// LanguageJS covers TypeScript and JavaScript sources.
	LanguageJS
	LanguagePython
)

func (l Language) String() string {
	switch l {
	case LanguageJS:
		return "typescript/javascript"
	case LanguagePython:
		return "python"
	default:
		return "unknown"
	}
}

var extensionLanguages = map[string]Language{
	".ts":  LanguageJS,
	".tsx": LanguageJS,
	".mts": LanguageJS,
	".cts": LanguageJS,
	".js":  LanguageJS,
	".jsx": LanguageJS,
	".mjs": LanguageJS,
	".cjs": LanguageJS,
	".py":  LanguagePython,
	".pyi": LanguagePython,
}

// LanguageForPath derives the language from the file extension.
func LanguageForPath(path string) Language {
	return extensionLanguages[strings.ToLower(filepath.Ext(path))]
}

// Extensions lists the file extensions recognized for lang, sorted.
func Extensions(lang Language) []string {
	var exts []string
	for _, ext := range []string{".cjs", ".cts", ".js", ".jsx", ".mjs", ".mts", ".py", ".pyi", ".ts", ".tsx"} {
		if extensionLanguages[ext] == lang {
			exts = append(exts, ext)
		}
	}
	return exts
}
