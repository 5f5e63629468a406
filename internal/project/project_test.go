package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
)

func projectDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  Info
	}{
		{
			name: "typescript",
			files: map[string]string{
				"package.json":  `{"name": "calc", "description": "Tiny arithmetic helpers", "license": "MIT"}`,
				"tsconfig.json": `{}`,
			},
			want: Info{Kind: KindTypeScript, Name: "calc", Description: "Tiny arithmetic helpers", License: "MIT"},
		},
		{
			name: "javascript with legacy license",
			files: map[string]string{
				"package.json": `{"name": "old", "license": {"type": "BSD-3-Clause", "url": "x"}}`,
			},
			want: Info{Kind: KindJavaScript, Name: "old", License: "BSD-3-Clause"},
		},
		{
			name: "poetry",
			files: map[string]string{
				"pyproject.toml": "[tool.poetry]\nname = \"geometry\"\ndescription = \"Shapes\"\nlicense = \"Apache-2.0\"\n",
			},
			want: Info{Kind: KindPython, Name: "geometry", Description: "Shapes", License: "Apache-2.0"},
		},
		{
			name: "pep 621 with license table",
			files: map[string]string{
				"pyproject.toml": "[project]\nname = \"pkg\"\ndescription = \"A package\"\nlicense = { text = \"MIT\" }\n",
			},
			want: Info{Kind: KindPython, Name: "pkg", Description: "A package", License: "MIT"},
		},
		{
			name: "pyproject wins over package.json",
			files: map[string]string{
				"pyproject.toml": "[project]\nname = \"py\"\n",
				"package.json":   `{"name": "js"}`,
			},
			want: Info{Kind: KindPython, Name: "py"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(projectDir(t, tt.files))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFailures(t *testing.T) {
	_, err := Detect(t.TempDir())
	assert.ErrorIs(t, err, ErrNotDetected)

	_, err = Detect(projectDir(t, map[string]string{"package.json": "{not json"}))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotDetected)

	_, err = Detect(projectDir(t, map[string]string{"pyproject.toml": "[project\n"}))
	assert.Error(t, err)
}

func TestInfoLanguageAndExtensions(t *testing.T) {
	ts := Info{Kind: KindTypeScript}
	assert.Equal(t, docmodel.LanguageJS, ts.Language())
	assert.Contains(t, ts.Extensions(), ".ts")
	assert.Contains(t, ts.Extensions(), ".js")

	js := Info{Kind: KindJavaScript}
	assert.Equal(t, []string{".cjs", ".js", ".jsx", ".mjs"}, js.Extensions())

	py := Info{Kind: KindPython}
	assert.Equal(t, docmodel.LanguagePython, py.Language())
	assert.Equal(t, []string{".py", ".pyi"}, py.Extensions())

	assert.Equal(t, docmodel.LanguageUnknown, Info{}.Language())
}

func TestKindDisplayName(t *testing.T) {
	assert.Equal(t, "TypeScript", KindTypeScript.DisplayName())
	assert.Equal(t, "JavaScript", KindJavaScript.DisplayName())
	assert.Equal(t, "Python", KindPython.DisplayName())
}
