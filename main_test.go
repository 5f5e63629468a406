package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/boring-docs/internal/config"
	"github.com/agentflare-ai/boring-docs/internal/fixture"
	"github.com/agentflare-ai/boring-docs/internal/pipeline"
	"github.com/agentflare-ai/boring-docs/internal/project"
	"github.com/agentflare-ai/boring-docs/internal/ui"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBuildTypeScriptProject(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")

	var buf bytes.Buffer
	require.NoError(t, run([]string{"build", "--cwd", dir, "--yes"}, &buf))
	assert.Contains(t, buf.String(), "docs/src/math/add.md")
	assert.Contains(t, buf.String(), "2 written, 0 skipped")

	page := readFile(t, filepath.Join(dir, "docs", "src", "math", "add.md"))
	assert.Contains(t, page, "# add")
	assert.Contains(t, page, "## <code>add</code>\n\nAdds two numbers.")
	assert.Contains(t, page, "| a | number | first operand |")
	assert.Contains(t, page, "## <code>divide</code>")
	assert.Contains(t, page, "| RangeError | when b is zero |")

	home := readFile(t, filepath.Join(dir, "docs", "home.md"))
	assert.Contains(t, home, "# calc\n\nTiny arithmetic helpers")
	assert.Contains(t, home, "└── src\n    └── math\n        └── add.ts")
	assert.Contains(t, home, "- [src/math/add.ts](src/math/add.md)")
	assert.Contains(t, home, "## License\n\nMIT")

	assert.NoFileExists(t, filepath.Join(dir, "docs", "src", "plain.md"))
	assert.NoDirExists(t, filepath.Join(dir, "docs", "node_modules"))
}

func TestBuildKeepsExistingPages(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	require.NoError(t, run([]string{"--cwd", dir, "-y"}, io.Discard))

	edited := filepath.Join(dir, "docs", "home.md")
	require.NoError(t, os.WriteFile(edited, []byte("hand written"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, run([]string{"--cwd", dir, "-y"}, &buf))
	assert.Contains(t, buf.String(), "0 written, 2 skipped")
	assert.Equal(t, "hand written", readFile(t, edited))
}

func TestBuildPythonProject(t *testing.T) {
	dir := fixture.Load(t, "testdata/py-project.txtar")
	require.NoError(t, run([]string{"build", "-c", dir, "-y"}, io.Discard))

	page := readFile(t, filepath.Join(dir, "docs", "geometry", "area.md"))
	assert.Contains(t, page, "## <code>circle</code>\n\nArea of a circle.")
	assert.Contains(t, page, "| radius | float | the radius |")
	assert.Contains(t, page, "| precise | bool | use a precise pi |")
	assert.Contains(t, page, "| ValueError | when radius is negative |")
	assert.Contains(t, page, "| side | int | length of a side in any unit. |")
	assert.NotContains(t, page, "| self |")

	home := readFile(t, filepath.Join(dir, "docs", "home.md"))
	assert.Contains(t, home, "# geometry\n\nShapes and areas")
	assert.NotContains(t, home, "scripts")
	assert.NoDirExists(t, filepath.Join(dir, "docs", "scripts"))
}

func TestBuildCustomOutputDir(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	require.NoError(t, run([]string{"--cwd", dir, "-y", "-o", "reference"}, io.Discard))
	assert.FileExists(t, filepath.Join(dir, "reference", "home.md"))
	assert.FileExists(t, filepath.Join(dir, "reference", "src", "math", "add.md"))
	assert.NoDirExists(t, filepath.Join(dir, "docs"))
}

func TestBuildExamplePrintsHome(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--cwd", dir, "-y", "--example"}, &buf))
	assert.Contains(t, buf.String(), "## Project Structure")
}

func TestBuildConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		err     error
		wantOut string
		wantErr error
		written bool
	}{
		{name: "accepted", answer: true, wantOut: "2 written", written: true},
		{name: "declined", wantOut: "cancelled, nothing written"},
		{name: "aborted", err: ui.ErrAborted, wantErr: ui.ErrAborted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := fixture.Load(t, "testdata/ts-project.txtar")
			var buf bytes.Buffer
			var asked string
			app := &cliApp{
				stdout: &buf,
				stderr: io.Discard,
				prompter: ui.PrompterFunc(func(_ context.Context, q string) (bool, error) {
					asked = q
					return tt.answer, tt.err
				}),
			}

			err := app.execute([]string{"--cwd", dir})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, asked, filepath.Join(dir, "docs"))
			assert.Contains(t, buf.String(), tt.wantOut)
			if tt.written {
				assert.FileExists(t, filepath.Join(dir, "docs", "home.md"))
			} else {
				assert.NoDirExists(t, filepath.Join(dir, "docs"))
			}
		})
	}
}

func TestBuildYesSkipsConfirmation(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	app := &cliApp{
		stdout: io.Discard,
		stderr: io.Discard,
		prompter: ui.PrompterFunc(func(context.Context, string) (bool, error) {
			t.Fatal("prompted despite --yes")
			return false, nil
		}),
	}
	require.NoError(t, app.execute([]string{"--cwd", dir, "--yes"}))
	assert.FileExists(t, filepath.Join(dir, "docs", "home.md"))
}

func TestBuildWarnsWhenNothingDocumented(t *testing.T) {
	dir := fixture.Parse(t, `
-- package.json --
{"name": "bare"}
-- index.js --
function noDocs() {}
`)
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--cwd", dir, "-y"}, &buf))
	assert.Contains(t, buf.String(), "no documented functions found")
	assert.Contains(t, buf.String(), "1 written, 0 skipped, 0 functions in 0 of 1 files")
	assert.FileExists(t, filepath.Join(dir, "docs", "home.md"))
}

func TestBuildWithoutProject(t *testing.T) {
	err := run([]string{"--cwd", t.TempDir(), "-y"}, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, project.ErrNotDetected)
	var pre *pipeline.PreconditionError
	assert.ErrorAs(t, err, &pre)
}

func TestBuildMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	err := run([]string{"--cwd", missing, "-y"}, io.Discard)
	assert.ErrorIs(t, err, pipeline.ErrRootMissing)
	assert.NoDirExists(t, missing)
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")

	var buf bytes.Buffer
	require.NoError(t, run([]string{"init", "--cwd", dir}, &buf))
	assert.Contains(t, buf.String(), "TypeScript project \"calc\"")

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "calc", cfg.Project.Name)
	assert.Equal(t, "docs", cfg.OutputDir)

	buf.Reset()
	require.NoError(t, run([]string{"init", "--cwd", dir}, &buf))
	assert.Contains(t, buf.String(), "already exists")
}

func TestPreviewRaw(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	var buf bytes.Buffer
	err := run([]string{"preview", "--cwd", dir, "--raw", filepath.Join(dir, "src", "math", "add.ts")}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# add\n\n## <code>add</code>")
	assert.NoDirExists(t, filepath.Join(dir, "docs"))
}

func TestPreviewUndocumented(t *testing.T) {
	dir := fixture.Load(t, "testdata/ts-project.txtar")
	var buf bytes.Buffer
	require.NoError(t, run([]string{"preview", "--cwd", dir, filepath.Join(dir, "src", "plain.ts")}, &buf))
	assert.Contains(t, buf.String(), "src/plain.ts has no documented functions")
}

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--help"}, &buf))
	out := buf.String()
	assert.Contains(t, out, "boring-docs [flags]")
	assert.Contains(t, out, "--cwd")
	assert.Contains(t, out, "completion  Generate shell completion scripts")
	assert.Contains(t, out, "preview     Print the page a single source file would produce")
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"completion", "bash"}, &buf))
	require.NotZero(t, buf.Len(), "expected completion output")
	assert.Contains(t, buf.String(), "__start_boring-docs")
}

func TestShellCompletions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"__complete", "preview", ""}, &buf))
	assert.Contains(t, buf.String(), "\nts\n")
	assert.Contains(t, buf.String(), "\npy\n")
	assert.Contains(t, buf.String(), ":8\n")

	buf.Reset()
	require.NoError(t, run([]string{"__complete", "--log-format", ""}, &buf))
	assert.Equal(t, "console\njson\n:4\n", buf.String())
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, run([]string{"gen-docs", tmp}, io.Discard))
	assert.FileExists(t, filepath.Join(tmp, "boring-docs.md"))
	assert.FileExists(t, filepath.Join(tmp, "boring-docs_build.md"))
}
