// Package pipeline runs one documentation build: walk the project, extract
// and parse documented functions, fold them into a tree, render pages and
// write them under the output directory.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentflare-ai/boring-docs/internal/annotate"
	"github.com/agentflare-ai/boring-docs/internal/docmodel"
	"github.com/agentflare-ai/boring-docs/internal/extract"
	"github.com/agentflare-ai/boring-docs/internal/ignore"
	"github.com/agentflare-ai/boring-docs/internal/project"
	"github.com/agentflare-ai/boring-docs/internal/render"
	"github.com/agentflare-ai/boring-docs/internal/walk"
	"github.com/agentflare-ai/boring-docs/internal/writer"
)

// ErrRootMissing is wrapped in a PreconditionError when the root does not
// exist or is not a directory.
var ErrRootMissing = errors.New("project root does not exist")

// PreconditionError reports a run that cannot start: the root is missing or
// no project type could be detected.
type PreconditionError struct {
	Root string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Root, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// Options configures a run.
type Options struct {
	Root string
	// OutputDir is relative to Root.
	OutputDir string
	HomePage  string
	// Ignore adds glob patterns to the built-in ignore list.
	Ignore  []string
	Workers int
	// Project skips detection when set.
	Project *project.Info
	// Name and Description override the manifest when non-empty.
	Name        string
	Description string
	Render      render.Options
	Parse       annotate.Options
}

func (o Options) outputDir() string {
	if o.OutputDir == "" {
		return "docs"
	}
	return o.OutputDir
}

func (o Options) homePage() string {
	if o.HomePage == "" {
		return "home.md"
	}
	return o.HomePage
}

// Analysis is the in-memory result of scanning a project.
type Analysis struct {
	Root    string
	Project project.Info
	// Tree holds only documented files and the directories leading to them.
	Tree *docmodel.Directory
	// Scanned is the number of eligible source files read.
	Scanned int
}

// Result describes a completed run.
type Result struct {
	*Analysis
	// Pages are the file pages in tree order followed by the home page.
	Pages   []render.Page
	Home    render.Page
	Written []string
	Skipped []string
}

// Analyze walks, extracts and parses without writing anything.
func Analyze(ctx context.Context, opts Options, log zerolog.Logger) (*Analysis, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, &PreconditionError{Root: opts.Root, Err: err}
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, &PreconditionError{Root: root, Err: ErrRootMissing}
	}

	var info project.Info
	if opts.Project != nil {
		info = *opts.Project
	} else {
		info, err = project.Detect(root)
		if err != nil {
			return nil, &PreconditionError{Root: root, Err: err}
		}
	}
	if opts.Name != "" {
		info.Name = opts.Name
	}
	if opts.Description != "" {
		info.Description = opts.Description
	}
	log = log.With().Str("root", root).Str("language", string(info.Kind)).Logger()

	matcher, err := ignore.New(opts.Ignore...)
	if err != nil {
		return nil, err
	}
	matcher.Skip(filepath.ToSlash(opts.outputDir()))

	tree, err := walk.Walk(root, walk.Options{
		Accept: acceptExtensions(info.Extensions()),
		Ignore: matcher,
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	files := tree.AllFiles()
	log.Debug().Int("files", len(files)).Msg("source files found")

	parsed, err := parseFiles(ctx, files, opts, log)
	if err != nil {
		return nil, err
	}
	model := docmodel.Build(tree, parsed).Prune()
	log.Debug().Int("functions", model.FunctionCount()).Msg("functions documented")

	return &Analysis{Root: root, Project: info, Tree: model, Scanned: len(files)}, nil
}

// Run analyzes the project and writes its pages. Pages that already exist
// on disk are left untouched and reported as skipped.
func Run(ctx context.Context, opts Options, log zerolog.Logger) (*Result, error) {
	analysis, err := Analyze(ctx, opts, log)
	if err != nil {
		return nil, err
	}
	res := &Result{Analysis: analysis}

	r := render.New(opts.Render)
	pages := r.Pages(analysis.Tree)
	res.Home = r.Home(render.Home{
		Filename:    opts.homePage(),
		Title:       title(analysis.Project),
		Description: analysis.Project.Description,
		License:     analysis.Project.License,
		RootName:    filepath.Base(analysis.Root),
		Tree:        analysis.Tree,
		Pages:       pages,
	})
	res.Pages = append(pages, res.Home)

	outRoot := filepath.Join(analysis.Root, filepath.FromSlash(opts.outputDir()))
	w := writer.New(log)
	for _, p := range res.Pages {
		outcome, err := w.Write(filepath.Join(outRoot, filepath.FromSlash(p.Dir)), p.Filename, p.Content)
		if err != nil {
			return res, err
		}
		if outcome == writer.Skipped {
			res.Skipped = append(res.Skipped, p.Path())
		} else {
			res.Written = append(res.Written, p.Path())
		}
	}
	log.Info().
		Int("pages", len(res.Pages)).
		Int("written", len(res.Written)).
		Int("skipped", len(res.Skipped)).
		Str("output", outRoot).
		Msg("docs generated")
	return res, nil
}

// ParseSource extracts and parses the documented functions of one file. The
// language is taken from the path's extension.
func ParseSource(path, content string, opts annotate.Options) ([]docmodel.Function, error) {
	lang := docmodel.LanguageForPath(path)
	matches, err := extract.Extract(content, lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return annotate.ParseAll(lang, matches, opts)
}

// parseFiles parses files on a bounded worker pool. Results land in a slice
// indexed like files, so the outcome does not depend on scheduling.
func parseFiles(ctx context.Context, files []walk.File, opts Options, log zerolog.Logger) (map[string][]docmodel.Function, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([][]docmodel.Function, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fns, err := ParseSource(f.Path, f.Content, opts.Parse)
			if err != nil {
				return err
			}
			results[i] = fns
			log.Debug().Str("file", f.Path).Int("functions", len(fns)).Msg("parsed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parsed := make(map[string][]docmodel.Function, len(files))
	for i, f := range files {
		parsed[f.Path] = results[i]
	}
	return parsed, nil
}

func acceptExtensions(exts []string) func(string) bool {
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[ext] = struct{}{}
	}
	return func(rel string) bool {
		_, ok := allowed[strings.ToLower(filepath.Ext(rel))]
		return ok
	}
}

// title is the home page heading: the project name, or a generic label for
// the project's language.
func title(info project.Info) string {
	if name := strings.TrimSpace(info.Name); name != "" {
		return name
	}
	return info.Kind.DisplayName() + " Project"
}
