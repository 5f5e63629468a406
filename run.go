package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentflare-ai/boring-docs/internal/annotate"
	"github.com/agentflare-ai/boring-docs/internal/config"
	"github.com/agentflare-ai/boring-docs/internal/docmodel"
	"github.com/agentflare-ai/boring-docs/internal/logging"
	"github.com/agentflare-ai/boring-docs/internal/pipeline"
	"github.com/agentflare-ai/boring-docs/internal/project"
	"github.com/agentflare-ai/boring-docs/internal/render"
	"github.com/agentflare-ai/boring-docs/internal/ui"
)

type options struct {
	cwd        string
	configPath string
	verbose    bool
	logFormat  string
	yes        bool
	example    bool
	outputDir  string
	raw        bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	// prompter is nil when stdin is not a terminal; builds then run
	// without asking.
	prompter ui.Prompter
	opts     options
}

func newCLIApp(stdout io.Writer) *cliApp {
	app := &cliApp{stdout: stdout, stderr: os.Stderr}
	if ui.IsTerminal(os.Stdin) {
		app.prompter = ui.FormPrompter{}
	}
	return app
}

func run(argv []string, stdout io.Writer) error {
	return newCLIApp(stdout).execute(argv)
}

func (app *cliApp) execute(argv []string) error {
	cmd := newRootCmd(app)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// session is the resolved state shared by all commands.
type session struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

func (app *cliApp) session() (*session, error) {
	if err := config.LoadDotEnv("."); err != nil {
		return nil, err
	}
	cwd := app.opts.cwd
	if cwd == "" {
		cwd = "."
	}
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root, app.opts.configPath)
	if err != nil {
		return nil, err
	}
	if app.opts.outputDir != "" {
		cfg.OutputDir = app.opts.outputDir
	}
	if app.opts.verbose {
		cfg.Log.Level = "debug"
	}
	if app.opts.logFormat != "" {
		cfg.Log.Format = app.opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    app.stderr,
	})
	if err != nil {
		return nil, err
	}
	return &session{root: root, cfg: cfg, log: log}, nil
}

func (s *session) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Root:        s.root,
		OutputDir:   s.cfg.OutputDir,
		HomePage:    s.cfg.HomePage,
		Ignore:      s.cfg.Ignore,
		Workers:     s.cfg.Workers,
		Name:        s.cfg.Project.Name,
		Description: s.cfg.Project.Description,
		Render:      render.Options{ShowReturns: s.cfg.Render.ShowReturns},
		Parse:       annotate.Options{DocTypeFallback: s.cfg.Parse.DocTypeFallback},
	}
}

func (app *cliApp) build(ctx context.Context) error {
	s, err := app.session()
	if err != nil {
		return err
	}
	out := ui.NewPrinter(app.stdout)

	if !app.opts.yes && app.prompter != nil {
		target := filepath.Join(s.root, filepath.FromSlash(s.cfg.OutputDir))
		ok, err := app.prompter.Confirm(ctx, fmt.Sprintf("Generate docs in %s?", target))
		if err != nil {
			return err
		}
		if !ok {
			out.Skipped("cancelled, nothing written")
			return nil
		}
	}

	res, err := pipeline.Run(ctx, s.pipelineOptions(), s.log)
	if err != nil {
		return describeRunError(err)
	}

	out.Title("%s docs for %s", res.Project.Kind.DisplayName(), filepath.Base(res.Root))
	if res.Tree.FunctionCount() == 0 {
		out.Warn("no documented functions found")
	}
	for _, p := range res.Written {
		out.Success("%s", path.Join(filepath.ToSlash(s.cfg.OutputDir), p))
	}
	for _, p := range res.Skipped {
		out.Skipped("%s already exists", path.Join(filepath.ToSlash(s.cfg.OutputDir), p))
	}
	fmt.Fprintf(app.stdout, "%d written, %d skipped, %d functions in %d of %d files\n",
		len(res.Written), len(res.Skipped), res.Tree.FunctionCount(), len(res.Pages)-1, res.Scanned)

	if app.opts.example {
		fmt.Fprintln(app.stdout)
		return app.printMarkdown(res.Home.Content, false)
	}
	return nil
}

// describeRunError adds a hint to precondition failures.
func describeRunError(err error) error {
	var pre *pipeline.PreconditionError
	if !errors.As(err, &pre) {
		return err
	}
	switch {
	case errors.Is(err, project.ErrNotDetected):
		return fmt.Errorf("%w (expected package.json or pyproject.toml)", err)
	case errors.Is(err, pipeline.ErrRootMissing):
		return fmt.Errorf("%w (check --cwd)", err)
	default:
		return err
	}
}

func (app *cliApp) initConfig() error {
	s, err := app.session()
	if err != nil {
		return err
	}
	info, err := project.Detect(s.root)
	if err != nil {
		return describeRunError(&pipeline.PreconditionError{Root: s.root, Err: err})
	}

	cfg := config.Default()
	cfg.OutputDir = s.cfg.OutputDir
	cfg.Project.Name = info.Name
	cfg.Project.Description = info.Description

	target := app.opts.configPath
	if target == "" {
		target = filepath.Join(s.root, config.FileName)
	}
	created, err := cfg.SaveToFile(target)
	if err != nil {
		return err
	}
	out := ui.NewPrinter(app.stdout)
	if created {
		out.Success("wrote %s for %s project %q", target, info.Kind.DisplayName(), info.Name)
	} else {
		out.Skipped("%s already exists", target)
	}
	return nil
}

func (app *cliApp) preview(file string) error {
	s, err := app.session()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	rel := filepath.Base(abs)
	if r, err := filepath.Rel(s.root, abs); err == nil && !strings.HasPrefix(r, "..") {
		rel = r
	}
	rel = filepath.ToSlash(rel)

	fns, err := pipeline.ParseSource(rel, string(data), annotate.Options{DocTypeFallback: s.cfg.Parse.DocTypeFallback})
	if err != nil {
		return err
	}
	if len(fns) == 0 {
		ui.NewPrinter(app.stdout).Warn("%s has no documented functions", rel)
		return nil
	}
	page := render.New(render.Options{ShowReturns: s.cfg.Render.ShowReturns}).File(docmodel.File{
		Path:      rel,
		Language:  docmodel.LanguageForPath(rel),
		Content:   string(data),
		Functions: fns,
	})
	return app.printMarkdown(page.Content, app.opts.raw)
}

// printMarkdown styles md for the terminal, or writes it verbatim when raw
// is set or stdout is not a terminal.
func (app *cliApp) printMarkdown(md string, raw bool) error {
	f, _ := app.stdout.(*os.File)
	if raw || !ui.IsTerminal(f) {
		_, err := io.WriteString(app.stdout, md)
		return err
	}
	styled, err := ui.RenderMarkdown(md, ui.DefaultWrap)
	if err != nil {
		return err
	}
	_, err = io.WriteString(app.stdout, styled)
	return err
}
