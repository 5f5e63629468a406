package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/boring-docs/internal/docmodel"
	"github.com/agentflare-ai/boring-docs/internal/logging"
)

const rootLongDesc = `
boring-docs turns the doc comments of a TypeScript, JavaScript or Python project
into a tree of Markdown pages. It reads JSDoc blocks above function and arrow
function declarations and docstrings below def statements, and writes:

  • one page per documented source file, mirroring the source directories
  • a home page with the project description, a file tree and links to every page

Existing pages are never overwritten, so hand edits survive later runs. Delete a
page to have it regenerated.
`

func newRootCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "boring-docs [flags]",
		Short:         "Generate Markdown docs from TypeScript, JavaScript and Python doc comments",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(app.stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&app.opts.cwd, "cwd", "c", ".", "project root to document")
	pflags.StringVar(&app.opts.configPath, "config", "", "config file (default <cwd>/.boring-docs.yaml)")
	pflags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log debug output")
	pflags.StringVar(&app.opts.logFormat, "log-format", "", "log format: console or json")
	_ = cmd.MarkPersistentFlagDirname("cwd")
	_ = cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions(
		[]string{logging.FormatConsole, logging.FormatJSON}, cobra.ShellCompDirectiveNoFileComp))
	bindBuildFlags(cmd.Flags(), &app.opts)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.build(commandContext(cmd))
	}

	cmd.AddCommand(newBuildCmd(app))
	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func bindBuildFlags(flags *pflag.FlagSet, opts *options) {
	flags.BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation prompt")
	flags.BoolVarP(&opts.example, "example", "e", false, "print the generated home page when done")
	flags.StringVarP(&opts.outputDir, "output", "o", "", "output directory relative to the project root (default docs)")
	_ = cobra.MarkFlagDirname(flags, "output")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newBuildCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the Markdown docs (the default command)",
		Long: strings.TrimSpace(`
Scan the project, parse doc comments and write pages under the output
directory. Pages that already exist are left untouched.

Example:

  boring-docs build --cwd ./my-lib --yes
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindBuildFlags(cmd.Flags(), &app.opts)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.build(commandContext(cmd))
	}
	return cmd
}

func newInitCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .boring-docs.yaml for the project",
		Long: strings.TrimSpace(`
Detect the project and write a configuration file with the default settings
and the detected name and description. An existing file is kept.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.initConfig()
	}
	return cmd
}

func newPreviewCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Print the page a single source file would produce",
		Long: strings.TrimSpace(`
Parse one source file and print its page without writing anything. The page is
styled for the terminal unless --raw is given or stdout is not a terminal.

Example:

  boring-docs preview src/math/add.ts
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&app.opts.raw, "raw", false, "print the Markdown source")
	cmd.ValidArgsFunction = completeSourceFiles
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.preview(args[0])
	}
	return cmd
}

// completeSourceFiles limits preview completion to files the extractors read.
func completeSourceFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var exts []string
	for _, lang := range []docmodel.Language{docmodel.LanguageJS, docmodel.LanguagePython} {
		for _, ext := range docmodel.Extensions(lang) {
			exts = append(exts, strings.TrimPrefix(ext, "."))
		}
	}
	return exts, cobra.ShellCompDirectiveFilterFileExt
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for boring-docs.

Besides commands and flags, the scripts complete directories for --cwd and
--output, and only supported source files (.ts, .js, .py and friends) for
preview. Evaluate the output in your shell, for example:

  # bash
  boring-docs completion bash > /usr/local/etc/bash_completion.d/boring-docs

  # zsh
  boring-docs completion zsh > "${fpath[1]}/_boring-docs"

  # fish
  boring-docs completion fish | source

  # PowerShell
  boring-docs completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  boring-docs gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
