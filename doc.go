// # boring-docs
//
// `boring-docs` generates Markdown reference pages from the doc comments of a
// TypeScript, JavaScript or Python project. It does not parse the languages;
// it recognizes a documentation block together with the function declaration
// it documents and turns the pair into a page section.
//
// Recognized declarations:
//
//   - `/** ... */` followed by `function name(...)`, optionally `export`,
//     `default`, `async` or a generator.
//   - `/** ... */` followed by `const|let|var name = (...) => ...`.
//   - `def name(...):` (or `async def`) followed by a triple-quoted docstring.
//
// JSDoc `@param`, `@returns` and `@throws` tags are read, as are reST
// (`:param x:`, `:returns:`, `:raises E:`) and Google style (`Args:`,
// `Returns:`, `Raises:`) docstrings. Parameter types always come from the
// signature; doc types only fill the gap when `parse.doc_type_fallback` is
// enabled.
//
// ## Usage
//
//	boring-docs [build] [--cwd DIR] [-y] [-e] [-o DIR]
//
// Examples:
//
//   - Document the current project without a prompt:
//
//     boring-docs -y
//
//   - Document another project and print the home page afterwards:
//
//     boring-docs build --cwd ../my-lib --yes --example
//
//   - Preview the page for one file:
//
//     boring-docs preview src/math/add.ts
//
//   - Write a starter configuration:
//
//     boring-docs init
//
// ## Output
//
// Pages mirror the source tree under `docs/` (see `output_dir`):
// `src/math/add.ts` becomes `docs/src/math/add.md`. `docs/home.md` holds the
// project title and description, a tree of the documented files, links to
// every page and the license. Files without documented functions get no page,
// and directories without such files are left out entirely.
//
// Existing pages are never overwritten. Delete a page to regenerate it.
//
// ## Configuration
//
// Settings are read from `.boring-docs.yaml` in the project root (or
// `--config`) and from `BORING_DOCS_*` environment variables, with a `.env`
// file in the working directory loaded first:
//
//	output_dir: docs
//	home_page: home.md
//	ignore: ["examples/**", "**/*.test.ts"]
//	workers: 0
//	project:
//	  name: calc
//	  description: Tiny arithmetic helpers
//	render:
//	  show_returns: false
//	parse:
//	  doc_type_fallback: false
//	log:
//	  level: info
//	  format: console
//
// Dependency, build and tooling directories (`node_modules`, `dist`,
// `__pycache__`, `.git`, ...) are always skipped; `ignore` adds globs on top.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	boring-docs completion bash        # bash
//	boring-docs completion zsh         # zsh
//	boring-docs completion fish | source
//	boring-docs completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `gen-docs` writes one Markdown file per command:
//
//	boring-docs gen-docs ./docs/cli
package main
