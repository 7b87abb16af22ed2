package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/diagfmt"
	"github.com/hodevin/decaf/internal/driver"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file|dir]",
	Short: "Run the full front end over a Decaf file or directory",
	Long: `Check runs the lexer, parser, and semantic analyzer over a single Decaf
source file, or over every *.decaf file in a directory, and reports every
diagnostic collected plus the decorated scope tree. With no path argument
it looks for a decaf.toml starting from the current directory and checks
its [check].entry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().String("stage", "all", "pipeline stage to run (tokenize|syntax|sema|all)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-scope-tree", false, "suppress the scope tree dump on stdout")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory checking (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory checking (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "cache per-file diagnostics on disk, keyed by content hash")
}

func parseStage(s string) (driver.DiagnoseStage, error) {
	switch s {
	case "tokenize":
		return driver.DiagnoseStageTokenize, nil
	case "syntax":
		return driver.DiagnoseStageSyntax, nil
	case "sema":
		return driver.DiagnoseStageSema, nil
	case "all":
		return driver.DiagnoseStageAll, nil
	default:
		return "", fmt.Errorf("unknown stage: %s", s)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	stageStr, err := cmd.Flags().GetString("stage")
	if err != nil {
		return err
	}
	stage, err := parseStage(stageStr)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return err
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return err
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("--no-warnings and --warnings-as-errors cannot be used together")
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	noScopeTree, err := cmd.Flags().GetBool("no-scope-tree")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	target, err := resolveCheckTarget(args)
	if err != nil {
		return err
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		PathMode:  pathMode,
		ShowNotes: withNotes,
		ShowFixes: suggest,
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	opts := driver.DiagnoseOptions{
		Stage:            stage,
		MaxDiagnostics:   maxDiagnostics,
		IgnoreWarnings:   noWarnings,
		WarningsAsErrors: warningsAsErrors,
		EnableTimings:    showTimings,
	}

	if !st.IsDir() {
		result, err := driver.DiagnoseWithOptions(target, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if err := emitCheckResult(format, prettyOpts, result.Bag, result.FileSet, result.Root, noScopeTree, quiet); err != nil {
			return err
		}
		if result.Bag.HasErrors() {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("")
		}
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiModeStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiModeStr)
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}

	var cache *driver.DiagnosticCache
	if useCache {
		cache, err = driver.LoadDiagnosticCache(filepath.Join(target, ".decafc-cache.msgpack"))
		if err != nil {
			return fmt.Errorf("failed to load cache: %w", err)
		}
	}

	fs, results, err := runDirCheck(cmd, target, maxDiagnostics, jobs, mode, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	if cache != nil {
		if err := cache.Save(); err != nil {
			return fmt.Errorf("failed to save cache: %w", err)
		}
	}

	hasErrors := false
	for idx, r := range results {
		if idx > 0 {
			fmt.Fprintln(os.Stdout)
		}
		displayPath := r.Path
		if fs != nil {
			if file := fs.Get(r.FileID); file != nil {
				displayMode := "auto"
				if fullPath {
					displayMode = "absolute"
				}
				displayPath = file.FormatPath(displayMode, fs.BaseDir())
			}
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath)
		}
		if r.LoadErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.LoadErr)
			hasErrors = true
			continue
		}
		applyDiagnosticFilters(r.Bag, noWarnings, warningsAsErrors)
		if err := emitCheckResult(format, prettyOpts, r.Bag, fs, r.Root, noScopeTree, quiet); err != nil {
			return err
		}
		if r.Bag.HasErrors() {
			hasErrors = true
		}
	}
	if hasErrors {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// runDirCheck runs CheckDir, optionally under the Bubble Tea progress UI
// when the terminal and --ui settings call for it, and optionally against a
// disk-backed DiagnosticCache when --cache was given.
func runDirCheck(cmd *cobra.Command, dir string, maxDiagnostics, jobs int, mode uiMode, cache *driver.DiagnosticCache) (*source.FileSet, []driver.CheckResult, error) {
	if shouldUseTUI(mode) {
		return runCheckDirWithUI(cmd.Context(), "decafc check", dir, maxDiagnostics, jobs, cache)
	}
	return driver.CheckDirCached(cmd.Context(), dir, maxDiagnostics, jobs, nil, cache)
}

// applyDiagnosticFilters mirrors driver.DiagnoseWithOptions's --no-warnings /
// --warnings-as-errors handling for CheckDir's per-file bags, which CheckDir
// itself leaves unfiltered since it has no DiagnoseOptions of its own.
func applyDiagnosticFilters(bag *diag.Bag, noWarnings, warningsAsErrors bool) {
	if noWarnings {
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity != diag.SevWarning && d.Severity != diag.SevInfo
		})
	}
	if warningsAsErrors {
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
		bag.Sort()
	}
}

// emitCheckResult writes one file's diagnostics in the requested format
// (pretty and short to stderr, json to stdout) and, except for json, the
// scope tree to stdout.
func emitCheckResult(format string, opts diagfmt.PrettyOpts, bag *diag.Bag, fs *source.FileSet, root *scope.Node, noScopeTree, quiet bool) error {
	switch format {
	case "pretty":
		if bag.HasErrors() || bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, bag, fs, opts)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, bag, opts); err != nil {
			return err
		}
	case "short":
		for _, d := range bag.Items() {
			fmt.Fprintf(os.Stderr, "%s:%s: %s\n", d.Code.String(), d.Primary.String(), d.Message)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !noScopeTree && !quiet && root != nil && format != "json" {
		diagfmt.FormatScopeTree(os.Stdout, root)
	}
	return nil
}

// resolveCheckTarget resolves the check command's optional path argument,
// falling back to a decaf.toml project manifest when none was given.
func resolveCheckTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf(noDecafTomlMessage)
	}
	return resolveCheckEntry(manifest)
}
