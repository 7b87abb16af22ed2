package driver

import (
	"fmt"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/lexer"
	"github.com/hodevin/decaf/internal/observ"
	"github.com/hodevin/decaf/internal/parser"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/sema"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/token"

	"fortio.org/safecast"
)

// DiagnoseResult is one file's pipeline outcome, stopped at whichever
// DiagnoseStage was requested.
type DiagnoseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Root    *scope.Node
	Bag     *diag.Bag
}

// DiagnoseStage bounds how far the pipeline runs, mirroring the CLI's
// standalone tokenize/parse subcommands against the full `check` run.
type DiagnoseStage string

const (
	DiagnoseStageTokenize DiagnoseStage = "tokenize"
	DiagnoseStageSyntax   DiagnoseStage = "syntax"
	DiagnoseStageSema     DiagnoseStage = "sema"
	DiagnoseStageAll      DiagnoseStage = "all"
)

// DiagnoseOptions configures one Diagnose run.
type DiagnoseOptions struct {
	Stage            DiagnoseStage
	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool
	EnableTimings    bool
}

// Diagnose runs the pipeline on path up to stage with the default options.
func Diagnose(path string, stage DiagnoseStage, maxDiagnostics int) (*DiagnoseResult, error) {
	return DiagnoseWithOptions(path, DiagnoseOptions{Stage: stage, MaxDiagnostics: maxDiagnostics})
}

// DiagnoseWithOptions is decafc check's per-file engine: load, tokenize,
// (optionally) parse and analyze, then apply the CLI's global diagnostic
// filters (--no-warnings suppression, promotion, --timings).
func DiagnoseWithOptions(path string, opts DiagnoseOptions) (*DiagnoseResult, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	loadIdx := begin("load_file")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	end(loadIdx, "")
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)

	var prog *ast.Program
	var root *scope.Node

	if opts.Stage == DiagnoseStageTokenize {
		tokenIdx := begin("tokenize")
		tokenizeOnly(file, bag)
		tokenNote := ""
		if timer != nil {
			tokenNote = fmt.Sprintf("diags=%d", bag.Len())
		}
		end(tokenIdx, tokenNote)
	} else {
		parseIdx := begin("parse")
		prog, err = parseOnly(file, bag, opts.MaxDiagnostics)
		parseNote := ""
		if timer != nil && prog != nil {
			parseNote = fmt.Sprintf("decls=%d", len(prog.Decls))
		}
		end(parseIdx, parseNote)
		if err != nil {
			return nil, err
		}

		if opts.Stage == DiagnoseStageSema || opts.Stage == DiagnoseStageAll {
			semaIdx := begin("sema")
			var diags []diag.Diagnostic
			root, diags = sema.Analyze(prog)
			for _, d := range diags {
				bag.Add(d)
			}
			semaNote := ""
			if timer != nil {
				semaNote = fmt.Sprintf("diags=%d", len(diags))
			}
			end(semaIdx, semaNote)
		}
	}

	if opts.IgnoreWarnings {
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity != diag.SevWarning && d.Severity != diag.SevInfo
		})
	}
	if opts.WarningsAsErrors {
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
		bag.Sort()
	}
	if timer != nil {
		report := timer.Report()
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "file",
			Path:    file.Path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}

	return &DiagnoseResult{FileSet: fs, File: file, Program: prog, Root: root, Bag: bag}, nil
}

func tokenizeOnly(file *source.File, bag *diag.Bag) {
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
	}
}

func parseOnly(file *source.File, bag *diag.Bag, maxDiagnostics int) (*ast.Program, error) {
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	prog := parser.ParseProgram(lx, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	return prog, nil
}
