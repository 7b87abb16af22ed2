package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/lexer"
	"github.com/hodevin/decaf/internal/parser"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/sema"
	"github.com/hodevin/decaf/internal/source"
)

// CheckResult is one file's full pipeline outcome: lex+parse+analyze folded
// into a single Bag, plus the scope tree FormatScopeTree walks.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Program *ast.Program
	Root    *scope.Node
	Bag     *diag.Bag
	LoadErr error
}

// ListDecafFiles returns every *.decaf file under dir, sorted for
// deterministic order — the file list CheckDir walks, exposed so a caller
// (e.g. a progress UI) can know the work list before the run starts.
func ListDecafFiles(dir string) ([]string, error) {
	return listDecafFiles(dir)
}

// listDecafFiles returns every *.decaf file under dir, sorted for
// deterministic fan-out order.
func listDecafFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".decaf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckStatus is the lifecycle of one file within a CheckDir run, reported
// on a CheckEvent's Status field for a progress UI.
type CheckStatus int

const (
	CheckQueued CheckStatus = iota
	CheckRunning
	CheckDone
	CheckError
)

// CheckEvent is one file's status transition during a CheckDir run, sent on
// the progress channel passed to CheckDirProgress.
type CheckEvent struct {
	Path   string
	Status CheckStatus
}

// CheckDir tokenizes, parses and analyzes every *.decaf file under dir
// concurrently. jobs <= 0 defaults to GOMAXPROCS. Each file's pipeline run
// is self-contained (spec.md §5's single-threaded, no-shared-state
// invariant holds per file); only the final result slice is shared, and
// each goroutine writes to its own, pre-sized index.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []CheckResult, error) {
	return CheckDirProgress(ctx, dir, maxDiagnostics, jobs, nil)
}

// CheckDirProgress is CheckDir with an optional progress channel: if
// non-nil, a CheckEvent is sent as each file enters and leaves the running
// state, for a UI like the one decafc check --ui drives.
func CheckDirProgress(ctx context.Context, dir string, maxDiagnostics, jobs int, progress chan<- CheckEvent) (*source.FileSet, []CheckResult, error) {
	return CheckDirCached(ctx, dir, maxDiagnostics, jobs, progress, nil)
}

// CheckDirCached is CheckDirProgress with an optional DiagnosticCache: when
// cache is non-nil, a file whose content hash is already cached skips
// lex/parse/analyze entirely and its CheckResult carries only the replayed
// Bag (Program and Root are nil, since those aren't cached). decafc check
// --cache wires this in for repeated directory checks.
func CheckDirCached(ctx context.Context, dir string, maxDiagnostics, jobs int, progress chan<- CheckEvent, cache *DiagnosticCache) (*source.FileSet, []CheckResult, error) {
	paths, err := listDecafFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(dir)
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		id, loadErr := fileSet.Load(path)
		fileIDs[i] = id
		loadErrs[i] = loadErr
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	if progress != nil {
		for _, path := range paths {
			progress <- CheckEvent{Path: path, Status: CheckQueued}
		}
	}

	results := make([]CheckResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if progress != nil {
				progress <- CheckEvent{Path: path, Status: CheckRunning}
			}
			if loadErrs[i] != nil {
				results[i] = CheckResult{Path: path, LoadErr: loadErrs[i]}
			} else {
				results[i] = checkFileCached(fileSet, fileIDs[i], path, maxDiagnostics, cache)
			}
			if progress != nil {
				status := CheckDone
				if results[i].LoadErr != nil || results[i].Bag.HasErrors() {
					status = CheckError
				}
				progress <- CheckEvent{Path: path, Status: status}
			}
			return nil
		})
	}

	err = g.Wait()
	if progress != nil {
		close(progress)
	}
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func checkFileCached(fileSet *source.FileSet, fileID source.FileID, path string, maxDiagnostics int, cache *DiagnosticCache) CheckResult {
	if cache != nil {
		file := fileSet.Get(fileID)
		if entries, hit := cache.lookup(file.Content); hit {
			return CheckResult{Path: path, FileID: fileID, Bag: bagFromCache(entries, maxDiagnostics)}
		}
	}
	result := checkFile(fileSet, fileID, path, maxDiagnostics)
	if cache != nil {
		file := fileSet.Get(fileID)
		cache.store(file.Content, result.Bag)
	}
	return result
}

func checkFile(fileSet *source.FileSet, fileID source.FileID, path string, maxDiagnostics int) CheckResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	prog := parser.ParseProgram(lx, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	root, diags := sema.Analyze(prog)
	for _, d := range diags {
		bag.Add(d)
	}

	return CheckResult{Path: path, FileID: fileID, Program: prog, Root: root, Bag: bag}
}
