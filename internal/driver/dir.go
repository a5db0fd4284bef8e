package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"rolint/internal/diag"
	"rolint/internal/observ"
	"rolint/internal/source"
	"rolint/internal/trace"
)

// DirResult is the outcome of LintDir. Files follow the sorted path order.
type DirResult struct {
	FileSet *source.FileSet
	Files   []*Result
	Timing  *observ.Report
}

// HasErrors reports whether any file produced an error-level diagnostic.
func (r *DirResult) HasErrors() bool {
	for _, f := range r.Files {
		if f != nil && f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Diagnostics counts every diagnostic across files.
func (r *DirResult) Diagnostics() int {
	n := 0
	for _, f := range r.Files {
		if f != nil {
			n += f.Bag.Len()
		}
	}
	return n
}

// luaExtensions are the file suffixes LintDir picks up.
var luaExtensions = []string{".lua", ".luau"}

// IsLuaFile reports whether path has a Lua or Luau extension.
func IsLuaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range luaExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// listLuaFiles возвращает отсортированный список *.lua/*.luau файлов, пропуская скрытые каталоги
func listLuaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsLuaFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// LintDir lints every Lua file under dir with at most jobs workers.
// jobs <= 0 means GOMAXPROCS. A file that cannot be read yields an IO
// diagnostic in its own result instead of failing the run.
func LintDir(ctx context.Context, dir string, opts Options, jobs int, progress ProgressSink) (*DirResult, error) {
	if opts.Env == nil {
		return nil, fmt.Errorf("driver: options without Env")
	}
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "lint_dir")
	defer span.End("")

	files, err := listLuaFiles(dir)
	if err != nil {
		return nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	out := &DirResult{FileSet: fileSet, Files: make([]*Result, len(files))}
	if len(files) == 0 {
		return out, nil
	}

	// Предзагружаем файлы последовательно: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[i] = loadErr
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
		progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressQueued})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()
			progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressStarted})

			if loadErr, bad := loadErrors[i]; bad {
				res := loadFailure(fileSet, fileIDs[i], opts, loadErr)
				out.Files[i] = res
				progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressFailed, Errors: 1, Elapsed: time.Since(started)})
				return nil
			}

			res, lintErr := lintLoaded(gctx, fileSet, fileIDs[i], opts)
			if lintErr != nil {
				progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressFailed, Elapsed: time.Since(started)})
				return fmt.Errorf("%s: %w", path, lintErr)
			}
			// индекс i уникален, мьютекс не нужен
			out.Files[i] = res
			progress.emit(ProgressEvent{
				Path:    path,
				Index:   i,
				Total:   len(files),
				Status:  ProgressDone,
				Cached:  res.Cached,
				Errors:  countErrors(res.Bag),
				Elapsed: time.Since(started),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	if opts.EnableTimings {
		var merged observ.Report
		for _, res := range out.Files {
			if res != nil && res.Timing != nil {
				merged.Merge(*res.Timing)
			}
		}
		out.Timing = &merged
	}
	span.WithExtra("files", fmt.Sprint(len(files)))
	return out, nil
}

func loadFailure(fileSet *source.FileSet, id source.FileID, opts Options, err error) *Result {
	file := fileSet.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
		Primary:  source.Span{File: id},
	})
	return &Result{FileSet: fileSet, File: file, Bag: bag, Std: opts.Env.StdName()}
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
