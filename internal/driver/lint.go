package driver

import (
	"bytes"
	"context"
	"fmt"

	"fortio.org/safecast"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/lint"
	"rolint/internal/observ"
	"rolint/internal/parser"
	"rolint/internal/source"
	"rolint/internal/trace"
)

// Options configure one lint run.
type Options struct {
	Env *Env
	// MaxDiagnostics caps the result bag, 0 means unlimited.
	MaxDiagnostics   int
	IgnoreWarnings   bool
	WarningsAsErrors bool
	// SortByPosition orders output by location. Otherwise syntax errors come
	// first and lint findings keep the order rules emitted them in.
	SortByPosition bool
	EnableTimings  bool
	Cache          *DiskCache
}

// Result of linting one file.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	// Builder and ASTFile are empty for results restored from the cache.
	Builder *ast.Builder
	ASTFile ast.FileID
	Dialect dialect.Kind
	Std     string
	Cached  bool
	Timing  *observ.Report
}

// LintFile loads path from disk and lints it.
func LintFile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return lintLoaded(ctx, fs, fileID, opts)
}

// LintSource lints content that does not come from disk (stdin, editors, tests).
func LintSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.LoadReader(name, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	return lintLoaded(ctx, fs, fileID, opts)
}

func lintLoaded(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) (*Result, error) {
	if opts.Env == nil {
		return nil, fmt.Errorf("driver: options without Env")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	span, ctx := trace.StartSpan(trace.WithFile(ctx, file.Path), trace.ScopeFile, "lint_file")
	defer span.End("")

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int { return timer.Begin(name) }
	end := func(idx int, note string) { timer.End(idx, note) }

	res := &Result{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Std:     opts.Env.StdName(),
	}

	// расширение .luau влияет на выбор диалекта, поэтому входит в ключ
	key := combineDigest(Digest(file.Hash), opts.Env.Key(), digestStrings(fmt.Sprint(file.Flags&source.FileLuau != 0)))
	raw := diag.NewBag(0)

	if opts.Cache != nil {
		idx := begin("cache")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			// битая запись - считаем промахом и перезапишем
			trace.Point(ctx, trace.ScopeFile, "cache_corrupt", err.Error())
		}
		if hit {
			restoreDiskPayload(&payload, fileID, res, raw)
			res.Cached = true
		}
		end(idx, cacheNote(hit))
	}

	if !res.Cached {
		if err := lintFresh(ctx, fs, file, opts, res, raw, begin, end); err != nil {
			return nil, err
		}
		if opts.Cache != nil {
			if err := opts.Cache.Put(key, resultToDiskPayload(res, raw.Items())); err != nil {
				trace.Point(ctx, trace.ScopeFile, "cache_store_failed", err.Error())
			}
		}
	}

	idx := begin("finalize")
	finalize(raw, res.Bag, opts)
	end(idx, finalizeNote(res.Bag))

	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	return res, nil
}

func lintFresh(
	ctx context.Context,
	fs *source.FileSet,
	file *source.File,
	opts Options,
	res *Result,
	raw *diag.Bag,
	begin func(string) int,
	end func(int, string),
) error {
	rep := diag.BagReporter{Bag: raw}
	ev := dialect.NewEvidence()
	dialect.ObserveFile(ev, file)

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return err
	}

	parseSpan, _ := trace.StartSpan(ctx, trace.ScopePass, "parse")
	idx := begin("parse")
	// восстановление парсера может повторить ту же ошибку на том же месте
	synRep := diag.NewDedupReporter(rep)
	lx := lexer.New(file, lexer.Options{Reporter: synRep, DialectEvidence: ev})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	parsed := parser.ParseFile(fs, lx, builder, parser.Options{
		MaxErrors:       maxErrors,
		Reporter:        synRep,
		DialectEvidence: ev,
	})
	end(idx, fmt.Sprintf("%d syntax diagnostics", raw.Len()))
	if n := synRep.Suppressed(); n > 0 {
		parseSpan.WithExtra("repeats_dropped", fmt.Sprint(n))
	}
	parseSpan.End("")
	res.Builder = builder
	res.ASTFile = parsed.File

	lctx, lib := opts.Env.lintContext(ev)
	res.Dialect = lctx.Dialect
	if lib != nil && lib.Name != "" {
		res.Std = lib.Name
	}
	trace.Point(ctx, trace.ScopePass, "dialect", fmt.Sprintf("%s std=%s hints=%d", res.Dialect, res.Std, ev.Len()))

	tree := &lint.Tree{AST: builder, Root: parsed.File, Source: builder.Files.Get(parsed.File).Source()}
	idx = begin("lint")
	total := 0
	for _, rule := range opts.Env.Rules {
		if err := ctx.Err(); err != nil {
			return err
		}
		ruleSpan, _ := trace.StartSpan(ctx, trace.ScopeRule, rule.Name())
		n := lint.Run(tree, lctx, []lint.Rule{rule}, rep)
		ruleSpan.WithExtra("findings", fmt.Sprint(n)).End("")
		total += n
	}
	end(idx, fmt.Sprintf("%d rules, %d findings", len(opts.Env.Rules), total))
	return nil
}

// finalize copies raw diagnostics into the capped result bag and applies the
// output switches. Raw stays untouched so the cache keeps every finding.
func finalize(raw, out *diag.Bag, opts Options) {
	for _, d := range raw.Items() {
		if opts.IgnoreWarnings && d.Severity < diag.SevError {
			continue
		}
		if opts.WarningsAsErrors && d.Severity == diag.SevWarning {
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	if opts.SortByPosition {
		out.Sort()
	}
}

// finalizeNote описывает результат finalize; при переполнении видно, что отрезал лимит.
func finalizeNote(bag *diag.Bag) string {
	if n := bag.Dropped(); n > 0 {
		return fmt.Sprintf("%d diagnostics, %d dropped (cap %d)", bag.Len(), n, bag.Cap())
	}
	return fmt.Sprintf("%d diagnostics", bag.Len())
}

func cacheNote(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
