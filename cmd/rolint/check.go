package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"

	"rolint/internal/config"
	"rolint/internal/diag"
	"rolint/internal/diagfmt"
	"rolint/internal/driver"
	"rolint/internal/lint"
	"rolint/internal/observ"
	"rolint/internal/source"
	"rolint/internal/stdlib"
	"rolint/internal/ui"
	"rolint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.lua|directory|->",
	Short: "Lint a file, a directory or stdin",
	Long: `Check lints a single Lua/Luau file, every *.lua and *.luau file under a directory,
or source read from stdin when the argument is "-".
Exit status is 1 when any error-level diagnostic is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().String("std", "", "standard library: roblox, lua51, auto or a path to a .toml library")
	checkCmd.Flags().String("config", "", "path to rolint.toml (default: discovered from the target upwards)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("cache", false, "reuse lint results from the disk cache")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/rolint)")
	checkCmd.Flags().Bool("clear-cache", false, "drop cached results before linting")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in diagnostics")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("sort", false, "order diagnostics by position instead of rule output order")
	checkCmd.Flags().String("stdin-filename", "stdin.lua", "file name reported for source read from stdin")
	checkCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

// checkFlags is everything runCheck reads from the command line.
type checkFlags struct {
	format           string
	std              string
	configPath       string
	jobs             int
	noWarnings       bool
	warningsAsErrors bool
	cache            bool
	cacheSet         bool
	cacheDir         string
	clearCache       bool
	fullPath         bool
	withNotes        bool
	sort             bool
	stdinName        string
	ui               uiMode
	maxDiagnostics   int
	timings          bool
	color            colorMode
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var (
		f   checkFlags
		err error
	)
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "short", "json", "sarif":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.std, err = flags.GetString("std"); err != nil {
		return f, fmt.Errorf("failed to get std flag: %w", err)
	}
	if f.configPath, err = flags.GetString("config"); err != nil {
		return f, fmt.Errorf("failed to get config flag: %w", err)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.noWarnings, err = flags.GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.warningsAsErrors, err = flags.GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.cache, err = flags.GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	f.cacheSet = flags.Changed("cache")
	if f.cacheDir, err = flags.GetString("cache-dir"); err != nil {
		return f, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if f.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if f.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if f.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.sort, err = flags.GetBool("sort"); err != nil {
		return f, fmt.Errorf("failed to get sort flag: %w", err)
	}
	if f.stdinName, err = flags.GetString("stdin-filename"); err != nil {
		return f, fmt.Errorf("failed to get stdin-filename flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}

	root := cmd.Root().PersistentFlags()
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorValue, err := root.GetString("color")
	if err != nil {
		return f, fmt.Errorf("failed to get color flag: %w", err)
	}
	if f.color, err = readColorMode(colorValue); err != nil {
		return f, err
	}
	return f, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	target := args[0]
	f, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cfg, err := loadCheckConfig(target, f)
	if err != nil {
		return err
	}
	reg := driver.DefaultRegistry()
	env, err := driver.NewEnv(cfg, reg)
	if err != nil {
		return err
	}

	cache, err := openCheckCache(cfg, f)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Env:              env,
		MaxDiagnostics:   f.maxDiagnostics,
		IgnoreWarnings:   f.noWarnings,
		WarningsAsErrors: f.warningsAsErrors,
		SortByPosition:   f.sort,
		EnableTimings:    f.timings,
		Cache:            cache,
	}

	out := cmd.OutOrStdout()
	var (
		bag    *diag.Bag
		fs     *source.FileSet
		timing *observ.Report
		files  int
	)

	switch {
	case target == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := driver.LintSource(cmd.Context(), f.stdinName, content, opts)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}
		bag, fs, timing, files = res.Bag, res.FileSet, res.Timing, 1
	default:
		st, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}
		if st.IsDir() {
			dirRes, err := lintDirectory(cmd, target, opts, f)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}
			bag = diag.NewBag(0)
			for _, r := range dirRes.Files {
				if r != nil {
					bag.Merge(r.Bag)
				}
			}
			fs, timing, files = dirRes.FileSet, dirRes.Timing, len(dirRes.Files)
		} else {
			res, err := driver.LintFile(cmd.Context(), target, opts)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}
			bag, fs, timing, files = res.Bag, res.FileSet, res.Timing, 1
		}
	}

	if err := writeDiagnostics(out, bag, fs, f, reg); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if f.format == "pretty" {
		printSummary(cmd.ErrOrStderr(), bag, files)
	}
	if timing != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timing.Summary("timings"))
	}

	if bag.HasErrors() {
		return &exitError{code: 1}
	}
	return nil
}

// loadCheckConfig applies --config and --std on top of the discovered rolint.toml.
func loadCheckConfig(target string, f checkFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.Discover(target)
	}
	if err != nil {
		return nil, err
	}
	if f.std != "" {
		cfg.Std = f.std
		// путь из командной строки считается от cwd, а не от rolint.toml
		if f.std != config.StdAuto && !stdlib.IsBuiltin(f.std) {
			abs, err := filepath.Abs(f.std)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve std path: %w", err)
			}
			cfg.Std = abs
		}
	}
	return cfg, nil
}

// openCheckCache returns nil when caching is off; --cache overrides [cache] enabled.
func openCheckCache(cfg *config.Config, f checkFlags) (*driver.DiskCache, error) {
	enabled := cfg.Cache.Enabled
	if f.cacheSet {
		enabled = f.cache
	}
	if !enabled && !f.clearCache {
		return nil, nil
	}
	dir := f.cacheDir
	if dir == "" {
		dir = cfg.Cache.Dir
	}
	var (
		cache *driver.DiskCache
		err   error
	)
	if dir != "" {
		cache, err = driver.OpenDiskCacheAt(dir)
	} else {
		cache, err = driver.OpenDiskCache("rolint")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if f.clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !enabled {
		return nil, nil
	}
	return cache, nil
}

type dirOutcome struct {
	res *driver.DirResult
	err error
}

// progressCounter tracks LintDir progress for heartbeat status lines.
type progressCounter struct {
	total, finished atomic.Int64
}

var lintProgress progressCounter

func (p *progressCounter) observe(ev driver.ProgressEvent) {
	switch ev.Status {
	case driver.ProgressQueued:
		p.total.Store(int64(ev.Total))
	case driver.ProgressDone, driver.ProgressFailed:
		p.finished.Add(1)
	}
}

func (p *progressCounter) reset() {
	p.total.Store(0)
	p.finished.Store(0)
}

func (p *progressCounter) status() string {
	total := p.total.Load()
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d files", p.finished.Load(), total)
}

// lintDirectory runs LintDir, showing the progress UI on stderr when enabled.
func lintDirectory(cmd *cobra.Command, dir string, opts driver.Options, f checkFlags) (*driver.DirResult, error) {
	lintProgress.reset()
	if !shouldUseTUI(f.ui, f.format) {
		return driver.LintDir(cmd.Context(), dir, opts, f.jobs, lintProgress.observe)
	}

	events := make(chan driver.ProgressEvent, 64)
	done := make(chan dirOutcome, 1)
	go func() {
		res, err := driver.LintDir(cmd.Context(), dir, opts, f.jobs, func(ev driver.ProgressEvent) {
			lintProgress.observe(ev)
			events <- ev
		})
		close(events)
		done <- dirOutcome{res: res, err: err}
	}()

	if err := ui.RunProgress("rolint "+filepath.Base(dir), events, cmd.ErrOrStderr()); err != nil {
		// UI упал - дочитываем события, чтобы не блокировать воркеры
		for range events {
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "progress ui: %v\n", err)
	}
	out := <-done
	return out.res, out.err
}

func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, f checkFlags, reg *lint.Registry) error {
	pathMode := diagfmt.PathModeAuto
	if f.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch f.format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     useColorFor(f.color, os.Stdout),
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: f.withNotes,
		})
		return nil
	case "short":
		return diagfmt.Short(w, bag, fs, f.withNotes)
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     f.withNotes,
		})
	case "sarif":
		return diagfmt.Sarif(w, bag, fs, sarifMeta(reg, pathMode))
	}
	return fmt.Errorf("unknown format: %s", f.format)
}

func sarifMeta(reg *lint.Registry, pathMode diagfmt.PathMode) diagfmt.SarifRunMeta {
	meta := diagfmt.SarifRunMeta{
		ToolName:       "rolint",
		ToolVersion:    version.Version,
		InvocationArgs: os.Args[1:],
		PathMode:       pathMode,
	}
	for _, r := range reg.All() {
		meta.Rules = append(meta.Rules, diagfmt.SarifRule{ID: r.Name(), Description: r.Description()})
	}
	return meta
}

func printSummary(w io.Writer, bag *diag.Bag, files int) {
	var errs, warns int
	for _, d := range bag.Items() {
		switch {
		case d.Severity >= diag.SevError:
			errs++
		case d.Severity == diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	fmt.Fprintf(w, "%s in %s\n", countLabel(errs, warns), plural(files, "file"))
}

func countLabel(errs, warns int) string {
	return plural(errs, "error") + ", " + plural(warns, "warning")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
