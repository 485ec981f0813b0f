// Package runner orchestrates the decode -> evaluate -> report
// pipeline across source units.
package runner

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/frontend"
	"github.com/donaldgifford/hstyle/internal/report"
	"github.com/donaldgifford/hstyle/internal/rules"
	"github.com/donaldgifford/hstyle/internal/style"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// Options configures the runner behavior.
type Options struct {
	// Paths name unit documents exported by the front-end. With no
	// paths, one document is read from stdin.
	Paths      []string
	ConfigPath string
	Quiet      bool
	Verbose    bool
	MaxWorkers int
	Stdout     io.Writer
	Stderr     io.Writer
	Log        *logrus.Logger
}

// result carries one unit's outcome back to the emitting loop.
type result struct {
	path   string
	report string
	count  int
	err    error
}

// Run evaluates every unit and returns an exit code. Units are
// independent: they are checked in parallel, and a fatal error in one
// never stops the others. Output is emitted in argument order so runs
// are deterministic regardless of scheduling.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(opts.Stderr)
		if opts.Quiet {
			log.SetLevel(logrus.ErrorLevel)
		} else if opts.Verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Error("loading config")
		return ExitError
	}

	ruleSet := rules.All(&cfg.Style)
	builder := report.New(&cfg.Style, ruleSet)

	if len(opts.Paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.WithError(err).Error("reading stdin")
			return ExitError
		}
		res := checkUnit("<stdin>", data, ruleSet, builder)
		return emit(opts, log, []result{res})
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]result, len(opts.Paths))
	var eg errgroup.Group
	eg.SetLimit(workers)

	for i, path := range opts.Paths {
		i, path := i, path
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = result{path: path, err: err}
				return nil
			}
			log.WithField("unit", path).Debug("checking")
			results[i] = checkUnit(path, data, ruleSet, builder)
			return nil
		})
	}
	// Workers stash errors in their slot instead of failing the group,
	// so one bad unit cannot cancel the rest.
	_ = eg.Wait()

	return emit(opts, log, results)
}

// checkUnit runs the full pipeline for one unit document.
func checkUnit(path string, data []byte, ruleSet style.Rules, builder *report.Builder) result {
	unit, err := frontend.Decode(data)
	if err != nil {
		return result{path: path, err: err}
	}

	name := unit.Name
	if name == "" {
		name = path
	}

	violations, model, err := style.Evaluate(unit.Tree, unit.Source, ruleSet)
	if err != nil {
		return result{path: path, err: fmt.Errorf("%s: %w", name, err)}
	}

	return result{
		path:   path,
		report: builder.Render(name, model, violations),
		count:  len(violations),
	}
}

// emit writes reports in order and folds the per-unit outcomes into
// one exit code.
func emit(opts *Options, log *logrus.Logger, results []result) int {
	exitCode := ExitOK
	for _, res := range results {
		if res.err != nil {
			log.WithField("unit", res.path).WithError(res.err).Error("unit failed")
			exitCode = ExitError
			continue
		}
		if res.report != "" {
			fmt.Fprint(opts.Stdout, res.report)
		}
		if res.count > 0 && exitCode == ExitOK {
			exitCode = ExitFindings
		}
	}
	return exitCode
}
