// Package driver orchestrates the compilation pipeline around the
// diagnostics core: it brings compilation units into the process,
// converts the first violation of a unit into a rendered Failure, and
// owns the single boundary where a Failure becomes process termination.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"rosh/internal/diag"
	"rosh/internal/diagfmt"
	"rosh/internal/observ"
	"rosh/internal/source"
)

// Stage identifies where a unit is in the pre-flight pipeline.
type Stage uint8

const (
	StageQueued Stage = iota
	StageRead
	StageVerify
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageRead:
		return "reading"
	case StageVerify:
		return "verifying"
	case StageDone:
		return "ok"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event reports pre-flight progress for one unit. Consumed by the TUI.
type Event struct {
	Path  string
	Stage Stage
}

// Result is the outcome of pre-flighting one compilation unit. Exactly
// one of File (on success) or Failure is meaningful.
type Result struct {
	Path    string
	File    source.FileID
	Loc     source.Location
	Failure *diagfmt.Failure
}

// PreflightOptions configures a pre-flight run.
type PreflightOptions struct {
	// Jobs bounds parallel workers; 0 means GOMAXPROCS.
	Jobs int
	// Render configures how violations are formatted.
	Render diagfmt.Options
	// Timer, when non-nil, records the read and verify phases.
	Timer *observ.Timer
}

// loadedUnit is the intermediate state between the parallel read phase
// and the sequential FileSet registration.
type loadedUnit struct {
	content []byte
	loadErr error
}

// Preflight loads and validates compilation units. Reads run in
// parallel; registration into the shared FileSet is sequential because
// FileSet is not synchronized. Each unit that violates a load invariant
// gets a fully rendered Failure; other units are unaffected, mirroring
// the policy that one failed unit does not abort its siblings.
func Preflight(ctx context.Context, fileSet *source.FileSet, paths []string, opts PreflightOptions, events chan<- Event) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(ev Event) {
		if events != nil {
			events <- ev
		}
	}

	loaded := make([]loadedUnit, len(paths))

	readPhase := opts.Timer.Begin("read")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(Event{Path: path, Stage: StageRead})
			content, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI
			loaded[i] = loadedUnit{content: content, loadErr: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	opts.Timer.End(readPhase, fmt.Sprintf("%d unit(s)", len(paths)))

	verifyPhase := opts.Timer.Begin("verify")
	failed := 0
	results := make([]Result, len(paths))
	for i, path := range paths {
		emit(Event{Path: path, Stage: StageVerify})
		results[i] = verifyUnit(fileSet, path, loaded[i], opts.Render)
		if results[i].Failure != nil {
			failed++
			emit(Event{Path: path, Stage: StageFailed})
		} else {
			emit(Event{Path: path, Stage: StageDone})
		}
	}
	note := ""
	if failed > 0 {
		note = fmt.Sprintf("%d failed", failed)
	}
	opts.Timer.End(verifyPhase, note)
	return results, nil
}

// verifyUnit applies the load invariants to one unit and registers it
// in the FileSet when they hold.
func verifyUnit(fileSet *source.FileSet, path string, unit loadedUnit, render diagfmt.Options) Result {
	loc := source.AtTopLevel(source.FileOrigin(path))
	fail := func(e diag.Error) Result {
		f := diagfmt.Render(render, nil, loc, e)
		return Result{Path: path, Loc: loc, Failure: &f}
	}

	if !strings.EqualFold(filepath.Ext(path), ".rsh") {
		return fail(diag.LoadError{Kind: diag.LoadWrongExtension, Path: path})
	}
	if unit.loadErr != nil {
		return fail(diag.LoadError{Kind: diag.LoadUnreadable, Path: path, Err: unit.loadErr})
	}
	if !utf8.Valid(unit.content) {
		return fail(diag.LoadError{Kind: diag.LoadNotUTF8, Path: path})
	}
	if len(strings.TrimSpace(string(unit.content))) == 0 {
		return fail(diag.LoadError{Kind: diag.LoadEmpty, Path: path})
	}

	id := fileSet.Add(path, unit.content, 0)
	return Result{Path: path, File: id, Loc: loc}
}

// ListSourceFiles returns the sorted *.rsh files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".rsh") {
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
