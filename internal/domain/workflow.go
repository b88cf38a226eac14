package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/rupert648/ratunit/internal/adapter"
	"github.com/rupert648/ratunit/internal/controller"
	"github.com/rupert648/ratunit/internal/domain/navigation"
	m "github.com/rupert648/ratunit/internal/model"
)

var (
	// ErrNothingDiscovered is returned when the given paths hold no report
	// files at all.
	ErrNothingDiscovered = errors.New("no report files found")
	// ErrNoReports is returned after presenting a set in which every
	// discovered file failed to load.
	ErrNoReports = errors.New("no report could be loaded")

	errNotRegular = errors.New("not a regular file")
)

// ViewArgs contains the arguments for loading and browsing reports.
type ViewArgs struct {
	Paths     []m.Path
	Recursive bool
	Pattern   string
	Parallel  int
	// Plain prints the summary table instead of opening the browser.
	Plain bool
}

// SummaryArgs contains the arguments for printing a non-interactive summary.
type SummaryArgs struct {
	ViewArgs
	Format controller.Format
}

// Workflow defines the report browsing workflow.
type Workflow interface {
	View(ctx context.Context, args ViewArgs) error
	Summary(ctx context.Context, args SummaryArgs) error
}

type workflow struct {
	adapter.ReportSourceAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(source adapter.ReportSourceAdapter, ui controller.UI) Workflow {
	return &workflow{
		ReportSourceAdapter: source,
		UI:                  ui,
	}
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	set, err := w.load(ctx, args)
	if err != nil {
		return err
	}

	if args.Plain {
		err = w.DisplaySummary(ctx, set, controller.FormatTable)
		if err != nil {
			return fmt.Errorf("display summary: %w", err)
		}
	} else {
		err = w.Browse(ctx, set)
		if err != nil {
			return fmt.Errorf("browse reports: %w", err)
		}

		// The browser owns the screen while it runs.
		w.DisplayLoadFailures(ctx, set.Failures())
	}

	if set.Len() == 0 {
		return ErrNoReports
	}

	return nil
}

func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	set, err := w.load(ctx, args.ViewArgs)
	if err != nil {
		return err
	}

	err = w.DisplaySummary(ctx, set, args.Format)
	if err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	if set.Len() == 0 {
		return ErrNoReports
	}

	return nil
}

// load discovers and reads the report files, then parses them into a set.
// Files that cannot be read are merged with the parse failures in discovery
// order.
func (w *workflow) load(ctx context.Context, args ViewArgs) (*navigation.ReportSet, error) {
	start := time.Now()

	paths, err := w.Discover(args.Paths, args.Recursive, args.Pattern)
	if err != nil {
		return nil, fmt.Errorf("discover reports: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNothingDiscovered, args.Paths)
	}

	slog.Debug("Discovered reports", "paths", len(paths), "duration", time.Since(start))

	names := displayNames(paths)
	inputs := make([]m.Input, 0, len(paths))

	var readFailures []navigation.LoadFailure

	for i, path := range paths {
		data, err := w.read(path)
		if err != nil {
			slog.Warn("Failed to read report", "path", path, "error", err)
			readFailures = append(readFailures, navigation.LoadFailure{Name: names[i], Err: err})

			continue
		}

		inputs = append(inputs, m.Input{Name: names[i], Path: path, Data: data})
	}

	set, err := navigation.LoadReportSet(ctx, inputs, args.Parallel)
	if err != nil {
		return nil, err
	}

	if len(readFailures) == 0 {
		return set, nil
	}

	// Keep failures in discovery order; display names are unique per path.
	order := make(map[string]int, len(names))
	for i, name := range names {
		order[name] = i
	}

	failures := append(readFailures, set.Failures()...)
	slices.SortStableFunc(failures, func(a, b navigation.LoadFailure) int {
		return cmp.Compare(order[a.Name], order[b.Name])
	})

	return navigation.NewReportSet(set.Reports(), failures), nil
}

func (w *workflow) read(path m.Path) ([]byte, error) {
	info, err := w.FileInfo(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, errNotRegular
	}

	data, err := w.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return data, nil
}

// displayNames labels each path with its base name unless another path
// shares it, in which case the full path is used.
func displayNames(paths []m.Path) []string {
	seen := make(map[string]int, len(paths))
	for _, path := range paths {
		seen[filepath.Base(string(path))]++
	}

	names := make([]string, len(paths))

	for i, path := range paths {
		base := filepath.Base(string(path))
		if seen[base] > 1 {
			names[i] = string(path)
		} else {
			names[i] = base
		}
	}

	return names
}
