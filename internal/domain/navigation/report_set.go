// Package navigation holds the loaded report collection, the drill-down
// cursor over it and the read-only projection renderers draw from.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rupert648/ratunit/internal/domain/junit"
	m "github.com/rupert648/ratunit/internal/model"
)

// ErrIndexOutOfRange is returned for a report index outside the set, and
// wrapped by the panic raised when a State cannot be resolved.
var ErrIndexOutOfRange = errors.New("index out of range")

// LoadFailure records an input that did not make it into the set.
type LoadFailure struct {
	Name string
	Err  error
}

// ReportSet is the fixed, ordered collection of parsed reports. It is
// read-only once built.
type ReportSet struct {
	reports  []*m.Report
	failures []LoadFailure
	totals   m.Counts
}

// NewReportSet builds a set from already parsed reports. Nil reports are
// ignored.
func NewReportSet(reports []*m.Report, failures []LoadFailure) *ReportSet {
	set := &ReportSet{
		reports:  make([]*m.Report, 0, len(reports)),
		failures: append([]LoadFailure(nil), failures...),
	}

	for _, report := range reports {
		if report == nil {
			continue
		}

		set.reports = append(set.reports, report)
		set.totals.Merge(report.Counts)
	}

	return set
}

// LoadReportSet parses every input, at most parallel at a time (unbounded
// when parallel <= 0). Reports keep input order. A parse failure is recorded
// against its input and does not fail the call; only cancellation does.
func LoadReportSet(ctx context.Context, inputs []m.Input, parallel int) (*ReportSet, error) {
	start := time.Now()
	reports := make([]*m.Report, len(inputs))
	errs := make([]error, len(inputs))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, input := range inputs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			reports[i], errs[i] = junit.ParseReport(input.Name, input.Data)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	var failures []LoadFailure

	for i, err := range errs {
		if err == nil {
			continue
		}

		slog.Warn("Failed to parse report", "name", inputs[i].Name, "path", inputs[i].Path, "error", err)
		failures = append(failures, LoadFailure{Name: inputs[i].Name, Err: err})
	}

	set := NewReportSet(reports, failures)

	slog.Info("Loaded reports",
		"inputs", len(inputs),
		"reports", set.Len(),
		"failures", len(failures),
		"duration", time.Since(start))

	return set, nil
}

// Len returns the number of successfully parsed reports.
func (s *ReportSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.reports)
}

// Report returns the i-th report.
func (s *ReportSet) Report(i int) (*m.Report, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("report %d of %d: %w", i, s.Len(), ErrIndexOutOfRange)
	}

	return s.reports[i], nil
}

// Reports returns the reports in load order.
func (s *ReportSet) Reports() []*m.Report {
	if s == nil {
		return nil
	}

	return append([]*m.Report(nil), s.reports...)
}

// Failures returns the inputs that could not be loaded, in input order.
func (s *ReportSet) Failures() []LoadFailure {
	if s == nil {
		return nil
	}

	return append([]LoadFailure(nil), s.failures...)
}

// Totals aggregates the counts of every report in the set.
func (s *ReportSet) Totals() m.Counts {
	if s == nil {
		return m.Counts{}
	}

	return s.totals
}
