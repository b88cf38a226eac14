package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rupert648/ratunit/internal/domain/navigation"
	m "github.com/rupert648/ratunit/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Browse prints the summary table and the failing cases; without a terminal
// there is nothing to navigate. Load failures are left to DisplayLoadFailures,
// which callers invoke once browsing returns.
func (s *SimpleUI) Browse(ctx context.Context, set *navigation.ReportSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printTable(set)

	return nil
}

// DisplaySummary prints the set as a table or a YAML document.
func (s *SimpleUI) DisplaySummary(ctx context.Context, set *navigation.ReportSet, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		return s.displayYAML(set)
	case FormatTable, "":
		s.printTable(set)
		s.DisplayLoadFailures(ctx, set.Failures())

		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// DisplayLoadFailures prints one line per input that failed to load.
func (s *SimpleUI) DisplayLoadFailures(ctx context.Context, failures []navigation.LoadFailure) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(failures) == 0 {
		return
	}

	s.printf("\nFailed to load %d file(s):\n", len(failures))

	for _, failure := range failures {
		s.printf("  %s: %v\n", failure.Name, failure.Err)
	}
}

func (s *SimpleUI) printTable(set *navigation.ReportSet) {
	s.printf("%s", renderSummaryTable(set))
	s.printProblems(set)
}

func renderSummaryTable(set *navigation.ReportSet) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Suite", "Tests", "Passed", "Failed", "Errored", "Skipped", "Time"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, report := range set.Reports() {
		for _, suite := range report.Suites {
			table.Append(countsRow(report.Name, suite.Name, suite.Counts, navigation.FormatSeconds(suite.Time)))
		}
	}

	totals := set.Totals()
	table.SetFooter(countsRow(fmt.Sprintf("Total files %d", set.Len()), "", totals, ""))

	table.Render()

	return tableBuffer.String()
}

func countsRow(file, suite string, counts m.Counts, seconds string) []string {
	return []string{
		file,
		suite,
		strconv.Itoa(counts.Total),
		strconv.Itoa(counts.Passed),
		strconv.Itoa(counts.Failed),
		strconv.Itoa(counts.Errored),
		strconv.Itoa(counts.Skipped),
		seconds,
	}
}

// printProblems lists every failed or errored case under the table.
func (s *SimpleUI) printProblems(set *navigation.ReportSet) {
	for _, report := range set.Reports() {
		walkCases(report.Suites, []string{report.Name}, func(path []string, c *m.Case) {
			failure, ok := c.Outcome.Failure()
			if !ok {
				return
			}

			s.printf("%-7s %s", statusLabel(c.Outcome.Status()), joinPath(append(path, c.Name)))

			if failure.Message != "" {
				s.printf(": %s", failure.Message)
			}

			s.printf("\n")
		})
	}
}

func walkCases(suites []m.Suite, path []string, fn func(path []string, c *m.Case)) {
	for i := range suites {
		suite := &suites[i]
		suitePath := append(append([]string(nil), path...), suite.Name)

		walkCases(suite.Suites, suitePath, fn)

		for j := range suite.Cases {
			fn(suitePath, &suite.Cases[j])
		}
	}
}

type summaryDocument struct {
	Files        []fileSummary        `yaml:"files"`
	LoadFailures []loadFailureSummary `yaml:"load_failures,omitempty"`
	Totals       m.Counts             `yaml:"totals"`
}

type fileSummary struct {
	Name   string         `yaml:"name"`
	Counts m.Counts       `yaml:"counts"`
	Suites []suiteSummary `yaml:"suites"`
}

type suiteSummary struct {
	Name     string         `yaml:"name"`
	Time     *float64       `yaml:"time,omitempty"`
	Counts   m.Counts       `yaml:"counts"`
	Suites   []suiteSummary `yaml:"suites,omitempty"`
	Problems []caseProblem  `yaml:"problems,omitempty"`
}

type caseProblem struct {
	Name    string `yaml:"name"`
	Status  string `yaml:"status"`
	Message string `yaml:"message,omitempty"`
	Type    string `yaml:"type,omitempty"`
}

type loadFailureSummary struct {
	Name  string `yaml:"name"`
	Error string `yaml:"error"`
}

func (s *SimpleUI) displayYAML(set *navigation.ReportSet) error {
	doc := summaryDocument{Files: []fileSummary{}, Totals: set.Totals()}

	for _, report := range set.Reports() {
		doc.Files = append(doc.Files, fileSummary{
			Name:   report.Name,
			Counts: report.Counts,
			Suites: summariseSuites(report.Suites),
		})
	}

	for _, failure := range set.Failures() {
		doc.LoadFailures = append(doc.LoadFailures, loadFailureSummary{Name: failure.Name, Error: failure.Err.Error()})
	}

	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	return encoder.Close()
}

func summariseSuites(suites []m.Suite) []suiteSummary {
	out := make([]suiteSummary, 0, len(suites))

	for i := range suites {
		suite := &suites[i]
		summary := suiteSummary{
			Name:   suite.Name,
			Time:   suite.Time,
			Counts: suite.Counts,
		}

		if len(suite.Suites) > 0 {
			summary.Suites = summariseSuites(suite.Suites)
		}

		for j := range suite.Cases {
			c := &suite.Cases[j]
			if failure, ok := c.Outcome.Failure(); ok {
				summary.Problems = append(summary.Problems, caseProblem{
					Name:    c.Name,
					Status:  c.Outcome.Status().String(),
					Message: failure.Message,
					Type:    failure.Type,
				})
			}
		}

		out = append(out, summary)
	}

	return out
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
