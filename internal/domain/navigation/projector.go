package navigation

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/rupert648/ratunit/internal/model"
)

// Kind identifies which view a Snapshot describes.
type Kind int

const (
	KindEmpty Kind = iota
	KindSuiteList
	KindChildren
	KindDetail
)

// RowKind tells suite rows from case rows.
type RowKind int

const (
	RowSuite RowKind = iota
	RowCase
)

// Row is one line of a suite or children list.
type Row struct {
	Label  string
	Name   string
	Kind   RowKind
	Glyph  m.Status
	Counts m.Counts
	Time   *float64
}

// SuiteInfo describes the suite whose children are listed.
type SuiteInfo struct {
	Name       string
	ClassName  string
	File       string
	Timestamp  string
	Hostname   string
	Time       *float64
	Properties []m.Property
	SystemOut  string
	SystemErr  string
	Counts     m.Counts
}

// Detail is the content of the failure detail view for one case.
type Detail struct {
	Name        string
	ClassName   string
	File        string
	Time        *float64
	Status      m.Status
	StatusLabel string
	Message     string
	Type        string
	StackTrace  string
	SkipReason  string
	SystemOut   string
	SystemErr   string
}

// FileEntry is one sidebar line. Entries with Err set are inputs that failed
// to load.
type FileEntry struct {
	Name    string
	Counts  m.Counts
	Glyph   m.Status
	Current bool
	Err     error
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Kind       Kind
	FileName   string
	FileIndex  int
	FileCount  int
	Breadcrumb []string
	Rows       []Row
	Selected   int
	Suite      *SuiteInfo
	Detail     *Detail
	Files      []FileEntry
	Totals     m.Counts
}

// Project maps a state onto the data to render. It does not modify set or s
// and panics, like Apply, when s does not resolve.
func Project(set *ReportSet, s State) Snapshot {
	snap := Snapshot{
		FileCount: set.Len(),
		Totals:    set.Totals(),
		Files:     files(set, s.FileIndex),
	}

	if set.Len() == 0 {
		snap.Kind = KindEmpty
		return snap
	}

	v := resolve(set, s)

	snap.FileName = v.report.Name
	snap.FileIndex = s.FileIndex
	snap.Selected = s.Selected()
	snap.Rows = rows(v)
	snap.Breadcrumb = append(snap.Breadcrumb, v.report.Name)

	for _, suite := range v.trail {
		snap.Breadcrumb = append(snap.Breadcrumb, suite.Name)
	}

	switch {
	case s.Detail:
		c, _ := v.testCase(s.Selected())
		snap.Kind = KindDetail
		snap.Detail = detail(c)
		snap.Breadcrumb = append(snap.Breadcrumb, c.Name)
	case len(v.trail) > 0:
		snap.Kind = KindChildren
	default:
		snap.Kind = KindSuiteList
	}

	if len(v.trail) > 0 {
		snap.Suite = suiteInfo(v.trail[len(v.trail)-1])
	}

	return snap
}

// SuiteLabel formats a suite row: "<name> (<p> passed, <f> failed)", with
// errored and skipped appended when non-zero.
func SuiteLabel(name string, counts m.Counts) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%d passed, %d failed", name, counts.Passed, counts.Failed)

	if counts.Errored > 0 {
		fmt.Fprintf(&b, ", %d errored", counts.Errored)
	}

	if counts.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", counts.Skipped)
	}

	b.WriteString(")")

	return b.String()
}

// Glyph summarises counts as a single status.
func Glyph(counts m.Counts) m.Status {
	switch {
	case counts.Errored > 0:
		return m.StatusErrored
	case counts.Failed > 0:
		return m.StatusFailed
	case counts.Total > 0 && counts.Skipped == counts.Total:
		return m.StatusSkipped
	default:
		return m.StatusPassed
	}
}

// FormatSeconds renders an optional duration, empty when absent.
func FormatSeconds(seconds *float64) string {
	if seconds == nil {
		return ""
	}

	return fmt.Sprintf("%.3fs", *seconds)
}

// Text renders the detail as a plain text block.
func (d *Detail) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", d.StatusLabel, d.Name)

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}

	field("Class", d.ClassName)
	field("File", d.File)
	field("Time", FormatSeconds(d.Time))
	field("Type", d.Type)
	field("Message", d.Message)
	field("Reason", d.SkipReason)

	block := func(title, body string) {
		if body != "" {
			fmt.Fprintf(&b, "\n%s\n%s\n", title, body)
		}
	}

	block("Stack trace:", d.StackTrace)
	block("System out:", d.SystemOut)
	block("System err:", d.SystemErr)

	return strings.TrimRight(b.String(), "\n")
}

func rows(v view) []Row {
	out := make([]Row, 0, v.len())

	for i := range v.suites {
		suite := &v.suites[i]
		out = append(out, Row{
			Label:  SuiteLabel(suite.Name, suite.Counts),
			Name:   suite.Name,
			Kind:   RowSuite,
			Glyph:  Glyph(suite.Counts),
			Counts: suite.Counts,
			Time:   suite.Time,
		})
	}

	for i := range v.cases {
		c := &v.cases[i]

		var counts m.Counts
		counts.Add(c.Outcome.Status())

		out = append(out, Row{
			Label:  c.Name,
			Name:   c.Name,
			Kind:   RowCase,
			Glyph:  c.Outcome.Status(),
			Counts: counts,
			Time:   c.Time,
		})
	}

	return out
}

func detail(c *m.Case) *Detail {
	status := c.Outcome.Status()
	d := &Detail{
		Name:        c.Name,
		ClassName:   c.ClassName,
		File:        c.File,
		Time:        c.Time,
		Status:      status,
		StatusLabel: cases.Upper(language.English).String(status.String()),
		SkipReason:  c.Outcome.SkipReason(),
		SystemOut:   c.SystemOut,
		SystemErr:   c.SystemErr,
	}

	if failure, ok := c.Outcome.Failure(); ok {
		d.Message = failure.Message
		d.Type = failure.Type
		d.StackTrace = failure.StackTrace
	}

	return d
}

func suiteInfo(suite *m.Suite) *SuiteInfo {
	return &SuiteInfo{
		Name:       suite.Name,
		ClassName:  suite.ClassName,
		File:       suite.File,
		Timestamp:  suite.Timestamp,
		Hostname:   suite.Hostname,
		Time:       suite.Time,
		Properties: suite.Properties,
		SystemOut:  suite.SystemOut,
		SystemErr:  suite.SystemErr,
		Counts:     suite.Counts,
	}
}

func files(set *ReportSet, current int) []FileEntry {
	var out []FileEntry

	for i, report := range set.Reports() {
		out = append(out, FileEntry{
			Name:    report.Name,
			Counts:  report.Counts,
			Glyph:   Glyph(report.Counts),
			Current: i == current,
		})
	}

	for _, failure := range set.Failures() {
		out = append(out, FileEntry{Name: failure.Name, Glyph: m.StatusErrored, Err: failure.Err})
	}

	return out
}
