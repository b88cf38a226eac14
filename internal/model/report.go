// Package model defines the data structures for parsed JUnit test reports.
package model

// Status is the result classification of a single test case.
type Status int

const (
	// StatusPassed indicates the case ran without failure, error or skip.
	StatusPassed Status = iota
	// StatusFailed indicates an assertion failure.
	StatusFailed
	// StatusErrored indicates an unexpected error during execution.
	StatusErrored
	// StatusSkipped indicates the case was not executed.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Failure is the shared payload of failed and errored outcomes.
type Failure struct {
	Message    string
	Type       string
	StackTrace string
}

// Outcome holds exactly one of the four case results. The zero value is a
// passed outcome; other variants are built with Failed, Errored and Skipped.
type Outcome struct {
	status  Status
	failure *Failure
	reason  string
}

// Passed returns a passed outcome.
func Passed() Outcome {
	return Outcome{status: StatusPassed}
}

// Failed returns a failed outcome carrying f.
func Failed(f Failure) Outcome {
	return Outcome{status: StatusFailed, failure: &f}
}

// Errored returns an errored outcome carrying f.
func Errored(f Failure) Outcome {
	return Outcome{status: StatusErrored, failure: &f}
}

// Skipped returns a skipped outcome with an optional reason.
func Skipped(reason string) Outcome {
	return Outcome{status: StatusSkipped, reason: reason}
}

// Status reports which variant the outcome holds.
func (o Outcome) Status() Status {
	return o.status
}

// Failure returns the failure payload for failed and errored outcomes.
func (o Outcome) Failure() (Failure, bool) {
	if o.failure == nil {
		return Failure{}, false
	}

	return *o.failure, true
}

// SkipReason returns the reason of a skipped outcome, empty otherwise.
func (o Outcome) SkipReason() string {
	return o.reason
}

// Counts aggregates case outcomes.
type Counts struct {
	Total   int `yaml:"total"`
	Passed  int `yaml:"passed"`
	Failed  int `yaml:"failed"`
	Errored int `yaml:"errored"`
	Skipped int `yaml:"skipped"`
}

// Add records one case with the given status.
func (c *Counts) Add(status Status) {
	c.Total++

	switch status {
	case StatusPassed:
		c.Passed++
	case StatusFailed:
		c.Failed++
	case StatusErrored:
		c.Errored++
	case StatusSkipped:
		c.Skipped++
	}
}

// Merge adds other into c.
func (c *Counts) Merge(other Counts) {
	c.Total += other.Total
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.Errored += other.Errored
	c.Skipped += other.Skipped
}

// Property is a name/value pair from a suite's <properties> block.
type Property struct {
	Name  string
	Value string
}

// Case is one test execution.
type Case struct {
	Name      string
	ClassName string
	File      string
	// Time is nil when the producer omitted the attribute.
	Time      *float64
	SystemOut string
	SystemErr string
	Outcome   Outcome
}

// Suite groups cases and, for some producers, nested suites.
type Suite struct {
	Name       string
	ClassName  string
	File       string
	Timestamp  string
	Hostname   string
	Time       *float64
	Properties []Property
	SystemOut  string
	SystemErr  string
	Cases      []Case
	Suites     []Suite
	Counts     Counts
}

// Report is the parsed content of one input file. Reports are not modified
// after parsing.
type Report struct {
	Name   string
	Suites []Suite
	Counts Counts
}
