package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Variants(t *testing.T) {
	f := Failure{Message: "m", Type: "t", StackTrace: "s"}

	tests := []struct {
		name    string
		outcome Outcome
		status  Status
		failure bool
		reason  string
	}{
		{"zero value", Outcome{}, StatusPassed, false, ""},
		{"passed", Passed(), StatusPassed, false, ""},
		{"failed", Failed(f), StatusFailed, true, ""},
		{"errored", Errored(f), StatusErrored, true, ""},
		{"skipped", Skipped("why"), StatusSkipped, false, "why"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.outcome.Status())

			got, ok := tt.outcome.Failure()
			assert.Equal(t, tt.failure, ok)

			if tt.failure {
				assert.Equal(t, f, got)
			}

			assert.Equal(t, tt.reason, tt.outcome.SkipReason())
		})
	}
}

func TestOutcome_FailureIsCopied(t *testing.T) {
	f := Failure{Message: "before"}
	outcome := Failed(f)
	f.Message = "after"

	got, _ := outcome.Failure()
	assert.Equal(t, "before", got.Message)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "passed", StatusPassed.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "errored", StatusErrored.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestCounts_AddAndMerge(t *testing.T) {
	var a Counts
	a.Add(StatusPassed)
	a.Add(StatusFailed)
	a.Add(StatusSkipped)

	var b Counts
	b.Add(StatusErrored)
	b.Add(StatusPassed)

	a.Merge(b)

	assert.Equal(t, Counts{Total: 5, Passed: 2, Failed: 1, Errored: 1, Skipped: 1}, a)
}
