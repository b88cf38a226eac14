package junit

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rupert648/ratunit/internal/model"
)

func parseFixture(t *testing.T, name string) *m.Report {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	report, err := ParseReport(name, data)
	require.NoError(t, err)

	return report
}

func recount(suites []m.Suite) m.Counts {
	var counts m.Counts

	for _, suite := range suites {
		for _, c := range suite.Cases {
			counts.Add(c.Outcome.Status())
		}

		counts.Merge(recount(suite.Suites))
	}

	return counts
}

func assertCountsConsistent(t *testing.T, suites []m.Suite) {
	t.Helper()

	for _, suite := range suites {
		assert.Equal(t, recount([]m.Suite{suite}), suite.Counts, "suite %q", suite.Name)
		assertCountsConsistent(t, suite.Suites)
	}
}

func TestParseReport_MixedResults(t *testing.T) {
	report := parseFixture(t, "mixed-results.xml")

	assert.Equal(t, "mixed-results.xml", report.Name)
	require.Len(t, report.Suites, 3)
	assert.Equal(t, m.Counts{Total: 9, Passed: 4, Failed: 2, Errored: 1, Skipped: 2}, report.Counts)

	auth := report.Suites[0]
	assert.Equal(t, "com.example.auth.LoginServiceTest", auth.Name)
	assert.Equal(t, "2024-03-01T10:00:00", auth.Timestamp)
	assert.Equal(t, "ci-runner-3", auth.Hostname)
	require.NotNil(t, auth.Time)
	assert.InDelta(t, 1.5, *auth.Time, 1e-9)
	assert.Equal(t, []m.Property{
		{Name: "env", Value: "ci"},
		{Name: "java.version", Value: "17.0.2"},
		{Name: "build", Value: "1234"},
	}, auth.Properties)
	require.Len(t, auth.Cases, 5)
	assert.Equal(t, m.Counts{Total: 5, Passed: 3, Failed: 1, Skipped: 1}, auth.Counts)

	names := make([]string, 0, len(auth.Cases))
	for _, c := range auth.Cases {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{
		"testLoginWithValidCredentials",
		"testLoginWithInvalidPassword",
		"testLoginWithExpiredToken",
		"testLoginWithSAML",
		"testLogout",
	}, names)
}

func TestParseReport_FailureWithCDATA(t *testing.T) {
	report := parseFixture(t, "mixed-results.xml")
	tc := report.Suites[0].Cases[2]

	assert.Equal(t, "testLoginWithExpiredToken", tc.Name)
	assert.Equal(t, "com.example.auth.LoginServiceTest", tc.ClassName)
	assert.Equal(t, "src/test/java/com/example/auth/LoginServiceTest.java", tc.File)
	assert.Equal(t, m.StatusFailed, tc.Outcome.Status())

	failure, ok := tc.Outcome.Failure()
	require.True(t, ok)
	assert.Equal(t, "expected 401, got 200", failure.Message)
	assert.Equal(t, "java.lang.AssertionError", failure.Type)
	assert.Equal(t, "java.lang.AssertionError: expected 401, got 200\n"+
		"\tat org.junit.Assert.fail(Assert.java:89)\n"+
		"\tat com.example.auth.LoginServiceTest.testLoginWithExpiredToken(LoginServiceTest.java:57)",
		failure.StackTrace)
}

func TestParseReport_SystemOutAndErr(t *testing.T) {
	report := parseFixture(t, "mixed-results.xml")
	tc := report.Suites[0].Cases[2]

	assert.Equal(t, "Using expired token fixture", tc.SystemOut)
	assert.Equal(t, "java.lang.NullPointerException: token cache not initialised", tc.SystemErr)
}

func TestParseReport_SkippedAndErrored(t *testing.T) {
	report := parseFixture(t, "mixed-results.xml")

	saml := report.Suites[0].Cases[3]
	assert.Equal(t, m.StatusSkipped, saml.Outcome.Status())
	assert.Equal(t, "SAML provider not configured", saml.Outcome.SkipReason())
	assert.Nil(t, saml.Time)

	release := report.Suites[1].Cases[2]
	assert.Equal(t, m.StatusSkipped, release.Outcome.Status())
	assert.Equal(t, "flaky on CI", release.Outcome.SkipReason())

	timeout := report.Suites[1].Cases[1]
	assert.Equal(t, m.StatusErrored, timeout.Outcome.Status())

	failure, ok := timeout.Outcome.Failure()
	require.True(t, ok)
	assert.Equal(t, "connection timed out after 2000ms", failure.Message)
	assert.Equal(t, "java.net.SocketTimeoutException", failure.Type)
	assert.Equal(t, "java.net.SocketTimeoutException: connection timed out after 2000ms\n"+
		"\tat com.example.db.Pool.acquire(Pool.java:112)", failure.StackTrace)
}

func TestParseReport_TestsuiteRoot(t *testing.T) {
	report := parseFixture(t, "single-suite.xml")

	require.Len(t, report.Suites, 1)
	assert.Equal(t, "avionics.altimeter", report.Suites[0].Name)
	assert.Equal(t, m.Counts{Total: 3, Passed: 2, Failed: 1}, report.Counts)

	cases := report.Suites[0].Cases
	require.NotNil(t, cases[1].Time, "time=\"0\" is present, not absent")
	assert.Zero(t, *cases[1].Time)
	assert.Nil(t, cases[2].Time)
}

func TestParseReport_NestedSuites(t *testing.T) {
	report := parseFixture(t, "nested-suites.xml")

	require.Len(t, report.Suites, 1)
	root := report.Suites[0]
	require.Len(t, root.Cases, 1)
	require.Len(t, root.Suites, 2)
	assert.Equal(t, "child_a", root.Suites[0].Name)
	assert.Equal(t, "child_b", root.Suites[1].Name)
	assert.Equal(t, "grandchild", root.Suites[1].Suites[0].Name)

	assert.Equal(t, m.Counts{Total: 4, Passed: 2, Failed: 1, Skipped: 1}, root.Counts)
	assert.Equal(t, m.Counts{Total: 1, Skipped: 1}, root.Suites[1].Counts)
}

func TestParseReport_CountsMatchRecount(t *testing.T) {
	for _, name := range []string{"mixed-results.xml", "single-suite.xml", "nested-suites.xml"} {
		t.Run(name, func(t *testing.T) {
			report := parseFixture(t, name)

			assert.Equal(t, recount(report.Suites), report.Counts)
			assertCountsConsistent(t, report.Suites)
		})
	}
}

func TestParseReport_OutcomePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		children string
		want     m.Status
		message  string
	}{
		{"no children", ``, m.StatusPassed, ""},
		{"failure only", `<failure message="f"/>`, m.StatusFailed, "f"},
		{"error only", `<error message="e"/>`, m.StatusErrored, "e"},
		{"skipped only", `<skipped/>`, m.StatusSkipped, ""},
		{"failure then error", `<failure message="f"/><error message="e"/>`, m.StatusErrored, "e"},
		{"error then failure", `<error message="e"/><failure message="f"/>`, m.StatusErrored, "e"},
		{"failure and skipped", `<skipped/><failure message="f"/>`, m.StatusFailed, "f"},
		{"all three", `<skipped/><failure message="f"/><error message="e"/>`, m.StatusErrored, "e"},
		{"two failures keeps first", `<failure message="first"/><failure message="second"/>`, m.StatusFailed, "first"},
		{"only system-out", `<system-out>hello</system-out>`, m.StatusPassed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<testsuite name="s"><testcase name="c">` + tt.children + `</testcase></testsuite>`

			report, err := ParseReport("inline.xml", []byte(doc))
			require.NoError(t, err)

			outcome := report.Suites[0].Cases[0].Outcome
			assert.Equal(t, tt.want, outcome.Status())

			failure, ok := outcome.Failure()
			assert.Equal(t, tt.want == m.StatusFailed || tt.want == m.StatusErrored, ok)
			assert.Equal(t, tt.message, failure.Message)
		})
	}
}

func TestParseReport_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"empty input", ``, "no root element"},
		{"whitespace only", "  \n\t", "no root element"},
		{"wrong root", `<html><body/></html>`, "unexpected root element <html>"},
		{"unclosed suite", `<testsuite name="x"><testcase name="a"/>`, "unexpected EOF"},
		{"mismatched tags", "<testsuites>\n<testsuite name=\"x\">\n</testsuites>", "malformed report"},
		{"two roots", `<testsuite name="a"/><testsuite name="b"/>`, "after the root element"},
		{"garbage", `not xml at all`, "text outside the root element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ParseReport("bad.xml", []byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, report)

			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrEmpty)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "bad.xml", parseErr.Source)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseReport_MalformedCarriesPosition(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "truncated.xml"))
	require.NoError(t, err)

	_, err = ParseReport("truncated.xml", data)
	require.ErrorIs(t, err, ErrMalformed)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Positive(t, parseErr.Line)
	assert.True(t, strings.HasPrefix(err.Error(), fmt.Sprintf("truncated.xml:%d:", parseErr.Line)), err.Error())
}

func TestParseReport_Empty(t *testing.T) {
	for _, doc := range []string{`<testsuites/>`, `<?xml version="1.0"?>` + "\n<testsuites>\n</testsuites>\n"} {
		_, err := ParseReport("empty.xml", []byte(doc))
		require.ErrorIs(t, err, ErrEmpty)
		assert.NotErrorIs(t, err, ErrMalformed)
	}
}

func TestParseReport_EmptySuiteIsValid(t *testing.T) {
	report, err := ParseReport("b.xml", []byte(`<testsuites><testsuite name="Empty" tests="0"/></testsuites>`))
	require.NoError(t, err)

	require.Len(t, report.Suites, 1)
	assert.Equal(t, "Empty", report.Suites[0].Name)
	assert.Empty(t, report.Suites[0].Cases)
	assert.Equal(t, m.Counts{}, report.Counts)
}

func TestParseReport_Time(t *testing.T) {
	tests := []struct {
		attr string
		want *float64
	}{
		{``, nil},
		{`time=""`, nil},
		{`time="abc"`, nil},
		{`time="-1"`, nil},
		{`time="NaN"`, nil},
		{`time="0"`, ptr(0)},
		{`time="0.25"`, ptr(0.25)},
		{`time="1,234.5"`, ptr(1234.5)},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			doc := `<testsuite name="s"><testcase name="c" ` + tt.attr + `/></testsuite>`

			report, err := ParseReport("time.xml", []byte(doc))
			require.NoError(t, err)

			got := report.Suites[0].Cases[0].Time
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestParseReport_StackTraceWhitespace(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"starts on its own line", "\n    at a\n      at b\n  ", "    at a\n      at b"},
		{"starts on tag line", "  boom\n  at x\n", "boom\n  at x"},
		{"blank lines inside are kept", "\nfirst\n\n\tthird\n", "first\n\n\tthird"},
		{"crlf is normalised", "\r\nline one\r\n\tline two\r\n", "line one\n\tline two"},
		{"only whitespace", "\n   \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<testsuite name="s"><testcase name="c"><failure>` + tt.text + `</failure></testcase></testsuite>`

			report, err := ParseReport("trace.xml", []byte(doc))
			require.NoError(t, err)

			failure, ok := report.Suites[0].Cases[0].Outcome.Failure()
			require.True(t, ok)
			assert.Equal(t, tt.want, failure.StackTrace)
		})
	}
}

func TestParseReport_TolerantVariants(t *testing.T) {
	t.Run("nested testsuites wrapper is flattened in order", func(t *testing.T) {
		doc := `<testsuites><testsuite name="a"/><testsuites><testsuite name="b"/></testsuites><testsuite name="c"/></testsuites>`

		report, err := ParseReport("wrap.xml", []byte(doc))
		require.NoError(t, err)
		require.Len(t, report.Suites, 3)
		assert.Equal(t, "a", report.Suites[0].Name)
		assert.Equal(t, "b", report.Suites[1].Name)
		assert.Equal(t, "c", report.Suites[2].Name)
	})

	t.Run("unknown elements are ignored", func(t *testing.T) {
		doc := `<testsuites><meta><x/></meta><testsuite name="a"><extra>1</extra>` +
			`<testcase name="c"><rerunFailure message="r"/></testcase></testsuite></testsuites>`

		report, err := ParseReport("extra.xml", []byte(doc))
		require.NoError(t, err)
		assert.Equal(t, m.StatusPassed, report.Suites[0].Cases[0].Outcome.Status())
	})

	t.Run("html entities are accepted", func(t *testing.T) {
		doc := `<testsuite name="a&nbsp;b"><testcase name="c"/></testsuite>`

		report, err := ParseReport("entity.xml", []byte(doc))
		require.NoError(t, err)
		assert.Equal(t, "a\u00a0b", report.Suites[0].Name)
	})

	t.Run("utf-8 byte order mark is skipped", func(t *testing.T) {
		doc := "\xEF\xBB\xBF" + `<?xml version="1.0" encoding="utf-8"?><testsuite name="S"><testcase name="c"/></testsuite>`

		report, err := ParseReport("bom.xml", []byte(doc))
		require.NoError(t, err)
		require.Len(t, report.Suites, 1)
		assert.Equal(t, "S", report.Suites[0].Name)
		assert.Equal(t, m.Counts{Total: 1, Passed: 1}, report.Counts)
	})

	t.Run("class attribute is used when classname is missing", func(t *testing.T) {
		doc := `<testsuite name="s"><testcase name="c" class="pkg.Type"/></testsuite>`

		report, err := ParseReport("class.xml", []byte(doc))
		require.NoError(t, err)
		assert.Equal(t, "pkg.Type", report.Suites[0].Cases[0].ClassName)
	})

	t.Run("latin-1 encoding", func(t *testing.T) {
		doc := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><testsuite name="caf`), 0xe9)
		doc = append(doc, []byte(`"><testcase name="c"/></testsuite>`)...)

		report, err := ParseReport("latin1.xml", doc)
		require.NoError(t, err)
		assert.Equal(t, "café", report.Suites[0].Name)
	})

	t.Run("skipped reason from text", func(t *testing.T) {
		doc := `<testsuite name="s"><testcase name="c"><skipped>
			not on this platform
		</skipped></testcase></testsuite>`

		report, err := ParseReport("skip.xml", []byte(doc))
		require.NoError(t, err)
		assert.Equal(t, "not on this platform", strings.TrimSpace(report.Suites[0].Cases[0].Outcome.SkipReason()))
	})
}

func TestParseReport_PreservesDocumentOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}

	for round := 0; round < 20; round++ {
		suiteNames := append([]string(nil), base...)
		rng.Shuffle(len(suiteNames), func(i, j int) { suiteNames[i], suiteNames[j] = suiteNames[j], suiteNames[i] })

		caseNames := append([]string(nil), base...)
		rng.Shuffle(len(caseNames), func(i, j int) { caseNames[i], caseNames[j] = caseNames[j], caseNames[i] })

		var b strings.Builder

		b.WriteString("<testsuites>")

		for _, suite := range suiteNames {
			fmt.Fprintf(&b, `<testsuite name=%q>`, suite)

			for _, c := range caseNames {
				fmt.Fprintf(&b, `<testcase name=%q/>`, suite+"."+c)
			}

			b.WriteString("</testsuite>")
		}

		b.WriteString("</testsuites>")

		report, err := ParseReport("order.xml", []byte(b.String()))
		require.NoError(t, err)
		require.Len(t, report.Suites, len(suiteNames))

		for i, suite := range report.Suites {
			assert.Equal(t, suiteNames[i], suite.Name)
			require.Len(t, suite.Cases, len(caseNames))

			for j, c := range suite.Cases {
				assert.Equal(t, suiteNames[i]+"."+caseNames[j], c.Name)
			}
		}
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Kind: ErrMalformed, Source: "a.xml", Line: 3, Column: 7, Err: errors.New("boom")}
	assert.Equal(t, "a.xml:3:7: malformed report: boom", err.Error())

	empty := &ParseError{Kind: ErrEmpty, Source: "b.xml"}
	assert.Equal(t, "b.xml: report contains no test suites", empty.Error())
}

func ptr(v float64) *float64 {
	return &v
}
