package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rupert648/ratunit/internal/adapter"
	"github.com/rupert648/ratunit/internal/controller"
	"github.com/rupert648/ratunit/internal/domain"
	m "github.com/rupert648/ratunit/internal/model"
)

func TestSummaryCmd_FormatFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want controller.Format
	}{
		{"default table", []string{"summary", "out"}, controller.FormatTable},
		{"yaml", []string{"summary", "--format", "yaml", "out"}, controller.FormatYAML},
		{"short flag", []string{"summary", "-f", "YML", "out"}, controller.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)
			chdirTemp(t)

			cmd := newRootCmd()
			cmd.AddCommand(newSummaryCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			mockWorkflow.EXPECT().Summary(mock.Anything, mock.MatchedBy(func(args domain.SummaryArgs) bool {
				return args.Format == tt.want && assert.ObjectsAreEqual([]m.Path{"out"}, args.Paths)
			})).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestSummaryCmd_UnknownFormat(t *testing.T) {
	withMockWorkflow(t)
	chdirTemp(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSummaryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"summary", "--format", "json"})
	err := cmd.Execute()
	require.ErrorIs(t, err, controller.ErrUnknownFormat)
}

// TestSummaryCmd_EndToEnd runs the real workflow against files on disk.
func TestSummaryCmd_EndToEnd(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xml"), []byte(`<testsuite name="Auth">
  <testcase name="login_ok"/>
  <testcase name="login_bad_password"><failure message="expected 401, got 200"/></testcase>
</testsuite>`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xml"), []byte("<testsuite>"), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newSummaryCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalReportSourceAdapter(), controller.NewSimpleUI(cmd))
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd.SetArgs([]string{"summary"})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Auth")
	assert.Contains(t, output, "a.xml › Auth › login_bad_password: expected 401, got 200")
	assert.Contains(t, output, "Failed to load 1 file(s):")
	assert.Contains(t, output, "broken.xml")
}
