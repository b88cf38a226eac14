// Package controller provides the output adapters that present loaded test
// reports: an interactive browser for terminals and plain tables otherwise.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rupert648/ratunit/internal/domain/navigation"
)

// Format selects the output of DisplaySummary.
type Format string

// Available summary formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a user supplied name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, name, FormatTable, FormatYAML)
	}
}

// UI defines how a loaded report set is presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Browse presents the set for navigation and returns once the user quits.
	Browse(ctx context.Context, set *navigation.ReportSet) error
	// DisplaySummary prints per-file and per-suite counts.
	DisplaySummary(ctx context.Context, set *navigation.ReportSet, format Format) error
	// DisplayLoadFailures reports the inputs that could not be loaded.
	DisplayLoadFailures(ctx context.Context, failures []navigation.LoadFailure)
}

// NewUI returns the interactive browser when tty is set and the plain
// printer otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
