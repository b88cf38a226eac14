package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/rupert648/ratunit/internal/model"
)

const (
	sidebarWidth  = 28
	pathSeparator = " › "
	ellipsis      = "…"
)

type styles struct {
	header    lipgloss.Style
	selected  lipgloss.Style
	faint     lipgloss.Style
	status    lipgloss.Style
	sidebar   lipgloss.Style
	current   lipgloss.Style
	errorText lipgloss.Style
	glyphs    map[m.Status]lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true),
		selected:  lipgloss.NewStyle().Reverse(true),
		faint:     lipgloss.NewStyle().Faint(true),
		status:    lipgloss.NewStyle().Faint(true),
		sidebar:   lipgloss.NewStyle().Width(sidebarWidth).Border(lipgloss.NormalBorder(), false, true, false, false).PaddingRight(1),
		current:   lipgloss.NewStyle().Bold(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		glyphs: map[m.Status]lipgloss.Style{
			m.StatusPassed:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			m.StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			m.StatusErrored: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			m.StatusSkipped: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}
}

func (s styles) glyph(status m.Status) string {
	return s.glyphs[status].Render(glyphSymbol(status))
}

func glyphSymbol(status m.Status) string {
	switch status {
	case m.StatusPassed:
		return "✓"
	case m.StatusFailed:
		return "✗"
	case m.StatusErrored:
		return "!"
	case m.StatusSkipped:
		return "○"
	default:
		return "?"
	}
}

func statusLabel(status m.Status) string {
	return cases.Upper(language.English).String(status.String())
}

func joinPath(parts []string) string {
	return strings.Join(parts, pathSeparator)
}

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, ellipsis)
}

// padRight fills s with spaces up to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
