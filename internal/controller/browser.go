package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rupert648/ratunit/internal/domain/navigation"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// browserModel is the Bubble Tea model of the interactive report browser.
// All navigation goes through navigation.Apply; the model only adds layout
// state (terminal size, list scroll offset, detail viewport).
type browserModel struct {
	set      *navigation.ReportSet
	state    navigation.State
	keys     keyMap
	help     help.Model
	detail   viewport.Model
	styles   styles
	width    int
	height   int
	offset   int
	quitting bool
}

func newBrowserModel(set *navigation.ReportSet) browserModel {
	bm := browserModel{
		set:    set,
		state:  navigation.NewState(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		detail: viewport.New(0, 0),
		styles: defaultStyles(),
	}

	return bm.resize(defaultWidth, defaultHeight)
}

func (bm browserModel) Init() tea.Cmd {
	return nil
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return bm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return bm.handleKeyPress(msg)
	}

	return bm, nil
}

func (bm browserModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, bm.keys.Quit) {
		bm.quitting = true
		return bm, tea.Quit
	}

	if key.Matches(msg, bm.keys.Help) {
		bm.help.ShowAll = !bm.help.ShowAll
		return bm.resize(bm.width, bm.height), nil
	}

	cmd, ok := bm.keys.command(msg)
	if !ok {
		return bm, nil
	}

	if bm.state.Detail && bm.scrollDetail(cmd) {
		return bm, nil
	}

	wasDetail := bm.state.Detail
	bm.state = navigation.Apply(bm.set, bm.state, cmd)

	if bm.state.Detail && !wasDetail {
		bm = bm.openDetail()
	}

	return bm.ensureVisible(), nil
}

// scrollDetail moves the detail viewport for movement commands.
//
//nolint:exhaustive // Non-movement commands fall through to navigation.
func (bm *browserModel) scrollDetail(cmd navigation.Command) bool {
	switch cmd {
	case navigation.MoveDown:
		bm.detail.LineDown(1)
	case navigation.MoveUp:
		bm.detail.LineUp(1)
	case navigation.JumpFirst:
		bm.detail.GotoTop()
	case navigation.JumpLast:
		bm.detail.GotoBottom()
	case navigation.PageDown:
		bm.detail.HalfViewDown()
	case navigation.PageUp:
		bm.detail.HalfViewUp()
	default:
		return false
	}

	return true
}

func (bm browserModel) openDetail() browserModel {
	snap := navigation.Project(bm.set, bm.state)
	if snap.Detail != nil {
		bm.detail.SetContent(snap.Detail.Text())
	}

	bm.detail.Height = bm.bodyHeight(snap)
	bm.detail.GotoTop()

	return bm
}

func (bm browserModel) resize(width, height int) browserModel {
	bm.width = width
	bm.height = height
	bm.help.Width = width
	bm.detail.Width = bm.mainWidth()
	bm.detail.Height = bm.bodyHeight(navigation.Project(bm.set, bm.state))

	return bm.ensureVisible()
}

// ensureVisible scrolls the list so the selected row is on screen.
func (bm browserModel) ensureVisible() browserModel {
	height := bm.bodyHeight(navigation.Project(bm.set, bm.state))
	selected := bm.state.Selected()

	if selected < bm.offset {
		bm.offset = selected
	}

	if selected >= bm.offset+height {
		bm.offset = selected - height + 1
	}

	bm.offset = max(bm.offset, 0)

	return bm
}

func (bm browserModel) showSidebar() bool {
	return bm.set.Len()+len(bm.set.Failures()) > 1
}

func (bm browserModel) mainWidth() int {
	if !bm.showSidebar() {
		return bm.width
	}

	return max(bm.width-sidebarWidth-2, 10)
}

// bodyHeight is the number of lines left for the list or detail once the
// header, suite information, status bar and help are drawn.
func (bm browserModel) bodyHeight(snap navigation.Snapshot) int {
	reserved := 2 + len(bm.suiteInfoLines(snap)) + lipgloss.Height(bm.help.View(bm.keys))

	return max(bm.height-reserved, 1)
}

func (bm browserModel) View() string {
	if bm.quitting {
		return ""
	}

	snap := navigation.Project(bm.set, bm.state)

	sections := []string{bm.renderHeader(snap)}
	sections = append(sections, bm.suiteInfoLines(snap)...)

	body := bm.renderBody(snap)
	if bm.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, bm.renderSidebar(snap), " ", body)
	}

	sections = append(sections, body, bm.renderStatus(snap), bm.help.View(bm.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (bm browserModel) renderHeader(snap navigation.Snapshot) string {
	title := "ratunit"
	if len(snap.Breadcrumb) > 0 {
		title = joinPath(snap.Breadcrumb)
	}

	return bm.styles.header.Render(truncate(title, bm.width))
}

func (bm browserModel) suiteInfoLines(snap navigation.Snapshot) []string {
	if snap.Kind != navigation.KindChildren || snap.Suite == nil {
		return nil
	}

	var meta []string

	for _, field := range []string{snap.Suite.Timestamp, snap.Suite.Hostname, navigation.FormatSeconds(snap.Suite.Time)} {
		if field != "" {
			meta = append(meta, field)
		}
	}

	var lines []string

	if len(meta) > 0 {
		lines = append(lines, bm.styles.faint.Render(truncate(strings.Join(meta, " · "), bm.width)))
	}

	if len(snap.Suite.Properties) > 0 {
		props := make([]string, 0, len(snap.Suite.Properties))
		for _, p := range snap.Suite.Properties {
			props = append(props, p.Name+"="+p.Value)
		}

		lines = append(lines, bm.styles.faint.Render(truncate(strings.Join(props, ", "), bm.width)))
	}

	return lines
}

func (bm browserModel) renderBody(snap navigation.Snapshot) string {
	switch snap.Kind {
	case navigation.KindEmpty:
		return bm.renderEmpty(snap)
	case navigation.KindDetail:
		return bm.detail.View()
	case navigation.KindSuiteList, navigation.KindChildren:
		return bm.renderRows(snap)
	default:
		return ""
	}
}

func (bm browserModel) renderEmpty(snap navigation.Snapshot) string {
	lines := []string{"No reports loaded."}

	for _, file := range snap.Files {
		if file.Err != nil {
			lines = append(lines, bm.styles.errorText.Render(truncate(fmt.Sprintf("%s: %v", file.Name, file.Err), bm.mainWidth())))
		}
	}

	return strings.Join(lines, "\n")
}

func (bm browserModel) renderRows(snap navigation.Snapshot) string {
	if len(snap.Rows) == 0 {
		return bm.styles.faint.Render("(empty)")
	}

	width := bm.mainWidth()
	height := bm.bodyHeight(snap)
	end := min(bm.offset+height, len(snap.Rows))
	lines := make([]string, 0, end-bm.offset)

	for i := bm.offset; i < end; i++ {
		row := snap.Rows[i]
		seconds := navigation.FormatSeconds(row.Time)
		labelWidth := width - 2 - len(seconds) - 1

		label := padRight(truncate(row.Label, labelWidth), labelWidth)
		if i == snap.Selected {
			label = bm.styles.selected.Render(label)
		}

		lines = append(lines, bm.styles.glyph(row.Glyph)+" "+label+" "+bm.styles.faint.Render(seconds))
	}

	return strings.Join(lines, "\n")
}

func (bm browserModel) renderSidebar(snap navigation.Snapshot) string {
	lines := make([]string, 0, len(snap.Files))

	for _, file := range snap.Files {
		if file.Err != nil {
			lines = append(lines, bm.styles.errorText.Render("! "+truncate(file.Name, sidebarWidth-3)))
			continue
		}

		counts := fmt.Sprintf(" %d/%d", file.Counts.Passed, file.Counts.Total)
		name := truncate(file.Name, sidebarWidth-3-len(counts))

		line := bm.styles.glyph(file.Glyph) + " " + name + counts
		if file.Current {
			line = bm.styles.current.Render("▸") + line
		} else {
			line = " " + line
		}

		lines = append(lines, line)
	}

	return bm.styles.sidebar.Render(strings.Join(lines, "\n"))
}

func (bm browserModel) renderStatus(snap navigation.Snapshot) string {
	t := snap.Totals

	position := "no files"
	if snap.FileCount > 0 {
		position = fmt.Sprintf("file %d/%d", snap.FileIndex+1, snap.FileCount)
	}

	status := fmt.Sprintf("%s · %d tests · %d passed · %d failed · %d errored · %d skipped",
		position, t.Total, t.Passed, t.Failed, t.Errored, t.Skipped)

	if failed := len(bm.set.Failures()); failed > 0 {
		status += fmt.Sprintf(" · %d unreadable", failed)
	}

	return bm.styles.status.Render(truncate(status, bm.width))
}
