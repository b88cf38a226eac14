package navigation

import (
	"fmt"

	m "github.com/rupert648/ratunit/internal/model"
)

// Command is a navigation event produced by the key bindings.
type Command int

const (
	MoveDown Command = iota
	MoveUp
	JumpFirst
	JumpLast
	PageDown
	PageUp
	Enter
	Back
	NextFile
	PrevFile
	Quit
)

// PageSize is the number of rows PageDown and PageUp move by.
const PageSize = 10

func (c Command) String() string {
	switch c {
	case MoveDown:
		return "move-down"
	case MoveUp:
		return "move-up"
	case JumpFirst:
		return "jump-first"
	case JumpLast:
		return "jump-last"
	case PageDown:
		return "page-down"
	case PageUp:
		return "page-up"
	case Enter:
		return "enter"
	case Back:
		return "back"
	case NextFile:
		return "next-file"
	case PrevFile:
		return "prev-file"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// State is the cursor into a ReportSet.
//
// Stack holds the selected row of every open frame. Frame 0 lists the
// report's top-level suites; frame k lists the children (child suites, then
// cases) of the suite selected in frame k-1. Detail marks the case selected
// in the last frame as opened. A State only holds indices, never pointers
// into reports.
type State struct {
	FileIndex int
	Stack     []int
	Detail    bool
}

// NewState returns the state of a freshly opened browser: first file, suite
// list, first row.
func NewState() State {
	return State{Stack: []int{0}}
}

// Depth is the number of suites entered below the suite list.
func (s State) Depth() int {
	if len(s.Stack) == 0 {
		return 0
	}

	return len(s.Stack) - 1
}

// Selected is the selected row of the innermost frame.
func (s State) Selected() int {
	if len(s.Stack) == 0 {
		return 0
	}

	return s.Stack[len(s.Stack)-1]
}

func (s State) clone() State {
	out := s
	if len(s.Stack) == 0 {
		out.Stack = []int{0}
	} else {
		out.Stack = append(make([]int, 0, len(s.Stack)+1), s.Stack...)
	}

	return out
}

func (s *State) setSelected(row int) {
	s.Stack[len(s.Stack)-1] = row
}

// Apply returns the state reached by cmd. It never fails: moves past either
// end of a list, Enter on an empty list and Back at the suite list leave the
// state unchanged. The input state is not modified.
//
// Apply panics with an error wrapping ErrIndexOutOfRange when s does not
// resolve against set; such a state cannot be produced by Apply itself.
//
//nolint:cyclop // One branch per command.
func Apply(set *ReportSet, s State, cmd Command) State {
	next := s.clone()

	n := set.Len()
	if n == 0 {
		return next
	}

	v := resolve(set, next)

	switch cmd {
	case MoveDown:
		next.move(v, next.Selected()+1)
	case MoveUp:
		next.move(v, next.Selected()-1)
	case JumpFirst:
		next.move(v, 0)
	case JumpLast:
		next.move(v, v.len()-1)
	case PageDown:
		next.move(v, next.Selected()+PageSize)
	case PageUp:
		next.move(v, next.Selected()-PageSize)
	case Enter:
		if next.Detail || v.len() == 0 {
			return next
		}

		if _, ok := v.suite(next.Selected()); ok {
			next.Stack = append(next.Stack, 0)
		} else {
			next.Detail = true
		}
	case Back:
		switch {
		case next.Detail:
			next.Detail = false
		case len(next.Stack) > 1:
			next.Stack = next.Stack[:len(next.Stack)-1]
		}
	case NextFile:
		return State{FileIndex: (next.FileIndex + 1) % n, Stack: []int{0}}
	case PrevFile:
		return State{FileIndex: (next.FileIndex - 1 + n) % n, Stack: []int{0}}
	case Quit:
	}

	return next
}

func (s *State) move(v view, row int) {
	if s.Detail || v.len() == 0 {
		return
	}

	s.setSelected(min(max(row, 0), v.len()-1))
}

// view is a State resolved against a report: the suites entered so far and
// the list shown by the innermost frame.
type view struct {
	report *m.Report
	trail  []*m.Suite
	suites []m.Suite
	cases  []m.Case
}

func (v view) len() int {
	return len(v.suites) + len(v.cases)
}

func (v view) suite(row int) (*m.Suite, bool) {
	if row < 0 || row >= len(v.suites) {
		return nil, false
	}

	return &v.suites[row], true
}

func (v view) testCase(row int) (*m.Case, bool) {
	row -= len(v.suites)
	if row < 0 || row >= len(v.cases) {
		return nil, false
	}

	return &v.cases[row], true
}

// resolve walks s through the current report. It panics on any index the
// report does not have.
func resolve(set *ReportSet, s State) view {
	report, err := set.Report(s.FileIndex)
	if err != nil {
		panic(fmt.Errorf("resolve state: %w", err))
	}

	v := view{report: report, suites: report.Suites}

	stack := s.Stack
	if len(stack) == 0 {
		stack = []int{0}
	}

	for depth, row := range stack[:len(stack)-1] {
		suite, ok := v.suite(row)
		if !ok {
			panic(fmt.Errorf("resolve state: frame %d row %d is not a suite: %w", depth, row, ErrIndexOutOfRange))
		}

		v.trail = append(v.trail, suite)
		v.suites = suite.Suites
		v.cases = suite.Cases
	}

	row := stack[len(stack)-1]

	switch {
	case v.len() == 0 && row != 0, v.len() > 0 && (row < 0 || row >= v.len()):
		panic(fmt.Errorf("resolve state: row %d of %d: %w", row, v.len(), ErrIndexOutOfRange))
	case s.Detail:
		if _, ok := v.testCase(row); !ok {
			panic(fmt.Errorf("resolve state: detail row %d is not a case: %w", row, ErrIndexOutOfRange))
		}
	}

	return v
}
