package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewRoster ViewID = iota
	ViewForm
)

func (id ViewID) String() string {
	switch id {
	case ViewRoster:
		return "roster"
	case ViewForm:
		return "form"
	default:
		return "unknown"
	}
}

// View is a screen on the navigation stack: the roster grid at the bottom,
// forms pushed over it.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

var quitKey = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

// Messages views send to the appModel.
type (
	// pushViewMsg pushes a new view onto the navigation stack.
	pushViewMsg struct{ view View }

	// refreshViewMsg asks every view on the stack to re-read the session.
	refreshViewMsg struct{}

	// noticeMsg replaces the one-line status notice under the grid.
	noticeMsg struct{ text string }

	// quitMsg ends the program.
	quitMsg struct{}

	// formDoneMsg pops a finished or cancelled form, then runs
	// nextCmd.
	formDoneMsg struct{ nextCmd tea.Cmd }
)

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// notify shows text as the status notice.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func quitCmd() tea.Msg { return quitMsg{} }
