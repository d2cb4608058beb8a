package cli

import (
	"strings"

	"github.com/alexanderramin/bossboard/internal/app"
	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea model of the dashboard. The roster view
// is always at the bottom of the stack; forms are pushed over it.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// quitPrompt is set while the unsaved-edits confirmation is open, so
	// a second ctrl+c leaves without asking again.
	quitPrompt bool
}

func newAppModel(a *App, session *app.Session) appModel {
	state := &SharedState{App: a, Session: session}
	return appModel{
		state:     state,
		viewStack: []View{newRosterView(state)},
	}
}

// activeView returns the top of the stack.
func (m *appModel) activeView() View {
	return m.viewStack[len(m.viewStack)-1]
}

// forward sends msg to the top view only.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	top := len(m.viewStack) - 1
	updated, cmd := m.viewStack[top].Update(msg)
	m.viewStack[top] = updated.(View)
	return cmd
}

// broadcast sends msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.viewStack))
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Init() tea.Cmd {
	return m.activeView().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case noticeMsg:
		m.state.Notice = msg.text
		return m, m.broadcast(refreshViewMsg{})

	case formDoneMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.quitPrompt = false
		refresh := func() tea.Msg { return refreshViewMsg{} }
		return m, tea.Batch(msg.nextCmd, refresh)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC && (m.quitPrompt || !m.state.Session.Dirty()) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		return m.promptQuit()
	}

	// An open form takes every other key, q included.
	if m.activeView().ID() == ViewForm {
		return m, m.forward(msg)
	}

	if key.Matches(msg, quitKey) {
		if m.state.Session.Dirty() {
			return m.promptQuit()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.forward(msg)
}

// promptQuit asks before discarding unsaved edits.
func (m appModel) promptQuit() (tea.Model, tea.Cmd) {
	if m.quitPrompt {
		return m, nil
	}
	m.quitPrompt = true
	var confirmed bool
	form := confirmForm("Quit without saving your edits?", &confirmed)
	return m, openForm(m.state, "Quit", form, func() tea.Cmd {
		if confirmed {
			return quitCmd
		}
		return nil
	})
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	out := strings.Join([]string{m.header(), m.activeView().View(), m.statusBar()}, "\n")

	// Fill the alt screen so lines from a taller previous frame are
	// overwritten.
	if lines := strings.Count(out, "\n") + 1; lines < m.state.Height {
		out += strings.Repeat("\n", m.state.Height-lines)
	}
	return out
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// header shows the breadcrumb of open views and the save status.
func (m *appModel) header() string {
	crumbs := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}

	line := formatter.StylePurple.Render("bossboard")
	if len(crumbs) > 0 {
		line += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}
	s := m.state.Session
	if status := formatter.SaveStatus(s.Dirty(), s.SavedAt, m.state.now()); status != "" {
		line += "  " + status
	}
	return line + "\n" + m.rule()
}

// statusBar lists the active view's keys.
func (m *appModel) statusBar() string {
	top := m.activeView()
	bindings := top.ShortHelp()
	if top.ID() != ViewForm {
		bindings = append(bindings, quitKey)
	}
	hints := make([]string, len(bindings))
	for i, b := range bindings {
		hints[i] = formatter.Dim(b.Help().Key + ": " + b.Help().Desc)
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}
