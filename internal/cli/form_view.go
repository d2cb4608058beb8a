package cli

import (
	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var formKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// formView shows a huh form over the roster. onSubmit runs once, inside
// Update, when the form completes, so it may change the session; its Cmd
// runs after the form is popped.
type formView struct {
	state    *SharedState
	form     *huh.Form
	title    string
	onSubmit func() tea.Cmd
}

// openForm pushes form onto the view stack.
func openForm(state *SharedState, title string, form *huh.Form, onSubmit func() tea.Cmd) tea.Cmd {
	return pushView(&formView{state: state, form: form, title: title, onSubmit: onSubmit})
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, v.finish(notify(formatter.Dim("Cancelled.")))
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.onSubmit != nil {
			next = v.onSubmit()
			v.onSubmit = nil
		}
		return v, v.finish(next)
	case huh.StateAborted:
		return v, v.finish(nil)
	}
	return v, cmd
}

func (v *formView) finish(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return formDoneMsg{nextCmd: next} }
}

func (v *formView) View() string { return v.form.View() }

func (v *formView) ID() ViewID               { return ViewForm }
func (v *formView) Title() string            { return v.title }
func (v *formView) ShortHelp() []key.Binding { return formKeys }
