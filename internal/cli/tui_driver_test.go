package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/bossboard/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with inspection of the dashboard's view
// stack and session that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver loads the roster through app and opens the dashboard on it
// with a fixed terminal size.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	session, err := app.Roster.Load(context.Background())
	require.NoError(t, err)

	m := newAppModel(app, session)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Roster returns the roster view at the bottom of the stack.
func (d *TestDriver) Roster() *rosterView {
	return d.appModel().viewStack[0].(*rosterView)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
// Checks model.quitting (q/Ctrl+C/quitMsg) and the driver's Quitting flag
// (tea.QuitMsg from tea.Quit).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Notice returns the status notice without styling.
func (d *TestDriver) Notice() string {
	return teatest.StripANSI(d.State().Notice)
}
