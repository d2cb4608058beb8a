// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver calls Update directly and
// executes every returned Cmd on the spot, feeding the resulting messages
// back in until nothing is left. Views can then be asserted on without
// goroutines or sleeps.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many message round trips one Send may cause.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from
// timer Cmds such as cursor blinks, which are dropped.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg is produced. The runtime would
	// normally swallow it, so the driver records it and ignores input
	// from then on.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit afterwards to run the
// model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg and drains the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// SendKey sends a key event.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

// PressKey sends a printable key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one key at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()    { d.T.Helper(); d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()      { d.T.Helper(); d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()    { d.T.Helper(); d.press(tea.KeyCtrlC) }
func (d *Driver) PressTab()      { d.T.Helper(); d.press(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.T.Helper(); d.press(tea.KeyShiftTab) }
func (d *Driver) PressUp()       { d.T.Helper(); d.press(tea.KeyUp) }
func (d *Driver) PressDown()     { d.T.Helper(); d.press(tea.KeyDown) }
func (d *Driver) PressLeft()     { d.T.Helper(); d.press(tea.KeyLeft) }
func (d *Driver) PressRight()    { d.T.Helper(); d.press(tea.KeyRight) }

// View returns the rendered model.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns the rendered model without terminal styling.
func (d *Driver) PlainView() string {
	return StripANSI(d.Model.View())
}

// RequireViewContains fails the test unless the plain view contains every
// fragment.
func (d *Driver) RequireViewContains(fragments ...string) {
	d.T.Helper()
	view := d.PlainView()
	for _, f := range fragments {
		if !strings.Contains(view, f) {
			d.T.Fatalf("view does not contain %q:\n%s", f, view)
		}
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes terminal escape sequences.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining at depth %d", MaxDrainDepth)
		return
	}

	msg := run(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// run executes cmd, giving up after cmdTimeout.
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink reports cursor blink messages, whose types are unexported.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
