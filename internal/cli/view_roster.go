package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Grid column widths for the hits and damage columns.
const (
	hitsColWidth   = 6
	damageColWidth = 14
	minNameWidth   = 12
)

type rosterKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Edit    key.Binding
	Save    key.Binding
	Reload  key.Binding
}

var rosterKeys = rosterKeyMap{
	NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next boss")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev boss")),
	Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
}

// rosterView is the dashboard home: one tab per boss showing each member's
// hits and damage for that boss, with the summary table below.
type rosterView struct {
	state  *SharedState
	active int
	grid   table.Model
}

func newRosterView(state *SharedState) *rosterView {
	v := &rosterView{
		state: state,
		grid: table.New(
			table.WithFocused(true),
			table.WithHeight(10),
		),
	}
	v.grid.SetStyles(gridStyles())
	v.refresh()
	return v
}

func gridStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(formatter.ColorYellow).
		Bold(false)
	return s
}

func (v *rosterView) ID() ViewID { return ViewRoster }

func (v *rosterView) Title() string { return v.boss().Name }

func (v *rosterView) ShortHelp() []key.Binding {
	return []key.Binding{rosterKeys.NextTab, rosterKeys.Edit, rosterKeys.Save, rosterKeys.Reload}
}

func (v *rosterView) Init() tea.Cmd { return nil }

func (v *rosterView) boss() domain.BossDefinition {
	return v.state.Session.Bosses()[v.active]
}

// refresh rebuilds the grid for the active boss from the session.
func (v *rosterView) refresh() {
	wt := v.state.Session.Table()
	b := v.boss()

	nameWidth := max(lipgloss.Width(wt.NameColumn), minNameWidth)
	rows := make([]table.Row, 0, len(wt.Rows))
	for _, r := range wt.Rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.Name))
		rows = append(rows, table.Row{
			r.Name,
			strconv.Itoa(r.Hits[b.Index-1]),
			strconv.FormatInt(r.Damage[b.Index-1], 10),
		})
	}

	cursor := v.grid.Cursor()
	v.grid.SetColumns([]table.Column{
		{Title: wt.NameColumn, Width: nameWidth},
		{Title: "Hits", Width: hitsColWidth},
		{Title: "Damage", Width: damageColWidth},
	})
	v.grid.SetRows(rows)
	v.grid.SetCursor(min(cursor, max(len(rows)-1, 0)))
	v.resize()
}

// resize gives the grid what the summary leaves of the content area.
func (v *rosterView) resize() {
	if v.state.Height == 0 {
		return
	}
	summaryLines := len(v.state.Session.Table().Rows) + 4
	// tabs, notice and spacing take four lines
	h := v.state.ContentHeight() - summaryLines - 4
	v.grid.SetHeight(max(min(h, len(v.state.Session.Table().Rows)+1), 3))
}

func (v *rosterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, rosterKeys.NextTab):
			v.active = (v.active + 1) % len(v.state.Session.Bosses())
			v.refresh()
			return v, nil
		case key.Matches(msg, rosterKeys.PrevTab):
			n := len(v.state.Session.Bosses())
			v.active = (v.active + n - 1) % n
			v.refresh()
			return v, nil
		case key.Matches(msg, rosterKeys.Edit):
			return v, v.startEdit()
		case key.Matches(msg, rosterKeys.Save):
			return v, saveSession(v.state)
		case key.Matches(msg, rosterKeys.Reload):
			return v, v.startReload()
		}
	}

	var cmd tea.Cmd
	v.grid, cmd = v.grid.Update(msg)
	return v, cmd
}

// startEdit opens the edit form for the member under the cursor.
func (v *rosterView) startEdit() tea.Cmd {
	rows := v.state.Session.Table().Rows
	cursor := v.grid.Cursor()
	if cursor < 0 || cursor >= len(rows) {
		return nil
	}
	b := v.boss()
	member := rows[cursor]
	fields := &editFields{
		hits:   member.Hits[b.Index-1],
		damage: strconv.FormatInt(member.Damage[b.Index-1], 10),
	}
	form := editMemberForm(member.Name, b, fields)
	return openForm(v.state, member.Name, form, func() tea.Cmd {
		return applyMemberEdit(v.state, b, member.Name, fields)
	})
}

// startReload re-reads the worksheet, asking first when edits would be lost.
func (v *rosterView) startReload() tea.Cmd {
	if !v.state.Session.Dirty() {
		return reloadSession(v.state)
	}
	var confirmed bool
	form := confirmForm("Discard unsaved edits and reload?", &confirmed)
	return openForm(v.state, "Reload", form, func() tea.Cmd {
		if !confirmed {
			return notify(formatter.Dim("Reload cancelled."))
		}
		return reloadSession(v.state)
	})
}

func (v *rosterView) View() string {
	var b strings.Builder
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(v.grid.View())
	b.WriteString("\n")
	if v.state.Notice != "" {
		b.WriteString(v.state.Notice)
	}
	b.WriteString("\n\n")
	b.WriteString(renderSessionSummary(v.state.Session))
	return b.String()
}

func (v *rosterView) renderTabs() string {
	bosses := v.state.Session.Bosses()
	tabs := make([]string, len(bosses))
	for i, b := range bosses {
		label := fmt.Sprintf(" %d · %s ", b.Index, b.Name)
		if i == v.active {
			tabs[i] = formatter.BossStyle(b).Render(label)
		} else {
			tabs[i] = formatter.Dim(label)
		}
	}
	return strings.Join(tabs, " ")
}

// applyMemberEdit merges a submitted edit form into the session.
func applyMemberEdit(state *SharedState, boss domain.BossDefinition, member string, fields *editFields) tea.Cmd {
	damage, err := parseDamage(fields.damage)
	if err != nil {
		return notify(formatter.Failure(err.Error()))
	}
	edit := domain.CellEdit{Name: member, Hits: fields.hits, Damage: damage}
	if err := state.App.Roster.Edit(context.Background(), state.Session, boss, edit); err != nil {
		return notify(formatter.Failure(err.Error()))
	}
	return notify(formatter.Dim(fmt.Sprintf("%s · %s: %d hits, %d damage  ", member, boss.Name, edit.Hits, edit.Damage)) +
		formatter.RenderHitBar(edit.Hits, domain.MaxHits, domain.MaxHits))
}

// saveSession writes the whole table. A failed save leaves the session as
// it was, still dirty, and shows the error.
func saveSession(state *SharedState) tea.Cmd {
	if err := state.App.Roster.Save(context.Background(), state.Session); err != nil {
		return notify(formatter.Failure(err.Error()))
	}
	return notify(formatter.Success(fmt.Sprintf("Saved %d members to %s.", len(state.Session.Table().Rows), state.Session.Worksheet)))
}

// reloadSession replaces the table with a fresh read of the worksheet.
func reloadSession(state *SharedState) tea.Cmd {
	if err := state.App.Roster.Reload(context.Background(), state.Session); err != nil {
		return notify(formatter.Failure(err.Error()))
	}
	return notify(formatter.Dim("Reloaded from " + state.Session.Worksheet + "."))
}

