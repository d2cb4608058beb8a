package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/bossboard/internal/cli/formatter"
	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// bossboardHuhTheme returns a huh theme matching the dashboard palette.
func bossboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// hitOptions lists every allowed hit count, 0 through MaxHits.
func hitOptions() []huh.Option[int] {
	values := make([]int, domain.MaxHits+1)
	for i := range values {
		values[i] = i
	}
	return huh.NewOptions(values...)
}

// parseDamage reads a damage entry. Commas are tolerated as thousands
// separators.
func parseDamage(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("enter a whole number of 0 or more")
	}
	return v, nil
}

// validateDamage requires a non-negative whole number. There is no upper
// bound.
func validateDamage(s string) error {
	_, err := parseDamage(s)
	return err
}

// editFields holds the values bound to the edit form.
type editFields struct {
	hits   int
	damage string
}

// editMemberForm builds the form for one member's cells on one boss: a
// required hit dropdown and a free damage input.
func editMemberForm(member string, boss domain.BossDefinition, fields *editFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("%s · %s hits", member, boss.Name)).
				Options(hitOptions()...).
				Height(8).
				Value(&fields.hits),
			huh.NewInput().
				Title("Damage").
				Placeholder("0").
				Value(&fields.damage).
				Validate(validateDamage),
		),
	).WithTheme(bossboardHuhTheme()).WithShowHelp(false)
}

// confirmForm creates a yes/no confirmation form.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(bossboardHuhTheme()).WithShowHelp(false)
}
