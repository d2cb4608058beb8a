package formatter

import (
	"fmt"
	"time"
)

// SaveStatus is the header hint for a session: a marker while edits are
// unsaved, otherwise how long ago the worksheet was last saved. It is empty
// for a clean session that was never saved.
func SaveStatus(dirty bool, savedAt *time.Time, now time.Time) string {
	switch {
	case dirty:
		return StyleYellow.Render("● unsaved edits")
	case savedAt != nil:
		return Dim("saved " + relativeTime(*savedAt, now))
	default:
		return ""
	}
}

func relativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2 15:04")
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2 15:04")
	}
}

// Success renders a confirmation line.
func Success(text string) string {
	return StyleGreen.Render("✔ " + text)
}

// Failure renders an error line.
func Failure(text string) string {
	return StyleRed.Render("✖ " + text)
}
