package cli

import (
	"time"

	"github.com/alexanderramin/bossboard/internal/app"
)

// SharedState holds context shared across all views via pointer. Session
// is only touched from Update, so views never race on it.
type SharedState struct {
	App     *App
	Session *app.Session

	// Notice is the last status line (save result, edit error).
	Notice string

	// Terminal dimensions
	Width  int
	Height int

	// Now is the clock used for "saved 2m ago" hints.
	Now func() time.Time
}

func (s *SharedState) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
