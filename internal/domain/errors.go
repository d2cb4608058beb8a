package domain

import "errors"

var (
	// ErrLoadFailure marks a roster that could not be read or normalized.
	// It is fatal to the session.
	ErrLoadFailure = errors.New("load roster")
	// ErrSaveFailure marks a roster write that did not go through.
	// The in-memory table is left untouched so the save can be retried.
	ErrSaveFailure = errors.New("save roster")

	ErrWorksheetNotFound = errors.New("worksheet not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrBossNotFound      = errors.New("boss not found")
	ErrDuplicateMember   = errors.New("duplicate member")
	ErrInvalidHits       = errors.New("invalid hits")
	ErrInvalidDamage     = errors.New("invalid damage")
)
