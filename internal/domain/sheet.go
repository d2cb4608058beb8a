package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalHeader trims a header cell and puts it in Unicode NFC form so
// that Thai names typed with different combining sequences still match.
func CanonicalHeader(h string) string {
	return norm.NFC.String(strings.TrimSpace(h))
}

// Sheet is a raw worksheet as exchanged with a roster store: a header row
// followed by data rows of cell text. An empty string is an absent cell.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at row r, column c, or "" when the row is short.
func (s *Sheet) Cell(r, c int) string {
	if r < 0 || r >= len(s.Rows) || c < 0 || c >= len(s.Rows[r]) {
		return ""
	}
	return s.Rows[r][c]
}

// ColumnIndex returns the position of the named header column or -1.
func (s *Sheet) ColumnIndex(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy.
func (s *Sheet) Clone() *Sheet {
	out := &Sheet{
		Header: append([]string(nil), s.Header...),
		Rows:   make([][]string, len(s.Rows)),
	}
	for i, row := range s.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
