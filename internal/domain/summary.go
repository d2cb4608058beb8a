package domain

// SummaryRow is the derived per-member aggregate shown in the overview.
// Averages[i] belongs to the boss with Index i+1.
type SummaryRow struct {
	Name      string
	Averages  []float64
	TotalHits int
}

// ColumnStyle is a display hint for a whole summary column.
type ColumnStyle struct {
	Background string
	Foreground string
	Bold       bool
}
