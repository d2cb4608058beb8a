package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderHitBar renders how many of the allowed hits a member has used, like
// [████░░░░░░] 4/14. The bar turns red once every hit is spent.
func RenderHitBar(hits, maxHits, width int) string {
	if maxHits < 1 {
		maxHits = 1
	}
	hits = min(max(hits, 0), maxHits)
	if width < 2 {
		width = 2
	}

	filled := hits * width / maxHits
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case hits == 0:
		style = StyleDim
	case hits == maxHits:
		style = StyleRed
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), hits, maxHits)
}
