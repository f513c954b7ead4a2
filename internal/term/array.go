package term

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/algoscope/step"
)

// Bar glyphs. Bars outside the active range use the light shade so the
// range stays visible without color.
const (
	glyphBar      = "█"
	glyphInactive = "░"
)

// Array draws one horizontal bar per element, scaled to the largest
// magnitude. The marker column shows '>' for highlighted indices and '+'
// for secondary ones.
func (r *Renderer) Array(s step.Step[[]int]) string {
	values := s.State
	if len(values) == 0 {
		return "(empty)\n"
	}
	peak := 0
	for _, v := range values {
		peak = max(peak, abs(v))
	}
	idxWidth := len(fmt.Sprint(len(values) - 1))

	var b strings.Builder
	for i, v := range values {
		n := 0
		if peak > 0 {
			n = int(math.Round(float64(abs(v)) / float64(peak) * float64(r.opts.Width)))
			if v != 0 {
				n = max(n, 1)
			}
		}
		glyph := glyphBar
		if s.ActiveRange != nil && (i < s.ActiveRange.Start || i > s.ActiveRange.End) {
			glyph = glyphInactive
		}
		bar := strings.Repeat(glyph, n)

		marker := " "
		switch {
		case slices.Contains(s.HighlightIndices, i):
			marker = ">"
			bar = r.paint(bar, colHighlight)
		case slices.Contains(s.SecondaryIndices, i):
			marker = "+"
			bar = r.paint(bar, colSecondary)
		case glyph == glyphInactive:
			bar = r.style(bar).Faint().String()
		}
		fmt.Fprintf(&b, "%s %*d │%s %d\n", marker, idxWidth, i, bar, v)
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
