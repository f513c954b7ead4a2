package term

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoscope/codelabel"
)

// Code prints src with line numbers and marks the line tagged label with
// '▶'. An unknown or empty label marks nothing.
func (r *Renderer) Code(src codelabel.Parsed, label string) string {
	cur, ok := src.Line(label)
	if !ok || label == "" {
		cur = -1
	}
	lines := strings.Split(strings.TrimRight(src.Clean, "\n"), "\n")
	w := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if i == cur {
			fmt.Fprintf(&b, "▶ %*d  %s\n", w, i+1, r.style(line).Reverse().String())
			continue
		}
		fmt.Fprintf(&b, "  %*d  %s\n", w, i+1, line)
	}
	return b.String()
}

// StepLine is the one-line caption of step i (0-based) out of total.
func (r *Renderer) StepLine(i, total int, label, log string) string {
	counter := r.counter.Sprintf("[%*d/%d]", len(fmt.Sprint(total)), i+1, total)
	if label == "" {
		return fmt.Sprintf("%s %s", counter, r.log.Sprint(log))
	}
	return fmt.Sprintf("%s %s %s", counter, r.label.Sprint(label), r.log.Sprint(log))
}

// Error formats err for the terminal.
func (r *Renderer) Error(err error) string {
	return r.fail.Sprintf("error: %v", err)
}
