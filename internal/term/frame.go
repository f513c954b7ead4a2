package term

import (
	"strings"

	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/playback"
	"github.com/katalvlaran/algoscope/step"
)

// ArrayFrame composes the caption, the bars and, when src is non-nil, the
// source listing for one sorting step.
func (r *Renderer) ArrayFrame(st playback.State, s step.Step[[]int], src *codelabel.Parsed) string {
	return r.frame(st, s.CodeLabel, s.Log, r.Array(s), src)
}

// GraphFrame is ArrayFrame for graph, tree and map steps.
func (r *Renderer) GraphFrame(st playback.State, s step.Step[core.Graph], src *codelabel.Parsed) string {
	return r.frame(st, s.CodeLabel, s.Log, r.Graph(s), src)
}

func (r *Renderer) frame(st playback.State, label, log, body string, src *codelabel.Parsed) string {
	var b strings.Builder
	b.WriteString(r.StepLine(st.Index, st.Total, label, log))
	b.WriteString("\n\n")
	b.WriteString(body)
	if src != nil {
		b.WriteByte('\n')
		b.WriteString(r.Code(*src, label))
	}
	return b.String()
}
