package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// Graph lists nodes with their status and edges with their weight. The
// highlighted edge is prefixed with '*'.
func (r *Renderer) Graph(s step.Step[core.Graph]) string {
	g := s.State
	if len(g.Nodes) == 0 {
		return "(empty)\n"
	}
	idw := 0
	for _, n := range g.Nodes {
		idw = max(idw, len(n.ID))
	}

	var b strings.Builder
	b.WriteString("nodes:\n")
	for _, n := range g.Nodes {
		id := n.ID
		if n.Color == core.ColorRed {
			id = r.paint(id, colRed)
		}
		fmt.Fprintf(&b, "  %s%s  %s", id, strings.Repeat(" ", idw-len(n.ID)), r.nodeStatus(n.Status))
		if n.Label != "" && n.Label != n.ID {
			fmt.Fprintf(&b, "  %s", n.Label)
		}
		if n.Color != "" {
			fmt.Fprintf(&b, "  (%s)", n.Color)
		}
		b.WriteByte('\n')
	}

	if len(g.Edges) == 0 {
		return b.String()
	}
	arrow := "--"
	if g.Directed {
		arrow = "->"
	}
	b.WriteString("edges:\n")
	for _, e := range g.Edges {
		marker := " "
		line := fmt.Sprintf("%s %s %s", e.Source, arrow, e.Target)
		if e.Weight != nil {
			line += " w=" + strconv.FormatFloat(*e.Weight, 'g', -1, 64)
		}
		if e.Status != "" && e.Status != core.EdgeDefault {
			line += " " + string(e.Status)
		}
		if e.ID == s.HighlightedEdgeID {
			marker = "*"
			line = r.style(line).Foreground(r.profile.Color(colActive)).Bold().String()
		}
		fmt.Fprintf(&b, "%s %s\n", marker, line)
	}
	return b.String()
}
