package term_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/term"
	"github.com/katalvlaran/algoscope/matrix"
	"github.com/katalvlaran/algoscope/playback"
	"github.com/katalvlaran/algoscope/step"
)

func plain(width int) *term.Renderer {
	return term.New(term.Options{Width: width})
}

func TestArray(t *testing.T) {
	tests := []struct {
		name string
		step step.Step[[]int]
		want string
	}{
		{
			name: "highlight and scale",
			step: step.Step[[]int]{State: []int{3, 1, 2}, HighlightIndices: []int{0, 1}},
			want: "> 0 │██████ 3\n> 1 │██ 1\n  2 │████ 2\n",
		},
		{
			name: "secondary and inactive range",
			step: step.Step[[]int]{State: []int{2, 2, 2}, SecondaryIndices: []int{1}, ActiveRange: &step.Range{Start: 0, End: 1}},
			want: "  0 │██████ 2\n+ 1 │██████ 2\n  2 │░░░░░░ 2\n",
		},
		{
			name: "zero and negative",
			step: step.Step[[]int]{State: []int{0, -3}},
			want: "  0 │ 0\n  1 │██████ -3\n",
		},
		{
			name: "empty",
			step: step.Step[[]int]{},
			want: "(empty)\n",
		},
	}
	r := plain(6)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Array(tc.step))
		})
	}
}

func TestGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	g.AddNode("A")
	g.AddNode("B", core.WithLabel("bee"))
	id := g.AddEdge("A", "B", core.WithWeight(2.5))
	g.Nodes[0].Status = core.StatusVisited
	g.Nodes[1].Color = core.ColorRed
	g.Edges[0].Status = core.EdgeTraversed

	got := plain(10).Graph(step.Step[core.Graph]{State: *g, HighlightedEdgeID: id})
	want := "nodes:\n" +
		"  A  visited\n" +
		"  B  unvisited  bee  (red)\n" +
		"edges:\n" +
		"* A -> B w=2.5 traversed\n"
	assert.Equal(t, want, got)

	assert.Equal(t, "(empty)\n", plain(10).Graph(step.Step[core.Graph]{}))
}

func TestCode(t *testing.T) {
	src := codelabel.Parsed{Clean: "a\nb\nc\n", Lines: map[string]int{"x": 1}}
	r := plain(10)

	assert.Equal(t, "  1  a\n▶ 2  b\n  3  c\n", r.Code(src, "x"))
	assert.Equal(t, "  1  a\n  2  b\n  3  c\n", r.Code(src, "missing"))
	assert.Equal(t, "  1  a\n  2  b\n  3  c\n", r.Code(src, ""))
}

func TestStepLine(t *testing.T) {
	r := plain(10)
	assert.Equal(t, "[ 3/10] compare Compare 3 and 1", r.StepLine(2, 10, "compare", "Compare 3 and 1"))
	assert.Equal(t, "[1/1] Initial State", r.StepLine(0, 1, "", playback.InitialLog))
	assert.Equal(t, "error: boom", r.Error(errors.New("boom")))
}

func TestAlgorithmTable(t *testing.T) {
	out := plain(10).AlgorithmTable(catalog.All())
	for _, id := range catalog.IDs() {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "TOTAL: 10")
}

func TestLabelTable(t *testing.T) {
	out := plain(10).LabelTable(map[string]int{"swap": 4, "compare": 2})
	assert.Less(t, strings.Index(out, "compare"), strings.Index(out, "swap"))
}

func TestMatrixTable(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	g.AddEdge("A", "B", core.WithWeight(2.5))
	a, err := matrix.NewAdjacency(*g)
	require.NoError(t, err)

	out := plain(10).MatrixTable(a)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "2.5")
	assert.Contains(t, lines[3], ".")
	assert.NotContains(t, lines[3], "2.5")
}

func TestIncidenceTable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("node-1", "node-2")
	inc, err := matrix.NewIncidence(*g)
	require.NoError(t, err)

	out := plain(10).IncidenceTable(inc)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "e-node-1-node-2")
	assert.Contains(t, lines[2], "node-1")
	assert.Contains(t, lines[2], "1")
	assert.NotContains(t, out, ".")
}

func TestMarkdown(t *testing.T) {
	a, err := catalog.Lookup("dijkstra")
	require.NoError(t, err)

	out, err := plain(80).Markdown(a.Markdown())
	require.NoError(t, err)
	assert.Contains(t, out, "Dijkstra")
	assert.Contains(t, out, "How it works")
}

func TestSummary(t *testing.T) {
	a, err := catalog.Lookup("bubble-sort")
	require.NoError(t, err)
	res, err := a.Run(context.Background(), catalog.Input{Values: []int{3, 1, 2}})
	require.NoError(t, err)

	out := plain(10).Summary(a.ID, res, 1500*time.Microsecond)
	assert.Contains(t, out, "bubble-sort: 9 steps, 3 labels, ")
	assert.Contains(t, out, "as JSON, generated in 1.5ms")
}

func TestFrames(t *testing.T) {
	r := plain(4)
	src := codelabel.Parsed{Clean: "loop\nswap", Lines: map[string]int{"swap": 1}}
	st := playback.State{Index: 1, Total: 3}

	out := r.ArrayFrame(st, step.Step[[]int]{State: []int{2, 1}, CodeLabel: "swap", Log: "Swap"}, &src)
	assert.Equal(t, "[2/3] swap Swap\n\n  0 │████ 2\n  1 │██ 1\n\n  1  loop\n▶ 2  swap\n", out)

	g := core.NewGraph()
	g.AddNode("A")
	out = r.GraphFrame(st, step.Step[core.Graph]{State: *g}, nil)
	assert.Equal(t, "[2/3] \n\nnodes:\n  A  unvisited\n", out)
}

func TestNew_Defaults(t *testing.T) {
	r := term.New(term.Options{})
	assert.Equal(t, codelabel.Go, r.Language())
	assert.Contains(t, r.Array(step.Step[[]int]{State: []int{1}}), "  0 │"+strings.Repeat("█", term.DefaultWidth)+" 1")
}
