package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/algoscope/bfs"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// diamond builds the undirected graph A–B, A–C, B–D, C–D.
func diamond() core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	return *g
}

// dequeued extracts the visit order from the dequeue steps.
func dequeued(seq []step.Step[core.Graph]) []string {
	var out []string
	for _, s := range seq {
		if s.CodeLabel == "dequeue" {
			out = append(out, s.State.Nodes[s.HighlightIndices[0]].ID)
		}
	}
	return out
}

// TestBFS_Errors verifies that start-node problems are reported before any step.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(core.Graph{}); !errors.Is(err, core.ErrMissingStartNode) {
		t.Errorf("empty graph: want ErrMissingStartNode, got %v", err)
	}
	seq, err := bfs.BFS(diamond(), bfs.WithStart("Z"))
	if !errors.Is(err, bfs.ErrInvalidStartNode) {
		t.Errorf("missing start: want ErrInvalidStartNode, got %v", err)
	}
	if seq != nil {
		t.Errorf("missing start: want no steps, got %d", len(seq))
	}
	if err != nil && !strings.HasPrefix(err.Error(), "bfs: ") {
		t.Errorf("error %q lacks package prefix", err)
	}
}

// TestBFS_Order checks layer order and default start.
func TestBFS_Order(t *testing.T) {
	seq, err := bfs.BFS(diamond())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dequeued(seq), []string{"A", "B", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	if seq[0].CodeLabel != "initQueue" {
		t.Errorf("first label = %q; want initQueue", seq[0].CodeLabel)
	}
	if last := seq[len(seq)-1]; last.Log != "BFS completed!" || last.HighlightIndices != nil {
		t.Errorf("unexpected final step %+v", last)
	}
}

// TestBFS_FinalStatuses checks the tree-edge and node-status vocabulary.
func TestBFS_FinalStatuses(t *testing.T) {
	seq, err := bfs.BFS(diamond(), bfs.WithStart("A"))
	if err != nil {
		t.Fatal(err)
	}
	final := seq[len(seq)-1].State
	for _, n := range final.Nodes {
		if n.Status != core.StatusVisited {
			t.Errorf("node %s status = %s; want visited", n.ID, n.Status)
		}
	}
	want := map[string]core.EdgeStatus{
		"e-A-B": core.EdgeTraversed,
		"e-A-C": core.EdgeTraversed,
		"e-B-D": core.EdgeTraversed,
		"e-C-D": core.EdgeDefault,
	}
	for id, st := range want {
		if got := final.Edge(id).Status; got != st {
			t.Errorf("edge %s = %s; want %s", id, got, st)
		}
	}
}

// TestBFS_TreeEdgesStayTraversed checks that once traversed an edge never
// reverts in any later step.
func TestBFS_TreeEdgesStayTraversed(t *testing.T) {
	seq, err := bfs.BFS(diamond())
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for i, s := range seq {
		for _, e := range s.State.Edges {
			if seen[e.ID] && e.Status != core.EdgeTraversed {
				t.Fatalf("step %d: edge %s reverted to %s", i, e.ID, e.Status)
			}
			if e.Status == core.EdgeTraversed {
				seen[e.ID] = true
			}
		}
	}
}

// TestBFS_Unreachable leaves disconnected vertices unvisited.
func TestBFS_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	g.AddEdge("A", "B")
	g.AddNode("C")
	g.AddEdge("C", "A")

	seq, err := bfs.BFS(*g)
	if err != nil {
		t.Fatal(err)
	}
	final := seq[len(seq)-1].State
	if st := final.Node("C").Status; st != core.StatusUnvisited {
		t.Errorf("C status = %s; want unvisited", st)
	}
	if got := dequeued(seq); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("order = %v", got)
	}
}

// TestBFS_InputUntouched makes sure the caller's graph is not mutated.
func TestBFS_InputUntouched(t *testing.T) {
	g := diamond()
	g.Nodes[0].Status = core.StatusVisited
	before := g.Clone()
	if _, err := bfs.BFS(g); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, g) {
		t.Errorf("input graph mutated")
	}
}

// TestBFS_Canceled stops on a canceled context.
func TestBFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(diamond(), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
