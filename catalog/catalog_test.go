package catalog_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/dijkstra"
)

func TestIDsMatchReferenceSources(t *testing.T) {
	ids := catalog.IDs()
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	assert.Equal(t, codelabel.IDs(), sorted)

	for _, a := range catalog.All() {
		for _, lang := range codelabel.Languages {
			src, err := a.Source(lang)
			require.NoError(t, err, "%s/%s", a.ID, lang)
			assert.NotEmpty(t, src.Lines, "%s/%s", a.ID, lang)
		}
	}
}

func TestLookup(t *testing.T) {
	a, err := catalog.Lookup("quick-sort")
	require.NoError(t, err)
	assert.Equal(t, "Quick Sort", a.Name)
	assert.Equal(t, catalog.FamilySorting, a.Family)

	_, err = catalog.Lookup("bogo-sort")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
}

// labelsOf drives one algorithm through enough inputs to reach most of its
// code paths and returns every label it emitted.
func labelsOf(t *testing.T, a catalog.Algorithm) []string {
	t.Helper()
	ctx := context.Background()
	seen := map[string]bool{}
	collect := func(in catalog.Input) catalog.Result {
		res, err := a.Run(ctx, in)
		require.NoError(t, err)
		for _, l := range res.Labels() {
			seen[l] = true
		}
		return res
	}

	for seed := int64(1); seed <= 5; seed++ {
		collect(a.Sample(seed))
	}

	rng := rand.New(rand.NewSource(9))
	switch a.Family {
	case catalog.FamilySorting:
		collect(catalog.Input{})
		collect(catalog.Input{Values: []int{4}})
		collect(catalog.Input{Values: []int{3, 1, 3, 2, 1}})
		collect(catalog.Input{Values: []int{9, 7, 5, 3, 1}})

	case catalog.FamilyTree:
		var snap *core.Graph
		kinds := []string{"insert", "insert", "insert", "delete", "delete", "search", "modify"}
		for i := 0; i < 400; i++ {
			op := map[string]any{"kind": kinds[rng.Intn(len(kinds))], "value": rng.Intn(40)}
			if op["kind"] == "modify" {
				op["target"] = rng.Intn(40)
			}
			res := collect(catalog.Input{Snapshot: snap, Operation: op})
			g, ok := res.FinalSnapshot()
			require.True(t, ok)
			snap = &g
		}
		collect(catalog.Input{Snapshot: snap})

	case catalog.FamilyHash:
		var snap *core.Graph
		kinds := []string{"insert", "insert", "insert", "delete", "search"}
		for i := 0; i < 300; i++ {
			k := "k" + strconv.Itoa(rng.Intn(60))
			op := map[string]any{"kind": kinds[rng.Intn(len(kinds))], "key": k, "value": strconv.Itoa(i)}
			res := collect(catalog.Input{Snapshot: snap, Operation: op})
			g, ok := res.FinalSnapshot()
			require.True(t, ok)
			snap = &g
		}
	}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// TestEmittedLabelsExistInEverySource guarantees a viewer can highlight a
// line for every step, whichever language it shows.
func TestEmittedLabelsExistInEverySource(t *testing.T) {
	for _, a := range catalog.All() {
		t.Run(a.ID, func(t *testing.T) {
			labels := labelsOf(t, a)
			require.NotEmpty(t, labels)
			for _, lang := range codelabel.Languages {
				src, err := a.Source(lang)
				require.NoError(t, err)
				for _, l := range labels {
					_, ok := src.Line(l)
					assert.True(t, ok, "label %q missing from %s source", l, lang)
				}
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	bfs, err := catalog.Lookup("bfs")
	require.NoError(t, err)

	_, err = bfs.Run(ctx, catalog.Input{})
	assert.ErrorIs(t, err, catalog.ErrBadInput)

	in := bfs.Sample(1)
	in.Start = "nowhere"
	_, err = bfs.Run(ctx, in)
	assert.ErrorIs(t, err, core.ErrInvalidStartNode)

	dup := core.Graph{Nodes: []core.Node{{ID: "A"}, {ID: "A"}}}
	_, err = bfs.Run(ctx, catalog.Input{Graph: &dup})
	assert.ErrorIs(t, err, catalog.ErrBadInput)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	avl, err := catalog.Lookup("avl")
	require.NoError(t, err)
	_, err = avl.Run(ctx, catalog.Input{Operation: map[string]any{"kind": "upsert", "value": 1}})
	assert.ErrorIs(t, err, catalog.ErrBadInput)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = avl.Run(cancelled, avl.Sample(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NilOperationIsReady(t *testing.T) {
	for _, id := range []string{"avl", "red-black-tree", "bplus-tree", "go-map"} {
		a, err := catalog.Lookup(id)
		require.NoError(t, err)
		res, err := a.Run(context.Background(), catalog.Input{})
		require.NoError(t, err)
		require.Equal(t, 1, res.Len(), id)
		assert.Equal(t, []string{"ready"}, res.Labels(), id)
	}
}

func TestSample_Deterministic(t *testing.T) {
	for _, a := range catalog.All() {
		assert.Equal(t, a.Sample(4), a.Sample(4), a.ID)
	}

	sorting, err := catalog.Lookup("merge-sort")
	require.NoError(t, err)
	in := sorting.Sample(4)
	sorted := slices.Clone(in.Values)
	slices.Sort(sorted)
	res, err := sorting.Run(context.Background(), in)
	require.NoError(t, err)
	last := res.Arrays[len(res.Arrays)-1]
	assert.Equal(t, sorted, last.State)
}

func TestResult_MarshalJSON(t *testing.T) {
	a, err := catalog.Lookup("bubble-sort")
	require.NoError(t, err)
	res, err := a.Run(context.Background(), catalog.Input{Values: []int{2, 1}})
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var out struct {
		Family string `json:"family"`
		Total  int    `json:"total"`
		Steps  []struct {
			State []int  `json:"state"`
			Label string `json:"codeLabel"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "sorting", out.Family)
	assert.Equal(t, res.Len(), out.Total)
	require.Len(t, out.Steps, out.Total)
	assert.Equal(t, []int{1, 2}, out.Steps[out.Total-1].State)

	raw, err = json.Marshal(catalog.Result{Family: catalog.FamilyGraph})
	require.NoError(t, err)
	assert.JSONEq(t, `{"family":"graph","total":0,"steps":[]}`, string(raw))
}

func TestMarkdown(t *testing.T) {
	a, err := catalog.Lookup("dijkstra")
	require.NoError(t, err)
	md := a.Markdown()
	assert.Contains(t, md, "# Dijkstra's Algorithm")
	assert.Contains(t, md, "| Time | `O((V + E) log V)` |")
	assert.Contains(t, md, "## How it works")
	assert.Contains(t, md, "## Pitfalls")
	assert.Contains(t, md, "- [Wikipedia: Dijkstra's algorithm](")
	assert.NotContains(t, md, "Best case")
}

func TestSample_Shapes(t *testing.T) {
	bfs, err := catalog.Lookup("bfs")
	require.NoError(t, err)

	assert.Equal(t, bfs.Sample(3), bfs.Sample(3, catalog.WithShape(catalog.DefaultShape)))
	for _, sh := range catalog.Shapes() {
		t.Run(string(sh), func(t *testing.T) {
			in := bfs.Sample(3, catalog.WithShape(sh))
			require.NotNil(t, in.Graph)
			require.NoError(t, in.Graph.Validate())
			assert.Equal(t, in.Graph.Nodes[0].ID, in.Start)

			res, err := bfs.Run(context.Background(), in)
			require.NoError(t, err)
			assert.Positive(t, res.Len())
		})
	}

	grid := bfs.Sample(3, catalog.WithShape(catalog.ShapeGrid))
	assert.Equal(t, "0,0", grid.Start)
	assert.Len(t, grid.Graph.Nodes, 6)

	assert.Equal(t, catalog.Input{}, bfs.Sample(3, catalog.WithShape("hexagon")))

	sorting, err := catalog.Lookup("bubble-sort")
	require.NoError(t, err)
	assert.Equal(t, sorting.Sample(3), sorting.Sample(3, catalog.WithShape(catalog.ShapeStar)))
}

func TestParseShape(t *testing.T) {
	sh, err := catalog.ParseShape(" Grid ")
	require.NoError(t, err)
	assert.Equal(t, catalog.ShapeGrid, sh)

	sh, err = catalog.ParseShape("")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultShape, sh)

	_, err = catalog.ParseShape("hexagon")
	assert.ErrorIs(t, err, catalog.ErrUnknownShape)
}

func TestRun_NegativeWeightIsBadInput(t *testing.T) {
	d, err := catalog.Lookup("dijkstra")
	require.NoError(t, err)

	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(-3))
	_, err = d.Run(context.Background(), catalog.Input{Graph: g, Start: "A"})
	assert.ErrorIs(t, err, catalog.ErrBadInput)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
