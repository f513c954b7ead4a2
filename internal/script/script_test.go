package script_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/avl"
	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/schema"
	"github.com/katalvlaran/algoscope/internal/script"
	"github.com/katalvlaran/algoscope/operation"
)

func nodeIDs(t *testing.T, outcomes []script.Outcome) []string {
	t.Helper()
	g, ok := script.Final(outcomes)
	require.True(t, ok)
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	slices.Sort(ids)
	return ids
}

func TestLoad_YAML(t *testing.T) {
	s, err := script.Load("testdata/avl.yaml")
	require.NoError(t, err)
	require.Len(t, s.Operations, 5)

	var seen []int
	outcomes, err := s.Run(context.Background(), func(i int, _ script.Outcome) { seen = append(seen, i) })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Contains(t, outcomes[2].Result.Labels(), "rotate_left")
	assert.Contains(t, outcomes[3].Result.Labels(), "search_found")
	assert.Equal(t, []string{"node-10", "node-30"}, nodeIDs(t, outcomes))
}

func TestLoad_JSON(t *testing.T) {
	s, err := script.Load("testdata/map.json")
	require.NoError(t, err)

	outcomes, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, catalog.FamilyHash, outcomes[0].Result.Family)
	assert.Contains(t, outcomes[2].Result.Labels(), "delete_clear")
}

// Replaying a script matches feeding each final snapshot back by hand.
func TestRun_ChainsSnapshots(t *testing.T) {
	s, err := script.Parse([]byte(`
algorithm: avl
operations:
  - {kind: insert, value: 5}
  - {kind: insert, value: 3}
`))
	require.NoError(t, err)
	outcomes, err := s.Run(context.Background(), nil)
	require.NoError(t, err)

	first := avl.Run(core.Graph{}, &operation.KeyOp{Kind: operation.Insert, Value: 5})
	last, ok := catalog.Result{Family: catalog.FamilyTree, Graphs: first}.FinalSnapshot()
	require.True(t, ok)
	second := avl.Run(last, &operation.KeyOp{Kind: operation.Insert, Value: 3})

	assert.Equal(t, second, outcomes[1].Result.Graphs)
}

func TestRun_StartsFromSnapshot(t *testing.T) {
	s, err := script.Parse([]byte(`
algorithm: avl
snapshot:
  nodes:
    - {id: node-7, label: "7 (H:1)"}
  directed: true
operations:
  - {kind: insert, value: 8}
`))
	require.NoError(t, err)
	outcomes, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"node-7", "node-8"}, nodeIDs(t, outcomes))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown algorithm", "algorithm: heap\noperations: [{kind: insert, value: 1}]", catalog.ErrUnknownAlgorithm},
		{"sorting", "algorithm: merge-sort\noperations: [{kind: insert, value: 1}]", script.ErrNotStructure},
		{"no operations", "algorithm: avl\noperations: []", script.ErrEmpty},
		{"missing kind", "algorithm: avl\noperations: [{value: 1}]", schema.ErrInvalid},
		{"bad snapshot", "algorithm: avl\nsnapshot: {nodes: [{id: ''}]}\noperations: [{kind: insert, value: 1}]", schema.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := script.Parse([]byte("algorithm: avl\nsteps: []"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = script.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRun_StopsAtFailingOperation(t *testing.T) {
	s, err := script.Parse([]byte(`
algorithm: go-map
operations:
  - {kind: insert, key: a, value: "1"}
  - {kind: modify, key: a, value: "2"}
  - {kind: insert, key: b, value: "3"}
`))
	require.NoError(t, err)

	outcomes, err := s.Run(context.Background(), nil)
	require.ErrorIs(t, err, catalog.ErrBadInput)
	assert.ErrorContains(t, err, "operation 2")
	assert.Len(t, outcomes, 1)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := script.Load("testdata/avl.yaml")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
