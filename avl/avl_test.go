package avl_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/avl"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/operation"
	"github.com/katalvlaran/algoscope/step"
)

func labels(seq []step.Step[core.Graph]) []string {
	var out []string
	for _, s := range seq {
		out = append(out, s.CodeLabel)
	}
	return out
}

func TestTree_RandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := avl.New()
	ref := map[int]bool{}

	for i := 0; i < 500; i++ {
		k := rng.Intn(100)
		if rng.Intn(3) == 0 {
			assert.Equal(t, ref[k], tree.Delete(k))
			delete(ref, k)
		} else {
			assert.Equal(t, !ref[k], tree.Insert(k))
			ref[k] = true
		}
		require.NoError(t, tree.Check(), "after op %d on key %d", i, k)
	}

	var want []int
	for k := range ref {
		want = append(want, k)
	}
	slices.Sort(want)
	if len(want) == 0 {
		want = []int{}
	}
	assert.Equal(t, want, tree.Keys())
	assert.Equal(t, len(want), tree.Len())
}

func TestTree_HeightIsLogarithmic(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 1023; i++ {
		tree.Insert(i)
	}
	// a sorted insert sequence gives a perfect tree
	assert.Equal(t, 10, tree.Height())
}

func TestRun_RightRightRotation(t *testing.T) {
	snap := avl.New(10, 20).Encode()
	seq := avl.Run(snap, operation.NewKeyOp(operation.Insert, 30))

	ls := labels(seq)
	assert.Contains(t, ls, "check_RR")
	assert.Contains(t, ls, "rotate_left")

	final := seq[len(seq)-1].State
	require.Len(t, final.Nodes, 3)
	assert.Equal(t, "20 (H:2)", final.Nodes[0].Label)
	assert.Equal(t, "node-20", final.Nodes[0].ID)
	assert.Empty(t, seq[len(seq)-1].HighlightIndices)
}

func TestRun_LeftRightRotation(t *testing.T) {
	snap := avl.New(30, 10).Encode()
	seq := avl.Run(snap, operation.NewKeyOp(operation.Insert, 20))

	ls := labels(seq)
	i := slices.Index(ls, "check_LR")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, []string{"check_LR", "rotate_left", "rotate_right"}, ls[i:i+3])

	final := avl.Decode(seq[len(seq)-1].State)
	assert.Equal(t, []int{10, 20, 30}, final.Keys())
	assert.Equal(t, 2, final.Height())
}

func TestRun_StepsFollowInsertPath(t *testing.T) {
	snap := avl.New(20, 10, 30).Encode()
	seq := avl.Run(snap, operation.NewKeyOp(operation.Insert, 25))

	assert.Equal(t, []string{
		"insert_search", "insert_search", "insert_found",
		"update_height", "check_balance", "update_height", "check_balance", "",
	}, labels(seq))
	assert.Equal(t, "25 > 20, go right", seq[0].Log)
	assert.Equal(t, "25 < 30, go left", seq[1].Log)
}

func TestRun_DuplicateAndMissing(t *testing.T) {
	snap := avl.New(5, 3, 8).Encode()

	seq := avl.Run(snap, operation.NewKeyOp(operation.Insert, 3))
	assert.Contains(t, labels(seq), "insert_duplicate")
	assert.Equal(t, snap, seq[len(seq)-1].State)

	seq = avl.Run(snap, operation.NewKeyOp(operation.Delete, 4))
	assert.Contains(t, labels(seq), "delete_not_found")
	assert.Equal(t, snap, seq[len(seq)-1].State)

	seq = avl.Run(snap, operation.NewKeyOp(operation.Search, 9))
	assert.Contains(t, labels(seq), "search_not_found")
}

func TestRun_DeleteWithSuccessor(t *testing.T) {
	snap := avl.New(50, 30, 70, 60, 80).Encode()
	seq := avl.Run(snap, operation.NewKeyOp(operation.Delete, 50))

	assert.Contains(t, labels(seq), "delete_successor")
	final := avl.Decode(seq[len(seq)-1].State)
	require.NoError(t, final.Check())
	assert.Equal(t, []int{30, 60, 70, 80}, final.Keys())
	assert.NotNil(t, seq[len(seq)-1].State.Node("node-60"))
	assert.Nil(t, seq[len(seq)-1].State.Node("node-50"))
}

func TestRun_Modify(t *testing.T) {
	snap := avl.New(1, 2, 3).Encode()
	seq := avl.Run(snap, operation.NewModify(1, 9))

	ls := labels(seq)
	del := slices.Index(ls, "modify_delete")
	ins := slices.Index(ls, "modify_insert")
	require.GreaterOrEqual(t, del, 0)
	assert.Greater(t, ins, del)

	final := avl.Decode(seq[len(seq)-1].State)
	assert.Equal(t, []int{2, 3, 9}, final.Keys())
}

func TestRun_NilOperationIsReady(t *testing.T) {
	snap := avl.New(4, 2, 6).Encode()
	seq := avl.Run(snap, nil)
	require.Len(t, seq, 1)
	assert.Equal(t, "ready", seq[0].CodeLabel)
	assert.Equal(t, snap.Nodes, seq[0].State.Nodes)
}

func TestCodec_FixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tree := avl.New()
	for i := 0; i < 40; i++ {
		tree.Insert(rng.Intn(200))
	}
	g := tree.Encode()
	assert.Equal(t, g, avl.Decode(g).Encode())
	assert.NoError(t, g.Validate())
}

func TestCodec_MalformedFallsBackToEmpty(t *testing.T) {
	g := avl.New(1, 2, 3).Encode()
	g.Nodes[0].Label = "not a key"

	tree := avl.Decode(g)
	assert.Equal(t, 0, tree.Len())

	seq := avl.Run(g, operation.NewKeyOp(operation.Insert, 7))
	final := avl.Decode(seq[len(seq)-1].State)
	assert.Equal(t, []int{7}, final.Keys())
}

func TestRun_InputSnapshotUntouched(t *testing.T) {
	snap := avl.New(10, 20).Encode()
	before := snap.Clone()
	avl.Run(snap, operation.NewKeyOp(operation.Insert, 30))
	assert.Equal(t, before, snap)
}
