package bintree_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
)

type tnode struct {
	key         int
	left, right *tnode
}

var shape = bintree.Shape[*tnode]{
	Children: func(n *tnode) (*tnode, *tnode) { return n.left, n.right },
	Describe: func(n *tnode) core.Node {
		return core.Node{ID: bintree.NodeID(n.key), Label: strconv.Itoa(n.key)}
	},
}

func parseKey(label string) (int, int, error) {
	k, err := strconv.Atoi(label)
	return k, 0, err
}

func sample() *tnode {
	return &tnode{key: 20,
		left:  &tnode{key: 10},
		right: &tnode{key: 30, left: &tnode{key: 25}},
	}
}

func TestEncode_Layout(t *testing.T) {
	g := bintree.Encode(sample(), shape, "node-25")

	require.Len(t, g.Nodes, 4)
	assert.True(t, g.Directed)

	// pre-order
	var ids []string
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"node-20", "node-10", "node-30", "node-25"}, ids)

	root := g.Node("node-20")
	assert.Equal(t, 400.0, root.X)
	assert.Equal(t, 50.0, root.Y)
	assert.Equal(t, 240.0, g.Node("node-10").X)
	assert.Equal(t, 560.0, g.Node("node-30").X)
	assert.Equal(t, 110.0, g.Node("node-30").Y)
	assert.InDelta(t, 560.0-160.0/1.8, g.Node("node-25").X, 1e-9)

	assert.Equal(t, core.StatusVisiting, g.Node("node-25").Status)
	assert.Equal(t, core.StatusVisited, root.Status)
	assert.NotNil(t, g.Edge("e-node-30-node-25"))
	assert.NoError(t, g.Validate())
}

func TestEncode_Empty(t *testing.T) {
	g := bintree.Encode[*tnode](nil, shape)
	assert.Empty(t, g.Nodes)
	assert.NotNil(t, g.Nodes)
}

func TestDecode_RoundTrip(t *testing.T) {
	g := bintree.Encode(sample(), shape)
	d, err := bintree.Decode(g, parseKey)
	require.NoError(t, err)

	root := d.Nodes[d.Root]
	assert.Equal(t, 20, root.Key)
	assert.Equal(t, 10, d.Nodes[root.Left].Key)
	right := d.Nodes[root.Right]
	assert.Equal(t, 30, right.Key)
	assert.Equal(t, 25, d.Nodes[right.Left].Key)
	assert.Equal(t, bintree.None, right.Right)
}

func TestDecode_Malformed(t *testing.T) {
	good := func() core.Graph { return bintree.Encode(sample(), shape) }

	cases := map[string]func(g *core.Graph){
		"bad label": func(g *core.Graph) { g.Nodes[1].Label = "ten" },
		"dangling":  func(g *core.Graph) { g.Edges[0].Target = "node-99" },
		"two roots": func(g *core.Graph) { g.Edges = g.Edges[1:] },
		"two parents": func(g *core.Graph) {
			g.Edges = append(g.Edges, core.Edge{ID: "x", Source: "node-10", Target: "node-25"})
		},
		"duplicate key": func(g *core.Graph) { g.Nodes[3].Label = "10" },
		"out of order": func(g *core.Graph) {
			// 25 hangs under 10 as a right child but is greater than the root
			g.Edges[len(g.Edges)-1] = core.Edge{ID: "x", Source: "node-10", Target: "node-25"}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			g := good()
			mutate(&g)
			d, err := bintree.Decode(g, parseKey)
			assert.ErrorIs(t, err, bintree.ErrMalformed)
			assert.Equal(t, bintree.None, d.Root)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	d, err := bintree.Decode(core.Graph{}, parseKey)
	require.NoError(t, err)
	assert.Equal(t, bintree.None, d.Root)
}
