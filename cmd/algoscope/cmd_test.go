package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/core"
)

// resetFlags clears flag state left by a previous Execute in this process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else if f.Value.Type() != "stringToString" {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "algoscope version "), out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "red-black-tree")
	assert.Contains(t, out, "TOTAL: 10")

	out, err = execute(t, "", "list", "--json")
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 10)
	assert.Equal(t, "go-map", rows[9]["id"])
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "", "describe", "avl")
	require.NoError(t, err)
	assert.Contains(t, out, "AVL")
	assert.NotContains(t, out, "rotate_left")

	out, err = execute(t, "", "describe", "avl", "--source", "--lang", "py")
	require.NoError(t, err)
	assert.Contains(t, out, "(python)")
	assert.Contains(t, out, "rotate_left")

	_, err = execute(t, "", "describe", "heap-sort")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
}

func TestRun_Text(t *testing.T) {
	out, err := execute(t, "", "run", "bubble-sort", "--values", "3,1,2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[1], "[2/9] compare "), lines[1])
	assert.True(t, strings.HasPrefix(lines[9], "bubble-sort: 9 steps, 3 labels, "), lines[9])
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "", "run", "merge-sort", "--values", "2,1", "--format", "json")
	require.NoError(t, err)
	var got struct {
		Family string `json:"family"`
		Total  int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "sorting", got.Family)
	assert.Positive(t, got.Total)
}

func TestRun_Structures(t *testing.T) {
	out, err := execute(t, "", "run", "avl", "--seed", "2", "--op", "kind=insert,value=100", "--frames")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:")
	assert.Contains(t, out, "node-100")

	out, err = execute(t, "", "run", "go-map", "--seed", "2", "--op", "kind=search,key=missing", "--code")
	require.NoError(t, err)
	assert.Contains(t, out, "▶")
}

func TestRun_InputFiles(t *testing.T) {
	out, err := execute(t, "", "run", "bfs", "-i", "testdata/bfs.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs: ")

	g := core.NewGraph()
	g.AddEdge("X", "Y")
	doc, err := json.Marshal(catalog.Input{Graph: g, Start: "Y"})
	require.NoError(t, err)
	out, err = execute(t, string(doc), "run", "dfs", "-i", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "dfs: ")
}

func TestRun_Matrix(t *testing.T) {
	out, err := execute(t, "", "run", "bfs", "-i", "testdata/bfs.yaml", "--matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "─┼─")

	_, err = execute(t, "", "run", "bubble-sort", "--values", "2,1", "--matrix")
	assert.ErrorContains(t, err, "--matrix")

	out, err = execute(t, "", "run", "bfs", "-i", "testdata/bfs.yaml", "--matrix=incidence")
	require.NoError(t, err)
	assert.Contains(t, out, "e-A-B")
	assert.Contains(t, out, "e-A-C")

	_, err = execute(t, "", "run", "bfs", "-i", "testdata/bfs.yaml", "--matrix=laplacian")
	assert.ErrorContains(t, err, "unknown --matrix")
}

func TestRun_Shape(t *testing.T) {
	out, err := execute(t, "", "run", "dfs", "--seed", "5", "--shape", "grid", "--frames")
	require.NoError(t, err)
	assert.Contains(t, out, "0,0")
	assert.Contains(t, out, "1,2")

	_, err = execute(t, "", "run", "dfs", "--shape", "hexagon")
	assert.ErrorIs(t, err, catalog.ErrUnknownShape)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "", "run", "dijkstra", "--seed", "1", "--start", "nowhere")
	assert.ErrorIs(t, err, core.ErrInvalidStartNode)

	_, err = execute(t, "", "run", "bubble-sort", "--format", "xml")
	assert.ErrorContains(t, err, "--format")

	_, err = execute(t, `{"values": "x"}`, "run", "bubble-sort", "-i", "-")
	assert.Error(t, err)

	_, err = execute(t, "", "run", "go-map", "--op", "kind=modify,key=a")
	assert.ErrorIs(t, err, catalog.ErrBadInput)
}

func TestPlay(t *testing.T) {
	out, err := execute(t, "", "play", "bubble-sort", "--values", "2,1", "--speed", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "[1/6] Initial State")
	assert.Contains(t, out, "[6/6]")

	out, err = execute(t, "", "play", "bfs", "--seed", "4", "--speed", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:")

	_, err = execute(t, "", "play", "bfs", "--speed", "-1s")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	out, err := execute(t, "", "replay", "testdata/avl.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 insert value=10")
	assert.Contains(t, out, "#5 delete value=20")
	assert.Contains(t, out, "node-30")
	assert.Contains(t, out, "5 operations in")

	out, err = execute(t, "", "replay", "testdata/avl.yaml", "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "rotate_left")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"nodes": [{"id": "A"}], "edges": []}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"nodes": [{"id": ""}]}`), 0o600))

	out, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid graph")

	out, err = execute(t, "", "validate", bad)
	require.ErrorIs(t, err, errInvalidDocument)
	assert.Contains(t, out, "nodes.0.id")

	out, err = execute(t, `{"values": [1, 2]}`, "validate", "--kind", "input", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "stdin is a valid input")

	_, err = execute(t, "", "validate", "--kind", "tree", good)
	assert.ErrorContains(t, err, "--kind")
}

func TestDescribeOp(t *testing.T) {
	assert.Equal(t, "modify value=3 target=9", describeOp(map[string]any{"kind": "modify", "value": 3, "target": 9}))
	assert.Equal(t, "insert key=a value=1", describeOp(map[string]any{"kind": "insert", "key": "a", "value": "1"}))
}
