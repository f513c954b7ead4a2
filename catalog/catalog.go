package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/algoscope/avl"
	"github.com/katalvlaran/algoscope/bfs"
	"github.com/katalvlaran/algoscope/bplustree"
	"github.com/katalvlaran/algoscope/builder"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/dfs"
	"github.com/katalvlaran/algoscope/dijkstra"
	"github.com/katalvlaran/algoscope/gomap"
	"github.com/katalvlaran/algoscope/operation"
	"github.com/katalvlaran/algoscope/rbtree"
	"github.com/katalvlaran/algoscope/sorting"
	"github.com/katalvlaran/algoscope/step"
)

// Sample sizes used by Algorithm.Sample.
const (
	sampleArrayLen = 12
	sampleGraphLen = 6
	sampleTreeLen  = 7
	sampleMapLen   = 6
)

// registry is ordered by family, then by teaching order within a family.
var registry = []Algorithm{
	{ID: "bubble-sort", Name: "Bubble Sort", Family: FamilySorting, Profile: bubbleProfile,
		run: sortRun(sorting.Bubble[int]), sample: sortSample},
	{ID: "merge-sort", Name: "Merge Sort", Family: FamilySorting, Profile: mergeProfile,
		run: sortRun(sorting.Merge[int]), sample: sortSample},
	{ID: "quick-sort", Name: "Quick Sort", Family: FamilySorting, Profile: quickProfile,
		run: sortRun(sorting.Quick[int]), sample: sortSample},
	{ID: "bfs", Name: "Breadth-First Search", Family: FamilyGraph, Profile: bfsProfile,
		run: runBFS, sample: graphSample},
	{ID: "dfs", Name: "Depth-First Search", Family: FamilyGraph, Profile: dfsProfile,
		run: runDFS, sample: graphSample},
	{ID: "dijkstra", Name: "Dijkstra's Algorithm", Family: FamilyGraph, Profile: dijkstraProfile,
		run: runDijkstra, sample: graphSample},
	{ID: "avl", Name: "AVL Tree", Family: FamilyTree, Profile: avlProfile,
		run: treeRun(avl.Run), sample: treeSample(func(keys []int) core.Graph { return avl.New(keys...).Encode() })},
	{ID: "red-black-tree", Name: "Red-Black Tree", Family: FamilyTree, Profile: redBlackProfile,
		run: treeRun(rbtree.Run), sample: treeSample(func(keys []int) core.Graph { return rbtree.New(keys...).Encode() })},
	{ID: "bplus-tree", Name: "B+ Tree", Family: FamilyTree, Profile: bplusProfile,
		run: treeRun(bplustree.Run), sample: treeSample(func(keys []int) core.Graph { return bplustree.New(keys...).Encode() })},
	{ID: "go-map", Name: "Go Map", Family: FamilyHash, Profile: goMapProfile,
		run: runMap, sample: mapSample},
}

// All returns every registered algorithm.
func All() []Algorithm {
	return slices.Clone(registry)
}

// IDs returns the registered ids in registry order.
func IDs() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.ID
	}
	return out
}

// Lookup finds an algorithm by id.
func Lookup(id string) (Algorithm, error) {
	for _, a := range registry {
		if a.ID == id {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}

// Run generates the full step sequence for in. Graph start-node errors are
// returned unchanged so callers can match them with errors.Is; malformed
// inputs wrap ErrBadInput.
func (a Algorithm) Run(ctx context.Context, in Input) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if a.run == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a.ID)
	}
	return a.run(ctx, in)
}

// Sample returns a ready-to-run demo input; the same seed and options give
// the same input. An unknown WithShape value yields an empty Input, so
// callers that take shapes from users should go through ParseShape.
func (a Algorithm) Sample(seed int64, opts ...SampleOption) Input {
	if a.sample == nil {
		return Input{}
	}
	o := sampleOptions{shape: DefaultShape}
	for _, opt := range opts {
		opt(&o)
	}
	return a.sample(seed, o)
}

// Source returns the annotated reference source in lang.
func (a Algorithm) Source(lang codelabel.Language) (codelabel.Parsed, error) {
	return codelabel.Source(a.ID, lang)
}

func sortRun(gen func([]int) []step.Step[[]int]) runFunc {
	return func(_ context.Context, in Input) (Result, error) {
		return Result{Family: FamilySorting, Arrays: gen(in.Values)}, nil
	}
}

func graphInput(in Input) (core.Graph, error) {
	if in.Graph == nil {
		return core.Graph{}, fmt.Errorf("%w: graph is required", ErrBadInput)
	}
	if err := in.Graph.Validate(); err != nil {
		return core.Graph{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return *in.Graph, nil
}

func runBFS(ctx context.Context, in Input) (Result, error) {
	g, err := graphInput(in)
	if err != nil {
		return Result{}, err
	}
	seq, err := bfs.BFS(g, bfs.WithStart(in.Start), bfs.WithContext(ctx))
	return Result{Family: FamilyGraph, Graphs: seq}, err
}

func runDFS(ctx context.Context, in Input) (Result, error) {
	g, err := graphInput(in)
	if err != nil {
		return Result{}, err
	}
	seq, err := dfs.DFS(g, dfs.WithStart(in.Start), dfs.WithContext(ctx))
	return Result{Family: FamilyGraph, Graphs: seq}, err
}

func runDijkstra(ctx context.Context, in Input) (Result, error) {
	g, err := graphInput(in)
	if err != nil {
		return Result{}, err
	}
	seq, err := dijkstra.Dijkstra(g, dijkstra.WithStart(in.Start), dijkstra.WithContext(ctx))
	if errors.Is(err, dijkstra.ErrNegativeWeight) {
		err = fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return Result{Family: FamilyGraph, Graphs: seq}, err
}

func snapshot(in Input) core.Graph {
	if in.Snapshot == nil {
		return core.Graph{}
	}
	return *in.Snapshot
}

func treeRun(run func(core.Graph, *operation.KeyOp) []step.Step[core.Graph]) runFunc {
	return func(_ context.Context, in Input) (Result, error) {
		var op *operation.KeyOp
		if in.Operation != nil {
			var err error
			if op, err = operation.DecodeKeyOp(in.Operation); err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrBadInput, err)
			}
		}
		return Result{Family: FamilyTree, Graphs: run(snapshot(in), op)}, nil
	}
}

func runMap(_ context.Context, in Input) (Result, error) {
	var op *operation.EntryOp
	if in.Operation != nil {
		var err error
		if op, err = operation.DecodeEntryOp(in.Operation); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrBadInput, err)
		}
	}
	return Result{Family: FamilyHash, Graphs: gomap.Run(snapshot(in), op)}, nil
}

func sortSample(seed int64, _ sampleOptions) Input {
	values, err := builder.Shuffled(sampleArrayLen, builder.WithSeed(seed))
	if err != nil {
		return Input{}
	}
	return Input{Values: values}
}

func graphSample(seed int64, o sampleOptions) Input {
	cons, err := o.shape.constructor(sampleGraphLen)
	if err != nil {
		return Input{}
	}
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(seed), builder.WithWeights(builder.IntWeightFn(1, 9))},
		cons,
	)
	if err != nil || len(g.Nodes) == 0 {
		return Input{}
	}
	return Input{Graph: &g, Start: g.Nodes[0].ID}
}

// treeSample seeds a tree with a shuffled prefix of 1..2n and proposes
// inserting one of the remaining keys.
func treeSample(encode func(keys []int) core.Graph) func(int64, sampleOptions) Input {
	return func(seed int64, _ sampleOptions) Input {
		keys, err := builder.Shuffled(2*sampleTreeLen, builder.WithSeed(seed))
		if err != nil {
			return Input{}
		}
		g := encode(keys[:sampleTreeLen])
		return Input{
			Snapshot:  &g,
			Operation: map[string]any{"kind": string(operation.Insert), "value": keys[sampleTreeLen]},
		}
	}
}

func mapSample(seed int64, _ sampleOptions) Input {
	order, err := builder.Shuffled(sampleMapLen+1, builder.WithSeed(seed))
	if err != nil {
		return Input{}
	}
	m := gomap.New()
	for _, n := range order[:sampleMapLen] {
		m.Insert("key"+strconv.Itoa(n), strconv.Itoa(n*n))
	}
	g := m.Encode()
	next := order[sampleMapLen]
	return Input{
		Snapshot: &g,
		Operation: map[string]any{
			"kind":  string(operation.Insert),
			"key":   "key" + strconv.Itoa(next),
			"value": strconv.Itoa(next * next),
		},
	}
}
