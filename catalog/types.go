package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// Sentinel errors returned by lookups and runs.
var (
	// ErrUnknownAlgorithm indicates an id that is not registered.
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrBadInput indicates an Input that does not fit the algorithm's family.
	ErrBadInput = errors.New("catalog: invalid input")

	// ErrUnknownShape indicates a sample topology that is not supported.
	ErrUnknownShape = errors.New("catalog: unknown sample shape")
)

// Family groups algorithms by the kind of value their steps carry.
type Family string

const (
	// FamilySorting steps carry []int.
	FamilySorting Family = "sorting"
	// FamilyGraph steps carry a core.Graph walked by a traversal.
	FamilyGraph Family = "graph"
	// FamilyTree steps carry an encoded tree snapshot.
	FamilyTree Family = "tree"
	// FamilyHash steps carry an encoded hash-map snapshot.
	FamilyHash Family = "hash"
)

// Complexity summarizes asymptotic costs as display strings.
type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
	Best  string `json:"bestCase,omitempty"`
	Worst string `json:"worstCase,omitempty"`
}

// Link is an external reading resource.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile is the explanatory card shown next to a visualization.
type Profile struct {
	Complexity  Complexity `json:"complexity"`
	Description string     `json:"description"`
	HowItWorks  string     `json:"howItWorks"`
	Scenarios   []string   `json:"scenarios"`
	KeyConcepts []string   `json:"keyConcepts"`
	Pitfalls    []string   `json:"pitfalls,omitempty"`
	Links       []Link     `json:"links,omitempty"`
}

// Input is the JSON-friendly argument of Algorithm.Run. Which fields are
// read depends on the family:
//
//	sorting: Values
//	graph:   Graph, Start
//	tree:    Snapshot, Operation (decoded with operation.DecodeKeyOp)
//	hash:    Snapshot, Operation (decoded with operation.DecodeEntryOp)
//
// A nil Snapshot means an empty structure; a nil Operation yields the single
// "ready" step.
type Input struct {
	Values    []int          `json:"values,omitempty" yaml:"values,omitempty"`
	Graph     *core.Graph    `json:"graph,omitempty" yaml:"graph,omitempty"`
	Snapshot  *core.Graph    `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	Start     string         `json:"start,omitempty" yaml:"start,omitempty"`
	Operation map[string]any `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// Result holds the steps of one run. Exactly one of Arrays and Graphs is
// populated, according to Family.
type Result struct {
	Family Family
	Arrays []step.Step[[]int]
	Graphs []step.Step[core.Graph]
}

// Len reports the number of steps.
func (r Result) Len() int {
	if r.Family == FamilySorting {
		return len(r.Arrays)
	}
	return len(r.Graphs)
}

// Labels returns the distinct code labels in first-seen order.
func (r Result) Labels() []string {
	if r.Family == FamilySorting {
		return step.Labels(r.Arrays)
	}
	return step.Labels(r.Graphs)
}

// Logs returns the narration of every step.
func (r Result) Logs() []string {
	out := make([]string, 0, r.Len())
	for _, s := range r.Arrays {
		out = append(out, s.Log)
	}
	for _, s := range r.Graphs {
		out = append(out, s.Log)
	}
	return out
}

// FinalSnapshot returns the state of the last graph step, which for tree
// and hash runs is the snapshot to feed into the next operation.
func (r Result) FinalSnapshot() (core.Graph, bool) {
	last, ok := step.Last(r.Graphs)
	if !ok {
		return core.Graph{}, false
	}
	return last.State, true
}

type resultJSON struct {
	Family Family `json:"family"`
	Total  int    `json:"total"`
	Steps  any    `json:"steps"`
}

// MarshalJSON encodes {"family", "total", "steps"}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Family: r.Family, Total: r.Len()}
	if r.Family == FamilySorting {
		out.Steps = nonNil(r.Arrays)
	} else {
		out.Steps = nonNil(r.Graphs)
	}
	return json.Marshal(out)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// runFunc adapts one generator to the uniform signature.
type runFunc func(ctx context.Context, in Input) (Result, error)

// Algorithm is one registry entry.
type Algorithm struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Family  Family  `json:"family"`
	Profile Profile `json:"profile"`

	run    runFunc
	sample func(seed int64, o sampleOptions) Input
}
