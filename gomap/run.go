package gomap

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/operation"
	"github.com/katalvlaran/algoscope/step"
)

// Run decodes snapshot, applies op and returns the recorded steps. A nil op
// yields a single "ready" step. An empty snapshot starts with the bucket
// allocation. The final step's State is the new snapshot.
func Run(snapshot core.Graph, op *operation.EntryOp) []step.Step[core.Graph] {
	m := Decode(snapshot)
	rec := step.NewRecorder(core.CloneGraph)
	m.trace = func(log, label string, ids ...string) {
		g := m.Encode(ids...)
		rec.Emit(g, log, step.Highlight(g.Indices(ids...)...), step.Label(label))
	}

	if op == nil {
		m.emit(fmt.Sprintf("Map ready: %d entries in %d buckets", m.Len(), m.Buckets()), "ready")
		return rec.Steps()
	}
	if err := op.Validate(); err != nil {
		m.emit(fmt.Sprintf("Cannot apply operation: %v", err), "ready")
		return rec.Steps()
	}
	if len(snapshot.Nodes) == 0 {
		m.emit(fmt.Sprintf("Allocate 2^%d = %d empty buckets", m.B(), m.Buckets()), "init_buckets")
	}

	switch op.Kind {
	case operation.Insert:
		m.Insert(op.Key, op.Value)
	case operation.Delete:
		m.Delete(op.Key)
	case operation.Search:
		m.Search(op.Key)
	}

	m.trace = nil
	rec.Emit(m.Encode(), fmt.Sprintf("%s finished", op))
	return rec.Steps()
}
