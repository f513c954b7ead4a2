package avl

import (
	"fmt"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/operation"
	"github.com/katalvlaran/algoscope/step"
)

// Run decodes snapshot, applies op and returns the recorded steps. A nil op
// yields a single "ready" step. The final step's State is the new snapshot.
func Run(snapshot core.Graph, op *operation.KeyOp) []step.Step[core.Graph] {
	t := Decode(snapshot)
	rec := step.NewRecorder(core.CloneGraph)
	t.trace = func(log, label string, keys ...int) {
		g := t.Encode(keys...)
		rec.Emit(g, log, step.Highlight(g.Indices(bintree.IDs(keys...)...)...), step.Label(label))
	}

	if op == nil {
		t.emit("AVL tree ready", "ready")
		return rec.Steps()
	}
	if err := op.Validate(); err != nil {
		t.emit(fmt.Sprintf("Cannot apply operation: %v", err), "ready")
		return rec.Steps()
	}

	switch op.Kind {
	case operation.Insert:
		t.Insert(op.Value)
	case operation.Delete:
		t.Delete(op.Value)
	case operation.Search:
		t.Search(op.Value)
	case operation.Modify:
		t.Modify(op.Value, *op.Target)
	}

	t.trace = nil
	rec.Emit(t.Encode(), fmt.Sprintf("%s finished", op))
	return rec.Steps()
}
