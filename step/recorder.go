package step

import "slices"

// Recorder accumulates the Steps of one run. It owns the clone function
// used to detach each recorded State from the generator's working value.
type Recorder[T any] struct {
	clone func(T) T
	steps []Step[T]
}

// NewRecorder returns an empty Recorder. clone must return a value that
// shares no mutable memory with its argument.
func NewRecorder[T any](clone func(T) T) *Recorder[T] {
	return &Recorder[T]{clone: clone}
}

// Emit records a snapshot of state with the given narration and hints.
// Nil hints are skipped.
func (r *Recorder[T]) Emit(state T, log string, hs ...Hint) {
	var h hints
	for _, fn := range hs {
		if fn != nil {
			fn(&h)
		}
	}
	s := Step[T]{
		State:             r.clone(state),
		Log:               log,
		HighlightIndices:  slices.Clone(h.highlight),
		SecondaryIndices:  slices.Clone(h.secondary),
		CodeLabel:         h.label,
		HighlightedEdgeID: h.edge,
	}
	if h.active != nil {
		rng := *h.active
		s.ActiveRange = &rng
	}
	r.steps = append(r.steps, s)
}

// Append records already-built steps, cloning their states.
func (r *Recorder[T]) Append(steps ...Step[T]) {
	for _, s := range steps {
		r.steps = append(r.steps, s.Clone(r.clone))
	}
}

// Len reports the number of recorded steps.
func (r *Recorder[T]) Len() int { return len(r.steps) }

// Steps returns the recorded sequence. The Recorder must not be used afterwards.
func (r *Recorder[T]) Steps() []Step[T] {
	out := r.steps
	r.steps = nil
	return out
}

// Clone returns a deep copy of s using clone for the State.
func (s Step[T]) Clone(clone func(T) T) Step[T] {
	out := s
	out.State = clone(s.State)
	out.HighlightIndices = slices.Clone(s.HighlightIndices)
	out.SecondaryIndices = slices.Clone(s.SecondaryIndices)
	if s.ActiveRange != nil {
		rng := *s.ActiveRange
		out.ActiveRange = &rng
	}
	return out
}

// Last returns the final step of seq and false when seq is empty.
func Last[T any](seq []Step[T]) (Step[T], bool) {
	if len(seq) == 0 {
		var zero Step[T]
		return zero, false
	}
	return seq[len(seq)-1], true
}

// Labels returns the distinct code labels used by seq in first-seen order.
func Labels[T any](seq []Step[T]) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range seq {
		if s.CodeLabel == "" || seen[s.CodeLabel] {
			continue
		}
		seen[s.CodeLabel] = true
		out = append(out, s.CodeLabel)
	}
	return out
}
