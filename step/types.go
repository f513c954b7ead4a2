package step

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadRange is returned when an activeRange payload is not a two-element array.
var ErrBadRange = errors.New("step: activeRange must be [start, end]")

// Range is the inclusive sub-range [Start, End] a divide-and-conquer
// algorithm is currently working on.
type Range struct {
	Start int
	End   int
}

// MarshalJSON encodes the range as a two-element array.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Start, r.End})
}

// UnmarshalJSON decodes a two-element array.
func (r *Range) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRange, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrBadRange, len(pair))
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

// Step is one immutable instant of an algorithm run.
//
// State is the domain value after the event. Every other field is an
// optional rendering hint; consumers treat zero values as "no emphasis".
type Step[T any] struct {
	State             T      `json:"state"`
	Log               string `json:"log,omitempty"`
	HighlightIndices  []int  `json:"highlightIndices,omitempty"`
	SecondaryIndices  []int  `json:"secondaryIndices,omitempty"`
	ActiveRange       *Range `json:"activeRange,omitempty"`
	CodeLabel         string `json:"codeLabel,omitempty"`
	HighlightedEdgeID string `json:"highlightedEdgeId,omitempty"`
}

// Hint decorates a Step being recorded.
type Hint func(*hints)

type hints struct {
	highlight []int
	secondary []int
	active    *Range
	label     string
	edge      string
}

// Highlight marks indices of primary interest (e.g. the pair being compared).
func Highlight(idx ...int) Hint {
	return func(h *hints) { h.highlight = append(h.highlight, idx...) }
}

// Secondary marks indices of secondary interest (e.g. the sorted boundary).
func Secondary(idx ...int) Hint {
	return func(h *hints) { h.secondary = append(h.secondary, idx...) }
}

// Active sets the sub-range under consideration.
func Active(start, end int) Hint {
	return func(h *hints) { h.active = &Range{Start: start, End: end} }
}

// Label names the annotated source line that is executing.
func Label(name string) Hint {
	return func(h *hints) { h.label = name }
}

// Edge emphasizes one edge by id. An empty id is ignored.
func Edge(id string) Hint {
	return func(h *hints) {
		if id != "" {
			h.edge = id
		}
	}
}
