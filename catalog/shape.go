package catalog

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoscope/builder"
)

// Shape names the graph topology used by graph-family samples.
type Shape string

const (
	ShapeWheel    Shape = "wheel"
	ShapeCycle    Shape = "cycle"
	ShapePath     Shape = "path"
	ShapeStar     Shape = "star"
	ShapeGrid     Shape = "grid"
	ShapeComplete Shape = "complete"
	ShapeRandom   Shape = "random"
)

// DefaultShape is the topology of a sample when none is requested.
const DefaultShape = ShapeWheel

// sampleEdgeProb is the edge probability of ShapeRandom samples.
const sampleEdgeProb = 0.4

var shapes = []Shape{ShapeWheel, ShapeCycle, ShapePath, ShapeStar, ShapeGrid, ShapeComplete, ShapeRandom}

// Shapes lists the supported sample topologies, DefaultShape first.
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// ParseShape accepts a shape name in any case. An empty name is DefaultShape.
func ParseShape(s string) (Shape, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultShape, nil
	}
	for _, sh := range shapes {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// constructor maps a shape onto the builder constructor of an n-node graph.
// Grid uses two rows of n/2 cells.
func (s Shape) constructor(n int) (builder.Constructor, error) {
	switch s {
	case ShapeWheel, "":
		return builder.Wheel(n), nil
	case ShapeCycle:
		return builder.Cycle(n), nil
	case ShapePath:
		return builder.Path(n), nil
	case ShapeStar:
		return builder.Star(n), nil
	case ShapeGrid:
		return builder.Grid(2, max(1, n/2)), nil
	case ShapeComplete:
		return builder.Complete(n), nil
	case ShapeRandom:
		return builder.RandomSparse(n, sampleEdgeProb), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(s))
}

// SampleOption tunes Algorithm.Sample.
type SampleOption func(*sampleOptions)

type sampleOptions struct {
	shape Shape
}

// WithShape picks the topology of graph-family samples. Other families
// ignore it.
func WithShape(s Shape) SampleOption {
	return func(o *sampleOptions) { o.shape = s }
}
