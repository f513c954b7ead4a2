package gomap

import (
	"errors"
	"fmt"
	"math/bits"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoscope/core"
)

// ErrMalformed is returned by decode for snapshots that do not describe a
// bucket table.
var ErrMalformed = errors.New("gomap: malformed snapshot")

// Layout of the projection.
const (
	columnWidth = 150.0
	leftMargin  = 50.0
	mainTop     = 100.0
	mainStride  = 210.0
	oldTop      = -150.0
	oldStride   = 180.0
	emptySlot   = "EMPTY"
	labelPrefix = "MAP"
)

var escaper = strings.NewReplacer("%", "%25", "|", "%7C", ":", "%3A")

func label(b *bucket) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%s", labelPrefix, b.index, b.kind)
	for _, s := range b.slots {
		sb.WriteByte('|')
		if !s.used {
			sb.WriteString(emptySlot)
			continue
		}
		fmt.Fprintf(&sb, "%d:%s:%s", s.top, escaper.Replace(s.key), escaper.Replace(s.value))
	}
	return sb.String()
}

// Encode projects the table into a snapshot: one column per bucket index
// with its overflow chain below it, old buckets above while a grow is in
// progress. Buckets whose id is in highlight get status visiting.
func (m *Map) Encode(highlight ...string) core.Graph {
	g := core.Graph{Nodes: []core.Node{}, Edges: []core.Edge{}, Directed: true}
	hl := make(map[string]bool, len(highlight))
	for _, id := range highlight {
		hl[id] = true
	}

	chain := func(head *bucket, col int, top, stride float64, rest core.NodeStatus) {
		depth := 0
		for b := head; b != nil; b = b.overflow {
			n := core.Node{
				ID:     b.id,
				Label:  label(b),
				X:      float64(col)*columnWidth + leftMargin,
				Y:      top + float64(depth)*stride,
				Status: rest,
			}
			if hl[b.id] {
				n.Status = core.StatusVisiting
			}
			g.Nodes = append(g.Nodes, n)
			depth++
		}
		for b := head; b.overflow != nil; b = b.overflow {
			g.Edges = append(g.Edges, core.Edge{
				ID:     core.EdgeID(b.id, b.overflow.id),
				Source: b.id,
				Target: b.overflow.id,
				Status: core.EdgeDefault,
			})
		}
	}

	for i, head := range m.buckets {
		chain(head, i, mainTop, mainStride, core.StatusUnvisited)
	}
	for i, head := range m.old {
		chain(head, i, oldTop, oldStride, core.StatusVisited)
	}
	return g
}

// Decode rebuilds a table from a snapshot produced by Encode. Entries still
// sitting in old buckets are moved into the new ones. Anything that is not
// a well-formed table decodes to an empty map.
func Decode(g core.Graph) *Map {
	m, _ := decode(g)
	return m
}

func decode(g core.Graph) (*Map, error) {
	if len(g.Nodes) == 0 {
		if len(g.Edges) > 0 {
			return New(), fmt.Errorf("%w: edges without nodes", ErrMalformed)
		}
		return New(), nil
	}

	m := &Map{}
	byID := make(map[string]*bucket, len(g.Nodes))
	order := make([]*bucket, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := byID[n.ID]; dup {
			return New(), fmt.Errorf("%w: duplicate bucket %q", ErrMalformed, n.ID)
		}
		b, err := parseLabel(n.Label)
		if err != nil {
			return New(), fmt.Errorf("%w: bucket %q: %v", ErrMalformed, n.ID, err)
		}
		b.id = n.ID
		byID[n.ID] = b
		order = append(order, b)
		for _, prefix := range []string{"ovf-", "oldovf-"} {
			if s, ok := strings.CutPrefix(n.ID, prefix); ok {
				if v, err := strconv.Atoi(s); err == nil && v >= m.nextOvf {
					m.nextOvf = v + 1
				}
			}
		}
	}

	// 1) Overflow links.
	linked := make(map[*bucket]bool)
	for _, e := range g.Edges {
		src, dst := byID[e.Source], byID[e.Target]
		switch {
		case src == nil || dst == nil:
			return New(), fmt.Errorf("%w: dangling edge %q", ErrMalformed, e.ID)
		case src.overflow != nil || linked[dst]:
			return New(), fmt.Errorf("%w: chain forks at %q", ErrMalformed, e.ID)
		case dst.index != src.index:
			return New(), fmt.Errorf("%w: edge %q joins buckets %d and %d", ErrMalformed, e.ID, src.index, dst.index)
		case (src.kind == oldBucket) != (dst.kind == oldBucket) || dst.kind == mainBucket:
			return New(), fmt.Errorf("%w: edge %q mixes bucket kinds", ErrMalformed, e.ID)
		}
		src.overflow = dst
		linked[dst] = true
	}

	// 2) Chain heads.
	var oldHeads []*bucket
	for _, b := range order {
		switch {
		case b.kind == mainBucket:
			m.buckets = append(m.buckets, b)
		case b.kind == overflowBucket && !linked[b]:
			return New(), fmt.Errorf("%w: overflow bucket %q has no parent", ErrMalformed, b.id)
		case b.kind == oldBucket && !linked[b]:
			oldHeads = append(oldHeads, b)
		}
	}
	slices.SortFunc(m.buckets, func(a, b *bucket) int { return a.index - b.index })
	n := len(m.buckets)
	if n == 0 || n&(n-1) != 0 {
		return New(), fmt.Errorf("%w: %d main buckets", ErrMalformed, n)
	}
	for i, b := range m.buckets {
		if b.index != i {
			return New(), fmt.Errorf("%w: bucket index %d at position %d", ErrMalformed, b.index, i)
		}
	}
	m.b = uint8(bits.TrailingZeros(uint(n)))

	// 3) Every bucket reachable once; entries sit where they hash.
	seen := 0
	keys := make(map[string]bool)
	for _, head := range m.buckets {
		for b := head; b != nil; b = b.overflow {
			if seen++; seen > len(order) {
				return New(), fmt.Errorf("%w: cycle in chain of bucket %d", ErrMalformed, head.index)
			}
			for _, s := range b.slots {
				if !s.used {
					continue
				}
				h := Hash(s.key)
				if int(h&m.mask()) != head.index || TopHash(h) != s.top {
					return New(), fmt.Errorf("%w: key %q misplaced in %q", ErrMalformed, s.key, b.id)
				}
				if keys[s.key] {
					return New(), fmt.Errorf("%w: duplicate key %q", ErrMalformed, s.key)
				}
				keys[s.key] = true
				m.count++
			}
		}
	}
	var pending []slot
	for _, head := range oldHeads {
		for b := head; b != nil; b = b.overflow {
			if seen++; seen > len(order) {
				return New(), fmt.Errorf("%w: cycle in old chain %d", ErrMalformed, head.index)
			}
			for _, s := range b.slots {
				if s.used {
					pending = append(pending, s)
				}
			}
		}
	}
	if seen != len(order) {
		return New(), fmt.Errorf("%w: %d unreachable buckets", ErrMalformed, len(order)-seen)
	}

	// 4) Finish an interrupted evacuation.
	for _, s := range pending {
		if keys[s.key] {
			continue
		}
		keys[s.key] = true
		s.top = TopHash(Hash(s.key))
		m.place(s)
		m.count++
	}
	return m, nil
}

func parseLabel(label string) (*bucket, error) {
	fields := strings.Split(label, "|")
	if len(fields) != BucketSize+1 {
		return nil, fmt.Errorf("want %d slots, got %d", BucketSize, len(fields)-1)
	}

	head := strings.Split(fields[0], ":")
	if len(head) != 3 || head[0] != labelPrefix {
		return nil, fmt.Errorf("bad header %q", fields[0])
	}
	idx, err := strconv.Atoi(head[1])
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("bad index %q", head[1])
	}
	b := &bucket{index: idx}
	switch head[2] {
	case "MAIN":
		b.kind = mainBucket
	case "OVF":
		b.kind = overflowBucket
	case "OLD":
		b.kind = oldBucket
	default:
		return nil, fmt.Errorf("bad bucket kind %q", head[2])
	}

	for i, f := range fields[1:] {
		if f == emptySlot {
			continue
		}
		parts := strings.Split(f, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad slot %q", f)
		}
		top, err := strconv.ParseUint(parts[0], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad tophash %q", parts[0])
		}
		key, err := url.PathUnescape(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad key %q: %w", parts[1], err)
		}
		value, err := url.PathUnescape(parts[2])
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", parts[2], err)
		}
		b.slots[i] = slot{top: uint8(top), key: key, value: value, used: true}
	}
	return b, nil
}
