package gomap

import (
	"errors"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ErrInvariant reports a violated map property.
var ErrInvariant = errors.New("gomap: invariant violated")

const (
	// BucketSize is the number of slots per bucket.
	BucketSize = 4

	// InitialB is log2 of the bucket count of a new map.
	InitialB = 2

	// LoadFactor is the average number of entries per bucket that triggers a grow.
	LoadFactor = 6.5

	// minTopHash keeps tophash values clear of the runtime's reserved cell states.
	minTopHash = 5
)

type kind int

const (
	mainBucket kind = iota
	overflowBucket
	oldBucket
)

func (k kind) String() string {
	switch k {
	case overflowBucket:
		return "OVF"
	case oldBucket:
		return "OLD"
	}
	return "MAIN"
}

type slot struct {
	top   uint8
	key   string
	value string
	used  bool
}

type bucket struct {
	id       string
	index    int
	kind     kind
	slots    [BucketSize]slot
	overflow *bucket
}

// Map is a string-to-string hash table with Go map bucket semantics.
// Use New or Decode.
type Map struct {
	b       uint8
	count   int
	buckets []*bucket
	old     []*bucket
	nextOvf int
	trace   func(log, label string, ids ...string)
}

// New returns an empty map with 2^InitialB buckets.
func New() *Map {
	m := &Map{b: InitialB}
	m.buckets = m.newBuckets(1 << InitialB)
	return m
}

func (m *Map) newBuckets(n int) []*bucket {
	out := make([]*bucket, n)
	for i := range out {
		out[i] = &bucket{id: "bucket-" + strconv.Itoa(i), index: i}
	}
	return out
}

// overflowID allocates the next overflow id; old and live overflow
// buckets share one counter.
func (m *Map) overflowID(k kind) string {
	prefix := "ovf-"
	if k == oldBucket {
		prefix = "oldovf-"
	}
	id := prefix + strconv.Itoa(m.nextOvf)
	m.nextOvf++
	return id
}

func (m *Map) newOverflow(index int) *bucket {
	return &bucket{id: m.overflowID(overflowBucket), index: index, kind: overflowBucket}
}

func (m *Map) emit(log, label string, ids ...string) {
	if m.trace != nil {
		m.trace(log, label, ids...)
	}
}

// Hash returns the 64-bit hash of key.
func Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// TopHash returns the high byte of h, shifted clear of the reserved values.
func TopHash(h uint64) uint8 {
	top := uint8(h >> 56)
	if top < minTopHash {
		top += minTopHash
	}
	return top
}

func (m *Map) mask() uint64 { return 1<<m.b - 1 }

// B reports log2 of the bucket count.
func (m *Map) B() int { return int(m.b) }

// Len reports the number of entries.
func (m *Map) Len() int { return m.count }

// Buckets reports the number of main buckets.
func (m *Map) Buckets() int { return len(m.buckets) }

// LoadFactor reports count / 2^B.
func (m *Map) LoadFactor() float64 {
	return float64(m.count) / float64(len(m.buckets))
}

// Entries returns a copy of the contents.
func (m *Map) Entries() map[string]string {
	out := make(map[string]string, m.count)
	for _, head := range m.buckets {
		for b := head; b != nil; b = b.overflow {
			for _, s := range b.slots {
				if s.used {
					out[s.key] = s.value
				}
			}
		}
	}
	return out
}
