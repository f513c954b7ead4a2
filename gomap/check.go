package gomap

import "fmt"

// Check verifies that every entry sits in the bucket chain its hash selects
// with a matching tophash, that keys are unique and that the count agrees.
func (m *Map) Check() error {
	if len(m.buckets) != 1<<m.b {
		return fmt.Errorf("%w: %d buckets for B=%d", ErrInvariant, len(m.buckets), m.b)
	}
	if m.old != nil {
		return fmt.Errorf("%w: grow left unfinished", ErrInvariant)
	}
	keys := make(map[string]bool, m.count)
	for i, head := range m.buckets {
		for b := head; b != nil; b = b.overflow {
			for _, s := range b.slots {
				if !s.used {
					continue
				}
				h := Hash(s.key)
				if int(h&m.mask()) != i {
					return fmt.Errorf("%w: key %q in bucket %d", ErrInvariant, s.key, i)
				}
				if s.top != TopHash(h) {
					return fmt.Errorf("%w: key %q has tophash %d", ErrInvariant, s.key, s.top)
				}
				if keys[s.key] {
					return fmt.Errorf("%w: duplicate key %q", ErrInvariant, s.key)
				}
				keys[s.key] = true
			}
		}
	}
	if len(keys) != m.count {
		return fmt.Errorf("%w: count %d, found %d entries", ErrInvariant, m.count, len(keys))
	}
	return nil
}
