package gomap

import (
	"fmt"
	"strconv"
)

// locate announces the hash of key and returns its bucket index and tophash.
func (m *Map) locate(key string) (int, uint8) {
	h := Hash(key)
	idx := int(h & m.mask())
	top := TopHash(h)
	m.emit(fmt.Sprintf("Key %q: hash=%#016x, mask=%d, bucket=%d, tophash=%d", key, h, m.mask(), idx, top),
		"calc_hash", m.buckets[idx].id)
	return idx, top
}

// scan walks the chain of bucket idx looking for key.
func (m *Map) scan(idx int, top uint8, key string) (*bucket, int) {
	for b := m.buckets[idx]; b != nil; b = b.overflow {
		m.emit(fmt.Sprintf("Scan bucket %s", b.id), "search_bucket", b.id)
		for i, s := range b.slots {
			if !s.used || s.top != top {
				continue
			}
			m.emit(fmt.Sprintf("Tophash %d matches slot %d of %s", top, i, b.id), "check_tophash", b.id)
			if s.key == key {
				m.emit(fmt.Sprintf("Key %q matches", key), "check_key", b.id)
				return b, i
			}
		}
	}
	return nil, -1
}

// Insert stores value under key. It reports false when an existing entry
// was updated instead.
func (m *Map) Insert(key, value string) bool {
	idx, top := m.locate(key)

	if b, i := m.scan(idx, top, key); b != nil {
		b.slots[i].value = value
		m.emit(fmt.Sprintf("Updated %q to %q", key, value), "update_value", b.id)
		return false
	}

	m.emit(fmt.Sprintf("Key %q not present, find an empty slot", key), "find_empty", m.buckets[idx].id)
	for b := m.buckets[idx]; ; b = b.overflow {
		if i := firstEmpty(b); i >= 0 {
			b.slots[i] = slot{top: top, key: key, value: value, used: true}
			m.count++
			m.emit(fmt.Sprintf("Stored %q in slot %d of %s", key, i, b.id), "insert_slot", b.id)
			break
		}
		if b.overflow == nil {
			b.overflow = m.newOverflow(idx)
			m.emit(fmt.Sprintf("Bucket %s is full, chain overflow bucket %s", b.id, b.overflow.id), "new_overflow", b.id, b.overflow.id)
		}
	}

	lf := m.LoadFactor()
	m.emit(fmt.Sprintf("Load factor %d/%d = %.2f", m.count, len(m.buckets), lf), "check_load")
	if lf > LoadFactor {
		m.grow()
	}
	return true
}

// grow doubles the bucket array and evacuates every entry.
func (m *Map) grow() {
	m.old = m.buckets
	for i, head := range m.old {
		head.id, head.kind = "old-"+strconv.Itoa(i), oldBucket
		for b := head.overflow; b != nil; b = b.overflow {
			b.id, b.kind = m.overflowID(oldBucket), oldBucket
		}
	}
	m.b++
	m.buckets = m.newBuckets(1 << m.b)
	m.emit(fmt.Sprintf("Load factor exceeds %.1f: grow from %d to %d buckets", LoadFactor, len(m.old), len(m.buckets)), "grow")

	for i, head := range m.old {
		ids := []string{}
		for b := head; b != nil; b = b.overflow {
			ids = append(ids, b.id)
			for j, s := range b.slots {
				if s.used {
					m.place(s)
					b.slots[j] = slot{}
				}
			}
		}
		ids = append(ids, m.buckets[i].id, m.buckets[i+len(m.old)].id)
		m.emit(fmt.Sprintf("Evacuated old bucket %d into buckets %d and %d", i, i, i+len(m.old)), "evacuate", ids...)
	}

	m.old = nil
	m.emit(fmt.Sprintf("Grow complete: 2^%d = %d buckets", m.b, len(m.buckets)), "grow_done")
}

// place stores s in the first empty slot of its bucket chain without steps.
// It does not change count.
func (m *Map) place(s slot) {
	idx := int(Hash(s.key) & m.mask())
	for b := m.buckets[idx]; ; b = b.overflow {
		if i := firstEmpty(b); i >= 0 {
			b.slots[i] = s
			return
		}
		if b.overflow == nil {
			b.overflow = m.newOverflow(idx)
		}
	}
}

func firstEmpty(b *bucket) int {
	for i, s := range b.slots {
		if !s.used {
			return i
		}
	}
	return -1
}

// Search returns the value stored under key.
func (m *Map) Search(key string) (string, bool) {
	idx, top := m.locate(key)
	if b, i := m.scan(idx, top, key); b != nil {
		v := b.slots[i].value
		m.emit(fmt.Sprintf("Found %q = %q", key, v), "search_found", b.id)
		return v, true
	}
	m.emit(fmt.Sprintf("Key %q not found", key), "search_not_found")
	return "", false
}

// Delete clears the slot holding key. Emptied overflow buckets stay in
// the chain. It reports false when key is absent.
func (m *Map) Delete(key string) bool {
	idx, top := m.locate(key)
	b, i := m.scan(idx, top, key)
	if b == nil {
		m.emit(fmt.Sprintf("Key %q not found, nothing to delete", key), "delete_not_found")
		return false
	}
	b.slots[i] = slot{}
	m.count--
	m.emit(fmt.Sprintf("Cleared slot %d of %s", i, b.id), "delete_clear", b.id)
	return true
}
