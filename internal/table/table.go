// Package table implements the per-worker key table: open addressing with
// linear probing over a fixed, power of two sized index. It never grows.
package table

import (
	"bytes"
	"errors"

	"github.com/miku/1brc-engine/internal/measure"
)

// DefaultSize is the number of slots used when none is given. Inputs are
// expected to hold at most a few thousand distinct keys.
const DefaultSize = 1 << 17

// ErrCapacityExhausted is returned when every slot was probed without finding
// the key or a free slot.
var ErrCapacityExhausted = errors.New("key table capacity exhausted")

const empty = -1

type entry struct {
	hash uint32
	key  []byte
	m    measure.Measurements
}

// Table maps keys to measurements. It is not safe for concurrent use; each
// worker owns its own.
type Table struct {
	mask    uint32
	index   []int32
	entries []*entry
}

// New returns a table with at least size slots, rounded up to a power of two.
func New(size int) *Table {
	n := 1
	for n < size {
		n <<= 1
	}
	t := &Table{
		mask:    uint32(n - 1),
		index:   make([]int32, n),
		entries: make([]*entry, 0, 512),
	}
	t.clearIndex()
	return t
}

func (t *Table) clearIndex() {
	for i := range t.index {
		t.index[i] = empty
	}
}

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.index) }

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.entries) }

// GetOrCreate returns the measurements for key, adding a fresh entry on first
// sight. The key is copied only then, so callers may reuse the buffer. hash
// must be the same function of key on every call.
func (t *Table) GetOrCreate(key []byte, hash uint32) (*measure.Measurements, error) {
	slot := hash & t.mask
	for probes := 0; probes < len(t.index); probes++ {
		idx := t.index[slot]
		if idx == empty {
			e := &entry{
				hash: hash,
				key:  bytes.Clone(key),
				m:    measure.New(),
			}
			t.index[slot] = int32(len(t.entries))
			t.entries = append(t.entries, e)
			return &e.m, nil
		}
		if e := t.entries[idx]; e.hash == hash && bytes.Equal(e.key, key) {
			return &e.m, nil
		}
		slot = (slot + 1) & t.mask
	}
	return nil, ErrCapacityExhausted
}

// Each calls fn for every entry in insertion order. fn must not keep key.
func (t *Table) Each(fn func(key []byte, m *measure.Measurements)) {
	for _, e := range t.entries {
		fn(e.key, &e.m)
	}
}

// Reset empties the table, keeping its allocated index.
func (t *Table) Reset() {
	t.clearIndex()
	clear(t.entries)
	t.entries = t.entries[:0]
}
