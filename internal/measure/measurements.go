// Package measure holds the per-key aggregate and the fixed-point helpers
// around it. All values are kept in tenths of a unit.
package measure

import (
	"errors"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MaxKeyLen is the longest key the scanner accepts.
const MaxKeyLen = 128

// ErrKeyTooLong is returned for keys longer than MaxKeyLen.
var ErrKeyTooLong = errors.New("key too long")

// Measurements, as there is no need to keep all numbers around, we can compute
// them on the fly. Min, Max and Sum are in tenths.
type Measurements struct {
	Min   int64
	Max   int64
	Sum   int64
	Count int64
}

// New returns an empty aggregate. The sentinels make sure the first value
// added wins both comparisons.
func New() Measurements {
	return Measurements{Min: math.MaxInt64, Max: math.MinInt64}
}

// Reset puts m back into the state returned by New.
func (m *Measurements) Reset() {
	*m = New()
}

func (m *Measurements) Add(v int64) {
	if v < m.Min {
		m.Min = v
	}
	if v > m.Max {
		m.Max = v
	}
	m.Sum += v
	m.Count++
}

// Fold decodes the value at the start of b and adds it. It returns the number
// of bytes consumed, not counting the line terminator.
func (m *Measurements) Fold(b []byte) int {
	v, n := Decode(b)
	m.Add(v)
	return n
}

func (m *Measurements) Merge(o *Measurements) {
	if o.Min < m.Min {
		m.Min = o.Min
	}
	if o.Max > m.Max {
		m.Max = o.Max
	}
	m.Sum += o.Sum
	m.Count += o.Count
}

// Mean returns Sum/Count in tenths, rounded half away from zero. Count must
// not be zero.
func (m *Measurements) Mean() int64 {
	return divRound(m.Sum, m.Count)
}

func divRound(sum, count int64) int64 {
	if sum < 0 {
		return -((-2*sum + count) / (2 * count))
	}
	return (2*sum + count) / (2 * count)
}

// Result is the merged view over all workers, keyed by key bytes.
type Result map[string]*Measurements

// Keys returns the keys in ascending byte order.
func (r Result) Keys() []string {
	keys := maps.Keys(r)
	slices.Sort(keys)
	return keys
}
