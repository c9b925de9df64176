// Package calc drives the aggregation: it scans chunks into per-worker tables,
// schedules the chunks over a fixed set of workers and merges the tables.
package calc

import (
	"fmt"

	"github.com/miku/1brc-engine/internal/measure"
	"github.com/miku/1brc-engine/internal/table"
)

// ProcessChunk folds every line of data into t. data must start at the
// beginning of a line; the last line may lack its terminator.
func ProcessChunk(data []byte, t *table.Table) error {
	var (
		scratch [measure.MaxKeyLen]byte
		pos     int
	)
	for pos < len(data) {
		// key: copy and hash in one pass, up to ';'
		var (
			hash uint32
			n    int
		)
		for {
			b := data[pos]
			pos++
			if b == ';' {
				break
			}
			if n == len(scratch) {
				return fmt.Errorf("%w: line starting %q", measure.ErrKeyTooLong, scratch[:16])
			}
			hash = hash*31 + uint32(b)
			scratch[n] = b
			n++
		}
		m, err := t.GetOrCreate(scratch[:n], hash)
		if err != nil {
			return fmt.Errorf("%w: %d slots, %d keys", err, t.Cap(), t.Len())
		}
		pos += m.Fold(data[pos:])
		pos++ // '\n'
	}
	return nil
}
