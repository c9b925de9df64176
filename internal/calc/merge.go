package calc

import (
	"github.com/miku/1brc-engine/internal/measure"
	"github.com/miku/1brc-engine/internal/table"
)

// Merge folds every entry of t into dst. t is left untouched, dst owns its
// own copies.
func Merge(dst measure.Result, t *table.Table) {
	t.Each(func(key []byte, m *measure.Measurements) {
		if v, ok := dst[string(key)]; ok {
			v.Merge(m)
			return
		}
		v := *m
		dst[string(key)] = &v
	})
}
