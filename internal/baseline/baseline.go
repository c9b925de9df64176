// Package baseline is the plain, sequential aggregator: one line at a time,
// generic parsing, no custom table. It is slow and serves as the reference
// the parallel engine is checked against.
package baseline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dolthub/swiss"
	"github.com/pechorka/stdlib/pkg/errs"

	"github.com/miku/1brc-engine/internal/measure"
)

// Aggregate reads <key>;<value> lines from r.
func Aggregate(r io.Reader) (measure.Result, error) {
	var (
		data    = swiss.NewMap[string, *measure.Measurements](1024)
		scanner = bufio.NewScanner(r)
		lineno  int
	)
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		name, temp, ok := bytes.Cut(line, []byte(";"))
		if !ok {
			return nil, fmt.Errorf("line %d: expected a semicolon: %q", lineno, line)
		}
		f, err := strconv.ParseFloat(string(temp), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid temp: %w", lineno, err)
		}
		v := int64(math.Round(f * 10))
		m, ok := data.Get(string(name))
		if !ok {
			nm := measure.New()
			m = &nm
			data.Put(string(name), m)
		}
		m.Add(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read input")
	}
	result := make(measure.Result, data.Count())
	data.Iter(func(k string, v *measure.Measurements) (stop bool) {
		result[k] = v
		return false
	})
	return result, nil
}
