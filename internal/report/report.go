// Package report renders a merged result as {key=min/mean/max, ...}.
package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/pechorka/stdlib/pkg/errs"

	"github.com/miku/1brc-engine/internal/measure"
)

// Write writes r to w in ascending key order, followed by a newline.
func Write(w io.Writer, r measure.Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 256)
	buf = append(buf, '{')
	for i, k := range r.Keys() {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = r[k].AppendTo(buf)
		if _, err := bw.Write(buf); err != nil {
			return errs.Wrap(err, "failed to write result")
		}
		buf = buf[:0]
	}
	buf = append(buf, "}\n"...)
	if _, err := bw.Write(buf); err != nil {
		return errs.Wrap(err, "failed to write result")
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(err, "failed to flush result")
	}
	return nil
}

// String is like Write, but returns the rendered text without the trailing
// newline.
func String(r measure.Result) string {
	var sb strings.Builder
	_ = Write(&sb, r)
	return strings.TrimSuffix(sb.String(), "\n")
}
