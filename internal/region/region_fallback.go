//go:build !linux && !darwin && !freebsd

package region

import (
	"github.com/pechorka/stdlib/pkg/errs"
	"golang.org/x/exp/mmap"
)

// Open maps path with golang.org/x/exp/mmap. That package only exposes a
// ReaderAt, so the bytes are copied out once.
func Open(path string) (*Region, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to mmap file")
	}
	defer r.Close()
	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && len(data) > 0 {
		return nil, errs.Wrap(err, "failed to read file")
	}
	return &Region{data: data}, nil
}
