//go:build linux || darwin || freebsd

package region

import (
	"os"

	"github.com/pechorka/stdlib/pkg/errs"
	"golang.org/x/sys/unix"
)

// Open maps path with mmap(2) and advises the kernel that it will be read
// sequentially.
func Open(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open file")
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(err, "failed to stat file")
	}
	if fi.Size() == 0 {
		return &Region{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Wrap(err, "failed to mmap file")
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return &Region{
		data:  data,
		close: func() error { return unix.Munmap(data) },
	}, nil
}
