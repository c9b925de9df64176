// Package region maps an input file into memory, read only, for the whole
// lifetime of a run.
package region

// Region is a read only view of a file's bytes.
type Region struct {
	data  []byte
	close func() error
}

// Bytes returns the mapped bytes. They must not be modified and must not be
// used after Close.
func (r *Region) Bytes() []byte { return r.data }

func (r *Region) Len() int { return len(r.data) }

// Close releases the mapping.
func (r *Region) Close() error {
	if r.close == nil {
		return nil
	}
	err := r.close()
	r.data, r.close = nil, nil
	return err
}
