package measure

import "strconv"

// AppendTenths appends t/10 with exactly one fractional digit.
func AppendTenths(dst []byte, t int64) []byte {
	if t < 0 {
		dst = append(dst, '-')
		t = -t
	}
	dst = strconv.AppendInt(dst, t/10, 10)
	dst = append(dst, '.')
	return append(dst, byte('0'+t%10))
}

// AppendTo appends min/mean/max to dst.
func (m *Measurements) AppendTo(dst []byte) []byte {
	dst = AppendTenths(dst, m.Min)
	dst = append(dst, '/')
	dst = AppendTenths(dst, m.Mean())
	dst = append(dst, '/')
	return AppendTenths(dst, m.Max)
}

func (m *Measurements) String() string {
	return string(m.AppendTo(nil))
}
