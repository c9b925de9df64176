package measure

// Decode reads a value of the form [-]d[d].d from the start of b and returns
// it in tenths together with the number of bytes it spans.
//
// Nothing is validated. Bytes that do not follow the format give a
// meaningless number; a value cut short by the end of b panics.
func Decode(b []byte) (int64, int) {
	var (
		neg bool
		i   int
	)
	if b[0] == '-' {
		neg = true
		i++
	}
	v := int64(b[i] - '0')
	i++
	if b[i] != '.' {
		v = v*10 + int64(b[i]-'0')
		i++
	}
	i++ // '.'
	v = v*10 + int64(b[i]-'0')
	i++
	if neg {
		v = -v
	}
	return v, i
}
