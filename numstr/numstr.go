// Package numstr carries the freestanding numeric string helpers used by the
// driver tooling: base 2..36 formatting of 32-bit values, a scanning parser
// and a NUL-terminated string length.
package numstr

import "bytes"

// maxDigits covers the worst case, 32 binary digits.
const maxDigits = 32

// FormatUint32 returns the textual representation of v in the given base,
// using lowercase digits above 9. Base must be in 2..36, otherwise ok is
// false and the string is empty.
func FormatUint32(v uint32, base uint32) (s string, ok bool) {
	if base <= 1 || base > 36 {
		return "", false
	}
	var tmp [maxDigits]byte
	i := len(tmp)
	for {
		d := byte(v % base)
		v /= base
		if d < 10 {
			d += '0'
		} else {
			d += 'a' - 10
		}
		i--
		tmp[i] = d
		if v == 0 {
			break
		}
	}
	return string(tmp[i:]), true
}

// ParseUint32 scans s for the first digit or the stop byte, then accumulates
// consecutive valid digits into an unsigned value. Valid digits are '0'..'9',
// plus 'a'..'f'/'A'..'F' when base is 16; any other base accepts decimal
// digits only. A zero byte terminates the scan the way NUL terminates a C
// string.
//
// found reports whether a digit was seen before the stop byte or the end of
// s; end is the offset of the first unconsumed byte.
func ParseUint32(s []byte, base uint32, stop byte) (val uint32, end int, found bool) {
	i := 0
	for ; i < len(s) && s[i] != 0; i++ {
		if digitVal(s[i], base) >= 0 {
			found = true
			break
		}
		if s[i] == stop {
			break
		}
	}

	for ; i < len(s) && s[i] != 0; i++ {
		d := digitVal(s[i], base)
		if d < 0 {
			break
		}
		val = val*base + uint32(d)
	}

	return val, i, found
}

func digitVal(c byte, base uint32) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case base == 16 && c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case base == 16 && c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// StringLen returns the number of bytes in b before a terminating zero byte,
// or len(b) when b holds no terminator.
func StringLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}
