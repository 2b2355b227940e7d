package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n < 0 {
		return "-" + formatUint(uint64(-int64(n)))
	}
	return formatUint(uint64(n))
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	return formatUint(uint64(n))
}

// formatUint builds the decimal string right to left in a fixed buffer
func formatUint(u uint64) string {
	if u == 0 {
		return "0"
	}

	var buf [20]byte
	pos := len(buf)
	for u > 0 {
		pos--
		buf[pos] = byte('0' + u%10)
		u /= 10
	}
	return string(buf[pos:])
}

const hexDigits = "0123456789abcdef"

// hex32 formats a register word as 0x followed by 8 hex digits
func hex32(v uint32) string {
	var buf [10]byte
	buf[0] = '0'
	buf[1] = 'x'
	for i := 9; i >= 2; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
