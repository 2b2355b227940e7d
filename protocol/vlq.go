package protocol

import "errors"

// vlqMaxBytes is the longest encoding of a 32-bit value
const vlqMaxBytes = 5

var (
	ErrInvalidVLQ     = errors.New("invalid VLQ encoding")
	ErrBufferTooSmall = errors.New("buffer too small for VLQ")
)

// EncodeVLQInt writes v as a big-endian run of 7-bit groups, high bit set on
// all but the last. Values in [-32, 96) take one byte.
func EncodeVLQInt(output OutputBuffer, v int32) {
	var buf [vlqMaxBytes]byte
	n := 0
	for shift := uint(28); shift > 0; shift -= 7 {
		// Range that fits in the groups below this one
		limit := int32(1) << (shift - 2)
		if v < -limit || v >= 3*limit {
			buf[n] = byte(v>>shift)&0x7F | 0x80
			n++
		}
	}
	buf[n] = byte(v) & 0x7F
	output.Output(buf[:n+1])
}

// EncodeVLQUint encodes an unsigned value; it travels as its int32 bits
func EncodeVLQUint(output OutputBuffer, v uint32) {
	EncodeVLQInt(output, int32(v))
}

// DecodeVLQInt reads one value from the front of *data and advances it.
// On error *data is left as it was.
func DecodeVLQInt(data *[]byte) (int32, error) {
	d := *data
	if len(d) == 0 {
		return 0, ErrBufferTooSmall
	}

	v := uint32(d[0] & 0x7F)
	if d[0]&0x60 == 0x60 {
		// Negative: sign-extend the first group
		v |= ^uint32(0x1F)
	}

	i := 0
	for d[i]&0x80 != 0 {
		i++
		if i >= vlqMaxBytes {
			return 0, ErrInvalidVLQ
		}
		if i >= len(d) {
			return 0, ErrBufferTooSmall
		}
		v = v<<7 | uint32(d[i]&0x7F)
	}

	*data = d[i+1:]
	return int32(v), nil
}

// DecodeVLQUint decodes a VLQ unsigned integer from the data slice
func DecodeVLQUint(data *[]byte) (uint32, error) {
	val, err := DecodeVLQInt(data)
	return uint32(val), err
}
