package bcs

// uleb128Encode encodes n as unsigned little-endian base-128: seven data
// bits per byte, continuation bit (0x80) set on every byte but the last.
// n == 0 encodes as the single byte 0x00.
func uleb128Encode(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}
	var out []byte
	for n != 0 {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

// maxUleb128Bytes bounds the width of lengths and enum tags this module
// will decode: five bytes is enough for any value up to 2^32-1, with
// room to spare (five 7-bit groups hold up to 2^35-1, so the decoded
// value is checked against the 2^32-1 ceiling separately below). A
// sixth byte without a terminator is malformed.
const maxUleb128Bytes = 5

// uleb128Max is the largest value this module accepts off the wire,
// matching the ceiling ULEB128()'s write-side validator already
// enforces: a ULEB128 field only ever holds a length or an enum
// discriminant, neither of which this module lets exceed 2^32-1.
const uleb128Max = uint64(1)<<32 - 1

// uleb128Decode decodes a ULEB128 value from the front of buf, returning
// the value and the number of bytes consumed. It fails with
// MalformedError if no byte with a clear continuation bit appears within
// maxUleb128Bytes, if the decoded value exceeds uleb128Max, or with
// ShortBufferError if buf runs out first.
func uleb128Decode(buf []byte) (uint64, int, error) {
	var value uint64
	for i := 0; i < maxUleb128Bytes; i++ {
		if i >= len(buf) {
			return 0, 0, &ShortBufferError{Pos: i, Requested: 1, Available: 0}
		}
		b := buf[i]
		value |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if value > uleb128Max {
				return 0, 0, &MalformedError{Schema: "uleb128", Message: "value exceeds 2^32-1"}
			}
			return value, i + 1, nil
		}
	}
	return 0, 0, &MalformedError{Schema: "uleb128", Message: "no terminating byte within 5 bytes"}
}
