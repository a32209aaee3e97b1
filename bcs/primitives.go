package bcs

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Bool encodes a single byte: 0x00 for false, 0x01 for true. Any other
// byte on read is a MalformedError.
func Bool() Schema[bool] {
	return Schema[bool]{
		name: "bool",
		read: func(r *Reader) (bool, error) {
			b, err := r.ReadU8()
			if err != nil {
				return false, err
			}
			switch b {
			case 0x00:
				return false, nil
			case 0x01:
				return true, nil
			default:
				return false, &MalformedError{Schema: "bool", Pos: r.pos - 1, Message: fmt.Sprintf("byte 0x%02x is neither 0x00 nor 0x01", b)}
			}
		},
		write: func(v bool, w *Writer) error {
			if v {
				return w.WriteU8(0x01)
			}
			return w.WriteU8(0x00)
		},
		serializedSz: func(bool) (int, bool) { return 1, true },
	}
}

// U8 encodes a little-endian, single-byte unsigned integer.
func U8() Schema[uint8] {
	return Schema[uint8]{
		name:         "u8",
		read:         func(r *Reader) (uint8, error) { return r.ReadU8() },
		write:        func(v uint8, w *Writer) error { return w.WriteU8(v) },
		serializedSz: func(uint8) (int, bool) { return 1, true },
	}
}

// U16 encodes a little-endian, two-byte unsigned integer.
func U16() Schema[uint16] {
	return Schema[uint16]{
		name:         "u16",
		read:         func(r *Reader) (uint16, error) { return r.ReadU16() },
		write:        func(v uint16, w *Writer) error { return w.WriteU16(v) },
		serializedSz: func(uint16) (int, bool) { return 2, true },
	}
}

// U32 encodes a little-endian, four-byte unsigned integer.
func U32() Schema[uint32] {
	return Schema[uint32]{
		name:         "u32",
		read:         func(r *Reader) (uint32, error) { return r.ReadU32() },
		write:        func(v uint32, w *Writer) error { return w.WriteU32(v) },
		serializedSz: func(uint32) (int, bool) { return 4, true },
	}
}

// U64 encodes a little-endian, eight-byte unsigned integer. Go's uint64
// is the canonical input/output type: it fits natively, so there is no
// reason to pay big.Int's cost for it.
func U64() Schema[uint64] {
	return Schema[uint64]{
		name:         "u64",
		read:         func(r *Reader) (uint64, error) { return r.ReadU64() },
		write:        func(v uint64, w *Writer) error { return w.WriteU64(v) },
		serializedSz: func(uint64) (int, bool) { return 8, true },
	}
}

// U128 encodes a little-endian, sixteen-byte unsigned integer. The
// canonical input/output type is *big.Int, non-negative and bounded to
// 128 bits; both bounds are enforced by Validate.
func U128() Schema[*big.Int] {
	return bigIntSchema("u128", 16)
}

// U256 encodes a little-endian, thirty-two-byte unsigned integer, with
// the same *big.Int convention as U128.
func U256() Schema[*big.Int] {
	return bigIntSchema("u256", 32)
}

func bigIntSchema(name string, width int) Schema[*big.Int] {
	bits := uint(width * 8)
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	max.Sub(max, big.NewInt(1))
	return Schema[*big.Int]{
		name: name,
		read: func(r *Reader) (*big.Int, error) {
			if width == 16 {
				return r.ReadU128()
			}
			return r.ReadU256()
		},
		write: func(v *big.Int, w *Writer) error {
			if width == 16 {
				return w.WriteU128(v)
			}
			return w.WriteU256(v)
		},
		validate: func(v *big.Int) error {
			if v == nil {
				return &ValidationError{Schema: name, Message: "nil big.Int"}
			}
			if v.Sign() < 0 {
				return &ValidationError{Schema: name, Message: "value is negative"}
			}
			if v.Cmp(max) > 0 {
				return &ValidationError{Schema: name, Message: fmt.Sprintf("value exceeds 2^%d-1", bits)}
			}
			return nil
		},
		serializedSz: func(*big.Int) (int, bool) { return width, true },
	}
}

// ULEB128 encodes an unsigned integer using the ULEB128 length/tag
// encoding directly (as opposed to a fixed-width field). Input is a
// native uint64; the validator rejects values above what a length or
// discriminant ever needs, keeping the write side symmetric with
// uleb128Decode's own ceiling on read.
func ULEB128() Schema[uint64] {
	return Schema[uint64]{
		name:  "uleb128",
		read:  func(r *Reader) (uint64, error) { return r.ReadULEB128() },
		write: func(v uint64, w *Writer) error { return w.WriteULEB128(v) },
		validate: func(v uint64) error {
			if v > uleb128Max {
				return &ValidationError{Schema: "uleb128", Message: "value exceeds 2^32-1"}
			}
			return nil
		},
	}
}

// Bytes encodes a fixed-size byte blob with no length prefix. The
// validator rejects any input whose length is not exactly n.
func Bytes(n int) Schema[[]byte] {
	return Schema[[]byte]{
		name: fmt.Sprintf("bytes(%d)", n),
		read: func(r *Reader) ([]byte, error) {
			b, err := r.ReadBytes(n)
			if err != nil {
				return nil, err
			}
			out := make([]byte, n)
			copy(out, b)
			return out, nil
		},
		write: func(v []byte, w *Writer) error { return w.WriteBytes(v) },
		validate: func(v []byte) error {
			if len(v) != n {
				return &ValidationError{Schema: fmt.Sprintf("bytes(%d)", n), Message: lengthMismatchMsg(n, len(v))}
			}
			return nil
		},
		serializedSz: func([]byte) (int, bool) { return n, true },
	}
}

// String encodes a UTF-8 string as vector(u8) over its bytes.
// Deserialization validates UTF-8; invalid UTF-8 on
// read is a MalformedError, not a ValidationError, since it is detected
// while decoding bytes that already arrived, not while checking a Go
// value the caller is about to write (a Go string is always valid
// UTF-8... unless constructed via unsafe conversion, which this package
// does not do).
func String() Schema[string] {
	return Schema[string]{
		name: "string",
		read: func(r *Reader) (string, error) {
			n, err := r.ReadULEB128()
			if err != nil {
				return "", err
			}
			b, err := r.ReadBytes(int(n))
			if err != nil {
				return "", err
			}
			if !utf8.Valid(b) {
				return "", &MalformedError{Schema: "string", Pos: r.pos - len(b), Message: "invalid UTF-8"}
			}
			return string(b), nil
		},
		write: func(v string, w *Writer) error {
			b := []byte(v)
			if err := w.WriteULEB128(uint64(len(b))); err != nil {
				return err
			}
			return w.WriteBytes(b)
		},
	}
}
