package bcs

import "math/big"

// Reader is a cursor over an immutable byte slice. Its position advances
// monotonically and never exceeds len(buf); reading past the end is a
// fatal ShortBufferError. A Reader is owned by exactly one caller for the
// duration of one parse call and must not outlive the slice it borrows.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf. buf is not copied; the caller must
// not mutate it while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Remaining returns a view of the unread tail of the buffer, without
// advancing the cursor.
func (r *Reader) Remaining() []byte { return r.buf[r.pos:] }

func (r *Reader) require(n int) error {
	if r.pos+n > len(r.buf) {
		return &ShortBufferError{Pos: r.pos, Requested: n, Available: len(r.buf) - r.pos}
	}
	return nil
}

// ReadBytes reads and returns the next n bytes, advancing the cursor. The
// returned slice aliases the Reader's underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU8 reads one little-endian byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads two little-endian bytes.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.buf[r.pos]) | uint16(r.buf[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

// ReadU32 reads four little-endian bytes.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.buf[r.pos]) | uint32(r.buf[r.pos+1])<<8 |
		uint32(r.buf[r.pos+2])<<16 | uint32(r.buf[r.pos+3])<<24
	r.pos += 4
	return v, nil
}

// ReadU64 reads eight little-endian bytes, as the concatenation of two
// 32-bit halves: high<<32 | low.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	low, _ := r.ReadU32()
	high, _ := r.ReadU32()
	return uint64(high)<<32 | uint64(low), nil
}

// ReadU128 reads sixteen little-endian bytes into a big.Int.
func (r *Reader) ReadU128() (*big.Int, error) {
	return r.readBigLE(16)
}

// ReadU256 reads thirty-two little-endian bytes into a big.Int.
func (r *Reader) ReadU256() (*big.Int, error) {
	return r.readBigLE(32)
}

func (r *Reader) readBigLE(n int) (*big.Int, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	be := make([]byte, n)
	for i, c := range b {
		be[n-1-i] = c
	}
	return new(big.Int).SetBytes(be), nil
}

// ReadULEB128 reads a ULEB128-encoded unsigned integer (used for length
// prefixes and enum discriminants). See uleb128Decode for the algorithm.
func (r *Reader) ReadULEB128() (uint64, error) {
	v, n, err := uleb128Decode(r.buf[r.pos:])
	if err != nil {
		switch e := err.(type) {
		case *MalformedError:
			e.Pos = r.pos
		case *ShortBufferError:
			e.Pos += r.pos
		}
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadVec reads a ULEB128 length prefix followed by that many elements,
// each produced by cb. It propagates any error cb returns.
func ReadVec[T any](r *Reader, cb func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, preallocCap(n, r.Len()))
	for i := uint64(0); i < n; i++ {
		v, err := cb(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadFixed reads exactly n elements with no length prefix, each produced
// by cb. It propagates any error cb returns.
func ReadFixed[T any](r *Reader, n int, cb func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, 0, preallocCap(uint64(n), r.Len()))
	for i := 0; i < n; i++ {
		v, err := cb(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// preallocCap bounds a slice preallocation by what the remaining buffer
// could possibly hold, since every element consumes at least one byte.
// n itself comes straight off the wire (a ULEB128 length or declared
// fixed-array arity) and is not otherwise trustworthy: a handful of
// bytes can claim a length in the billions, and preallocating that much
// up front turns a short, malformed input into an OOM instead of a
// clean ShortBufferError.
func preallocCap(n uint64, remaining int) int {
	if remaining < 0 {
		return 0
	}
	if n > uint64(remaining) {
		return remaining
	}
	return int(n)
}
