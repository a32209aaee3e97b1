package bcs

import "math/big"

// WriterOptions configures a Writer's buffer growth policy.
type WriterOptions struct {
	InitialSize int // initial buffer capacity; 0 means DefaultInitialSize
	MaxSize     int // hard cap; 0 means InitialSize (no growth allowed)
	GrowChunk   int // growth increment; 0 means DefaultGrowChunk
}

// Default buffer growth parameters: initial_size = 1024, max_size =
// initial_size, grow_chunk = 1024.
const (
	DefaultInitialSize = 1024
	DefaultGrowChunk   = 1024
)

func (o WriterOptions) normalize() WriterOptions {
	if o.InitialSize <= 0 {
		o.InitialSize = DefaultInitialSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = o.InitialSize
	}
	if o.GrowChunk <= 0 {
		o.GrowChunk = DefaultGrowChunk
	}
	return o
}

// Writer is a cursor over a growable byte buffer. Growth happens in
// GrowChunk increments up to MaxSize; exceeding MaxSize is a fatal
// CapacityError with no silent truncation or wraparound. A Writer is
// owned by exactly one caller for the duration of one serialize call.
type Writer struct {
	buf  []byte
	pos  int
	opts WriterOptions
}

// NewWriter creates a Writer with the given options, normalizing zero
// fields to their documented defaults.
func NewWriter(opts WriterOptions) *Writer {
	opts = opts.normalize()
	return &Writer{
		buf:  make([]byte, opts.InitialSize),
		opts: opts,
	}
}

// Pos returns the current cursor offset (equal to the number of bytes
// written so far).
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the written bytes. The returned slice aliases the
// Writer's internal buffer and must not be mutated by the caller; once
// an Envelope is built from it (see envelope.go), the Writer should not
// be reused.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// ensure grows the buffer, in GrowChunk increments, so that at least k
// more bytes can be written starting at the current position. It fails
// with CapacityError if that would require exceeding MaxSize.
func (w *Writer) ensure(k int) error {
	need := w.pos + k
	if need <= len(w.buf) {
		return nil
	}
	if need > w.opts.MaxSize {
		return &CapacityError{Requested: need, MaxSize: w.opts.MaxSize}
	}
	newSize := len(w.buf)
	for newSize < need {
		newSize += w.opts.GrowChunk
	}
	if newSize > w.opts.MaxSize {
		newSize = w.opts.MaxSize
	}
	grown := make([]byte, newSize)
	copy(grown, w.buf[:w.pos])
	w.buf = grown
	return nil
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.ensure(len(b)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return nil
}

// WriteU8 appends one little-endian byte.
func (w *Writer) WriteU8(v uint8) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf[w.pos] = v
	w.pos++
	return nil
}

// WriteU16 appends two little-endian bytes.
func (w *Writer) WriteU16(v uint16) error {
	if err := w.ensure(2); err != nil {
		return err
	}
	w.buf[w.pos] = byte(v)
	w.buf[w.pos+1] = byte(v >> 8)
	w.pos += 2
	return nil
}

// WriteU32 appends four little-endian bytes.
func (w *Writer) WriteU32(v uint32) error {
	if err := w.ensure(4); err != nil {
		return err
	}
	w.buf[w.pos] = byte(v)
	w.buf[w.pos+1] = byte(v >> 8)
	w.buf[w.pos+2] = byte(v >> 16)
	w.buf[w.pos+3] = byte(v >> 24)
	w.pos += 4
	return nil
}

// WriteU64 appends eight little-endian bytes, as two 32-bit halves.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.WriteU32(uint32(v)); err != nil {
		return err
	}
	return w.WriteU32(uint32(v >> 32))
}

// WriteU128 appends sixteen little-endian bytes from a non-negative
// big.Int. The caller is responsible for range validation; this method
// truncates/zero-pads to exactly 16 bytes.
func (w *Writer) WriteU128(v *big.Int) error {
	return w.writeBigLE(v, 16)
}

// WriteU256 appends thirty-two little-endian bytes from a non-negative
// big.Int.
func (w *Writer) WriteU256(v *big.Int) error {
	return w.writeBigLE(v, 32)
}

func (w *Writer) writeBigLE(v *big.Int, n int) error {
	be := v.Bytes() // big-endian, minimal length
	if len(be) > n {
		be = be[len(be)-n:] // keep the low n bytes
	}
	le := make([]byte, n)
	for i, c := range be {
		le[len(be)-1-i] = c
	}
	return w.WriteBytes(le)
}

// WriteULEB128 appends v as ULEB128 (used for length prefixes and enum
// discriminants). See uleb128Encode for the algorithm.
func (w *Writer) WriteULEB128(v uint64) error {
	return w.WriteBytes(uleb128Encode(v))
}

// WriteVec writes a ULEB128 length prefix followed by len(values)
// invocations of cb, one per element, each receiving the writer, the
// element, its index, and the total count.
func WriteVec[T any](w *Writer, values []T, cb func(*Writer, T, int, int) error) error {
	if err := w.WriteULEB128(uint64(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := cb(w, v, i, len(values)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFixed writes exactly n elements with no length prefix. It is a
// ValidationError (not a silent truncation) for values to contain more
// or fewer than n elements; the caller is expected to have validated
// this already (FixedArray's schema validator does), but WriteFixed
// re-checks defensively.
func WriteFixed[T any](w *Writer, values []T, n int, cb func(*Writer, T, int, int) error) error {
	if len(values) != n {
		return &ValidationError{Schema: "fixed_array", Message: lengthMismatchMsg(n, len(values))}
	}
	for i, v := range values {
		if err := cb(w, v, i, n); err != nil {
			return err
		}
	}
	return nil
}
