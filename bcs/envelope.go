package bcs

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Envelope is an immutable pair of a Schema and the bytes it produced.
// It remembers the schema that made it, so re-parsing
// always round-trips through the same schema rather than a caller having
// to track that pairing by hand.
type Envelope[T any] struct {
	schema Schema[T]
	bytes  []byte
}

// NewEnvelope wraps pre-encoded bytes with the schema that should parse
// them. Most callers get an Envelope from Schema.Serialize instead; this
// constructor exists for bytes that arrived over some external channel
// and are already known to be valid for schema.
func NewEnvelope[T any](schema Schema[T], bytes []byte) *Envelope[T] {
	return &Envelope[T]{schema: schema, bytes: bytes}
}

// Bytes returns the canonical encoded bytes.
func (e *Envelope[T]) Bytes() []byte { return e.bytes }

// ToHex returns the lowercase hex encoding of the bytes.
func (e *Envelope[T]) ToHex() string { return hex.EncodeToString(e.bytes) }

// ToBase64 returns the standard base64 encoding of the bytes.
func (e *Envelope[T]) ToBase64() string { return base64.StdEncoding.EncodeToString(e.bytes) }

// ToBase58 returns the base58 (Bitcoin alphabet) encoding of the bytes.
// See base58.go for why this is hand-rolled rather than imported.
func (e *Envelope[T]) ToBase58() string { return base58Encode(e.bytes) }

// Parse decodes the envelope's own bytes back through its own schema,
// guaranteeing a round trip within the same envelope.
func (e *Envelope[T]) Parse() (T, error) {
	return e.schema.Parse(e.bytes)
}

// ToZstd compresses the envelope's bytes with zstd, returning a
// transport-layer encoding that is not itself part of the canonical BCS
// wire format. The returned bytes are meaningless to anything but
// ParseZstd (or any other zstd decoder) and must never be confused with
// e.Bytes().
func (e *Envelope[T]) ToZstd() ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(e.bytes, nil), nil
}

// ParseZstd decompresses a zstd blob produced by ToZstd and parses the
// result through schema, in one step.
func ParseZstd[T any](schema Schema[T], compressed []byte) (T, error) {
	dec, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		var zero T
		return zero, err
	}
	defer dec.Close()
	raw, err := io.ReadAll(dec)
	if err != nil {
		var zero T
		return zero, err
	}
	return schema.Parse(raw)
}
