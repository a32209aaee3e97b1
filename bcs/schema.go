// Package bcs implements Binary Canonical Serialization (BCS), the
// deterministic, schema-driven binary format used by the Diem/Move/Sui
// ecosystems, as an embeddable codec.
//
// A caller builds a Schema describing the shape of a value — primitives
// (Bool, U8..U256, Bytes, String), compounds (Vector, FixedArray, Option,
// TupleN, StructOf, Enum, Map), and combinators over them (Transform,
// Lazy) — then uses it to serialize Go values to a compact little-endian
// byte stream and parse that stream back.
//
// The wire format itself is fixed by the upstream BCS spec (see the
// package-level invariants documented on each combinator); this package's
// job is the schema model that makes those combinators composable,
// strongly typed, and safely recursive.
package bcs

import (
	"fmt"
	"sync"
)

// Schema is the central abstraction: a pair of functions describing how
// to read a T from a Reader and how to write a T to a Writer, plus a
// human-readable name, an optional exact-size hint, and an optional
// input validator. Every combinator in this package produces a Schema.
//
// A Schema is immutable once constructed and safe to share read-only
// across goroutines; Read/Write/Serialize/Parse are not safe to call
// concurrently with the same Reader/Writer, since those are single-use,
// single-threaded cursors.
type Schema[T any] struct {
	name         string
	read         func(*Reader) (T, error)
	write        func(T, *Writer) error
	validate     func(T) error
	serializedSz func(T) (int, bool) // optional exact-size hint
}

// Name returns the schema's display name.
func (s Schema[T]) Name() string { return s.name }

// Named returns a copy of s with a different display name. Used by
// combinators (and callers) to give a generic schema a more specific
// name, e.g. Vector(U8()).Named("bytes-ish").
func (s Schema[T]) Named(name string) Schema[T] {
	s.name = name
	return s
}

// Validate runs the schema's validator, if any. Every public write path
// runs this before touching a Writer.
func (s Schema[T]) Validate(v T) error {
	if s.validate == nil {
		return nil
	}
	return s.validate(v)
}

// Read decodes one T from r. It does not run Validate: a value that came
// off the wire is already canonical by construction (it was written by
// something that validated it, or it wouldn't exist). Parse-time
// failures (Malformed/ShortBuffer) and validate-time failures
// (Validation) stay distinct error kinds for exactly this reason.
func (s Schema[T]) Read(r *Reader) (T, error) {
	return s.read(r)
}

// Write validates v and, if valid, writes it to w.
func (s Schema[T]) Write(v T, w *Writer) error {
	if err := s.Validate(v); err != nil {
		return err
	}
	return s.write(v, w)
}

// SerializedSize returns the exact encoded size of v, if the schema can
// compute one without actually encoding. Most compounds return false
// unless every element schema also returns a size.
func (s Schema[T]) SerializedSize(v T) (int, bool) {
	if s.serializedSz == nil {
		return 0, false
	}
	return s.serializedSz(v)
}

// Serialize validates and encodes v, returning the result as an
// Envelope bound to this schema. opts controls the Writer's buffer
// sizes (see WriterOptions) and is used as given when passed; when opts
// is omitted, the size comes from SerializedSize(v) when available, else
// DefaultInitialSize.
func (s Schema[T]) Serialize(v T, opts ...WriterOptions) (*Envelope[T], error) {
	var o WriterOptions
	if len(opts) > 0 {
		o = opts[0]
	} else if n, ok := s.SerializedSize(v); ok {
		o = WriterOptions{InitialSize: n, MaxSize: n}
	}
	w := NewWriter(o)
	if err := s.Write(v, w); err != nil {
		return nil, err
	}
	return &Envelope[T]{schema: s, bytes: w.Bytes()}, nil
}

// Parse decodes buf as a single encoded T. Unlike Read, it is the public
// entry point: it does not require the caller to manage a Reader, and it
// is the inverse of Serialize (ignoring WriterOptions, which affect only
// buffer growth, never the bytes produced).
func (s Schema[T]) Parse(buf []byte) (T, error) {
	return s.read(NewReader(buf))
}

// Transform wraps inner with a pair of pure conversion functions,
// producing a schema over a different Go type U. This is how a caller
// exposes their own domain type over a wire format described in terms of
// the library's building blocks.
//
//	toInner:   U -> T, used before writing and (optionally) for validation
//	fromInner: T -> U, used after reading
//	validate:  an additional U-level check, run before toInner
//
// Transform composes: Read = fromInner ∘ inner.Read, Write = inner.Write
// ∘ toInner, Validate = (user validate) then inner.Validate ∘ toInner.
func Transform[T, U any](inner Schema[T], name string, toInner func(U) (T, error), fromInner func(T) (U, error), validate func(U) error) Schema[U] {
	return Schema[U]{
		name: name,
		read: func(r *Reader) (U, error) {
			t, err := inner.read(r)
			if err != nil {
				var zero U
				return zero, err
			}
			return fromInner(t)
		},
		write: func(u U, w *Writer) error {
			t, err := toInner(u)
			if err != nil {
				return err
			}
			return inner.write(t, w)
		},
		validate: func(u U) error {
			if validate != nil {
				if err := validate(u); err != nil {
					return err
				}
			}
			t, err := toInner(u)
			if err != nil {
				return err
			}
			return inner.Validate(t)
		},
	}
}

// Lazy defers construction of the inner schema to first use, memoizing
// the result. It is the only supported mechanism for self-referential
// schemas: a recursive type builds its inner Schema inside the factory,
// referencing the Lazy schema itself (by closing over a forward-declared
// variable) wherever it needs to recurse.
//
// Constructing a schema that calls itself directly, without going
// through Lazy, is a program error (infinite recursion at schema-build
// time, not a runtime SchemaError) — there is no way to detect that
// case after the fact, so Lazy is documented as the only legal path.
func Lazy[T any](factory func() Schema[T]) Schema[T] {
	var (
		inner Schema[T]
		once  sync.Once
	)
	ensure := func() Schema[T] {
		once.Do(func() { inner = factory() })
		return inner
	}
	return Schema[T]{
		name: "lazy",
		read: func(r *Reader) (T, error) {
			return ensure().read(r)
		},
		write: func(v T, w *Writer) error {
			return ensure().write(v, w)
		},
		validate: func(v T) error {
			return ensure().Validate(v)
		},
	}
}

func lengthMismatchMsg(want, got int) string {
	return fmt.Sprintf("expected length %d, got %d", want, got)
}
