package bcs

import "fmt"

// Vector encodes a ULEB128 length followed by that many encodings of
// elem. There is no per-element length hint; SerializedSize returns
// false unless elem has a known exact size, in which case it is
// len(v)*elemSize plus the encoded length of the ULEB128 count.
func Vector[T any](elem Schema[T]) Schema[[]T] {
	return Schema[[]T]{
		name: fmt.Sprintf("vector<%s>", elem.name),
		read: func(r *Reader) ([]T, error) {
			return ReadVec(r, elem.read)
		},
		write: func(v []T, w *Writer) error {
			for _, e := range v {
				if err := elem.Validate(e); err != nil {
					return err
				}
			}
			return WriteVec(w, v, func(w *Writer, e T, i, n int) error {
				return elem.write(e, w)
			})
		},
		serializedSz: func(v []T) (int, bool) {
			total := len(uleb128Encode(uint64(len(v))))
			for _, e := range v {
				n, ok := elem.SerializedSize(e)
				if !ok {
					return 0, false
				}
				total += n
			}
			return total, true
		},
	}
}

// FixedArray encodes exactly n elements with no length prefix. An input
// whose length is not exactly n is a ValidationError rather than a
// silent truncation or pad.
func FixedArray[T any](n int, elem Schema[T]) Schema[[]T] {
	return Schema[[]T]{
		name: fmt.Sprintf("fixed_array<%s, %d>", elem.name, n),
		read: func(r *Reader) ([]T, error) {
			return ReadFixed(r, n, elem.read)
		},
		write: func(v []T, w *Writer) error {
			return WriteFixed(w, v, n, func(w *Writer, e T, i, total int) error {
				return elem.write(e, w)
			})
		},
		validate: func(v []T) error {
			if len(v) != n {
				return &ValidationError{Schema: fmt.Sprintf("fixed_array<%s, %d>", elem.name, n), Message: lengthMismatchMsg(n, len(v))}
			}
			for i, e := range v {
				if err := elem.Validate(e); err != nil {
					return &ValidationError{Schema: elem.name, Path: fmt.Sprintf("[%d]", i), Message: err.Error()}
				}
			}
			return nil
		},
		serializedSz: func(v []T) (int, bool) {
			total := 0
			for _, e := range v {
				sz, ok := elem.SerializedSize(e)
				if !ok {
					return 0, false
				}
				total += sz
			}
			return total, true
		},
	}
}

// Option encodes elem as a two-variant tagged union: 0x00 for absent,
// 0x01 followed by elem's encoding for present. The Go-native
// representation of "absent" is a nil *T; present is a non-nil pointer
// to the value. Writing a present value that
// happens to equal elem's zero value still emits the 0x01 prefix — it's
// presence, not value, that the tag encodes.
func Option[T any](elem Schema[T]) Schema[*T] {
	return Schema[*T]{
		name: fmt.Sprintf("option<%s>", elem.name),
		read: func(r *Reader) (*T, error) {
			tag, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			switch tag {
			case 0x00:
				return nil, nil
			case 0x01:
				v, err := elem.read(r)
				if err != nil {
					return nil, err
				}
				return &v, nil
			default:
				return nil, &MalformedError{Schema: "option", Pos: r.pos - 1, Message: fmt.Sprintf("discriminant 0x%02x is neither 0x00 nor 0x01", tag)}
			}
		},
		write: func(v *T, w *Writer) error {
			if v == nil {
				return w.WriteU8(0x00)
			}
			if err := w.WriteU8(0x01); err != nil {
				return err
			}
			return elem.write(*v, w)
		},
		validate: func(v *T) error {
			if v == nil {
				return nil
			}
			return elem.Validate(*v)
		},
		serializedSz: func(v *T) (int, bool) {
			if v == nil {
				return 1, true
			}
			n, ok := elem.SerializedSize(*v)
			if !ok {
				return 0, false
			}
			return 1 + n, true
		},
	}
}

// Pair is the element type of Map: an ordered key/value entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map encodes as vector(tuple(K, V)). The representation is an ordered
// []Pair[K, V], not a Go map, because
// BCS imposes no ordering of its own — whatever order the caller
// supplies is exactly what gets serialized and exactly what comes back,
// and a native Go map cannot preserve that (map iteration order is
// unspecified). Callers who want canonical key-sorted output are
// expected to sort their []Pair before calling Serialize.
func Map[K, V any](key Schema[K], val Schema[V]) Schema[[]Pair[K, V]] {
	entry := Schema[Pair[K, V]]{
		name: fmt.Sprintf("tuple<%s, %s>", key.name, val.name),
		read: func(r *Reader) (Pair[K, V], error) {
			k, err := key.read(r)
			if err != nil {
				return Pair[K, V]{}, err
			}
			v, err := val.read(r)
			if err != nil {
				return Pair[K, V]{}, err
			}
			return Pair[K, V]{Key: k, Value: v}, nil
		},
		write: func(p Pair[K, V], w *Writer) error {
			if err := key.write(p.Key, w); err != nil {
				return err
			}
			return val.write(p.Value, w)
		},
		validate: func(p Pair[K, V]) error {
			if err := key.Validate(p.Key); err != nil {
				return err
			}
			return val.Validate(p.Value)
		},
	}
	return Vector(entry).Named(fmt.Sprintf("map<%s, %s>", key.name, val.name))
}
