package bcs

import "fmt"

// Tuple2Value, Tuple3Value, ..., are the Go-native representations of
// BCS tuples: fixed arity, positional, no length prefix. Go generics
// don't support variadic type parameters, so each arity gets its own
// named struct and constructor rather than reaching for reflection.

// Tuple2Value holds a two-element tuple.
type Tuple2Value[A, B any] struct {
	First  A
	Second B
}

// Tuple2 builds a Schema for a positional pair (a, b).
func Tuple2[A, B any](a Schema[A], b Schema[B]) Schema[Tuple2Value[A, B]] {
	return Schema[Tuple2Value[A, B]]{
		name: fmt.Sprintf("tuple<%s, %s>", a.name, b.name),
		read: func(r *Reader) (Tuple2Value[A, B], error) {
			var out Tuple2Value[A, B]
			var err error
			if out.First, err = a.read(r); err != nil {
				return out, err
			}
			if out.Second, err = b.read(r); err != nil {
				return out, err
			}
			return out, nil
		},
		write: func(v Tuple2Value[A, B], w *Writer) error {
			if err := a.write(v.First, w); err != nil {
				return err
			}
			return b.write(v.Second, w)
		},
		validate: func(v Tuple2Value[A, B]) error {
			if err := a.Validate(v.First); err != nil {
				return err
			}
			return b.Validate(v.Second)
		},
	}
}

// Tuple3Value holds a three-element tuple.
type Tuple3Value[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple3 builds a Schema for a positional triple (a, b, c).
func Tuple3[A, B, C any](a Schema[A], b Schema[B], c Schema[C]) Schema[Tuple3Value[A, B, C]] {
	return Schema[Tuple3Value[A, B, C]]{
		name: fmt.Sprintf("tuple<%s, %s, %s>", a.name, b.name, c.name),
		read: func(r *Reader) (Tuple3Value[A, B, C], error) {
			var out Tuple3Value[A, B, C]
			var err error
			if out.First, err = a.read(r); err != nil {
				return out, err
			}
			if out.Second, err = b.read(r); err != nil {
				return out, err
			}
			if out.Third, err = c.read(r); err != nil {
				return out, err
			}
			return out, nil
		},
		write: func(v Tuple3Value[A, B, C], w *Writer) error {
			if err := a.write(v.First, w); err != nil {
				return err
			}
			if err := b.write(v.Second, w); err != nil {
				return err
			}
			return c.write(v.Third, w)
		},
		validate: func(v Tuple3Value[A, B, C]) error {
			if err := a.Validate(v.First); err != nil {
				return err
			}
			if err := b.Validate(v.Second); err != nil {
				return err
			}
			return c.Validate(v.Third)
		},
	}
}

// Tuple4Value holds a four-element tuple.
type Tuple4Value[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple4 builds a Schema for a positional quadruple (a, b, c, d).
func Tuple4[A, B, C, D any](a Schema[A], b Schema[B], c Schema[C], d Schema[D]) Schema[Tuple4Value[A, B, C, D]] {
	return Schema[Tuple4Value[A, B, C, D]]{
		name: fmt.Sprintf("tuple<%s, %s, %s, %s>", a.name, b.name, c.name, d.name),
		read: func(r *Reader) (Tuple4Value[A, B, C, D], error) {
			var out Tuple4Value[A, B, C, D]
			var err error
			if out.First, err = a.read(r); err != nil {
				return out, err
			}
			if out.Second, err = b.read(r); err != nil {
				return out, err
			}
			if out.Third, err = c.read(r); err != nil {
				return out, err
			}
			if out.Fourth, err = d.read(r); err != nil {
				return out, err
			}
			return out, nil
		},
		write: func(v Tuple4Value[A, B, C, D], w *Writer) error {
			if err := a.write(v.First, w); err != nil {
				return err
			}
			if err := b.write(v.Second, w); err != nil {
				return err
			}
			if err := c.write(v.Third, w); err != nil {
				return err
			}
			return d.write(v.Fourth, w)
		},
		validate: func(v Tuple4Value[A, B, C, D]) error {
			if err := a.Validate(v.First); err != nil {
				return err
			}
			if err := b.Validate(v.Second); err != nil {
				return err
			}
			if err := c.Validate(v.Third); err != nil {
				return err
			}
			return d.Validate(v.Fourth)
		},
	}
}
