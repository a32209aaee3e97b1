package bcs

import "fmt"

// ValidationError reports an input value that failed a schema's validator
// before any byte was written or before a parsed value was handed back to
// the caller.
type ValidationError struct {
	Schema  string // schema name, e.g. "u64", "vector<Coin>"
	Path    string // dotted field/variant path, empty at the root
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("bcs: validation error at %s (%s): %s", e.Path, e.Schema, e.Message)
	}
	return fmt.Sprintf("bcs: validation error (%s): %s", e.Schema, e.Message)
}

// CapacityError reports a Writer that would need to grow past MaxSize.
type CapacityError struct {
	Requested int // total bytes that would be needed
	MaxSize   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bcs: writer capacity exceeded: need %d bytes, max is %d", e.Requested, e.MaxSize)
}

// ShortBufferError reports a Reader that ran past the end of its input.
type ShortBufferError struct {
	Pos       int // cursor position at the time of the failed read
	Requested int // bytes requested
	Available int // bytes actually remaining
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("bcs: short buffer at offset %d: requested %d bytes, %d available", e.Pos, e.Requested, e.Available)
}

// MalformedError reports bytes that cannot be a legal encoding of their
// schema's type, independent of buffer length (bad ULEB128 terminator, a
// bool byte other than 0x00/0x01, an unknown enum discriminant, invalid
// UTF-8 in a string).
type MalformedError struct {
	Schema  string
	Pos     int
	Message string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("bcs: malformed %s at offset %d: %s", e.Schema, e.Pos, e.Message)
}

// SchemaError reports a type description that cannot be turned into a
// schema. In this package it comes from the Registry façade: an unknown
// type name, wrong type arguments, or an alias cycle.
type SchemaError struct {
	Schema  string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("bcs: schema error (%s): %s", e.Schema, e.Message)
}
