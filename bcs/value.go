package bcs

import "fmt"

// Go's generics express Schema[T] fully when every field shares one
// type, but a struct's fields (or an enum's variants) don't — Schema[T]
// can't be generic over "a different T per field." StructValue and
// EnumValue are a tagged dynamic value carrying a name-to-value
// mapping instead: FieldValue holds one name/value pair, and dynCodec
// is the per-field, per-variant type-erased codec that lets a Schema[T]
// be stored once and invoked again by the struct/enum machinery below.

// FieldValue is one name/value pair of a StructValue, always carried in
// the struct's declared field order.
type FieldValue struct {
	Key   string
	Value any
}

// StructValue is the dynamic, schema-described representation of a BCS
// struct. Fields are kept in the schema's declaration order, which is
// also wire order.
type StructValue struct {
	TypeName string
	Fields   []FieldValue
}

// Get returns the value of the named field and whether it was present.
func (s *StructValue) Get(name string) (any, bool) {
	for _, f := range s.Fields {
		if f.Key == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set assigns the named field, appending it if not already present.
func (s *StructValue) Set(name string, value any) {
	for i := range s.Fields {
		if s.Fields[i].Key == name {
			s.Fields[i].Value = value
			return
		}
	}
	s.Fields = append(s.Fields, FieldValue{Key: name, Value: value})
}

// NewStructValue builds a StructValue from an ordered field list.
func NewStructValue(typeName string, fields ...FieldValue) *StructValue {
	return &StructValue{TypeName: typeName, Fields: fields}
}

// Field is a convenience constructor for one FieldValue.
func Field(name string, value any) FieldValue {
	return FieldValue{Key: name, Value: value}
}

// FieldAs fetches the named field and type-asserts it to T, returning a
// ValidationError if the field is missing or holds the wrong type.
func FieldAs[T any](s *StructValue, name string) (T, error) {
	raw, ok := s.Get(name)
	if !ok {
		var zero T
		return zero, &ValidationError{Schema: s.TypeName, Path: name, Message: "missing field"}
	}
	v, ok := raw.(T)
	if !ok {
		var zero T
		return zero, &ValidationError{Schema: s.TypeName, Path: name, Message: fmt.Sprintf("field has unexpected type %T", raw)}
	}
	return v, nil
}

// EnumValue is the dynamic representation of a BCS enum (tagged union):
// a single selected Variant name plus its payload, or a nil Value for a
// unit variant.
type EnumValue struct {
	Variant string
	Value   any
}

// NewEnumValue builds an EnumValue selecting variant with the given
// payload (nil for a unit variant).
func NewEnumValue(variant string, value any) *EnumValue {
	return &EnumValue{Variant: variant, Value: value}
}

// dynCodec is a type-erased Schema[T], letting struct fields and enum
// variants of differing T share one slice.
type dynCodec interface {
	name() string
	readAny(*Reader) (any, error)
	writeAny(any, *Writer) error
	validateAny(any) error
}

type boxedSchema[T any] struct {
	inner Schema[T]
}

func (b boxedSchema[T]) name() string { return b.inner.name }

func (b boxedSchema[T]) readAny(r *Reader) (any, error) {
	return b.inner.read(r)
}

func (b boxedSchema[T]) writeAny(v any, w *Writer) error {
	t, ok := v.(T)
	if !ok {
		return &ValidationError{Schema: b.inner.name, Message: fmt.Sprintf("expected %T, got %T", t, v)}
	}
	return b.inner.write(t, w)
}

func (b boxedSchema[T]) validateAny(v any) error {
	t, ok := v.(T)
	if !ok {
		return &ValidationError{Schema: b.inner.name, Message: fmt.Sprintf("expected %T, got %T", t, v)}
	}
	return b.inner.Validate(t)
}

// box type-erases a Schema[T] into a dynCodec for use as a struct field
// or enum variant.
func box[T any](s Schema[T]) dynCodec { return boxedSchema[T]{inner: s} }

// FieldSchema describes one declared struct field: its wire name and the
// schema its value must satisfy.
type FieldSchema struct {
	Name  string
	codec dynCodec
}

// FieldOf declares a struct field named name with the given element
// schema. Use with StructOf.
func FieldOf[T any](name string, schema Schema[T]) FieldSchema {
	return FieldSchema{Name: name, codec: box(schema)}
}

// StructOf builds a Schema for a struct with the given name and ordered
// fields. Fields are read and written strictly in the order given here,
// never the order they happen to appear in a caller-supplied
// StructValue. A missing required field on write is a ValidationError;
// unknown extra fields on the input StructValue are silently ignored.
func StructOf(name string, fields ...FieldSchema) Schema[*StructValue] {
	return Schema[*StructValue]{
		name: name,
		read: func(r *Reader) (*StructValue, error) {
			sv := &StructValue{TypeName: name, Fields: make([]FieldValue, 0, len(fields))}
			for _, f := range fields {
				v, err := f.codec.readAny(r)
				if err != nil {
					return nil, err
				}
				sv.Fields = append(sv.Fields, FieldValue{Key: f.Name, Value: v})
			}
			return sv, nil
		},
		write: func(v *StructValue, w *Writer) error {
			for _, f := range fields {
				raw, ok := v.Get(f.Name)
				if !ok {
					return &ValidationError{Schema: name, Path: f.Name, Message: "missing required field"}
				}
				if err := f.codec.writeAny(raw, w); err != nil {
					return err
				}
			}
			return nil
		},
		validate: func(v *StructValue) error {
			if v == nil {
				return &ValidationError{Schema: name, Message: "nil struct value"}
			}
			for _, f := range fields {
				raw, ok := v.Get(f.Name)
				if !ok {
					return &ValidationError{Schema: name, Path: f.Name, Message: "missing required field"}
				}
				if err := f.codec.validateAny(raw); err != nil {
					return &ValidationError{Schema: name, Path: f.Name, Message: err.Error()}
				}
			}
			return nil
		},
	}
}

// VariantSchema describes one declared enum variant: its wire name, and
// either an element schema (for a payload-carrying variant) or the unit
// marker (for a variant with no payload).
type VariantSchema struct {
	Name  string
	codec dynCodec
	unit  bool
}

// VariantOf declares a payload-carrying variant named name.
func VariantOf[T any](name string, schema Schema[T]) VariantSchema {
	return VariantSchema{Name: name, codec: box(schema)}
}

// UnitVariant declares a variant with no payload; only its discriminant
// is written.
func UnitVariant(name string) VariantSchema {
	return VariantSchema{Name: name, unit: true}
}

// Enum builds a Schema for a tagged union with the given name and
// ordered variants. The wire discriminant is the ULEB128 index of the
// variant within this declaration order — reordering variants in a
// later version of a schema is a breaking wire-format change, exactly
// as it would be for any enum-tag scheme.
func Enum(name string, variants ...VariantSchema) Schema[*EnumValue] {
	indexOf := make(map[string]int, len(variants))
	for i, v := range variants {
		indexOf[v.Name] = i
	}
	return Schema[*EnumValue]{
		name: name,
		read: func(r *Reader) (*EnumValue, error) {
			tag, err := r.ReadULEB128()
			if err != nil {
				return nil, err
			}
			if tag >= uint64(len(variants)) {
				return nil, &MalformedError{Schema: name, Pos: r.pos, Message: fmt.Sprintf("unknown variant discriminant %d", tag)}
			}
			variant := variants[tag]
			if variant.unit {
				return &EnumValue{Variant: variant.Name}, nil
			}
			val, err := variant.codec.readAny(r)
			if err != nil {
				return nil, err
			}
			return &EnumValue{Variant: variant.Name, Value: val}, nil
		},
		write: func(v *EnumValue, w *Writer) error {
			idx, ok := indexOf[v.Variant]
			if !ok {
				return &ValidationError{Schema: name, Message: fmt.Sprintf("unknown variant %q", v.Variant)}
			}
			if err := w.WriteULEB128(uint64(idx)); err != nil {
				return err
			}
			variant := variants[idx]
			if variant.unit {
				return nil
			}
			return variant.codec.writeAny(v.Value, w)
		},
		validate: func(v *EnumValue) error {
			if v == nil {
				return &ValidationError{Schema: name, Message: "nil enum value"}
			}
			idx, ok := indexOf[v.Variant]
			if !ok {
				return &ValidationError{Schema: name, Message: fmt.Sprintf("unknown variant %q", v.Variant)}
			}
			variant := variants[idx]
			if variant.unit {
				if v.Value != nil {
					return &ValidationError{Schema: name, Path: v.Variant, Message: "unit variant must not carry a payload"}
				}
				return nil
			}
			if v.Value == nil {
				return &ValidationError{Schema: name, Path: v.Variant, Message: "variant requires a payload"}
			}
			return variant.codec.validateAny(v.Value)
		},
	}
}
