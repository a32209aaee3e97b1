package bcs

import (
	"errors"
	"testing"
)

func TestRegistryBuiltinPrimitives(t *testing.T) {
	r := NewRegistry()
	codec, err := r.Resolve("u32")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	w := NewWriter(WriterOptions{})
	if err := codec.writeAny(uint32(7), w); err != nil {
		t.Fatalf("writeAny error: %v", err)
	}
	got, err := codec.readAny(NewReader(w.Bytes()))
	if err != nil || got.(uint32) != 7 {
		t.Fatalf("round trip = %v, %v", got, err)
	}
}

func TestRegistryCompoundExpressions(t *testing.T) {
	r := NewRegistry()
	cases := []string{
		"bytes<4>",
		"vector<u64>",
		"fixed_array<u8, 3>",
		"option<string>",
		"map<string, u32>",
		"vector<option<u8>>",
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			if _, err := r.Resolve(expr); err != nil {
				t.Fatalf("Resolve(%q) error: %v", expr, err)
			}
		})
	}
}

func TestRegistryVectorRoundTrip(t *testing.T) {
	r := NewRegistry()
	codec, err := r.Resolve("vector<u8>")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	w := NewWriter(WriterOptions{})
	if err := codec.writeAny([]any{uint8(1), uint8(2), uint8(3)}, w); err != nil {
		t.Fatalf("writeAny error: %v", err)
	}
	got, err := codec.readAny(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("readAny error: %v", err)
	}
	elems := got.([]any)
	if len(elems) != 3 || elems[0].(uint8) != 1 {
		t.Fatalf("round trip = %v", elems)
	}
}

func TestRegistryAliasResolution(t *testing.T) {
	r := NewRegistry()
	if err := r.Alias("Address", "bytes<32>"); err != nil {
		t.Fatalf("Alias error: %v", err)
	}
	codec, err := r.Resolve("Address")
	if err != nil {
		t.Fatalf("Resolve(Address) error: %v", err)
	}
	if codec.name() != "bytes(32)" {
		t.Fatalf("name() = %q, want bytes(32)", codec.name())
	}
}

func TestRegistryAliasCycleRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Alias("A", "B"); err != nil {
		t.Fatalf("Alias(A) error: %v", err)
	}
	if err := r.Alias("B", "A"); err != nil {
		t.Fatalf("Alias(B) error: %v", err)
	}
	_, err := r.Resolve("A")
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError for cycle, got %T (%v)", err, err)
	}
}

func TestRegistryRegisterSchemaAndResolve(t *testing.T) {
	r := NewRegistry()
	RegisterSchema(r, "Coin", coinSchema())
	codec, err := r.Resolve("Coin")
	if err != nil {
		t.Fatalf("Resolve(Coin) error: %v", err)
	}
	sv := NewStructValue("Coin",
		Field("value", uint64(5)),
		Field("owner", "me"),
		Field("is_locked", true),
	)
	w := NewWriter(WriterOptions{})
	if err := codec.writeAny(sv, w); err != nil {
		t.Fatalf("writeAny error: %v", err)
	}
}

func TestRegistryUnknownNameIsSchemaError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("NoSuchType")
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %T (%v)", err, err)
	}
}
