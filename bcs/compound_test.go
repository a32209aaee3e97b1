package bcs

import (
	"errors"
	"strings"
	"testing"
)

func TestVectorEmptyAndLarge(t *testing.T) {
	empty, err := Vector(U8()).Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize(nil) error: %v", err)
	}
	if empty.ToHex() != "00" {
		t.Fatalf("empty vector hex = %s, want 00", empty.ToHex())
	}

	big := make([]uint8, 1000)
	for i := range big {
		big[i] = 0xff
	}
	env, err := Vector(U8()).Serialize(big)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	want := "e807" + strings.Repeat("ff", 1000)
	if env.ToHex() != want {
		t.Fatalf("1000-byte vector hex mismatch, got len %d want len %d", len(env.ToHex()), len(want))
	}
}

func TestFixedArrayLengthMismatchIsValidationError(t *testing.T) {
	schema := FixedArray(3, U8())
	_, err := schema.Serialize([]uint8{1, 2})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	_, err = schema.Serialize([]uint8{1, 2, 3, 4})
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError for over-long input, got %T", err)
	}
}

func TestOptionPresentAndAbsent(t *testing.T) {
	schema := Option(U8())
	var v uint8 = 7
	env, err := schema.Serialize(&v)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if env.ToHex() != "0107" {
		t.Fatalf("ToHex() = %s, want 0107", env.ToHex())
	}

	envNone, err := schema.Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize(nil) error: %v", err)
	}
	if envNone.ToHex() != "00" {
		t.Fatalf("ToHex() = %s, want 00", envNone.ToHex())
	}

	got, err := envNone.Parse()
	if err != nil || got != nil {
		t.Fatalf("Parse() = %v, %v, want nil, nil", got, err)
	}
}

func TestNestedOptionVectorOption(t *testing.T) {
	schema := Option(Vector(Option(U8())))
	one := uint8(1)
	v := []*uint8{&one, nil}
	env, err := schema.Serialize(&v)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got == nil || len(*got) != 2 || (*got)[0] == nil || *(*got)[0] != 1 || (*got)[1] != nil {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestMapPreservesCallerOrder(t *testing.T) {
	schema := Map(String(), U32())
	entries := []Pair[string, uint32]{
		{Key: "z", Value: 1},
		{Key: "a", Value: 2},
	}
	env, err := schema.Serialize(entries)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(got) != 2 || got[0].Key != "z" || got[1].Key != "a" {
		t.Fatalf("order not preserved: %+v", got)
	}
}
