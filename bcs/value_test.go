package bcs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func coinSchema() Schema[*StructValue] {
	return StructOf("Coin",
		FieldOf("value", U64()),
		FieldOf("owner", String()),
		FieldOf("is_locked", Bool()),
	)
}

func TestStructOfRoundTripAndHex(t *testing.T) {
	schema := coinSchema()
	v := NewStructValue("Coin",
		Field("value", uint64(412412400000)),
		Field("owner", "Big Wallet Guy"),
		Field("is_locked", false),
	)
	env, err := schema.Serialize(v)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	owner, err := FieldAs[string](got, "owner")
	if err != nil || owner != "Big Wallet Guy" {
		t.Fatalf("owner = %q, %v", owner, err)
	}
	value, err := FieldAs[uint64](got, "value")
	if err != nil || value != 412412400000 {
		t.Fatalf("value = %d, %v", value, err)
	}
}

func TestStructOfRoundTripPreservesWholeValue(t *testing.T) {
	schema := coinSchema()
	want := NewStructValue("Coin",
		Field("value", uint64(7)),
		Field("owner", "me"),
		Field("is_locked", true),
	)
	env, err := schema.Serialize(want)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStructOfMissingFieldIsValidationError(t *testing.T) {
	schema := coinSchema()
	v := NewStructValue("Coin", Field("value", uint64(1)))
	_, err := schema.Serialize(v)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestStructOfIgnoresUnknownExtraFields(t *testing.T) {
	schema := coinSchema()
	v := NewStructValue("Coin",
		Field("value", uint64(1)),
		Field("owner", "x"),
		Field("is_locked", true),
		Field("nonsense", "ignored"),
	)
	if _, err := schema.Serialize(v); err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
}

func eSchema() Schema[*EnumValue] {
	return Enum("E",
		VariantOf("Variant0", U16()),
		VariantOf("Variant1", U8()),
		VariantOf("Variant2", String()),
	)
}

func TestEnumVariant2Hello(t *testing.T) {
	schema := eSchema()
	env, err := schema.Serialize(NewEnumValue("Variant2", "hello"))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if env.ToHex() != "020568656c6c6f" {
		t.Fatalf("ToHex() = %s, want 020568656c6c6f", env.ToHex())
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Variant != "Variant2" || got.Value != "hello" {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestEnumUnknownDiscriminantIsMalformed(t *testing.T) {
	schema := eSchema()
	_, err := schema.Parse([]byte{0x05})
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedError, got %T (%v)", err, err)
	}
}

func TestEnumUnknownVariantNameIsValidationError(t *testing.T) {
	schema := eSchema()
	_, err := schema.Serialize(NewEnumValue("VariantX", uint16(1)))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestUnitVariantRejectsPayload(t *testing.T) {
	schema := Enum("Status", UnitVariant("Active"), VariantOf("Failed", String()))
	_, err := schema.Serialize(NewEnumValue("Active", "oops"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	env, err := schema.Serialize(NewEnumValue("Active", nil))
	if err != nil {
		t.Fatalf("Serialize(unit) error: %v", err)
	}
	if env.ToHex() != "00" {
		t.Fatalf("ToHex() = %s, want 00", env.ToHex())
	}
}

func TestFieldAsWrongTypeIsValidationError(t *testing.T) {
	sv := NewStructValue("X", Field("n", uint64(1)))
	_, err := FieldAs[string](sv, "n")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
