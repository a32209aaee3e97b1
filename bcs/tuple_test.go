package bcs

import "testing"

func TestTuple2OptionOption(t *testing.T) {
	schema := Tuple2(Option(U8()), Option(U8()))
	one := uint8(1)
	env, err := schema.Serialize(Tuple2Value[*uint8, *uint8]{First: nil, Second: &one})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if env.ToHex() != "000101" {
		t.Fatalf("ToHex() = %s, want 000101", env.ToHex())
	}
}

func TestTuple3RoundTrip(t *testing.T) {
	schema := Tuple3(U8(), String(), Bool())
	v := Tuple3Value[uint8, string, bool]{First: 9, Second: "hi", Third: true}
	env, err := schema.Serialize(v)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := env.Parse()
	if err != nil || got != v {
		t.Fatalf("round trip = %+v, %v", got, err)
	}
}

func TestTuple4RoundTrip(t *testing.T) {
	schema := Tuple4(U8(), U16(), U32(), Bool())
	v := Tuple4Value[uint8, uint16, uint32, bool]{First: 1, Second: 2, Third: 3, Fourth: true}
	env, err := schema.Serialize(v)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	got, err := env.Parse()
	if err != nil || got != v {
		t.Fatalf("round trip = %+v, %v", got, err)
	}
}
