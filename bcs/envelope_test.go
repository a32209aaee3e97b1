package bcs

import (
	"encoding/base64"
	"encoding/hex"
	"testing"
)

func TestEnvelopeEncodings(t *testing.T) {
	env, err := Bytes(4).Serialize([]byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if env.ToHex() != "deadbeef" {
		t.Fatalf("ToHex() = %s, want deadbeef", env.ToHex())
	}
	if env.ToBase64() != base64.StdEncoding.EncodeToString([]byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("ToBase64() = %s", env.ToBase64())
	}
	if env.ToBase58() == "" {
		t.Fatalf("ToBase58() empty")
	}
}

func TestNewEnvelopeParsesExternalBytes(t *testing.T) {
	raw, _ := hex.DecodeString("deadbeef")
	env := NewEnvelope(Bytes(4), raw)
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if hex.EncodeToString(got) != "deadbeef" {
		t.Fatalf("Parse() = % x", got)
	}
}

func TestEnvelopeZstdRoundTrip(t *testing.T) {
	schema := Vector(U8())
	payload := make([]uint8, 2048)
	for i := range payload {
		payload[i] = uint8(i % 7)
	}
	env, err := schema.Serialize(payload)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	compressed, err := env.ToZstd()
	if err != nil {
		t.Fatalf("ToZstd error: %v", err)
	}
	got, err := ParseZstd(schema, compressed)
	if err != nil {
		t.Fatalf("ParseZstd error: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("round trip length = %d, want %d", len(got), len(payload))
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("round trip mismatch at %d: %d != %d", i, got[i], payload[i])
		}
	}
}
