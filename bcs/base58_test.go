package bcs

import (
	"encoding/hex"
	"testing"
)

func TestBase58EncodeKnownVectors(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x00}, "1"},
		{[]byte{0x00, 0x00, 0x01}, "11" + "2"},
		{[]byte("hello world"), "StV1DL6CwTryKyV"},
	}
	for _, c := range cases {
		got := base58Encode(c.in)
		if got != c.want {
			t.Fatalf("base58Encode(% x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEnvelopeBase58RoundTripsThroughHexAgreement(t *testing.T) {
	env, err := Bytes(4).Serialize([]byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if env.ToBase58() == "" {
		t.Fatalf("ToBase58() unexpectedly empty")
	}
	raw, err := hex.DecodeString(env.ToHex())
	if err != nil {
		t.Fatalf("hex.DecodeString(ToHex()) error: %v", err)
	}
	if got, want := env.ToBase58(), base58Encode(raw); got != want || got != "6h8cQN" {
		t.Fatalf("ToBase58() = %q, base58 of ToHex() bytes = %q, want %q", got, want, "6h8cQN")
	}
}
