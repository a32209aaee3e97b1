package bcs

import (
	"errors"
	"testing"
)

func TestParseTypeExprShapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"u8", "u8"},
		{"bytes<32>", "bytes<32>"},
		{"vector<u64>", "vector<u64>"},
		{"fixed_array<u8, 4>", "fixed_array<u8, 4>"},
		{"option<vector<u8>>", "option<vector<u8>>"},
		{"map<string, u64>", "map<string, u64>"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			node, err := parseTypeExpr(c.in)
			if err != nil {
				t.Fatalf("parseTypeExpr(%q) error: %v", c.in, err)
			}
			if got := node.String(); got != c.want {
				t.Fatalf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseTypeExprRejectsTrailingGarbage(t *testing.T) {
	_, err := parseTypeExpr("u8 garbage")
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedError, got %T (%v)", err, err)
	}
}

func TestParseTypeExprRejectsUnclosedAngleBracket(t *testing.T) {
	_, err := parseTypeExpr("vector<u8")
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedError, got %T (%v)", err, err)
	}
}
