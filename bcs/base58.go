package bcs

import "math/big"

// base58 (Bitcoin alphabet) is hand-rolled on math/big rather than an
// imported dependency, since no base58 package is available. The
// algorithm is the standard one: treat the input as a big-endian big
// integer, repeatedly divide by 58, and map remainders through the
// alphabet, with one '1' of left-padding per leading zero byte.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func base58Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	leadingZeros := 0
	for leadingZeros < len(b) && b[leadingZeros] == 0 {
		leadingZeros++
	}

	n := new(big.Int).SetBytes(b)
	base := big.NewInt(58)
	zero := big.NewInt(0)
	mod := new(big.Int)

	var digits []byte
	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, mod)
		digits = append(digits, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < leadingZeros; i++ {
		digits = append(digits, base58Alphabet[0])
	}

	// digits were accumulated least-significant-first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
