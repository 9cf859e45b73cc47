package dvbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// gfPow raises a to the e'th power in GF(256), e taken modulo the
// multiplicative group order (255). Used only to check the RS roots in
// tests; production code never needs arbitrary exponentiation.
func gfPow(a byte, e int) byte {
	if e == 0 {
		return 1
	}
	return gfExpTable[(int(gfLogTable[a])*e)%255]
}

// gfEval evaluates a codeword, treated as a polynomial with poly[0] the
// highest-degree coefficient, at x via Horner's method in GF(256).
func gfEval(poly []byte, x byte) byte {
	var v byte
	for _, c := range poly {
		v = gfMul(v, x) ^ c
	}
	return v
}

// TestReedSolomonSystematic checks that the first 188 bytes of the
// codeword are left unchanged, and that the full 204-byte codeword is
// a root of the generator at alpha^0..alpha^15.
func TestReedSolomonSystematic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var packet [RSPacketSize]byte
		prefix := rapid.SliceOfN(rapid.Byte(), TSPacketSize, TSPacketSize).Draw(t, "prefix")
		copy(packet[:], prefix)

		reedSolomonEncode(&packet)

		require.Equal(t, prefix, packet[:TSPacketSize], "systematic bytes must be untouched")

		for i := 0; i < rsParityBytes; i++ {
			root := gfPow(2, i)
			assert.Equalf(t, byte(0), gfEval(packet[:], root), "codeword must vanish at alpha^%d", i)
		}
	})
}

// TestReedSolomonKnownAnswers checks known-answer vectors: an all-zero
// input produces all-zero parity, and a single 0x01 at byte 0
// produces a fixed, deterministic parity computed with a reference
// (golden) implementation of the same polynomial division.
func TestReedSolomonKnownAnswers(t *testing.T) {
	var zero [RSPacketSize]byte
	reedSolomonEncode(&zero)
	assert.Equal(t, make([]byte, rsParityBytes), zero[TSPacketSize:], "all-zero input must produce all-zero parity")

	var single [RSPacketSize]byte
	single[0] = 0x01
	reedSolomonEncode(&single)
	want := []byte{229, 208, 170, 118, 63, 176, 203, 140, 52, 231, 48, 66, 65, 98, 211, 113}
	assert.Equal(t, want, single[TSPacketSize:])
}
