package dvbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvolutionalImpulseResponse checks that, with the delay line
// starting at zero and rate 1/2 (no puncturing), a packet whose first
// seven bits are 1,0,0,0,0,0,0 (the rest zero) produces, in its first
// seven output symbols, the impulse response of the mother code's two
// generators, 171 octal and 133 octal, read tap-by-tap against the bit
// as it shifts through the register. G1=171₈ has taps (from the
// incoming bit backward) 1,1,1,1,0,0,1 and G2=133₈ has 1,0,1,1,0,1,1,
// giving per-bit pairs (c1,c2): (1,1),(1,0),(1,1),(1,1),(0,0),(0,1),(1,1).
func TestConvolutionalImpulseResponse(t *testing.T) {
	var c convolutionalEncoder
	c.setRate(Rate1_2)

	var packet [RSPacketSize]byte
	packet[0] = 0x80 // bits 1,0,0,0,0,0,0,0 from the MSB

	iq := make([]byte, MaxSymbolsPerPacket*2)
	n := c.encode(&packet, iq)
	require.GreaterOrEqual(t, n, 7)

	want := [][2]byte{
		{1, 1}, {1, 0}, {1, 1}, {1, 1}, {0, 0}, {0, 1}, {1, 1},
	}
	for i, pair := range want {
		assert.Equalf(t, pair[0], iq[2*i], "bit %d: C1", i)
		assert.Equalf(t, pair[1], iq[2*i+1], "bit %d: C2", i)
	}
}

// TestConvolutionalPunctureCounts checks that, per 204-byte (1632-bit)
// packet, the steady-state symbol count per rate matches the expected
// puncture ratio within +/-1 for the odd-bit half-symbol carry.
func TestConvolutionalPunctureCounts(t *testing.T) {
	cases := []struct {
		rate    CodeRate
		want    int
		maxDiff int
	}{
		{Rate1_2, 1632, 0},
		{Rate2_3, 1224, 0},
		{Rate3_4, 1088, 0},
		{Rate5_6, 979, 1},
		{Rate7_8, 932, 1},
	}

	for _, tc := range cases {
		var c convolutionalEncoder
		c.setRate(tc.rate)

		var packet [RSPacketSize]byte
		iq := make([]byte, MaxSymbolsPerPacket*2)

		for i := 0; i < 10; i++ {
			n := c.encode(&packet, iq)
			assert.InDeltaf(t, tc.want, n, float64(tc.maxDiff), "rate %s packet %d", tc.rate, i)
		}
	}
}

// TestConvolutionalSetRateResetsOnlyInnerState checks that switching
// rates clears the delay line, puncture phase, and half-symbol carry
// and records the new rate. That a rate switch leaves the scrambler and
// interleaver alone is checked by TestEncoderCodeRateSwitchPreservesOuterState.
func TestConvolutionalSetRateResetsOnlyInnerState(t *testing.T) {
	var c convolutionalEncoder
	c.setRate(Rate7_8)

	var packet [RSPacketSize]byte
	packet[0] = 0xff
	iq := make([]byte, MaxSymbolsPerPacket*2)
	c.encode(&packet, iq)

	c.setRate(Rate2_3)
	assert.Equal(t, uint8(0), c.delayLine)
	assert.Equal(t, 0, c.puncturePhase)
	assert.False(t, c.halfSymbolValid)
	assert.Equal(t, Rate2_3, c.rate)
}
