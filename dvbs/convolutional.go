package dvbs

import "math/bits"

// convolutionalEncoder is the mother K=7 rate-1/2 encoder plus
// puncturing. delayLine holds the most recent constraintLength input
// bits (each new bit enters at bit constraintLength-1 and the register
// shifts right after every step, so bit 0 is the oldest); halfSymbol carries a single
// unpaired output bit across a packet boundary when puncturing leaves
// an odd bit count.
type convolutionalEncoder struct {
	rate            CodeRate
	delayLine       uint8
	puncturePhase   int
	halfSymbol      byte
	halfSymbolValid bool
}

func (c *convolutionalEncoder) setRate(rate CodeRate) {
	c.rate = rate
	c.delayLine = 0
	c.puncturePhase = 0
	c.halfSymbolValid = false
}

func (c *convolutionalEncoder) reset() {
	c.setRate(c.rate)
}

// encode runs packet through the mother code and puncturing, writing
// output bits (0 or 1) into iq starting at index 0, and returns the
// number of complete IQ symbols produced. iq must be sized for the
// worst case: 204*8*2+1 bits at rate 1/2.
func (c *convolutionalEncoder) encode(packet *[RSPacketSize]byte, iq []byte) int {
	schedule := punctureSchedules[c.rate]
	n := 0

	if c.halfSymbolValid {
		iq[n] = c.halfSymbol
		n++
		c.halfSymbolValid = false
	}

	for i := 0; i < RSPacketSize; i++ {
		b := packet[i]
		for j := 7; j >= 0; j-- {
			bit := (b >> uint(j)) & 1
			c.delayLine = (c.delayLine | (bit << (constraintLength - 1))) & delayLineMask
			c1 := byte(bits.OnesCount8(c.delayLine&generator1)) & 1
			c2 := byte(bits.OnesCount8(c.delayLine&generator2)) & 1

			switch schedule[c.puncturePhase] {
			case emitBoth:
				iq[n] = c1
				iq[n+1] = c2
				n += 2
			case emitC1:
				iq[n] = c1
				n++
			case emitC2:
				iq[n] = c2
				n++
			}
			c.puncturePhase++
			if c.puncturePhase == len(schedule) {
				c.puncturePhase = 0
			}

			c.delayLine >>= 1
		}
	}

	if n&1 == 1 {
		c.halfSymbol = iq[n-1]
		c.halfSymbolValid = true
		n--
	}

	return n / 2
}
