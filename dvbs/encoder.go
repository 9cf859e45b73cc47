package dvbs

// MaxSymbolsPerPacket upper-bounds the IQ symbols EncodePacket can
// produce in one call. The worst case is rate 1/2 with a half-symbol
// carried in from a previous call: 204*8*2+1 = 3265 output bits, which
// needs ceil(3265/2) = 1633 symbol slots even though one of those bits
// is held back as the next call's carry. Callers size iq_out to at
// least 2*MaxSymbolsPerPacket bytes.
const MaxSymbolsPerPacket = (RSPacketSize*8*2 + 1 + 1) / 2

// Encoder is the persistent, cross-packet state of the full DVB-S
// channel-encoding pipeline: scrambler, outer RS code, Forney
// interleaver, and punctured inner convolutional code. It
// is a leaf, allocation-free-in-the-hot-path codec with no I/O of its
// own; a single Encoder is not safe for concurrent use, but independent
// Encoders (e.g. one per channel) never contend since all shared
// lookup tables are immutable.
type Encoder struct {
	scrambler   scrambler
	interleaver *interleaver
	conv        convolutionalEncoder

	packet [RSPacketSize]byte // scratch: scrambled + RS + interleaved
}

// NewEncoder constructs an Encoder with zeroed state and code rate 1/2.
func NewEncoder() *Encoder {
	e := &Encoder{
		interleaver: newInterleaver(),
	}
	e.conv.setRate(Rate1_2)
	return e
}

// Reset returns the encoder to its construction-time state: scrambler,
// interleaver, and convolutional/puncture state are all cleared, and
// the code rate is left at whatever it currently is (Reset does not
// change CodeRate; call SetCodeRate separately if needed).
func (e *Encoder) Reset() {
	e.scrambler.reset()
	e.interleaver.reset()
	e.conv.reset()
}

// SetCodeRate switches the inner convolutional code's puncturing
// pattern. It resets only the convolutional delay line, puncture
// phase, and half-symbol carry; the scrambler and interleaver keep
// their cross-packet state untouched.
func (e *Encoder) SetCodeRate(rate CodeRate) {
	e.conv.setRate(rate)
}

// CodeRate returns the code rate currently in effect.
func (e *Encoder) CodeRate() CodeRate {
	return e.conv.rate
}

// EncodePacket runs a single 188-byte MPEG-TS packet through the full
// pipeline (scramble, RS, interleave, puncture) and writes the
// resulting IQ bits into iq (iq[2k] is the I bit, iq[2k+1] the Q bit of
// symbol k, each 0 or 1). It returns the number of complete symbols
// written. ts[0] is expected to be the TS sync byte 0x47; the encoder
// does not validate this; callers rely on receiver-side resync instead.
func (e *Encoder) EncodePacket(ts *[TSPacketSize]byte, iq []byte) int {
	e.scrambler.scramble(ts, (*[TSPacketSize]byte)(e.packet[:TSPacketSize]))
	reedSolomonEncode(&e.packet)
	e.interleaver.interleave(&e.packet)
	return e.conv.encode(&e.packet, iq)
}
