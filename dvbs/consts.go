// Package dvbs implements the ETSI EN 300 421 DVB-S channel encoder: the
// bit path from an incoming 188-byte MPEG transport-stream packet to the
// interleaved binary IQ symbol stream that feeds a modulator.
//
// The pipeline is energy dispersal, systematic Reed-Solomon RS(204,188),
// a depth-12 Forney convolutional interleaver, and a punctured K=7
// rate-1/2 convolutional code. Every stage carries state across packets;
// an Encoder is not safe for concurrent use.
package dvbs

const (
	// TSPacketSize is the length in bytes of an incoming MPEG-TS packet.
	TSPacketSize = 188

	// RSPacketSize is the length in bytes of a packet after RS parity
	// has been appended (188 data + 16 parity).
	RSPacketSize = 204

	// TSSyncByte is the MPEG-TS sync byte expected at the start of every
	// input packet.
	TSSyncByte = 0x47

	// rsParityBytes is the number of RS parity bytes appended per packet
	// (n-k = 204-188), i.e. 2t for t=8.
	rsParityBytes = RSPacketSize - TSPacketSize

	// interleaveDepth is the number of Forney interleaver branches (I).
	interleaveDepth = 12

	// interleaveUnit is the per-branch delay unit in bytes (M).
	interleaveUnit = RSPacketSize / interleaveDepth

	// constraintLength is K for the mother convolutional code.
	constraintLength = 7

	// generator1 and generator2 are the K=7 mother code generator
	// polynomials, 171 and 133 octal.
	generator1 = 0x79
	generator2 = 0x5b

	// delayLineMask keeps the shift register to constraintLength bits.
	delayLineMask = 1<<constraintLength - 1
)
