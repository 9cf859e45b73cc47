package dvbs

// rsGenerator holds the coefficients of g(x) = prod(x+a^i), i=0..15,
// a=0x02, the generator for RS(204,188,t=8).
var rsGenerator = [rsParityBytes]byte{
	59, 13, 104, 189, 68, 209, 30, 8, 163, 65, 41, 229, 98, 50, 36, 59,
}

// reedSolomonEncode computes the 16 RS parity bytes for the first 188
// bytes of packet via systematic polynomial long division by
// rsGenerator, and writes them into packet[188:204]; bytes [0,188) are
// left unchanged.
func reedSolomonEncode(packet *[RSPacketSize]byte) {
	var tmp [RSPacketSize]byte
	copy(tmp[:TSPacketSize], packet[:TSPacketSize])

	for i := 0; i < TSPacketSize; i++ {
		coef := tmp[i]
		if coef != 0 {
			for j := 0; j < rsParityBytes; j++ {
				tmp[i+j+1] ^= gfMul(rsGenerator[j], coef)
			}
		}
	}

	copy(packet[TSPacketSize:], tmp[TSPacketSize:])
}
