// Package streamer drives a dvbs.Encoder across a transport-stream file,
// packing the resulting IQ bits into bytes for storage or piping into a
// modulator downstream. It owns no FEC state of its own; all of that
// lives in the dvbs.Encoder it's handed.
package streamer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sdrtk/dvbsenc/dvbs"
)

// Stats summarizes a finished streaming run.
type Stats struct {
	PacketsRead    int
	PacketsSkipped int
	SymbolsWritten int64
}

// Run reads 188-byte TS packets from src until EOF, encodes each one
// with enc, and writes the resulting IQ bits packed 8-per-byte
// (MSB-first) to dst. It stops early if stop is closed between
// packets, or if src/dst return an error other than io.EOF.
func Run(src io.Reader, dst io.Writer, enc *dvbs.Encoder, stop <-chan struct{}) (Stats, error) {
	var stats Stats

	tsPacket := make([]byte, dvbs.TSPacketSize)
	iqBits := make([]byte, dvbs.MaxSymbolsPerPacket*2)
	packed := make([]byte, 0, len(iqBits)/8+1)

	for {
		select {
		case <-stop:
			return stats, nil
		default:
		}

		_, err := io.ReadFull(src, tsPacket)
		if err != nil {
			if err == io.EOF {
				return stats, nil
			}
			return stats, fmt.Errorf("reading TS packet: %w", err)
		}
		stats.PacketsRead++

		if tsPacket[0] != dvbs.TSSyncByte {
			stats.PacketsSkipped++
			slog.Warn("lost TS packet sync", "packet", stats.PacketsRead)
			continue
		}

		var ts [dvbs.TSPacketSize]byte
		copy(ts[:], tsPacket)

		symbolCount := enc.EncodePacket(&ts, iqBits)
		stats.SymbolsWritten += int64(symbolCount)

		packed = packBits(iqBits[:symbolCount*2], packed[:0])
		if _, err := dst.Write(packed); err != nil {
			return stats, fmt.Errorf("writing IQ symbols: %w", err)
		}
	}
}

// packBits packs a slice of 0/1 bytes MSB-first into whole bytes,
// zero-padding the final byte if bits isn't a multiple of 8. The
// IQ-symbol/bit boundary within that padding is left to the reader of
// the output stream, since a modulator downstream is expected to frame
// on its own symbol boundary.
func packBits(bits []byte, out []byte) []byte {
	for i := 0; i < len(bits); i += 8 {
		var b byte
		end := i + 8
		if end > len(bits) {
			end = len(bits)
		}
		for j := i; j < end; j++ {
			b |= bits[j] << uint(7-(j-i))
		}
		out = append(out, b)
	}
	return out
}
