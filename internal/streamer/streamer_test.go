package streamer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrtk/dvbsenc/dvbs"
)

func tsPacket(seed byte) []byte {
	p := make([]byte, dvbs.TSPacketSize)
	p[0] = dvbs.TSSyncByte
	for i := 1; i < len(p); i++ {
		p[i] = byte(int(seed) + i)
	}
	return p
}

func TestRunEncodesEveryPacketUntilEOF(t *testing.T) {
	var src bytes.Buffer
	const packets = 5
	for i := 0; i < packets; i++ {
		src.Write(tsPacket(byte(i)))
	}

	var dst bytes.Buffer
	enc := dvbs.NewEncoder()
	stop := make(chan struct{})

	stats, err := Run(&src, &dst, enc, stop)
	require.NoError(t, err)
	assert.Equal(t, packets, stats.PacketsRead)
	assert.Equal(t, 0, stats.PacketsSkipped)
	assert.Equal(t, int64(packets*1632), stats.SymbolsWritten)
	assert.Equal(t, int((packets*1632*2+7)/8), dst.Len())
}

func TestRunSkipsPacketsWithBadSync(t *testing.T) {
	var src bytes.Buffer
	good := tsPacket(1)
	bad := tsPacket(2)
	bad[0] = 0x00
	src.Write(good)
	src.Write(bad)
	src.Write(good)

	var dst bytes.Buffer
	enc := dvbs.NewEncoder()
	stop := make(chan struct{})

	stats, err := Run(&src, &dst, enc, stop)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.PacketsRead)
	assert.Equal(t, 1, stats.PacketsSkipped)
	assert.Equal(t, int64(2*1632), stats.SymbolsWritten)
}

func TestRunStopsOnClosedChannel(t *testing.T) {
	var src bytes.Buffer
	src.Write(tsPacket(0))

	var dst bytes.Buffer
	enc := dvbs.NewEncoder()
	stop := make(chan struct{})
	close(stop)

	stats, err := Run(&src, &dst, enc, stop)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PacketsRead)
}

func TestPackBits(t *testing.T) {
	out := packBits([]byte{1, 0, 1, 1, 0, 0, 1, 0, 1}, nil)
	assert.Equal(t, []byte{0b10110010, 0b10000000}, out)
}
