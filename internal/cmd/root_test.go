package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrtk/dvbsenc/dvbs"
)

func TestParseCodeRate(t *testing.T) {
	cases := map[string]dvbs.CodeRate{
		"1/2": dvbs.Rate1_2,
		"2/3": dvbs.Rate2_3,
		"3/4": dvbs.Rate3_4,
		"5/6": dvbs.Rate5_6,
		"7/8": dvbs.Rate7_8,
	}
	for in, want := range cases {
		got, err := parseCodeRate(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseCodeRateRejectsUnknown(t *testing.T) {
	_, err := parseCodeRate("4/5")
	assert.Error(t, err)
}

func TestNewCommandDefaults(t *testing.T) {
	cmd := NewCommand("test")
	assert.Equal(t, "dvbsenc", cmd.Use)
	flag := cmd.Flags().Lookup("code-rate")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestOpenInputOutputDefaultToStdio(t *testing.T) {
	src, closeSrc, err := openInput("")
	require.NoError(t, err)
	defer closeSrc()
	assert.NotNil(t, src)

	dst, closeDst, err := openOutput("-")
	require.NoError(t, err)
	defer closeDst()
	assert.NotNil(t, dst)
}
