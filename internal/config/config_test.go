package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1/2", cfg.CodeRate)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingPathReturnsBase(t *testing.T) {
	cfg, err := Load("", Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFileOntoBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dvbsenc.yaml")
	content := "codeRate: \"3/4\"\ninput: in.ts\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, "3/4", cfg.CodeRate)
	assert.Equal(t, "in.ts", cfg.Input)
	assert.Equal(t, "-", cfg.Output, "fields absent from the file keep the base value")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codeRate: [unterminated"), 0o644))

	_, err := Load(path, Default())
	assert.Error(t, err)
}
