package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesBootstrapSpec(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1:3030", cfg.Server.Address)
	assert.Equal(t, "null", cfg.Server.CORSOrigin)
	assert.Equal(t, int32(8), cfg.Engine.BaseScale)
	assert.Equal(t, int32(8), cfg.Engine.QuoteScale)
	assert.Equal(t, []string{"cet_eos", "otc_eos", "iq_eos", "pub_eos"}, cfg.Engine.Instruments)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Address, cfg.Server.Address)
}

func TestLoadYAMLOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte("server:\n  address: 0.0.0.0:9090\nengine:\n  instruments: [a, b]\n")
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address)
	assert.Equal(t, []string{"a", "b"}, cfg.Engine.Instruments)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("MATCHBOOK_ADDRESS", "127.0.0.1:4040")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4040", cfg.Server.Address)
}
