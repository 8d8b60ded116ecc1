package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streams.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "localhost:8090", cfg.ListenAddress())
	require.Len(t, cfg.Streams, 1)
	assert.Equal(t, "default", cfg.Streams[0].Name)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
server {
  address   = "0.0.0.0"
  port      = 9999
  log_level = "debug"
}

stream "noise" {
  generator = "msws"
  seed      = 42
  rate      = 100
  format    = "uint64"
}

stream "uniform" {
  generator = "pcg32-xsh-rr"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9999", cfg.ListenAddress())
	require.Len(t, cfg.Streams, 2)

	noise := cfg.StreamByName("noise")
	require.NotNil(t, noise)
	assert.Equal(t, "msws", noise.Generator)
	assert.Equal(t, int64(42), noise.Seed)
	assert.Equal(t, 100, noise.Rate)
	assert.Equal(t, "uint64", noise.Format)

	// Defaults applied to the sparse block.
	uniform := cfg.StreamByName("uniform")
	require.NotNil(t, uniform)
	assert.Equal(t, 10, uniform.Rate)
	assert.Equal(t, "float64", uniform.Format)

	assert.Nil(t, cfg.StreamByName("missing"))
}

func TestLoadBadHCL(t *testing.T) {
	path := writeConfig(t, `stream "x" {`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		hcl  string
	}{
		{"unknown generator", `
server {}
stream "x" { generator = "mt19937" }
`},
		{"bad rate", `
server {}
stream "x" {
  generator = "msws"
  rate      = -1
}
`},
		{"bad format", `
server {}
stream "x" {
  generator = "msws"
  format    = "hex"
}
`},
		{"duplicate names", `
server {}
stream "x" { generator = "msws" }
stream "x" { generator = "msws" }
`},
		{"bad port", `
server { port = 700000 }
stream "x" { generator = "msws" }
`},
	}
	for _, tc := range cases {
		cfg, err := Load(writeConfig(t, tc.hcl))
		require.NoErrorf(t, err, "%s should parse", tc.name)
		assert.Errorf(t, cfg.Validate(), "%s should fail validation", tc.name)
	}
}

func TestValidateRequiresStreams(t *testing.T) {
	cfg := &Config{Server: ServerSettings{Port: 80}}
	require.Error(t, cfg.Validate())
}
