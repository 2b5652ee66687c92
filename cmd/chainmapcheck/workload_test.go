package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap/zaptest"
)

func TestRunWorkload(t *testing.T) {
	for _, hash := range []string{hashMaphash, hashXXHash, hashConstant} {
		t.Run(hash, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Ops = 20000
			cfg.KeySpace = 512
			cfg.ValidateEvery = 5000
			cfg.Hash = hash

			report, err := runWorkload(cfg, zaptest.NewLogger(t))
			require.NoError(t, err)

			assert.Equal(t, 20000, report.Ops)
			assert.Equal(t, report.Ops, report.Inserts+report.Sets+report.Erases+report.Lookups)
			assert.Equal(t, 5, report.Validations)
			assert.Positive(t, report.Stats.Growths)
			assert.Zero(t, report.Stats.SplitAnomalies)
			assert.LessOrEqual(t, report.Stats.Size, 512)
		})
	}
}

func TestRunWorkload_Deterministic(t *testing.T) {
	cfg := defaultConfig()
	cfg.Ops = 5000
	cfg.Hash = hashXXHash

	a, err := runWorkload(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	b, err := runWorkload(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, a.Stats, b.Stats)
	assert.Equal(t, a.LookupMisses, b.LookupMisses)
}

func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"negative ops", func(c *Config) { c.Ops = -1 }, "ops must not be negative"},
		{"empty key space", func(c *Config) { c.KeySpace = 0 }, "key-space must be positive"},
		{"negative weight", func(c *Config) { c.Mix.Erase = -1 }, "must not be negative"},
		{"empty mix", func(c *Config) { c.Mix = Mix{} }, "no operations"},
		{"unknown hash", func(c *Config) { c.Hash = "md5" }, `unknown hash "md5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)

			require.ErrorContains(t, cfg.validate(), tt.errMsg)
		})
	}

	require.NoError(t, defaultConfig().validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.toml")
	err := os.WriteFile(path, []byte(`
seed = 7
ops = 1000
hash = "constant"

[mix]
insert = 1
set = 0
erase = 1
lookup = 0
`), 0o600)
	require.NoError(t, err)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 1000, cfg.Ops)
	assert.Equal(t, hashConstant, cfg.Hash)
	assert.Equal(t, Mix{Insert: 1, Erase: 1}, cfg.Mix)
	// Unset keys keep their defaults.
	assert.Equal(t, 4096, cfg.KeySpace)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer

	cmd := rootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--ops", "2000", "--key-space", "100", "--hash", "xxhash", "--capacity", "1"})

	require.NoError(t, cmd.Execute())

	var report Report
	require.NoError(t, sonnet.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, 2000, report.Ops)
	assert.Equal(t, 1, report.Validations)
	assert.NotEmpty(t, report.Elapsed)
}
