package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Mix holds the relative weights of the operations of a workload.
type Mix struct {
	Insert int `toml:"insert"`
	Set    int `toml:"set"`
	Erase  int `toml:"erase"`
	Lookup int `toml:"lookup"`
}

func (m Mix) total() int {
	return m.Insert + m.Set + m.Erase + m.Lookup
}

// Config describes a differential workload run.
type Config struct {
	Seed     uint64 `toml:"seed"`
	Ops      int    `toml:"ops"`
	KeySpace int    `toml:"key-space"`

	Capacity int    `toml:"capacity"`
	MaxChain int    `toml:"max-chain"`
	Hash     string `toml:"hash"`

	// Run a full invariant check every N operations, 0 checks only at the end.
	ValidateEvery int `toml:"validate-every"`

	Mix Mix `toml:"mix"`
}

func defaultConfig() Config {
	return Config{
		Seed:          1,
		Ops:           100000,
		KeySpace:      4096,
		Capacity:      5,
		MaxChain:      4,
		Hash:          hashMaphash,
		ValidateEvery: 10000,
		Mix: Mix{
			Insert: 3,
			Set:    3,
			Erase:  2,
			Lookup: 2,
		},
	}
}

// loadConfig overlays the TOML file at path on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Ops < 0:
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	case c.KeySpace < 1:
		return errors.Errorf("key-space must be positive, got %d", c.KeySpace)
	case c.Mix.Insert < 0 || c.Mix.Set < 0 || c.Mix.Erase < 0 || c.Mix.Lookup < 0:
		return errors.New("mix weights must not be negative")
	case c.Mix.total() == 0:
		return errors.New("mix has no operations")
	}

	switch c.Hash {
	case hashMaphash, hashXXHash, hashConstant:
	default:
		return errors.Errorf("unknown hash %q", c.Hash)
	}

	return nil
}
