package anyvalue

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config controls the process-wide generator.
type Config struct {
	// Seed fixes the seed. Zero is reserved and means read one from
	// crypto/rand.
	Seed uint64 `env:"ANYVALUE_SEED"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

/*
NewDefault builds a generator from cfg the way Default does, so the
process-wide setup can be reproduced with a custom clock or logger.
*/
func NewDefault(cfg Config, opts ...Option) (*Generator, error) {
	if cfg.Seed != 0 {
		g := New(cfg.Seed, opts...)
		g.log.WithField("seed", cfg.Seed).Info("anyvalue: using seed from ANYVALUE_SEED")
		return g, nil
	}

	seed, err := NewSeed()
	if err != nil {
		return nil, errors.Wrap(err, "new default generator")
	}
	g := New(seed, opts...)
	g.log.WithField("seed", seed).Info("anyvalue: seeded from crypto/rand, set ANYVALUE_SEED to reproduce")
	return g, nil
}
