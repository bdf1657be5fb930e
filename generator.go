package anyvalue

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

/*
Generator is a source of "any" values. It is safe for concurrent use and is
never reseeded: every call advances the same stream.
*/
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64

	now func() time.Time
	log logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock Date and DateTime count from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger; the default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

/*
New returns a generator seeded with seed. Two generators with the same seed
produce the same values.
*/
func New(seed uint64, opts ...Option) *Generator {
	g := &Generator{
		rng:  rand.New(rand.NewPCG(seed, ^seed)),
		seed: seed,
		now:  time.Now,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log.WithField("seed", seed).Debug("anyvalue: generator seeded")
	return g
}

/*
NewFromName returns a generator seeded from name, typically t.Name(), so a
test draws the same values on every run.
*/
func NewFromName(name string, opts ...Option) *Generator {
	return New(NameSeed(name), opts...)
}

// Seed returns the seed g was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

func (g *Generator) uint64N(n uint64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64N(n)
}

func (g *Generator) uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

/*
Default returns the process-wide generator behind the package-level
functions. It is built on first use from LoadConfig. If the environment or
crypto/rand fails, the error is logged and the clock seeds it instead.
*/
func Default() *Generator {
	defaultOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			logrus.WithError(err).Error("anyvalue: ignoring invalid configuration")
			cfg = Config{}
		}
		g, err := NewDefault(cfg)
		if err != nil {
			seed := uint64(time.Now().UnixNano())
			logrus.WithError(err).WithField("seed", seed).Error("anyvalue: falling back to clock seed")
			g = New(seed)
		}
		defaultGenerator = g
	})
	return defaultGenerator
}
