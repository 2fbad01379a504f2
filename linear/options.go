package linear

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/gdlinear/pkg/log"
)

// DefaultInitScale is the half-width of the interval initial weights are drawn from.
const DefaultInitScale = 0.01

type config struct {
	rng       *rand.Rand
	seed      *uint64
	initScale float64
	reporter  Reporter
	logger    log.Logger
}

// Option configures a GDRegression.
type Option func(*config)

// WithSeed seeds the engine's random source so weight initialization is reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = &seed
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used for weight initialization.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.seed = nil
		c.rng = rng
	}
}

// WithInitScale sets the half-width of the weight initialization interval [-scale, scale).
func WithInitScale(scale float64) Option {
	return func(c *config) {
		c.initScale = scale
	}
}

// WithReporter sets the sink that receives (epoch, loss) during training.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithLogger sets the logger for lifecycle events. Per-epoch progress goes to the Reporter.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
