package builder

import "strconv"

// IDFn derives a node identifier from its zero-based index. It must be pure
// and deterministic: the same idx always yields the same string.
type IDFn func(idx int) string

// WeightFn derives an edge weight from the endpoint indices (i, j). It must
// be pure and deterministic.
type WeightFn func(i, j int) int64

// DefaultIDFn names nodes "V0", "V1", ...
func DefaultIDFn(idx int) string {
	return "V" + strconv.Itoa(idx)
}

// config is the immutable resolved configuration shared by constructors.
type config struct {
	idFn     IDFn
	weightFn WeightFn // nil means unweighted edges
}

// Option configures fixture construction.
type Option func(*config)

// WithIDFn overrides the node naming scheme.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn makes every emitted edge weighted by fn over the endpoint
// indices. Without this option all emitted edges are unweighted.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		c.weightFn = fn
	}
}

// newConfig resolves options left-to-right over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
