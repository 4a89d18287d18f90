package jigsaw

import (
	"math/rand"
	"time"
)

// Option configures puzzle generation.
// Use functional options to customize Generate behavior.
//
// Example:
//
//	// Default: per-edge random tabs, unseeded randomness
//	data, err := jigsaw.Generate(cfg)
//
//	// Deterministic output for tests
//	rng := rand.New(rand.NewSource(1))
//	data, err := jigsaw.Generate(cfg, jigsaw.WithRand(rng))
type Option func(*genOptions)

// genOptions holds optional configuration for puzzle generation.
type genOptions struct {
	rng    *rand.Rand
	policy EdgePolicy
	notch  NotchStyle
}

// defaultGenOptions returns the default generation options.
func defaultGenOptions() genOptions {
	return genOptions{
		rng:    nil, // Will be freshly seeded if nil
		policy: RandomEdges,
		notch:  DefaultNotch,
	}
}

// WithRand sets the random source used for edge choices, scatter positions
// and the piece shuffle. Inject a seeded source for reproducible puzzles.
func WithRand(rng *rand.Rand) Option {
	return func(o *genOptions) {
		o.rng = rng
	}
}

// WithEdgePolicy sets the interior-edge choice policy.
// See RandomEdges, CheckerEdges, StripeEdges and PickPattern.
func WithEdgePolicy(policy EdgePolicy) Option {
	return func(o *genOptions) {
		if policy != nil {
			o.policy = policy
		}
	}
}

// WithNotch sets the tab geometry used for piece outlines.
func WithNotch(notch NotchStyle) Option {
	return func(o *genOptions) {
		o.notch = notch
	}
}

// newRand creates an unseeded random source for callers that did not
// inject one.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
