package regexp

import "time"

// Option configures how a pattern is compiled.
type Option func(*config)

type config struct {
	forcePCRE    bool
	matchTimeout time.Duration
}

func defaultConfig() config {
	return config{}
}

// WithPCRE compiles the pattern with regexp2 even when coregex could run it.
func WithPCRE() Option {
	return func(c *config) {
		c.forcePCRE = true
	}
}

// WithMatchTimeout bounds the time a single regexp2 match may take. A timed
// out match is reported as no match. It has no effect on the coregex engine,
// which runs in linear time.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.matchTimeout = d
		}
	}
}
