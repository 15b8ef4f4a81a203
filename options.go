package xregex

import (
	"time"

	"go.dw1.io/xregex/regexp"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	flags        []string
	matchTimeout time.Duration
	forcePCRE    bool
}

func defaultConfig() config {
	return config{flags: []string{IgnoreCaseFlag, DotAllFlag}}
}

// WithFlags replaces the default flags (IgnoreCaseFlag and DotAllFlag).
func WithFlags(flags ...string) Option {
	return func(c *config) {
		c.flags = append([]string(nil), flags...)
	}
}

// WithMatchTimeout bounds a single match on the backtracking engine. A match
// that times out is treated as no match.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.matchTimeout = d
	}
}

// WithPCRE always compiles with the backtracking engine, even for patterns the
// linear-time engine could run.
func WithPCRE() Option {
	return func(c *config) {
		c.forcePCRE = true
	}
}

func (c config) engineOptions() []regexp.Option {
	opts := []regexp.Option{regexp.WithMatchTimeout(c.matchTimeout)}
	if c.forcePCRE {
		opts = append(opts, regexp.WithPCRE())
	}
	return opts
}
