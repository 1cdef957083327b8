// SPDX-License-Identifier: MIT

// Package matrix: functional options for the numeric policy.
//
//   - Deterministic behavior: no global state.
//   - Every flag is observable through Set/Apply/FromGonum and covered by tests.

package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set, Apply,
// NewFromData and FromGonum.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables or disables rejection of NaN/±Inf values.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
