// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the façade.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Bit policy:
//   - validateBits controls whether Set()/ingestion rejects values outside
//     {0,1} with ErrNotBinary. Disabling it reduces each value mod 2 instead,
//     for controlled bulk ingestion from trusted packed sources.
//   - Elimination policy:
//   - reduced selects reduced row-echelon form (pivot columns cleared above
//     and below) on the façade's Eliminate; the plain kernel default is the
//     cheaper non-reduced echelon form.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateBits toggles strict {0,1} validation on ingestion and Set.
	DefaultValidateBits = true

	// DefaultReduced selects non-reduced echelon form for façade elimination.
	DefaultReduced = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options carries the per-instance policy set. Fields are unexported; use
// WithX constructors. The zero value is NOT the default — always go through
// defaultOptions/gatherOptions.
type Options struct {
	validateBits bool // reject non-{0,1} values on ingestion when true
	reduced      bool // façade Eliminate produces RREF when true
}

// defaultOptions returns the canonical defaults. Single source of truth —
// keep in sync with the Default* constants above.
func defaultOptions() Options {
	return Options{
		validateBits: DefaultValidateBits,
		reduced:      DefaultReduced,
	}
}

// gatherOptions folds a slice of Option over the defaults.
// Deterministic: options apply in argument order; later options win.
// Complexity: O(len(optFns)).
func gatherOptions(optFns ...Option) Options {
	opts := defaultOptions()
	for _, fn := range optFns {
		if fn != nil { // tolerate nil entries rather than panicking mid-fold
			fn(&opts)
		}
	}

	return opts
}

// WithValidateBits toggles the strict {0,1} ingestion policy.
// When disabled, ingestion reduces each value mod 2 (v & 1) instead of
// failing with ErrNotBinary. Keep it ON outside controlled bulk loads.
func WithValidateBits(on bool) Option {
	return func(o *Options) { o.validateBits = on }
}

// WithReduced selects reduced row-echelon form for façade elimination.
// Reduced form costs up to 2× the XOR work of plain echelon form but makes
// pivot-column readout trivial (used internally by Inverse and Solve).
func WithReduced(on bool) Option {
	return func(o *Options) { o.reduced = on }
}
