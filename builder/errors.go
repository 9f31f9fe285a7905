// SPDX-License-Identifier: MIT
// Package: sparsepath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewNodes indicates a node count below the constructor's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates an edge probability outside [0,100] percent.
	ErrInvalidProbability = errors.New("builder: invalid probability")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
