// SPDX-License-Identifier: MIT
// Package: gridbfs/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCells indicates rows or cols is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// builderErrorf prefixes err with the constructor name and a detail message.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
