package composition

import "errors"

// ErrInvalidComposition is returned (wrapped with detail) when a mixture cannot be
// constructed: unknown or duplicate component names, negative or non-finite fractions,
// or fractions that do not sum to 1 within SumTolerance.
var ErrInvalidComposition = errors.New("composition: invalid composition")
