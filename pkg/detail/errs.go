package detail

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a temperature, pressure or mole fraction outside the
	// validated domain of the DETAIL equation. It is reported before any iteration.
	ErrOutOfRange = errors.New("detail: out of range")

	// ErrConvergence indicates the density root finder did not converge, including
	// the retry from the alternate initial guess.
	ErrConvergence = errors.New("detail: density did not converge")
)

// RangeError describes which quantity left its domain.
type RangeError struct {
	Quantity string
	Value    float64
	Min, Max float64
	Unit     string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("detail: %s %g %s outside [%g, %g]", e.Quantity, e.Value, e.Unit, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ConvergenceError describes a failed density solve.
type ConvergenceError struct {
	Temperature float64 // K
	Pressure    float64 // kPa
	Iterations  int     // total over both attempts
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("detail: density did not converge at T=%g K, P=%g kPa after %d iterations",
		e.Temperature, e.Pressure, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }
