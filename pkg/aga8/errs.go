package aga8

import (
	"errors"

	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/detail"
)

var (
	// ErrInvalidComposition reports an unknown component, a bad fraction or a sum off 1.
	ErrInvalidComposition = composition.ErrInvalidComposition
	// ErrOutOfRange reports T, P or a mole fraction outside the validated domain.
	ErrOutOfRange = detail.ErrOutOfRange
	// ErrConvergence reports a density solve that failed after its retry.
	ErrConvergence = detail.ErrConvergence
	// ErrNotInitialized reports a package-level call made before Init.
	ErrNotInitialized = errors.New("aga8: not initialized")
)

// ErrorKind classifies an error returned by this package.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidComposition
	KindOutOfRange
	KindConvergence
	KindNotInitialized
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidComposition:
		return "invalid_composition"
	case KindOutOfRange:
		return "out_of_range"
	case KindConvergence:
		return "convergence"
	case KindNotInitialized:
		return "not_initialized"
	default:
		return "unknown"
	}
}

// Kind maps err to its ErrorKind. Errors that wrap none of the package
// sentinels, and nil, are KindUnknown.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidComposition):
		return KindInvalidComposition
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrConvergence):
		return KindConvergence
	case errors.Is(err, ErrNotInitialized):
		return KindNotInitialized
	default:
		return KindUnknown
	}
}
