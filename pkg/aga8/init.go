package aga8

import (
	"sync"
	"sync/atomic"
)

// InitState is the process-wide initialization state of the package-level API.
type InitState int32

const (
	StateNotInitialized InitState = iota
	StateInitializing
	StateReady
)

func (s InitState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "not_initialized"
	}
}

var (
	_initOnce sync.Once
	_state    atomic.Int32
	_default  atomic.Pointer[Calculator]
)

// Init builds the process-wide calculator. Only the first call has an effect;
// later calls, with any config, are no-ops.
func Init(cfg *Config) {
	_initOnce.Do(func() {
		_state.Store(int32(StateInitializing))
		c := New(cfg)
		_default.Store(c)
		_state.Store(int32(StateReady))
		c.log.Debug("aga8 ready")
	})
}

// State reports the initialization state.
func State() InitState { return InitState(_state.Load()) }

// Ready reports whether Init has completed.
func Ready() bool { return State() == StateReady }

func defaultCalculator() (*Calculator, error) {
	if !Ready() {
		return nil, ErrNotInitialized
	}
	return _default.Load(), nil
}

// Calculate evaluates input at pressure (kPa) and temperature (K) with the
// process-wide calculator. It fails with ErrNotInitialized before Init.
func Calculate(input map[string]float64, pressure, temperature float64) (Result, error) {
	c, err := defaultCalculator()
	if err != nil {
		return Result{}, err
	}
	return c.Calculate(input, pressure, temperature)
}

// CalculateJSON is the JSON entry point of the process-wide calculator.
// It fails with ErrNotInitialized before Init.
func CalculateJSON(input string) (string, error) {
	c, err := defaultCalculator()
	if err != nil {
		return "", err
	}
	return c.CalculateJSON(input)
}
