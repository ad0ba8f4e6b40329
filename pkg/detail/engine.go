package detail

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ja7ad/aga8/pkg/composition"
)

const (
	// DefaultMaxIterations caps each density solve attempt.
	DefaultMaxIterations = 50
	// DefaultTolerance is the relative pressure residual accepted by the solver.
	DefaultTolerance = 1e-9
)

// Conditions is a state point: absolute pressure in kPa and temperature in K.
type Conditions struct {
	Pressure    float64 `json:"pressure_kpa" yaml:"pressure_kpa"`
	Temperature float64 `json:"temperature_k" yaml:"temperature_k"`
}

// State is the converged equation-of-state result at one state point.
type State struct {
	Temperature float64 // K
	Pressure    float64 // kPa
	Density     float64 // mol/l
	Z           float64
	DPdD        float64 // kPa·l/mol
	D2PdD2      float64 // kPa·(l/mol)²
	DPdT        float64 // kPa/K
	Helmholtz   Helmholtz
	Iterations  int
	Retried     bool // converged from the alternate initial guess
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxIterations sets the iteration cap per solve attempt; values < 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIter = n
		}
	}
}

// WithTolerance sets the relative pressure tolerance; values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(e *Engine) {
		if tol > 0 {
			e.tol = tol
		}
	}
}

// WithLimits replaces the validated domain.
func WithLimits(l Limits) Option {
	return func(e *Engine) { e.limits = l }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine evaluates the DETAIL equation for one composition. Mixture coefficients
// are computed on first use and shared by all later evaluations; an Engine is safe
// for concurrent use.
type Engine struct {
	comp    *composition.Composition
	maxIter int
	tol     float64
	limits  Limits
	log     *zap.Logger

	once sync.Once
	mix  *Mixture
}

// NewEngine returns an Engine scoped to comp.
func NewEngine(comp *composition.Composition, opts ...Option) *Engine {
	e := &Engine{
		comp:    comp,
		maxIter: DefaultMaxIterations,
		tol:     DefaultTolerance,
		limits:  DefaultLimits(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate is a one-shot helper for a single state point.
func Evaluate(comp *composition.Composition, cond Conditions, opts ...Option) (State, error) {
	return NewEngine(comp, opts...).Evaluate(cond)
}

// Composition returns the composition the engine is scoped to.
func (e *Engine) Composition() *composition.Composition { return e.comp }

// Mixture returns the mixture coefficients, computing them on first call.
func (e *Engine) Mixture() *Mixture {
	e.once.Do(func() {
		e.mix = NewMixture(e.comp)
		e.log.Debug("mixture coefficients ready",
			zap.Stringer("composition", e.comp),
			zap.Float64("k3", e.mix.K3),
			zap.Float64("u", e.mix.U))
	})
	return e.mix
}

// Evaluate solves for density at cond and returns the full state.
// Range checks run before any iteration.
func (e *Engine) Evaluate(cond Conditions) (State, error) {
	if e.comp == nil {
		return State{}, fmt.Errorf("%w: nil composition", composition.ErrInvalidComposition)
	}
	if err := e.limits.CheckConditions(cond); err != nil {
		return State{}, err
	}
	if err := e.limits.CheckComposition(e.comp); err != nil {
		return State{}, err
	}

	t, p := cond.Temperature, cond.Pressure
	mix := e.Mixture()

	res := mix.solveDensity(t, p, idealDensity(t, p), e.maxIter, e.tol)
	iters := res.iterations
	retried := false
	if !res.converged {
		e.log.Debug("density solve retry from alternate guess",
			zap.Float64("t", t), zap.Float64("p", p), zap.Int("iterations", iters))
		res = mix.solveDensity(t, p, mix.alternateDensity(), e.maxIter, e.tol)
		iters += res.iterations
		retried = true
	}
	if !res.converged {
		err := &ConvergenceError{Temperature: t, Pressure: p, Iterations: iters}
		e.log.Warn("density solve failed", zap.Error(err))
		return State{}, err
	}

	st := mix.state(t, p, res.density)
	st.Iterations = iters
	st.Retried = retried
	e.log.Debug("density solved",
		zap.Float64("t", t), zap.Float64("p", p),
		zap.Float64("density", st.Density), zap.Float64("z", st.Z),
		zap.Int("iterations", iters), zap.Bool("retried", retried))
	return st, nil
}

// Density solves for molar density (mol/l) at t (K) and p (kPa).
func (e *Engine) Density(t, p float64) (float64, error) {
	st, err := e.Evaluate(Conditions{Pressure: p, Temperature: t})
	if err != nil {
		return 0, err
	}
	return st.Density, nil
}

// Pressure evaluates the equation of state directly: pressure (kPa) and Z at
// t (K) and d (mol/l). No range checks are applied.
func (e *Engine) Pressure(t, d float64) (p, z float64) {
	p, z, _ = e.Mixture().pressure(t, d)
	return p, z
}

func (m *Mixture) state(t, p, d float64) State {
	h := m.Helmholtz(t, d)
	rt := R * t
	return State{
		Temperature: t,
		Pressure:    p,
		Density:     d,
		Z:           1 + h.A01,
		DPdD:        rt * (1 + 2*h.A01 + h.A02),
		D2PdD2:      rt * (2*h.A01 + 4*h.A02 + h.A03) / d,
		DPdT:        d * R * (1 + h.A01 + h.A11),
		Helmholtz:   h,
	}
}
