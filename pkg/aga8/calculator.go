package aga8

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/detail"
	"github.com/ja7ad/aga8/pkg/properties"
)

// Point is one state point of a batch.
type Point = detail.Conditions

// Calculator evaluates compositions against a fixed Config. Engines are cached
// per composition so mixture coefficients are computed once. A Calculator is
// safe for concurrent use.
type Calculator struct {
	cfg *Config
	log *zap.Logger

	mu      sync.Mutex
	engines map[string]*detail.Engine
	group   singleflight.Group
	builds  int // engines constructed, for tests
}

// New creates a calculator with the given config.
// Fields > 0 in cfg override defaults; nil uses the defaults.
func New(cfg *Config) *Calculator {
	merged := mergeConfig(cfg)
	return &Calculator{
		cfg:     merged,
		log:     merged.Logger,
		engines: make(map[string]*detail.Engine),
	}
}

// Config returns a copy of the effective configuration.
func (c *Calculator) Config() Config { return *c.cfg }

// Calculate validates input and evaluates it at pressure (kPa) and temperature (K).
func (c *Calculator) Calculate(input map[string]float64, pressure, temperature float64) (Result, error) {
	comp, err := composition.New(input)
	if err != nil {
		return Result{}, err
	}
	return c.CalculateComposition(comp, pressure, temperature)
}

// CalculateComposition evaluates a validated composition.
func (c *Calculator) CalculateComposition(comp *composition.Composition, pressure, temperature float64) (Result, error) {
	if comp == nil {
		return Result{}, fmt.Errorf("%w: nil composition", ErrInvalidComposition)
	}
	return c.evaluate(c.engine(comp), Point{Pressure: pressure, Temperature: temperature})
}

// CalculateBatch evaluates points for one composition with at most Workers
// evaluations in flight. Results are in input order. The first failure cancels
// the remaining points and is returned with no results.
func (c *Calculator) CalculateBatch(ctx context.Context, comp *composition.Composition, points []Point) ([]Result, error) {
	if comp == nil {
		return nil, fmt.Errorf("%w: nil composition", ErrInvalidComposition)
	}
	e := c.engine(comp)
	out := make([]Result, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for i, pt := range points {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := c.evaluate(e, pt)
			if err != nil {
				return fmt.Errorf("point %d (P=%g kPa, T=%g K): %w", i, pt.Pressure, pt.Temperature, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Debug("batch failed", zap.Int("points", len(points)), zap.Error(err))
		return nil, err
	}
	c.log.Debug("batch done", zap.Int("points", len(points)), zap.Stringer("composition", comp))
	return out, nil
}

func (c *Calculator) evaluate(e *detail.Engine, pt Point) (Result, error) {
	st, err := e.Evaluate(pt)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Result:      properties.Derive(st, e.Composition()),
		Pressure:    st.Pressure,
		Temperature: st.Temperature,
		Iterations:  st.Iterations,
	}, nil
}

// engine returns the cached engine for comp, constructing it at most once per
// cache generation.
func (c *Calculator) engine(comp *composition.Composition) *detail.Engine {
	key := comp.Key()

	c.mu.Lock()
	e, ok := c.engines[key]
	c.mu.Unlock()
	if ok {
		return e
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if e, ok := c.engines[key]; ok {
			return e, nil
		}
		if len(c.engines) >= c.cfg.CacheSize {
			c.log.Debug("engine cache reset", zap.Int("size", len(c.engines)))
			c.engines = make(map[string]*detail.Engine)
		}
		e := detail.NewEngine(comp,
			detail.WithMaxIterations(c.cfg.MaxIterations),
			detail.WithTolerance(c.cfg.Tolerance),
			detail.WithLimits(c.cfg.limits()),
			detail.WithLogger(c.log),
		)
		c.engines[key] = e
		c.builds++
		return e, nil
	})
	return v.(*detail.Engine)
}
