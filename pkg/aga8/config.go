package aga8

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/ja7ad/aga8/pkg/detail"
)

// Config holds solver and runtime settings.
// Units:
//   - TMin/TMax: K
//   - PMax: kPa (absolute)
//   - Tolerance: relative pressure residual of the density solve
//   - CacheSize: number of composition-scoped engines kept
//   - Workers: parallel evaluations in CalculateBatch
type Config struct {
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	TMin          float64 `yaml:"t_min" json:"t_min"`
	TMax          float64 `yaml:"t_max" json:"t_max"`
	PMax          float64 `yaml:"p_max" json:"p_max"`
	CacheSize     int     `yaml:"cache_size" json:"cache_size"`
	Workers       int     `yaml:"workers" json:"workers"`

	Logger *zap.Logger `yaml:"-" json:"-"`
}

// _defaultConfig returns a Config pre-filled with the AGA8 DETAIL expanded range
// and the default solver settings.
func _defaultConfig() *Config {
	l := detail.DefaultLimits()
	return &Config{
		MaxIterations: detail.DefaultMaxIterations,
		Tolerance:     detail.DefaultTolerance,
		TMin:          l.TMin,
		TMax:          l.TMax,
		PMax:          l.PMax,
		CacheSize:     128,
		Workers:       runtime.GOMAXPROCS(0),
		Logger:        zap.NewNop(),
	}
}

// mergeConfig applies the set fields of cfg over the defaults.
// Notes:
//   - numeric fields must be > 0 to override defaults.
//   - TMin, TMax and PMax may narrow the DETAIL range but never widen it.
//   - a TMin/TMax pair that does not form an interval falls back to the defaults.
func mergeConfig(cfg *Config) *Config {
	base := _defaultConfig()
	if cfg == nil {
		return base
	}

	merged := *base

	// Positive-only overrides
	if cfg.MaxIterations > 0 {
		merged.MaxIterations = cfg.MaxIterations
	}
	if cfg.Tolerance > 0 {
		merged.Tolerance = cfg.Tolerance
	}
	if cfg.TMin > 0 {
		merged.TMin = cfg.TMin
	}
	if cfg.TMax > 0 {
		merged.TMax = cfg.TMax
	}
	if cfg.PMax > 0 {
		merged.PMax = cfg.PMax
	}
	if cfg.CacheSize > 0 {
		merged.CacheSize = cfg.CacheSize
	}
	if cfg.Workers > 0 {
		merged.Workers = cfg.Workers
	}
	if cfg.Logger != nil {
		merged.Logger = cfg.Logger
	}

	merged.TMin = max(merged.TMin, base.TMin)
	merged.TMax = min(merged.TMax, base.TMax)
	merged.PMax = min(merged.PMax, base.PMax)
	if merged.TMax <= merged.TMin {
		merged.TMin, merged.TMax = base.TMin, base.TMax
	}

	return &merged
}

// limits returns the validated domain described by c.
func (c *Config) limits() detail.Limits {
	l := detail.DefaultLimits()
	l.TMin, l.TMax, l.PMax = c.TMin, c.TMax, c.PMax
	return l
}
