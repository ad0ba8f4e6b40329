// Package composition models a natural-gas mixture as mole fractions over the fixed
// 21-component AGA8 enumeration.
//
// A Composition is validated once at construction and immutable afterwards; any change
// requires a new instance. Unspecified components are zero.
package composition

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// SumTolerance is the allowed deviation of the fraction sum from 1.
const SumTolerance = 1e-6

// Composition is an immutable, validated set of mole fractions.
type Composition struct {
	x   [NumComponents]float64
	key string
}

// New builds a Composition from a name -> mole fraction mapping. Names are resolved with
// ParseComponent. The same component given twice under different spellings is rejected.
func New(fractions map[string]float64) (*Composition, error) {
	if len(fractions) == 0 {
		return nil, fmt.Errorf("%w: no components given", ErrInvalidComposition)
	}

	var (
		x    [NumComponents]float64
		seen = make(map[Component]string, len(fractions))
	)
	for name, v := range fractions {
		c, err := ParseComponent(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %q and %q both name %s", ErrInvalidComposition, prev, name, c)
		}
		seen[c] = name
		x[c] = v
	}
	return FromFractions(x)
}

// FromFractions builds a Composition from a fraction array indexed by Component.
func FromFractions(x [NumComponents]float64) (*Composition, error) {
	var sum float64
	for i, v := range x {
		c := Component(i)
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, fmt.Errorf("%w: %s fraction is not finite", ErrInvalidComposition, c)
		case v < 0:
			return nil, fmt.Errorf("%w: %s fraction %g is negative", ErrInvalidComposition, c, v)
		case v > 1:
			return nil, fmt.Errorf("%w: %s fraction %g exceeds 1", ErrInvalidComposition, c, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, fmt.Errorf("%w: fractions sum to %.9g, want 1 ± %g", ErrInvalidComposition, sum, SumTolerance)
	}
	return &Composition{x: x, key: fingerprint(x)}, nil
}

// Pure returns the composition of a single component at mole fraction 1.
func Pure(c Component) (*Composition, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidComposition, c)
	}
	var x [NumComponents]float64
	x[c] = 1
	return FromFractions(x)
}

// Normalize scales the given fractions so they sum to 1 and then builds a Composition.
// Callers must opt into this explicitly; New never rescales.
func Normalize(fractions map[string]float64) (*Composition, error) {
	var sum float64
	for _, v := range fractions {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return New(fractions) // reports the offending value
		}
		sum += v
	}
	if sum <= 0 {
		return nil, fmt.Errorf("%w: fractions sum to zero", ErrInvalidComposition)
	}
	scaled := make(map[string]float64, len(fractions))
	for k, v := range fractions {
		scaled[k] = v / sum
	}
	return New(scaled)
}

// Fraction returns the mole fraction of c.
func (m *Composition) Fraction(c Component) float64 {
	if !c.Valid() {
		return 0
	}
	return m.x[c]
}

// Fractions returns a copy of all fractions indexed by Component.
func (m *Composition) Fractions() [NumComponents]float64 { return m.x }

// Each calls fn for every component with a non-zero fraction, in AGA8 order.
func (m *Composition) Each(fn func(c Component, x float64)) {
	for i, v := range m.x {
		if v > 0 {
			fn(Component(i), v)
		}
	}
}

// Len returns the number of components with a non-zero fraction.
func (m *Composition) Len() int {
	n := 0
	for _, v := range m.x {
		if v > 0 {
			n++
		}
	}
	return n
}

// MolarMass returns the mixture molar mass in g/mol.
func (m *Composition) MolarMass() float64 {
	var mm float64
	for i, v := range m.x {
		mm += v * _components[i].molar
	}
	return mm
}

// Map returns the non-zero fractions keyed by canonical component name.
func (m *Composition) Map() map[string]float64 {
	out := make(map[string]float64, m.Len())
	m.Each(func(c Component, x float64) { out[c.String()] = x })
	return out
}

// Key returns a stable fingerprint; equal fractions give equal keys.
func (m *Composition) Key() string { return m.key }

// String renders the non-zero fractions, largest first.
func (m *Composition) String() string {
	type part struct {
		c Component
		x float64
	}
	parts := make([]part, 0, m.Len())
	m.Each(func(c Component, x float64) { parts = append(parts, part{c, x}) })
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].x > parts[j].x })

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", p.c.Formula(), p.x)
	}
	return b.String()
}

func fingerprint(x [NumComponents]float64) string {
	var b strings.Builder
	for i, v := range x {
		if v == 0 {
			continue
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
		b.WriteByte(';')
	}
	return b.String()
}
