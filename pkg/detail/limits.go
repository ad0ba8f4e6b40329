package detail

import (
	"math"

	"github.com/ja7ad/aga8/pkg/composition"
)

// FractionLimit caps the summed mole fraction of a group of components.
type FractionLimit struct {
	Name       string
	Components []composition.Component
	Max        float64
}

// Limits is the validated domain checked before a density solve.
type Limits struct {
	TMin, TMax float64 // K
	PMax       float64 // kPa
	Fractions  []FractionLimit
}

// DefaultLimits returns the AGA8 DETAIL expanded range of application:
// 143.15 K to 473.15 K, up to 280 MPa, with the published caps on heavier
// and minor components. Components without a cap may range over [0, 1].
func DefaultLimits() Limits {
	return Limits{
		TMin: 143.15,
		TMax: 473.15,
		PMax: 280000,
		Fractions: []FractionLimit{
			{Name: "propane", Components: []composition.Component{composition.Propane}, Max: 0.12},
			{Name: "butanes", Components: []composition.Component{composition.Isobutane, composition.NButane}, Max: 0.06},
			{Name: "pentanes", Components: []composition.Component{composition.Isopentane, composition.NPentane}, Max: 0.04},
			{Name: "helium", Components: []composition.Component{composition.Helium}, Max: 0.03},
			{Name: "carbon_monoxide", Components: []composition.Component{composition.CarbonMonoxide}, Max: 0.03},
			{Name: "argon", Components: []composition.Component{composition.Argon}, Max: 0.01},
			{Name: "oxygen", Components: []composition.Component{composition.Oxygen}, Max: 0.21},
		},
	}
}

// CheckConditions validates temperature and pressure.
func (l Limits) CheckConditions(c Conditions) error {
	t, p := c.Temperature, c.Pressure
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 || t < l.TMin || t > l.TMax {
		return &RangeError{Quantity: "temperature", Value: t, Min: l.TMin, Max: l.TMax, Unit: "K"}
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 || p > l.PMax {
		return &RangeError{Quantity: "pressure", Value: p, Min: 0, Max: l.PMax, Unit: "kPa"}
	}
	return nil
}

// CheckComposition validates the group caps.
func (l Limits) CheckComposition(comp *composition.Composition) error {
	for _, fl := range l.Fractions {
		var sum float64
		for _, c := range fl.Components {
			sum += comp.Fraction(c)
		}
		if sum > fl.Max {
			return &RangeError{Quantity: fl.Name + " fraction", Value: sum, Min: 0, Max: fl.Max, Unit: "mol/mol"}
		}
	}
	return nil
}
