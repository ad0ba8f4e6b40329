// Package properties derives the thermodynamic properties reported to callers
// from a converged equation-of-state state.
package properties

import (
	"math"

	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/detail"
	"github.com/ja7ad/aga8/pkg/util"
)

// Result is the property set at one state point. It holds no reference to the
// inputs it was derived from.
type Result struct {
	Z            float64 // compressibility factor
	Density      float64 // kg/m³
	MolarMass    float64 // g/mol
	SpeedOfSound float64 // m/s

	MolarDensity       float64 // mol/l
	Cv                 float64 // J/(mol·K)
	Cp                 float64 // J/(mol·K)
	IsentropicExponent float64
	JouleThomson       float64 // K/kPa
	DPdD               float64 // kPa·l/mol
	DPdT               float64 // kPa/K
}

// Derive computes the property set from st for comp. st must come from an
// evaluation of comp.
func Derive(st detail.State, comp *composition.Composition) Result {
	const R = detail.R

	t, d := st.Temperature, st.Density
	mm := comp.MolarMass()
	h := st.Helmholtz

	cv := IdealHeatCapacity(comp, t) - R - R*(2*h.A10+h.A20)
	cp := cv + t*math.Pow(util.SafeDiv(st.DPdT, d), 2)*util.SafeDiv(1, st.DPdD)

	// 1000 converts kPa·l/g to m²/s².
	w2 := 1000 * util.SafeDiv(cp, cv) * util.SafeDiv(st.DPdD, mm)
	var w float64
	if w2 > 0 {
		w = math.Sqrt(w2)
	}

	return Result{
		Z:            st.Z,
		Density:      d * mm,
		MolarMass:    mm,
		SpeedOfSound: w,

		MolarDensity:       d,
		Cv:                 cv,
		Cp:                 cp,
		IsentropicExponent: util.SafeDiv(w*w*mm, 1000*R*t*st.Z),
		JouleThomson:       util.SafeDiv(util.SafeDiv(t, d)*util.SafeDiv(st.DPdT, st.DPdD)-1, cp*d),
		DPdD:               st.DPdD,
		DPdT:               st.DPdT,
	}
}
