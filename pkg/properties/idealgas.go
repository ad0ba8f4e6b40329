package properties

import (
	"math"

	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/detail"
)

// idealGas holds the Planck–Einstein heat capacity terms of one component:
//
//	cp0/R = n3 + Σ(j=4,6) nj (θj/T)²/sinh²(θj/T) + Σ(j=5,7) nj (θj/T)²/cosh²(θj/T)
//
// with θ in K.
type idealGas struct {
	n3             float64
	n4, n5, n6, n7 float64
	t4, t5, t6, t7 float64
}

var _idealGas = [composition.NumComponents]idealGas{
	composition.Methane:         {4.00088, 0.76315, 0.0046, 8.74432, -4.46921, 820.659, 178.41, 1062.82, 1090.53},
	composition.Nitrogen:        {3.50031, 0.13732, -0.1466, 0.90066, 0, 662.738, 680.562, 1740.06, 0},
	composition.CarbonDioxide:   {3.50002, 2.04452, -1.06044, 2.03366, 0.01393, 919.306, 865.07, 483.553, 341.109},
	composition.Ethane:          {4.00263, 4.33939, 1.23722, 13.1974, -6.01989, 559.314, 223.284, 1031.38, 1071.29},
	composition.Propane:         {4.02939, 6.60569, 3.197, 19.1921, -8.37267, 479.856, 200.893, 955.312, 1027.29},
	composition.Isobutane:       {4.06714, 8.97575, 5.25156, 25.1423, 16.1388, 438.27, 198.018, 1905.02, 893.765},
	composition.NButane:         {4.33944, 9.44893, 6.89406, 24.4618, 14.7824, 468.27, 183.636, 1914.1, 903.185},
	composition.Isopentane:      {4, 11.7618, 20.1101, 33.1688, 0, 292.503, 910.237, 1919.37, 0},
	composition.NPentane:        {4, 8.95043, 21.836, 33.4032, 0, 178.67, 840.538, 1774.25, 0},
	composition.NHexane:         {4, 11.6977, 26.8142, 38.6164, 0, 182.326, 859.207, 1826.59, 0},
	composition.NHeptane:        {4, 13.7266, 30.4707, 43.5561, 0, 169.789, 836.195, 1760.46, 0},
	composition.NOctane:         {4, 15.6865, 33.8029, 48.1731, 0, 158.922, 815.064, 1693.07, 0},
	composition.NNonane:         {4, 18.0241, 38.1235, 53.3415, 0, 156.854, 814.882, 1693.79, 0},
	composition.NDecane:         {4, 21.0069, 43.4931, 58.3657, 0, 164.947, 836.264, 1750.24, 0},
	composition.Hydrogen:        {2.47906, 0.95806, 0.45444, 1.56039, -1.3756, 228.734, 326.843, 1651.71, 1671.69},
	composition.Oxygen:          {3.50146, 1.07558, 1.01334, 0, 0, 2235.71, 1116.69, 0, 0},
	composition.CarbonMonoxide:  {3.50055, 1.02865, 0.00493, 0, 0, 1550.45, 704.525, 0, 0},
	composition.Water:           {4.00392, 0.01059, 0.98763, 3.06904, 0, 268.795, 1141.41, 2507.37, 0},
	composition.HydrogenSulfide: {4, 3.11942, 1.00243, 0, 0, 1833.63, 847.181, 0, 0},
	composition.Helium:          {n3: 2.5},
	composition.Argon:           {n3: 2.5},
}

func (g idealGas) cp0R(t float64) float64 {
	v := g.n3
	v += sinhTerm(g.n4, g.t4, t) + coshTerm(g.n5, g.t5, t)
	v += sinhTerm(g.n6, g.t6, t) + coshTerm(g.n7, g.t7, t)
	return v
}

func sinhTerm(n, theta, t float64) float64 {
	if n == 0 || theta == 0 {
		return 0
	}
	x := theta / t
	s := math.Sinh(x)
	return n * x * x / (s * s)
}

func coshTerm(n, theta, t float64) float64 {
	if n == 0 || theta == 0 {
		return 0
	}
	x := theta / t
	c := math.Cosh(x)
	return n * x * x / (c * c)
}

// IdealHeatCapacity returns the ideal-gas isobaric heat capacity cp0 of comp at
// temperature t (K), in J/(mol·K).
func IdealHeatCapacity(comp *composition.Composition, t float64) float64 {
	var cp float64
	comp.Each(func(c composition.Component, x float64) {
		cp += x * _idealGas[c].cp0R(t)
	})
	return cp * detail.R
}
