package detail

import (
	"math"

	"github.com/ja7ad/aga8/pkg/util"
)

// Helmholtz holds the reduced residual Helmholtz energy a = A_r/(RT) and its
// derivatives at fixed composition. Aij is T^i ρ^j ∂^(i+j)a/∂T^i∂ρ^j.
type Helmholtz struct {
	A00 float64
	A01 float64
	A02 float64
	A03 float64
	A10 float64
	A11 float64
	A20 float64
}

// Helmholtz evaluates the residual Helmholtz energy at temperature t (K) and
// molar density d (mol/l).
//
// The DETAIL compressibility equation
//
//	Z = 1 + B·ρ − ρr Σ(n=13..18) Cn·T^-un + Σ(n=13..58) Cn·T^-un (bn − cn·kn·ρr^kn) ρr^bn exp(−cn·ρr^kn)
//
// integrates in density to
//
//	a = B·ρ − ρr Σ(n=13..18) Cn·T^-un + Σ(n=13..58) Cn·T^-un ρr^bn exp(−cn·ρr^kn)
//
// with ρr = K³ρ. Every term is a product T^-un·f(ρ), so the temperature
// derivatives reduce to the factors −un and un(un+1).
func (m *Mixture) Helmholtz(t, d float64) Helmholtz {
	var h Helmholtz
	dr := m.K3 * d

	add := func(u, v, d1, d2, d3 float64) {
		h.A00 += v
		h.A01 += v * d1
		h.A02 += v * d2
		h.A03 += v * d3
		h.A10 -= u * v
		h.A11 -= u * v * d1
		h.A20 += u * (u + 1) * v
	}

	for n := 0; n < nB; n++ {
		// B·ρ is linear in density.
		add(un[n], m.Bs[n]*util.Pow(t, -un[n])*d, 1, 0, 0)
	}

	for n := 12; n < nTerms; n++ {
		cs := m.Cs[n] * util.Pow(t, -un[n])
		if n < nB {
			add(un[n], -cs*dr, 1, 0, 0)
		}

		b, c, k := bn[n], cn[n], kn[n]
		dk := 1.0
		if k != 0 {
			dk = util.Pow(dr, k)
		}
		f := util.Pow(dr, b) * math.Exp(-c*dk)

		// x^i d^i/dx^i of x^b·exp(−c·x^k), in terms of s = c·k·x^k.
		s := c * k * dk
		d1 := b - s
		d2 := d1*(d1-1) - k*s
		d3 := d1*d1*d1 - 3*k*s*d1 - k*k*s - 3*(d1*d1-k*s) + 2*d1
		add(un[n], cs*f, d1, d2, d3)
	}
	return h
}

// pressure returns P (kPa), Z and dP/dρ (kPa·l/mol) at t (K) and d (mol/l).
func (m *Mixture) pressure(t, d float64) (p, z, dpdd float64) {
	h := m.Helmholtz(t, d)
	rt := R * t
	z = 1 + h.A01
	return d * rt * z, z, rt * (1 + 2*h.A01 + h.A02)
}
