package detail

import (
	"math"

	"github.com/ja7ad/aga8/pkg/util"
)

// solveResult is the outcome of one root-finder attempt.
type solveResult struct {
	density    float64 // mol/l
	iterations int
	converged  bool
}

// solveDensity finds ρ with P(ρ, t) = p by Newton iteration on ln(v), using ln(P)
// as the known variable: d(P)/d(ln v) = −ρ·dP/dρ. The iteration starts at d0 and
// stops when the relative pressure residual is within tol.
func (m *Mixture) solveDensity(t, p, d0 float64, maxIter int, tol float64) solveResult {
	plog := math.Log(p)
	vlog := -math.Log(d0)

	for it := 1; it <= maxIter; it++ {
		// Outside these bounds the iteration has left any physical root.
		if vlog < -7 || vlog > 100 || !util.Finite(vlog) {
			return solveResult{iterations: it}
		}
		d := math.Exp(-vlog)
		p2, _, dpdd := m.pressure(t, d)
		if util.Finite(p2) && p2 > 0 && util.RelDiff(p2, p) <= tol {
			return solveResult{density: d, iterations: it, converged: true}
		}
		if !util.Finite(p2, dpdd) || dpdd <= 0 || p2 <= 0 {
			// Mechanically unstable region: back off toward lower density.
			vlog += 0.1
			continue
		}
		dpdlv := -d * dpdd
		vlog -= (math.Log(p2) - plog) * p2 / dpdlv
	}
	return solveResult{iterations: maxIter}
}

// idealDensity is the ideal-gas estimate used as the first initial guess.
func idealDensity(t, p float64) float64 { return p / (R * t) }

// alternateDensity is the retry guess: the mixture's reduced density ρr = 1,
// which sits near the critical density for natural gases.
func (m *Mixture) alternateDensity() float64 { return util.SafeDiv(1, m.K3) }
