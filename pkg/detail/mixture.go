package detail

import (
	"math"
	"sync"

	"github.com/ja7ad/aga8/pkg/composition"
)

// pairTables holds the composition-independent pair terms derived from the
// characterization and binary tables. Built once per process.
type pairTables struct {
	bsnij [nc][nc][nB]float64
	kij5  [nc][nc]float64
	uij5  [nc][nc]float64
	gij5  [nc][nc]float64
	ki25  [nc]float64
	ei25  [nc]float64
}

var (
	_pairsOnce sync.Once
	_pairs     *pairTables
)

func pairs() *pairTables {
	_pairsOnce.Do(func() { _pairs = buildPairTables() })
	return _pairs
}

func buildPairTables() *pairTables {
	var (
		t                  pairTables
		eij, uij, kij, gij [nc][nc]float64
	)
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			eij[i][j], uij[i][j], kij[i][j], gij[i][j] = 1, 1, 1, 1
		}
	}
	for _, b := range _binary {
		i, j := b.i, b.j
		eij[i][j], uij[i][j], kij[i][j], gij[i][j] = orOne(b.E), orOne(b.U), orOne(b.K), orOne(b.G)
		eij[j][i], uij[j][i], kij[j][i], gij[j][i] = eij[i][j], uij[i][j], kij[i][j], gij[i][j]
	}

	for i := 0; i < nc; i++ {
		t.ki25[i] = math.Pow(_pure[i].K, 2.5)
		t.ei25[i] = math.Pow(_pure[i].E, 2.5)
	}

	for i := 0; i < nc; i++ {
		pi := _pure[i]
		for j := i; j < nc; j++ {
			pj := _pure[j]
			for n := 0; n < nB; n++ {
				bs := gn[n]*(gij[i][j]*(pi.G+pj.G)/2-1) + 1
				bs *= qn[n]*(pi.Q*pj.Q-1) + 1
				bs *= fn[n]*(math.Sqrt(pi.F*pj.F)-1) + 1
				bs *= sn[n]*(pi.S*pj.S-1) + 1
				bs *= wn[n]*(pi.W*pj.W-1) + 1
				v := an[n] * math.Pow(eij[i][j]*math.Sqrt(pi.E*pj.E), un[n]) *
					math.Pow(pi.K*pj.K, 1.5) * bs
				t.bsnij[i][j][n], t.bsnij[j][i][n] = v, v
			}
			t.kij5[i][j] = (math.Pow(kij[i][j], 5) - 1) * t.ki25[i] * t.ki25[j]
			t.uij5[i][j] = (math.Pow(uij[i][j], 5) - 1) * t.ei25[i] * t.ei25[j]
			t.gij5[i][j] = (gij[i][j] - 1) * (pi.G + pj.G) / 2
		}
	}
	return &t
}

// Mixture holds the composition-dependent coefficients of the DETAIL equation.
// It is immutable once built and may be shared between goroutines.
type Mixture struct {
	K3 float64 // mixture size parameter cubed, l/mol
	U  float64 // mixture energy parameter, K
	G  float64 // mixture orientation parameter
	Q  float64 // mixture quadrupole parameter
	F  float64 // mixture high-temperature parameter

	// Bs[n] T^-u[n] summed over n is the second virial coefficient, l/mol.
	Bs [nB]float64
	// Cs[n] T^-u[n] are the temperature-dependent coefficients; only n >= 12 are used.
	Cs [nTerms]float64

	MolarMass float64 // g/mol
}

// NewMixture derives the mixture coefficients for comp.
func NewMixture(comp *composition.Composition) *Mixture {
	t := pairs()
	x := comp.Fractions()

	var (
		m      Mixture
		k5, u5 float64
	)
	for i := 0; i < nc; i++ {
		if x[i] <= 0 {
			continue
		}
		xi2 := x[i] * x[i]
		k5 += x[i] * t.ki25[i]
		u5 += x[i] * t.ei25[i]
		m.G += x[i] * _pure[i].G
		m.Q += x[i] * _pure[i].Q
		m.F += xi2 * _pure[i].F
		for n := 0; n < nB; n++ {
			m.Bs[n] += xi2 * t.bsnij[i][i][n]
		}
	}
	k5 *= k5
	u5 *= u5

	for i := 0; i < nc; i++ {
		if x[i] <= 0 {
			continue
		}
		for j := i + 1; j < nc; j++ {
			if x[j] <= 0 {
				continue
			}
			xij := 2 * x[i] * x[j]
			k5 += xij * t.kij5[i][j]
			u5 += xij * t.uij5[i][j]
			m.G += xij * t.gij5[i][j]
			for n := 0; n < nB; n++ {
				m.Bs[n] += xij * t.bsnij[i][j][n]
			}
		}
	}
	m.K3 = math.Pow(k5, 0.6)
	m.U = math.Pow(u5, 0.2)

	q2 := m.Q * m.Q
	for n := 12; n < nTerms; n++ {
		c := an[n] * math.Pow(m.U, un[n])
		if gn[n] == 1 {
			c *= m.G
		}
		if qn[n] == 1 {
			c *= q2
		}
		if fn[n] == 1 {
			c *= m.F
		}
		m.Cs[n] = c
	}

	m.MolarMass = comp.MolarMass()
	return &m
}

// SecondVirial returns the second virial coefficient B(T) in l/mol.
func (m *Mixture) SecondVirial(t float64) float64 {
	var b float64
	for n := 0; n < nB; n++ {
		b += m.Bs[n] * math.Pow(t, -un[n])
	}
	return b
}
