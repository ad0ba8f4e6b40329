// Package detail implements the AGA8 DETAIL characterization equation of state
// (AGA Report No. 8, 1994) for natural-gas mixtures of up to 21 components.
//
// Overview
//
//   - Engine:
//     NewEngine(comp, opts...) *Engine
//     (*Engine).Evaluate(Conditions) (State, error)
//     (*Engine).Density(T, P) (float64, error)
//     (*Engine).Pressure(T, D) (P, Z)
//
//     An Engine is scoped to one composition. Its mixture coefficients are
//     computed on first use (sync.Once) and reused by every later evaluation,
//     from any goroutine.
//
//   - Units:
//     T  : K
//     P  : kPa (absolute)
//     D  : mol/l
//     R  : 8.31451 J/(mol·K)
//
//   - Errors (errs.go):
//     ErrOutOfRange  : T, P or a group mole fraction outside Limits (*RangeError)
//     ErrConvergence : density solve failed after the retry (*ConvergenceError)
//
// # Mixture coefficients
//
// From the characterization table (Ei, Ki, Gi, Qi, Fi, Si, Wi) and the binary
// interaction table (E*ij, Uij, Kij, G*ij) the mixture size, energy,
// orientation, quadrupole and high-temperature parameters are formed:
//
//	K^5 = (Σ xi Ki^2.5)^2 + 2 ΣΣ(i<j) xi xj (Kij^5 − 1)(Ki Kj)^2.5
//	U^5 = (Σ xi Ei^2.5)^2 + 2 ΣΣ(i<j) xi xj (Uij^5 − 1)(Ei Ej)^2.5
//	G   = Σ xi Gi + 2 ΣΣ(i<j) xi xj (G*ij − 1)(Gi + Gj)/2
//	Q   = Σ xi Qi
//	F   = Σ xi^2 Fi
//
// Composition-independent pair terms are built once per process.
//
// # Density
//
// The density solve is a Newton iteration on ln(v) with ln(P) as the known
// variable, started from the ideal-gas density. When dP/dρ or P(ρ) is not
// positive the step backs off toward lower density. If the first attempt does
// not reach the tolerance within MaxIterations it is repeated once from
// ρ = 1/K³; a second failure is reported as ErrConvergence. No approximate
// density is returned.
//
// # Accuracy
//
// At the published DETAIL check point (the 21-component reference gas at 400 K
// and 50 MPa) Evaluate returns D = 12.80792403648801 mol/l, Z = 1.173801364147326,
// dP/dD = 6971.387690924 and d²P/dD² = 1118.80363664, matching the published
// values to within the solver tolerance. The equation itself carries the AGA8
// stated uncertainty of 0.1% in density inside the normal range.
//
// # Range
//
// DefaultLimits is the expanded range of application: 143.15 K to 473.15 K,
// pressures up to 280 MPa, and caps on propane, butanes, pentanes, helium,
// carbon monoxide, argon and oxygen. Checks run before any iteration and values
// are never clamped.
package detail
