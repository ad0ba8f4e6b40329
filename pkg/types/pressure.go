package types

import "fmt"

// Pressure is an absolute pressure in kPa.
type Pressure float64

// Common pressure units expressed in kPa.
const (
	KPa  Pressure = 1
	MPa  Pressure = 1000
	Bar  Pressure = 100
	Atm  Pressure = 101.325
	Psia Pressure = 6.894757293168361
)

// Humanized returns a readable string with an automatic unit (kPa or MPa).
func (p Pressure) Humanized() string {
	switch {
	case p >= MPa || p <= -MPa:
		return fmt.Sprintf("%.4g MPa", p.MPa())
	default:
		return fmt.Sprintf("%.4g kPa", p.KPa())
	}
}

// KPa returns the pressure in kPa.
func (p Pressure) KPa() float64 { return float64(p) }

// MPa returns the pressure in MPa.
func (p Pressure) MPa() float64 { return float64(p / MPa) }

// Bar returns the pressure in bar.
func (p Pressure) Bar() float64 { return float64(p / Bar) }

// Psia returns the pressure in psia.
func (p Pressure) Psia() float64 { return float64(p / Psia) }
