// Package aga8 is the calculation facade: it turns a named composition, an
// absolute pressure in kPa and a temperature in K into the compressibility
// factor, gas density (kg/m³), molar mass (g/mol) and speed of sound (m/s) of
// the AGA8 DETAIL equation of state, or a classified error.
//
// Two ways in:
//
//	c := aga8.New(&aga8.Config{Workers: 4})
//	res, err := c.Calculate(map[string]float64{"methane": 0.9, "ethane": 0.1}, 5000, 300)
//
//	aga8.Init(nil)
//	res, err := aga8.Calculate(...)
//
// The package-level functions fail with ErrNotInitialized until Init has
// completed. Kind classifies any returned error as invalid composition, out of
// range, convergence failure or not initialized.
package aga8
