package types

import "fmt"

// Temperature is an absolute temperature in Kelvin.
type Temperature float64

// ZeroCelsius is 0 °C in Kelvin.
const ZeroCelsius Temperature = 273.15

// Humanized returns the temperature in K with the Celsius value alongside.
func (t Temperature) Humanized() string {
	return fmt.Sprintf("%.2f K (%.2f °C)", t.Kelvin(), t.Celsius())
}

// Kelvin returns the temperature in K.
func (t Temperature) Kelvin() float64 { return float64(t) }

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() float64 { return float64(t - ZeroCelsius) }

// Fahrenheit returns the temperature in °F.
func (t Temperature) Fahrenheit() float64 { return t.Celsius()*9/5 + 32 }

// FromCelsius converts °C to a Temperature.
func FromCelsius(c float64) Temperature { return Temperature(c) + ZeroCelsius }

// FromFahrenheit converts °F to a Temperature.
func FromFahrenheit(f float64) Temperature { return FromCelsius((f - 32) * 5 / 9) }
