package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadQuantity is returned when a quantity string cannot be parsed.
var ErrBadQuantity = errors.New("types: bad quantity")

// ParsePressure parses strings such as "5000", "5 MPa", "70bar" or "1000 psia".
// A bare number is taken as kPa.
func ParsePressure(s string) (Pressure, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "kpa":
		return Pressure(v) * KPa, nil
	case "mpa":
		return Pressure(v) * MPa, nil
	case "bar", "bara":
		return Pressure(v) * Bar, nil
	case "atm":
		return Pressure(v) * Atm, nil
	case "psi", "psia":
		return Pressure(v) * Psia, nil
	case "pa":
		return Pressure(v / 1000), nil
	default:
		return 0, fmt.Errorf("%w: unknown pressure unit %q", ErrBadQuantity, unit)
	}
}

// ParseTemperature parses strings such as "300", "300K", "15 C" or "59 F".
// A bare number is taken as Kelvin.
func ParseTemperature(s string) (Temperature, error) {
	v, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "k":
		return Temperature(v), nil
	case "c", "°c", "degc":
		return FromCelsius(v), nil
	case "f", "°f", "degf":
		return FromFahrenheit(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown temperature unit %q", ErrBadQuantity, unit)
	}
}

func splitQuantity(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for j, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E' {
			i = j
			break
		}
	}
	// "5e" would otherwise swallow the start of a unit; back off trailing exponent markers.
	for i > 0 && (s[i-1] == 'e' || s[i-1] == 'E') {
		i--
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	return v, strings.ToLower(strings.TrimSpace(s[i:])), nil
}
