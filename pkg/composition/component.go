package composition

import (
	"fmt"
	"strconv"
	"strings"
)

// Component identifies one of the 21 gas components characterized by AGA8 DETAIL.
// The numeric order is the AGA8 table order and is used to index every
// per-component constant table in this module.
type Component int

const (
	Methane Component = iota
	Nitrogen
	CarbonDioxide
	Ethane
	Propane
	Isobutane
	NButane
	Isopentane
	NPentane
	NHexane
	NHeptane
	NOctane
	NNonane
	NDecane
	Hydrogen
	Oxygen
	CarbonMonoxide
	Water
	HydrogenSulfide
	Helium
	Argon
)

// NumComponents is the size of the fixed component enumeration.
const NumComponents = 21

type componentInfo struct {
	name    string
	formula string
	molar   float64 // g/mol
	aliases []string
}

var _components = [NumComponents]componentInfo{
	Methane:         {"methane", "CH4", 16.043, []string{"c1"}},
	Nitrogen:        {"nitrogen", "N2", 28.0135, nil},
	CarbonDioxide:   {"carbon_dioxide", "CO2", 44.01, []string{"carbon dioxide", "carbondioxide"}},
	Ethane:          {"ethane", "C2H6", 30.07, []string{"c2"}},
	Propane:         {"propane", "C3H8", 44.097, []string{"c3"}},
	Isobutane:       {"isobutane", "i-C4H10", 58.123, []string{"i-butane", "ic4", "i-c4"}},
	NButane:         {"n_butane", "n-C4H10", 58.123, []string{"n-butane", "butane", "nc4", "n-c4"}},
	Isopentane:      {"isopentane", "i-C5H12", 72.15, []string{"i-pentane", "ic5", "i-c5"}},
	NPentane:        {"n_pentane", "n-C5H12", 72.15, []string{"n-pentane", "pentane", "nc5", "n-c5"}},
	NHexane:         {"n_hexane", "C6H14", 86.177, []string{"n-hexane", "hexane", "nc6", "c6"}},
	NHeptane:        {"n_heptane", "C7H16", 100.204, []string{"n-heptane", "heptane", "nc7", "c7"}},
	NOctane:         {"n_octane", "C8H18", 114.231, []string{"n-octane", "octane", "nc8", "c8"}},
	NNonane:         {"n_nonane", "C9H20", 128.258, []string{"n-nonane", "nonane", "nc9", "c9"}},
	NDecane:         {"n_decane", "C10H22", 142.285, []string{"n-decane", "decane", "nc10", "c10"}},
	Hydrogen:        {"hydrogen", "H2", 2.0159, nil},
	Oxygen:          {"oxygen", "O2", 31.9988, nil},
	CarbonMonoxide:  {"carbon_monoxide", "CO", 28.01, []string{"carbon monoxide", "carbonmonoxide"}},
	Water:           {"water", "H2O", 18.0153, nil},
	HydrogenSulfide: {"hydrogen_sulfide", "H2S", 34.082, []string{"hydrogen sulfide", "hydrogensulfide", "hydrogen_sulphide"}},
	Helium:          {"helium", "He", 4.0026, nil},
	Argon:           {"argon", "Ar", 39.948, nil},
}

// _lookup maps every accepted spelling (lower case) to its component.
var _lookup = func() map[string]Component {
	m := make(map[string]Component, NumComponents*4)
	for i, c := range _components {
		id := Component(i)
		m[c.name] = id
		m[strings.ToLower(c.formula)] = id
		m[strings.ReplaceAll(c.name, "_", "-")] = id
		m[strings.ReplaceAll(c.name, "_", "")] = id
		for _, a := range c.aliases {
			m[a] = id
		}
	}
	return m
}()

// String returns the canonical snake_case name, e.g. "n_butane".
func (c Component) String() string {
	if !c.Valid() {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return _components[c].name
}

// Formula returns the chemical formula, e.g. "CH4".
func (c Component) Formula() string {
	if !c.Valid() {
		return ""
	}
	return _components[c].formula
}

// MolarMass returns the molar mass in g/mol.
func (c Component) MolarMass() float64 {
	if !c.Valid() {
		return 0
	}
	return _components[c].molar
}

// Valid reports whether c is part of the enumeration.
func (c Component) Valid() bool { return c >= 0 && c < NumComponents }

// ParseComponent resolves a canonical name, formula or alias, case-insensitively.
// A decimal string is taken as the 1-based AGA8 index ("1" is methane).
func ParseComponent(name string) (Component, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := _lookup[key]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		if c := Component(n - 1); c.Valid() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown component %q", ErrInvalidComposition, name)
}

// Components returns the full enumeration in AGA8 order.
func Components() []Component {
	out := make([]Component, NumComponents)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}
