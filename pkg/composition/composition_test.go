package composition

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponent_Spellings(t *testing.T) {
	cases := []struct {
		in   string
		want Component
	}{
		{"methane", Methane},
		{"CH4", Methane},
		{"  Methane ", Methane},
		{"c1", Methane},
		{"carbon_dioxide", CarbonDioxide},
		{"carbon dioxide", CarbonDioxide},
		{"co2", CarbonDioxide},
		{"n-butane", NButane},
		{"nc4", NButane},
		{"i-butane", Isobutane},
		{"isobutane", Isobutane},
		{"n_pentane", NPentane},
		{"C10H22", NDecane},
		{"H2S", HydrogenSulfide},
		{"hydrogen-sulfide", HydrogenSulfide},
		{"He", Helium},
		{"AR", Argon},
		{"1", Methane},
		{"21", Argon},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseComponent(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"unobtainium", "0", "22", "-1"} {
		_, err := ParseComponent(bad)
		require.ErrorIs(t, err, ErrInvalidComposition, bad)
	}
}

func TestComponents_TableOrder(t *testing.T) {
	all := Components()
	require.Len(t, all, NumComponents)
	assert.Equal(t, "methane", all[0].String())
	assert.Equal(t, "argon", all[NumComponents-1].String())
	for i, c := range all {
		assert.Equal(t, Component(i), c)
		assert.NotEmpty(t, c.Formula(), "formula for %s", c)
		assert.Greater(t, c.MolarMass(), 0.0, "molar mass for %s", c)
	}
	assert.False(t, Component(NumComponents).Valid())
	assert.Equal(t, "component(21)", Component(NumComponents).String())
}

func TestNew_Valid(t *testing.T) {
	c, err := New(map[string]float64{"methane": 0.9, "ethane": 0.05, "N2": 0.05})
	require.NoError(t, err)

	assert.InDelta(t, 0.9, c.Fraction(Methane), 0)
	assert.InDelta(t, 0.05, c.Fraction(Ethane), 0)
	assert.InDelta(t, 0.05, c.Fraction(Nitrogen), 0)
	assert.Zero(t, c.Fraction(Propane), "unspecified components default to zero")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, map[string]float64{"methane": 0.9, "ethane": 0.05, "nitrogen": 0.05}, c.Map())
	assert.Equal(t, "CH4=0.9, N2=0.05, C2H6=0.05", c.String())
}

func TestNew_SumWithinTolerance(t *testing.T) {
	_, err := New(map[string]float64{"methane": 0.5 + 4e-7, "ethane": 0.5})
	require.NoError(t, err)

	_, err = New(map[string]float64{"methane": 0.5 + 5e-6, "ethane": 0.5})
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestNew_Rejects(t *testing.T) {
	cases := map[string]map[string]float64{
		"empty":           {},
		"half_sum":        {"methane": 0.25, "ethane": 0.25},
		"negative":        {"methane": 1.1, "ethane": -0.1},
		"above_one":       {"methane": 1.5},
		"nan":             {"methane": math.NaN()},
		"inf":             {"methane": math.Inf(1)},
		"unknown":         {"methane": 0.5, "kryptonite": 0.5},
		"duplicate_name":  {"methane": 0.5, "CH4": 0.5},
		"duplicate_index": {"methane": 0.5, "1": 0.5},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := New(in)
			require.ErrorIs(t, err, ErrInvalidComposition)
			assert.Nil(t, c)
		})
	}
}

func TestPure(t *testing.T) {
	for _, comp := range Components() {
		c, err := Pure(comp)
		require.NoError(t, err)
		assert.Equal(t, 1.0, c.Fraction(comp))
		assert.Equal(t, 1, c.Len())
		assert.InDelta(t, comp.MolarMass(), c.MolarMass(), 1e-12)
	}
	_, err := Pure(Component(-1))
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestNormalize(t *testing.T) {
	c, err := Normalize(map[string]float64{"methane": 90, "ethane": 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, c.Fraction(Methane), 1e-15)
	assert.InDelta(t, 0.1, c.Fraction(Ethane), 1e-15)

	_, err = Normalize(map[string]float64{"methane": 0})
	require.ErrorIs(t, err, ErrInvalidComposition)

	_, err = Normalize(map[string]float64{"methane": 1, "ethane": -1})
	require.ErrorIs(t, err, ErrInvalidComposition)
}

func TestFractions_ReturnsCopy(t *testing.T) {
	c, err := Pure(Methane)
	require.NoError(t, err)

	x := c.Fractions()
	x[Methane] = 0
	assert.Equal(t, 1.0, c.Fraction(Methane), "composition must not change through a copy")
}

func TestKey_StableAndDistinct(t *testing.T) {
	a, err := New(map[string]float64{"methane": 0.9, "ethane": 0.1})
	require.NoError(t, err)
	b, err := New(map[string]float64{"C2H6": 0.1, "CH4": 0.9})
	require.NoError(t, err)
	c, err := New(map[string]float64{"methane": 0.8, "ethane": 0.2})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

// Gas used by the DETAIL reference program; its molar mass is published to 1e-8.
func TestMolarMass_ReferenceGas(t *testing.T) {
	x := [NumComponents]float64{
		0.77824, 0.02, 0.06, 0.08, 0.03, 0.0015, 0.003, 0.0005, 0.00165, 0.00215, 0.00088,
		0.00024, 0.00015, 0.00009, 0.004, 0.005, 0.002, 0.0001, 0.0025, 0.007, 0.001,
	}
	c, err := FromFractions(x)
	require.NoError(t, err)
	assert.InDelta(t, 20.54333051, c.MolarMass(), 1e-8)
}

func ExampleNew() {
	c, err := New(map[string]float64{"methane": 0.9, "CO2": 0.1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s M=%.2f g/mol\n", c, c.MolarMass())
	// Output: CH4=0.9, CO2=0.1 M=18.84 g/mol
}
