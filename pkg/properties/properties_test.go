package properties

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/detail"
)

func referenceGas(t *testing.T) *composition.Composition {
	t.Helper()
	comp, err := composition.FromFractions([composition.NumComponents]float64{
		0.77824, 0.02, 0.06, 0.08, 0.03, 0.0015, 0.003, 0.0005, 0.00165, 0.00215,
		0.00088, 0.00024, 0.00015, 0.00009, 0.004, 0.005, 0.002, 0.0001, 0.0025,
		0.007, 0.001,
	})
	require.NoError(t, err)
	return comp
}

func TestDerive_ReferencePoint(t *testing.T) {
	comp := referenceGas(t)
	st, err := detail.Evaluate(comp, detail.Conditions{Pressure: 50000, Temperature: 400})
	require.NoError(t, err)

	r := Derive(st, comp)
	t.Logf("Z=%.15f rho=%.12f kg/m3 W=%.12f Cv=%.12f Cp=%.12f kappa=%.12f JT=%.12e",
		r.Z, r.Density, r.SpeedOfSound, r.Cv, r.Cp, r.IsentropicExponent, r.JouleThomson)

	assert.InDelta(t, 20.54333051, r.MolarMass, 1e-8)
	assert.InDelta(t, st.Density*r.MolarMass, r.Density, 1e-12)
	assert.InEpsilon(t, 12.80792403648801*20.54333051, r.Density, 1e-9)
	assert.InEpsilon(t, 712.6393684057903, r.SpeedOfSound, 1e-9)
	assert.InEpsilon(t, 39.12076154430332, r.Cv, 1e-9)
	assert.InEpsilon(t, 58.54617672380667, r.Cp, 1e-9)
	assert.InEpsilon(t, 2.672509225184606, r.IsentropicExponent, 1e-9)
	assert.InEpsilon(t, 7.432969304794577e-05, r.JouleThomson, 1e-9)
	assert.Equal(t, st.Z, r.Z)
	assert.Equal(t, st.DPdD, r.DPdD)
	assert.Equal(t, st.DPdT, r.DPdT)
}

func TestDerive_LowPressureApproachesIdealGas(t *testing.T) {
	comp, err := composition.Pure(composition.Nitrogen)
	require.NoError(t, err)
	st, err := detail.Evaluate(comp, detail.Conditions{Pressure: 1, Temperature: 300})
	require.NoError(t, err)

	r := Derive(st, comp)
	cp0 := IdealHeatCapacity(comp, 300)
	assert.InDelta(t, 1, r.Z, 1e-4)
	assert.InEpsilon(t, cp0, r.Cp, 1e-3)
	assert.InEpsilon(t, cp0-detail.R, r.Cv, 1e-3)
	// Ideal diatomic gas: κ ≈ 1.4, W ≈ 353 m/s at 300 K.
	assert.InDelta(t, 1.4, r.IsentropicExponent, 5e-3)
	assert.InDelta(t, 353, r.SpeedOfSound, 2)
}

func TestIdealHeatCapacity(t *testing.T) {
	cases := []struct {
		name string
		c    composition.Component
		temp float64
		want float64 // J/(mol·K)
		tol  float64
	}{
		{"methane_300K", composition.Methane, 300, 35.78, 0.05},
		{"nitrogen_300K", composition.Nitrogen, 300, 29.12, 0.05},
		{"carbon_dioxide_300K", composition.CarbonDioxide, 300, 37.22, 0.1},
		{"helium_any", composition.Helium, 400, 2.5 * detail.R, 1e-9},
		{"argon_any", composition.Argon, 250, 2.5 * detail.R, 1e-9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comp, err := composition.Pure(tc.c)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, IdealHeatCapacity(comp, tc.temp), tc.tol)
		})
	}
}

func TestIdealHeatCapacity_MixingIsLinear(t *testing.T) {
	mix, err := composition.New(map[string]float64{"methane": 0.7, "ethane": 0.3})
	require.NoError(t, err)
	ch4, err := composition.Pure(composition.Methane)
	require.NoError(t, err)
	c2, err := composition.Pure(composition.Ethane)
	require.NoError(t, err)

	want := 0.7*IdealHeatCapacity(ch4, 320) + 0.3*IdealHeatCapacity(c2, 320)
	assert.InDelta(t, want, IdealHeatCapacity(mix, 320), 1e-12)
}

func ExampleDerive() {
	comp, _ := composition.New(map[string]float64{"methane": 1})
	st, err := detail.Evaluate(comp, detail.Conditions{Pressure: 101.325, Temperature: 288.15})
	if err != nil {
		fmt.Println(err)
		return
	}
	r := Derive(st, comp)
	fmt.Printf("Z=%.3f M=%.3f g/mol\n", r.Z, r.MolarMass)
	// Output: Z=0.998 M=16.043 g/mol
}
