package aga8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The package-level state is process-wide; this is the only test that touches it.
func TestInit_Lifecycle(t *testing.T) {
	require.Equal(t, StateNotInitialized, State())
	assert.False(t, Ready())

	_, err := Calculate(map[string]float64{"methane": 1}, 5000, 300)
	require.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, KindNotInitialized, Kind(err))

	_, err = CalculateJSON(`{"composition":{"methane":1},"pressure_kpa":5000,"temperature_k":300}`)
	assert.Equal(t, KindNotInitialized, Kind(err))

	Init(&Config{MaxIterations: 40})
	require.True(t, Ready())
	assert.Equal(t, "ready", State().String())

	// Later calls do not replace the calculator.
	Init(&Config{MaxIterations: 5})
	assert.Equal(t, 40, _default.Load().Config().MaxIterations)

	res, err := Calculate(map[string]float64{"methane": 1}, 5000, 300)
	require.NoError(t, err)
	assert.InDelta(t, 16.043, res.MolarMass, 1e-9)

	out, err := CalculateJSON(`{"composition":{"methane":1},"pressure_kpa":5000,"temperature_k":300}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"z_factor"`)
}
