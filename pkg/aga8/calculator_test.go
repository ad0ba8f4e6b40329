package aga8

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ja7ad/aga8/pkg/composition"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var _referenceGas = map[string]float64{
	"methane": 0.77824, "nitrogen": 0.02, "carbon_dioxide": 0.06, "ethane": 0.08,
	"propane": 0.03, "isobutane": 0.0015, "n-butane": 0.003, "isopentane": 0.0005,
	"n-pentane": 0.00165, "n-hexane": 0.00215, "n-heptane": 0.00088, "n-octane": 0.00024,
	"n-nonane": 0.00015, "n-decane": 0.00009, "hydrogen": 0.004, "oxygen": 0.005,
	"carbon_monoxide": 0.002, "water": 0.0001, "hydrogen_sulfide": 0.0025, "helium": 0.007,
	"argon": 0.001,
}

func TestNew_ConfigMerge(t *testing.T) {
	ignoreLogger := cmpopts.IgnoreFields(Config{}, "Logger")
	def := *_defaultConfig()

	cases := []struct {
		name string
		in   *Config
		want Config
	}{
		{"nil_uses_defaults", nil, def},
		{"zero_values_keep_defaults", &Config{}, def},
		{"positive_overrides", &Config{MaxIterations: 10, Tolerance: 1e-6, PMax: 12000, Workers: 3, CacheSize: 4},
			func() Config {
				c := def
				c.MaxIterations, c.Tolerance, c.PMax, c.Workers, c.CacheSize = 10, 1e-6, 12000, 3, 4
				return c
			}()},
		{"negative_ignored", &Config{MaxIterations: -1, Tolerance: -1, Workers: -2}, def},
		{"inverted_temperature_range_falls_back", &Config{TMin: 400, TMax: 300}, def},
		{"widened_range_clamped", &Config{TMin: 100, TMax: 2000, PMax: 1e7}, def},
		{"partly_widened_range_clamped", &Config{TMin: 100, TMax: 350, PMax: 1e7},
			func() Config {
				c := def
				c.TMax = 350
				return c
			}()},
		{"narrowed_temperature_range", &Config{TMin: 250, TMax: 350},
			func() Config {
				c := def
				c.TMin, c.TMax = 250, 350
				return c
			}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.in).Config()
			if diff := cmp.Diff(tc.want, got, ignoreLogger); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
			assert.NotNil(t, got.Logger)
		})
	}
	assert.Equal(t, runtime.GOMAXPROCS(0), def.Workers)
}

func TestCalculator_ReferenceGas(t *testing.T) {
	c := New(nil)
	res, err := c.Calculate(_referenceGas, 50000, 400)
	require.NoError(t, err)

	t.Logf("Z=%.6f rho=%.4f kg/m3 M=%.6f W=%.3f m/s iter=%d",
		res.Z, res.Density, res.MolarMass, res.SpeedOfSound, res.Iterations)

	assert.InDelta(t, 20.54333051, res.MolarMass, 1e-8)
	assert.InEpsilon(t, 1.173801364147326, res.Z, 1e-9)
	assert.InEpsilon(t, 12.80792403648801*20.54333051, res.Density, 1e-9)
	assert.InEpsilon(t, 712.6393684057903, res.SpeedOfSound, 1e-9)
	assert.Equal(t, 50000.0, res.Pressure)
	assert.Equal(t, 400.0, res.Temperature)
	assert.Positive(t, res.Iterations)
}

func TestCalculator_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cfg   *Config
		input map[string]float64
		p, t  float64
		want  error
		kind  ErrorKind
	}{
		{"unknown_component", nil, map[string]float64{"methane": 0.9, "unobtainium": 0.1}, 5000, 300, ErrInvalidComposition, KindInvalidComposition},
		{"sum_below_one", nil, map[string]float64{"methane": 0.9}, 5000, 300, ErrInvalidComposition, KindInvalidComposition},
		{"negative_fraction", nil, map[string]float64{"methane": 1.1, "ethane": -0.1}, 5000, 300, ErrInvalidComposition, KindInvalidComposition},
		{"empty", nil, map[string]float64{}, 5000, 300, ErrInvalidComposition, KindInvalidComposition},
		{"negative_temperature", nil, map[string]float64{"methane": 1}, 5000, -10, ErrOutOfRange, KindOutOfRange},
		{"pressure_above_config", &Config{PMax: 1000}, map[string]float64{"methane": 1}, 5000, 300, ErrOutOfRange, KindOutOfRange},
		{"helium_cap", nil, map[string]float64{"methane": 0.9, "helium": 0.1}, 5000, 300, ErrOutOfRange, KindOutOfRange},
		{"temperature_past_widened_config", &Config{TMax: 2000, PMax: 1e7}, map[string]float64{"methane": 1}, 5000, 1500, ErrOutOfRange, KindOutOfRange},
		{"pressure_past_widened_config", &Config{TMax: 2000, PMax: 1e7}, map[string]float64{"methane": 1}, 500000, 300, ErrOutOfRange, KindOutOfRange},
		{"iteration_cap", &Config{MaxIterations: 1}, _referenceGas, 50000, 400, ErrConvergence, KindConvergence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := New(tc.cfg).Calculate(tc.input, tc.p, tc.t)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.kind, Kind(err))
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestCalculator_CalculateCompositionNil(t *testing.T) {
	_, err := New(nil).CalculateComposition(nil, 5000, 300)
	assert.Equal(t, KindInvalidComposition, Kind(err))
}

func TestCalculator_Batch(t *testing.T) {
	c := New(&Config{Workers: 3})
	comp, err := composition.New(_referenceGas)
	require.NoError(t, err)

	var points []Point
	for _, p := range []float64{500, 5000, 20000} {
		for _, temp := range []float64{260, 320, 400} {
			points = append(points, Point{Pressure: p, Temperature: temp})
		}
	}

	got, err := c.CalculateBatch(context.Background(), comp, points)
	require.NoError(t, err)
	require.Len(t, got, len(points))

	for i, pt := range points {
		want, err := c.CalculateComposition(comp, pt.Pressure, pt.Temperature)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("point %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCalculator_BatchFailure(t *testing.T) {
	c := New(&Config{Workers: 2})
	comp, err := composition.New(map[string]float64{"methane": 1})
	require.NoError(t, err)

	points := []Point{
		{Pressure: 1000, Temperature: 300},
		{Pressure: 1000, Temperature: 900},
		{Pressure: 2000, Temperature: 300},
	}
	got, err := c.CalculateBatch(context.Background(), comp, points)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "point 1")
}

func TestCalculator_BatchCanceled(t *testing.T) {
	c := New(nil)
	comp, err := composition.New(map[string]float64{"methane": 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.CalculateBatch(ctx, comp, []Point{{Pressure: 1000, Temperature: 300}})
	require.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, KindUnknown, Kind(err))
}

func TestCalculator_EngineBuiltOnce(t *testing.T) {
	c := New(nil)
	comp, err := composition.New(map[string]float64{"methane": 0.9, "ethane": 0.1})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.CalculateComposition(comp, 5000, 300)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, 1, c.builds)
	assert.Len(t, c.engines, 1)
}

func TestCalculator_EngineCacheBounded(t *testing.T) {
	c := New(&Config{CacheSize: 2})
	for _, x := range []float64{0.1, 0.2, 0.3} {
		_, err := c.Calculate(map[string]float64{"methane": 1 - x, "nitrogen": x}, 5000, 300)
		require.NoError(t, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, 3, c.builds)
	assert.Len(t, c.engines, 1)
}

func TestCalculator_CalculateJSON(t *testing.T) {
	c := New(nil)

	out, err := c.CalculateJSON(`{"composition":{"methane":0.9,"ethane":0.1},"pressure_kpa":5000,"temperature_k":300}`)
	require.NoError(t, err)

	var fields map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	want := []string{"gas_density_kg_m3", "molar_mass_g_mol", "speed_of_sound_m_s", "z_factor"}
	if diff := cmp.Diff(want, keys, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("wire fields (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.9*16.043+0.1*30.07, fields["molar_mass_g_mol"], 1e-9)

	full, err := c.CalculateJSON(`{"composition":{"CH4":1},"pressure_kpa":5000,"temperature_k":300,"full":true}`)
	require.NoError(t, err)
	var wf WireFull
	require.NoError(t, json.Unmarshal([]byte(full), &wf))
	assert.Equal(t, 5000.0, wf.PressureKPa)
	assert.Equal(t, 300.0, wf.TemperatureK)
	assert.Greater(t, wf.Cp, wf.Cv)

	_, err = c.CalculateJSON(`{"composition":`)
	require.Error(t, err)
	assert.Equal(t, KindUnknown, Kind(err))

	_, err = c.CalculateJSON(`{"composition":{"methane":0.5},"pressure_kpa":5000,"temperature_k":300}`)
	assert.Equal(t, KindInvalidComposition, Kind(err))
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindUnknown},
		{errors.New("boom"), KindUnknown},
		{fmt.Errorf("wrapped: %w", ErrInvalidComposition), KindInvalidComposition},
		{fmt.Errorf("wrapped: %w", ErrOutOfRange), KindOutOfRange},
		{fmt.Errorf("wrapped: %w", ErrConvergence), KindConvergence},
		{ErrNotInitialized, KindNotInitialized},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Kind(tc.err))
		})
	}
}

func ExampleCalculator_Calculate() {
	c := New(nil)
	res, err := c.Calculate(map[string]float64{"methane": 1}, 101.325, 288.15)
	if err != nil {
		fmt.Println(Kind(err), err)
		return
	}
	fmt.Printf("Z=%.3f M=%.3f g/mol\n", res.Z, res.MolarMass)
	// Output: Z=0.998 M=16.043 g/mol
}
