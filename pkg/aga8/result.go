package aga8

import "github.com/ja7ad/aga8/pkg/properties"

// Result is the outcome of one calculation.
type Result struct {
	properties.Result

	Pressure    float64 // kPa
	Temperature float64 // K
	Iterations  int     // density solver iterations, including a retry
}

// Wire is the snake_case boundary form of a Result.
type Wire struct {
	ZFactor      float64 `json:"z_factor" yaml:"z_factor"`
	GasDensity   float64 `json:"gas_density_kg_m3" yaml:"gas_density_kg_m3"`
	MolarMass    float64 `json:"molar_mass_g_mol" yaml:"molar_mass_g_mol"`
	SpeedOfSound float64 `json:"speed_of_sound_m_s" yaml:"speed_of_sound_m_s"`
}

// WireFull extends Wire with the state point and the derived properties.
type WireFull struct {
	Wire `yaml:",inline"`

	PressureKPa        float64 `json:"pressure_kpa" yaml:"pressure_kpa"`
	TemperatureK       float64 `json:"temperature_k" yaml:"temperature_k"`
	MolarDensity       float64 `json:"molar_density_mol_l" yaml:"molar_density_mol_l"`
	Cv                 float64 `json:"cv_j_mol_k" yaml:"cv_j_mol_k"`
	Cp                 float64 `json:"cp_j_mol_k" yaml:"cp_j_mol_k"`
	IsentropicExponent float64 `json:"isentropic_exponent" yaml:"isentropic_exponent"`
	JouleThomson       float64 `json:"joule_thomson_k_kpa" yaml:"joule_thomson_k_kpa"`
	DPdD               float64 `json:"dp_drho_kpa_l_mol" yaml:"dp_drho_kpa_l_mol"`
	DPdT               float64 `json:"dp_dt_kpa_k" yaml:"dp_dt_kpa_k"`
}

// Wire returns the four headline properties.
func (r Result) Wire() Wire {
	return Wire{
		ZFactor:      r.Z,
		GasDensity:   r.Density,
		MolarMass:    r.MolarMass,
		SpeedOfSound: r.SpeedOfSound,
	}
}

// WireFull returns every property of r.
func (r Result) WireFull() WireFull {
	return WireFull{
		Wire:               r.Wire(),
		PressureKPa:        r.Pressure,
		TemperatureK:       r.Temperature,
		MolarDensity:       r.MolarDensity,
		Cv:                 r.Cv,
		Cp:                 r.Cp,
		IsentropicExponent: r.IsentropicExponent,
		JouleThomson:       r.JouleThomson,
		DPdD:               r.DPdD,
		DPdT:               r.DPdT,
	}
}
