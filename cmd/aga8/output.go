package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/ja7ad/aga8/pkg/aga8"
	"github.com/ja7ad/aga8/pkg/types"
)

var _csvHeader = []string{
	"pressure_kpa", "temperature_k", "z_factor", "gas_density_kg_m3", "molar_mass_g_mol",
	"speed_of_sound_m_s", "molar_density_mol_l", "cv_j_mol_k", "cp_j_mol_k",
	"isentropic_exponent", "joule_thomson_k_kpa",
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTableHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, "P\tT\tZ\tρ (kg/m³)\tM (g/mol)\tW (m/s)\tCp (J/mol·K)\tκ")
	fmt.Fprintln(tw, "-\t-\t-\t---------\t---------\t-------\t------------\t-")
}

func printTableRow(tw *tabwriter.Writer, r aga8.Result) {
	// fixed decimals; aligned by tabs
	fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.4f\t%.4f\t%.3f\t%.3f\t%.4f\n",
		types.Pressure(r.Pressure).Humanized(), types.Temperature(r.Temperature).Humanized(),
		r.Z, r.Density, r.MolarMass, r.SpeedOfSound, r.Cp, r.IsentropicExponent,
	)
}

func writeTable(w io.Writer, rows []aga8.Result) error {
	tw := newTable(w)
	printTableHeader(tw)
	for _, r := range rows {
		printTableRow(tw, r)
	}
	return tw.Flush()
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

func writeCSV(w io.Writer, rows []aga8.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(_csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			fmtFloat(r.Pressure), fmtFloat(r.Temperature),
			fmtFloat(r.Z), fmtFloat(r.Density), fmtFloat(r.MolarMass), fmtFloat(r.SpeedOfSound),
			fmtFloat(r.MolarDensity), fmtFloat(r.Cv), fmtFloat(r.Cp),
			fmtFloat(r.IsentropicExponent), fmtFloat(r.JouleThomson),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows []aga8.Result) error {
	out := make([]aga8.WireFull, len(rows))
	for i, r := range rows {
		out[i] = r.WireFull()
	}
	return encodeJSON(w, out)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFile creates path (and its directory) and writes rows with fn.
func writeFile(path string, rows []aga8.Result, fn func(io.Writer, []aga8.Result) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// emit writes rows to stdout as a table (or JSON) and to the optional files.
func emit(w io.Writer, rows []aga8.Result, asJSON bool, csvPath, jsonPath string) error {
	if asJSON {
		if err := writeJSON(w, rows); err != nil {
			return err
		}
	} else if err := writeTable(w, rows); err != nil {
		return err
	}
	if csvPath != "" {
		if err := writeFile(csvPath, rows, writeCSV); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, rows, writeJSON); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	return nil
}
