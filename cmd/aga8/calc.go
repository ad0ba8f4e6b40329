package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ja7ad/aga8/pkg/aga8"
	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/types"
)

type calcOpts struct {
	composition string
	pressure    string
	temperature string
	normalize   bool
	full        bool
	json        bool
}

func newCalcCmd() *cobra.Command {
	var o calcOpts
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate one state point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.composition, "composition", "c", "", "mole fractions, e.g. methane=0.9,ethane=0.1 (required)")
	cmd.Flags().StringVarP(&o.pressure, "pressure", "p", "", "absolute pressure, e.g. 5MPa, 50bar, 101.325 (kPa) (required)")
	cmd.Flags().StringVarP(&o.temperature, "temperature", "t", "", "temperature, e.g. 300K, 15C, 60F (required)")
	cmd.Flags().BoolVar(&o.normalize, "normalize", false, "rescale fractions to sum to 1 instead of rejecting them")
	cmd.Flags().BoolVar(&o.full, "full", false, "print every derived property")
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("composition")
	_ = cmd.MarkFlagRequired("pressure")
	_ = cmd.MarkFlagRequired("temperature")
	return cmd
}

func runCalc(w io.Writer, o calcOpts) error {
	fractions, err := parseComposition(o.composition)
	if err != nil {
		return err
	}
	p, err := types.ParsePressure(o.pressure)
	if err != nil {
		return err
	}
	t, err := types.ParseTemperature(o.temperature)
	if err != nil {
		return err
	}

	build := composition.New
	if o.normalize {
		build = composition.Normalize
	}
	comp, err := build(fractions)
	if err != nil {
		return err
	}
	if o.normalize {
		fractions = comp.Map()
	}

	c := aga8.New(calculatorConfig(nil))
	res, err := c.CalculateComposition(comp, p.KPa(), t.Kelvin())
	if err != nil {
		return err
	}
	logger.Debug("calc done", zap.Float64("z", res.Z), zap.Int("iterations", res.Iterations))

	if o.json {
		if o.full {
			return writeJSON(w, []aga8.Result{res})
		}
		return encodeJSON(w, res.Wire())
	}
	if !o.full {
		return writeTable(w, []aga8.Result{res})
	}
	return writeDetail(w, fractions, res)
}

// writeDetail prints the composition followed by one property per row.
func writeDetail(w io.Writer, fractions map[string]float64, r aga8.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "COMPONENT\tFRACTION")
	fmt.Fprintln(tw, "---------\t--------")
	for _, name := range sortedNames(fractions) {
		fmt.Fprintf(tw, "%s\t%.6f\n", name, fractions[name])
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "PROPERTY\tVALUE")
	fmt.Fprintln(tw, "--------\t-----")
	rows := []struct {
		name string
		val  string
	}{
		{"pressure", types.Pressure(r.Pressure).Humanized()},
		{"temperature", types.Temperature(r.Temperature).Humanized()},
		{"z factor", fmt.Sprintf("%.8f", r.Z)},
		{"density", fmt.Sprintf("%.6f kg/m³", r.Density)},
		{"molar density", fmt.Sprintf("%.6f mol/l", r.MolarDensity)},
		{"molar mass", fmt.Sprintf("%.6f g/mol", r.MolarMass)},
		{"speed of sound", fmt.Sprintf("%.4f m/s", r.SpeedOfSound)},
		{"cv", fmt.Sprintf("%.4f J/(mol·K)", r.Cv)},
		{"cp", fmt.Sprintf("%.4f J/(mol·K)", r.Cp)},
		{"isentropic exponent", fmt.Sprintf("%.6f", r.IsentropicExponent)},
		{"joule-thomson", fmt.Sprintf("%.6g K/kPa", r.JouleThomson)},
		{"dP/dρ", fmt.Sprintf("%.4f kPa·l/mol", r.DPdD)},
		{"dP/dT", fmt.Sprintf("%.4f kPa/K", r.DPdT)},
		{"iterations", fmt.Sprintf("%d", r.Iterations)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.name, row.val)
	}
	return tw.Flush()
}
