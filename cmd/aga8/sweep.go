package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ja7ad/aga8/pkg/aga8"
	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/types"
)

type sweepOpts struct {
	composition string
	pFrom, pTo  string
	pSteps      int
	tFrom, tTo  string
	tSteps      int
	json        bool
	csvPath     string
	jsonPath    string
}

func newSweepCmd() *cobra.Command {
	var o sweepOpts
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a pressure × temperature grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.composition, "composition", "c", "", "mole fractions, e.g. methane=0.9,ethane=0.1 (required)")
	cmd.Flags().StringVar(&o.pFrom, "p-from", "", "first pressure (required)")
	cmd.Flags().StringVar(&o.pTo, "p-to", "", "last pressure (default: --p-from)")
	cmd.Flags().IntVar(&o.pSteps, "p-steps", 1, "number of pressures, endpoints included")
	cmd.Flags().StringVar(&o.tFrom, "t-from", "", "first temperature (required)")
	cmd.Flags().StringVar(&o.tTo, "t-to", "", "last temperature (default: --t-from)")
	cmd.Flags().IntVar(&o.tSteps, "t-steps", 1, "number of temperatures, endpoints included")
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&o.csvPath, "csv-file", "", "also write results to this CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json-file", "", "also write results to this JSON file")
	_ = cmd.MarkFlagRequired("composition")
	_ = cmd.MarkFlagRequired("p-from")
	_ = cmd.MarkFlagRequired("t-from")
	return cmd
}

func runSweep(ctx context.Context, w io.Writer, o sweepOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fractions, err := parseComposition(o.composition)
	if err != nil {
		return err
	}
	comp, err := composition.New(fractions)
	if err != nil {
		return err
	}
	points, err := sweepGrid(o)
	if err != nil {
		return err
	}

	c := aga8.New(calculatorConfig(nil))
	start := time.Now()
	rows, err := c.CalculateBatch(ctx, comp, points)
	if err != nil {
		return err
	}
	logger.Info("sweep done",
		zap.Int("points", len(rows)),
		zap.Int("workers", c.Config().Workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return emit(w, rows, o.json, o.csvPath, o.jsonPath)
}

// sweepGrid expands the range flags into points, pressure-major.
func sweepGrid(o sweepOpts) ([]aga8.Point, error) {
	ps, err := pressureRange(o.pFrom, o.pTo, o.pSteps)
	if err != nil {
		return nil, err
	}
	ts, err := temperatureRange(o.tFrom, o.tTo, o.tSteps)
	if err != nil {
		return nil, err
	}
	points := make([]aga8.Point, 0, len(ps)*len(ts))
	for _, p := range ps {
		for _, t := range ts {
			points = append(points, aga8.Point{Pressure: p, Temperature: t})
		}
	}
	return points, nil
}

func pressureRange(from, to string, steps int) ([]float64, error) {
	lo, err := types.ParsePressure(from)
	if err != nil {
		return nil, err
	}
	hi := lo
	if to != "" {
		if hi, err = types.ParsePressure(to); err != nil {
			return nil, err
		}
	}
	return linspace(lo.KPa(), hi.KPa(), steps)
}

func temperatureRange(from, to string, steps int) ([]float64, error) {
	lo, err := types.ParseTemperature(from)
	if err != nil {
		return nil, err
	}
	hi := lo
	if to != "" {
		if hi, err = types.ParseTemperature(to); err != nil {
			return nil, err
		}
	}
	return linspace(lo.Kelvin(), hi.Kelvin(), steps)
}

func linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("steps must be >= 1, got %d", n)
	}
	if n == 1 || lo == hi {
		return []float64{lo}, nil
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out, nil
}
