package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/aga8/pkg/aga8"
	"github.com/ja7ad/aga8/pkg/composition"
	"github.com/ja7ad/aga8/pkg/types"
)

// batchFile is the YAML input of the batch command:
//
//	composition:
//	  methane: 0.9
//	  ethane: 0.1
//	solver:
//	  max_iterations: 80
//	points:
//	  - {pressure: 5 MPa, temperature: 15C}
//	  - {pressure: "101.325", temperature: "288.15"}
type batchFile struct {
	Composition map[string]float64 `yaml:"composition"`
	Solver      *aga8.Config       `yaml:"solver"`
	Points      []batchPoint       `yaml:"points"`
}

type batchPoint struct {
	Pressure    string `yaml:"pressure"`
	Temperature string `yaml:"temperature"`
}

type batchOpts struct {
	json     bool
	csvPath  string
	jsonPath string
}

func newBatchCmd() *cobra.Command {
	var o batchOpts
	cmd := &cobra.Command{
		Use:   "batch FILE.yaml",
		Short: "Evaluate the state points listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return runBatch(cmd.Context(), f, cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&o.csvPath, "csv-file", "", "also write results to this CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json-file", "", "also write results to this JSON file")
	return cmd
}

func runBatch(ctx context.Context, r io.Reader, w io.Writer, o batchOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	bf, points, err := readBatch(r)
	if err != nil {
		return err
	}
	comp, err := composition.New(bf.Composition)
	if err != nil {
		return err
	}

	c := aga8.New(calculatorConfig(bf.Solver))
	rows, err := c.CalculateBatch(ctx, comp, points)
	if err != nil {
		return err
	}
	logger.Info("batch done", zap.Int("points", len(rows)), zap.String("composition", comp.String()))
	return emit(w, rows, o.json, o.csvPath, o.jsonPath)
}

func readBatch(r io.Reader) (*batchFile, []aga8.Point, error) {
	var bf batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil {
		return nil, nil, fmt.Errorf("batch file: %w", err)
	}
	if len(bf.Points) == 0 {
		return nil, nil, fmt.Errorf("batch file: no points")
	}
	points := make([]aga8.Point, len(bf.Points))
	for i, bp := range bf.Points {
		p, err := types.ParsePressure(bp.Pressure)
		if err != nil {
			return nil, nil, fmt.Errorf("batch file: point %d: %w", i, err)
		}
		t, err := types.ParseTemperature(bp.Temperature)
		if err != nil {
			return nil, nil, fmt.Errorf("batch file: point %d: %w", i, err)
		}
		points[i] = aga8.Point{Pressure: p.KPa(), Temperature: t.Kelvin()}
	}
	return &bf, points, nil
}
