package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ja7ad/aga8/pkg/aga8"
	"github.com/ja7ad/aga8/pkg/composition"
)

type globalOpts struct {
	verbose bool
	maxIter int
	tol     float64
	workers int
}

var (
	g      globalOpts
	logger = zap.NewNop()
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err), zap.String("kind", aga8.Kind(err).String()))
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aga8",
		Short: "Natural gas properties from the AGA8 DETAIL equation of state",
		Long: `The aga8 tool computes compressibility factor, density, molar mass and
speed of sound of natural gas mixtures with the AGA8 DETAIL characterization
equation (21 components, 143.15 K to 473.15 K, up to 280 MPa).

Compositions are comma separated name=fraction pairs. Names accept the
canonical name (methane), the formula (CH4) or an alias (c1, nc4, i-butane).
Pressures accept a unit (kPa, MPa, bar, atm, psia; bare numbers are kPa) and
temperatures accept K, C or F (bare numbers are K).

Examples:
  aga8 calc -c methane=0.9,ethane=0.1 -p "5 MPa" -t 15C
  aga8 sweep -c CH4=0.95,N2=0.05 --p-from 1MPa --p-to 10MPa --p-steps 10 --t-from 280 --t-to 320 --t-steps 3 --csv-file out.csv
  aga8 batch points.yaml --json-file out.json
  echo '{"composition":{"CH4":1},"pressure_kpa":101.325,"temperature_k":288.15}' | aga8 json
  aga8 components`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if g.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging (solver iterations, cache activity)")
	root.PersistentFlags().IntVar(&g.maxIter, "max-iter", 0, "density solver iteration cap per attempt (0 = default 50)")
	root.PersistentFlags().Float64Var(&g.tol, "tol", 0, "density solver relative pressure tolerance (0 = default 1e-9)")
	root.PersistentFlags().IntVar(&g.workers, "workers", 0, "parallel evaluations for sweep and batch (0 = GOMAXPROCS)")

	root.AddCommand(newCalcCmd(), newSweepCmd(), newBatchCmd(), newJSONCmd(), newComponentsCmd())
	return root
}

// calculatorConfig builds the calculator config from the global flags, layered
// over base (may be nil).
func calculatorConfig(base *aga8.Config) *aga8.Config {
	cfg := aga8.Config{}
	if base != nil {
		cfg = *base
	}
	if g.maxIter > 0 {
		cfg.MaxIterations = g.maxIter
	}
	if g.tol > 0 {
		cfg.Tolerance = g.tol
	}
	if g.workers > 0 {
		cfg.Workers = g.workers
	}
	cfg.Logger = logger
	return &cfg
}

// parseComposition parses "methane=0.9,ethane=0.1".
func parseComposition(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not name=fraction", composition.ErrInvalidComposition, part)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: fraction of %q: %v", composition.ErrInvalidComposition, name, err)
		}
		name = strings.TrimSpace(name)
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: %q given twice", composition.ErrInvalidComposition, name)
		}
		out[name] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty composition", composition.ErrInvalidComposition)
	}
	return out, nil
}

// sortedNames returns the keys of m in AGA8 component order; unknown names sort last.
func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	rank := func(n string) int {
		c, err := composition.ParseComponent(n)
		if err != nil {
			return composition.NumComponents
		}
		return int(c)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}
