package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/aga8/pkg/aga8"
)

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [FILE]",
		Short: "Evaluate a JSON request read from FILE (or stdin)",
		Long: `Reads one request such as

  {"composition": {"methane": 0.9, "ethane": 0.1}, "pressure_kpa": 5000, "temperature_k": 300, "full": true}

and prints the JSON result the browser bridge returns for the same input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runJSON(in, cmd.OutOrStdout())
		},
	}
}

func runJSON(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	out, err := aga8.New(calculatorConfig(nil)).CalculateJSON(string(data))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
