package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ja7ad/aga8/pkg/composition"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the supported components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeComponents(cmd.OutOrStdout())
		},
	}
}

func writeComponents(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tFORMULA\tM (g/mol)")
	fmt.Fprintln(tw, "-\t----\t-------\t---------")
	for _, c := range composition.Components() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.5f\n", int(c)+1, c, c.Formula(), c.MolarMass())
	}
	return tw.Flush()
}
