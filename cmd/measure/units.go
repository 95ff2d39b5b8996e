package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/measure"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "units",
		Aliases: []string{"u"},
		Short:   "List known units",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.units(cmd)
		},
	}
}

func (a *app) units(cmd *cobra.Command) error {
	a.log.Debug("Listing units", "count", len(measure.Units()))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "SYMBOL\tNAME\tBASE\tTO BASE")
	for _, u := range measure.Units() {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", u.Symbol(), u.Name(), u.Base(), u.BaseConverter().Literal())
	}
	return w.Flush()
}
