package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/measure"
)

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "constants",
		Aliases: []string{"k"},
		Short:   "List physical constants and their current values",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.constants(cmd)
		},
	}
}

func (a *app) constants(cmd *cobra.Command) error {
	a.log.Debug("Listing constants", "count", len(measure.Constants()))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tVALUE\tDEFAULT")
	for _, k := range measure.Constants() {
		fmt.Fprintf(w, "%v\t%v\t%v\n", k.Name(), k.Value(), k.Default())
	}
	return w.Flush()
}
