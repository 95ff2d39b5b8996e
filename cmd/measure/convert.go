package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/measure"
	"github.com/govalues/measure/config"
)

// Flags for measure convert
type convertFlags struct {
	float bool     // Use floating-point arithmetic
	set   []string // Constants to set, as name=value
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:     "convert VALUE FROM TO",
		Aliases: []string{"c"},
		Short:   "Convert a value from one unit to another",
		Long: `Convert a value from one unit to another.

The value can be an integer, a decimal, or a fraction such as 3/4. Units are given by symbol or by name, see "measure units". Exact results are followed by their decimal approximation.`,
		Example: `  measure convert 1 m/s kn
  measure convert 100 degC degF
  measure convert 1 kgf N --set gravity=9.81
  measure convert 1 mi km --float`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, f, args)
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&f.float, "float", "f", false, "Use floating-point arithmetic")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "Set a constant, as name=value")

	return cmd
}

func (a *app) convert(cmd *cobra.Command, f convertFlags, args []string) error {
	if err := setConstants(f.set); err != nil {
		return err
	}
	ns := a.ns
	if f.float {
		ns = measure.Float
	}

	q, err := measure.ParseQuantity(args[0], args[1])
	if err != nil {
		return inputError(err)
	}
	u, err := measure.ParseUnit(args[2])
	if err != nil {
		return inputError(err)
	}
	c, err := q.Unit().ConverterTo(u)
	if err != nil {
		return inputError(err)
	}
	a.log.Debug("Converting", "system", ns.Name(), "converter", c.String())

	r, err := q.ToWith(ns, u)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatResult(q, r))
	return nil
}

// formatResult returns the line printed for a conversion, such as
// "1 kgf = 196133/20000 N (9.80665)".
func formatResult(q, r measure.Quantity) string {
	s := fmt.Sprintf("%v = %v", q, r)
	if v, ok := r.Value().(measure.Rational); ok && !v.IsInt() {
		s += " (" + strconv.FormatFloat(r.Float64(), 'g', -1, 64) + ")"
	}
	return s
}

// setConstants sets the constants given as name=value pairs.
// All pairs are checked before any constant is set.
func setConstants(set []string) error {
	cfg := config.Config{Constants: make(map[string]config.Value, len(set))}
	for _, s := range set {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return inputError(fmt.Errorf("invalid --set %q, want name=value", s))
		}
		v, err := measure.ParseRat(value)
		if err != nil {
			return inputError(fmt.Errorf("invalid --set %q: %w", s, err))
		}
		cfg.Constants[name] = config.Value{Rational: v}
	}
	if err := cfg.Apply(); err != nil {
		return inputError(err)
	}
	return nil
}
