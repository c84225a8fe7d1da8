// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/lmprops/eval"
	"github.com/cpmech/lmprops/mdl/liquid"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree of lmprops
func newRootCmd() *cobra.Command {

	var policy string

	rootCmd := &cobra.Command{
		Use:   "lmprops",
		Short: "Thermophysical properties of liquid metals",
		Long: `lmprops evaluates density, specific heat, viscosity and thermal conductivity
of liquid metal coolants (sodium, lead, lead-bismuth eutectic, mercury, gallium).
Temperatures are given in Kelvin and results are in SI units.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&policy, "policy", "strict", "out-of-range policy: strict, clamp or extrapolate")

	// evaluator from flags
	evaluator := func() (*eval.Evaluator, error) {
		p, err := eval.ParsePolicy(policy)
		if err != nil {
			return nil, err
		}
		return eval.New(nil, eval.Options{Policy: p}), nil
	}

	// get
	var deriv bool
	getCmd := &cobra.Command{
		Use:   "get <property> <material> <T> [T...]",
		Short: "Evaluate one property of a material at one or more temperatures",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := evaluator()
			if err != nil {
				return err
			}
			kind, err := liquid.ParseKind(args[0])
			if err != nil {
				return err
			}
			temps, err := parseTemps(args[2:])
			if err != nil {
				return err
			}
			failed := false
			for _, T := range temps {
				var res eval.Result
				if deriv {
					res = e.Derivative(kind, T, args[1])
				} else {
					res = e.Eval(kind, T, args[1])
				}
				if !res.OK() {
					failed = true
					cmd.PrintErrln(res.Err())
					continue
				}
				unit := kind.Unit()
				if deriv {
					unit = "(" + unit + ")/K"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", res.Value, unit)
			}
			if failed {
				return chk.Err("evaluation failed")
			}
			return nil
		},
	}
	getCmd.Flags().BoolVarP(&deriv, "derivative", "d", false, "compute d(property)/dT instead of the property")

	// table
	var from, to float64
	var npts int
	var format string
	tableCmd := &cobra.Command{
		Use:   "table <property> <material>",
		Short: "Tabulate one property of a material over a temperature range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := evaluator()
			if err != nil {
				return err
			}
			kind, err := liquid.ParseKind(args[0])
			if err != nil {
				return err
			}
			set, err := e.Registry().Lookup(args[1])
			if err != nil {
				return err
			}
			c := set.Correlation(kind)
			if !cmd.Flags().Changed("from") {
				from = c.Tmin
			}
			if !cmd.Flags().Changed("to") {
				to = c.Tmax
			}
			res, err := e.Table(kind, args[1], from, to, npts)
			if err != nil {
				return err
			}
			out, err := formatTable(format, newTable(set.Material, kind, res))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	tableCmd.Flags().Float64Var(&from, "from", 0, "first temperature [K] (default: lower bound of correlation)")
	tableCmd.Flags().Float64Var(&to, "to", 0, "last temperature [K] (default: upper bound of correlation)")
	tableCmd.Flags().IntVarP(&npts, "npts", "n", 11, "number of temperatures")
	tableCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")

	// derived
	derivedCmd := &cobra.Command{
		Use:   "derived <material> <T>",
		Short: "Compute kinematic viscosity, thermal diffusivity, Prandtl number and expansion coefficient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := evaluator()
			if err != nil {
				return err
			}
			temps, err := parseTemps(args[1:])
			if err != nil {
				return err
			}
			T, name := temps[0], args[0]
			items := []struct {
				label string
				unit  string
				fcn   func(float64, string) (float64, error)
			}{
				{"nu   ", "m2/s", e.KinematicViscosity},
				{"alpha", "m2/s", e.ThermalDiffusivity},
				{"Pr   ", "-", e.Prandtl},
				{"beta ", "1/K", e.ExpansionCoefficient},
			}
			for _, item := range items {
				v, err := item.fcn(T, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %g %s\n", item.label, v, item.unit)
			}
			return nil
		},
	}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List materials, their names and validity intervals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := evaluator()
			if err != nil {
				return err
			}
			reg := e.Registry()
			for _, mat := range reg.Materials() {
				set := reg.Get(mat)
				Tmin, Tmax := set.Range()
				fmt.Fprintf(cmd.OutOrStdout(), "%s (aliases: %s)\n", mat, strings.Join(mat.Aliases(), ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "  melting point = %g K, boiling point = %g K, all properties in [%g, %g] K\n", set.Tmelt, set.Tboil, Tmin, Tmax)
				for _, kind := range liquid.Kinds() {
					c := set.Correlation(kind)
					fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %-10s [%7.2f, %7.2f] K  %s\n", kind, c.Form, c.Tmin, c.Tmax, c.Unit())
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(getCmd, tableCmd, derivedCmd, listCmd)
	return rootCmd
}

// parseTemps converts arguments to temperatures
func parseTemps(args []string) (res []float64, err error) {
	for _, a := range args {
		T, e := strconv.ParseFloat(a, 64)
		if e != nil {
			return nil, chk.Err("temperature %q is invalid", a)
		}
		res = append(res, T)
	}
	return
}
