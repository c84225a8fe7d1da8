// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eval implements the evaluation of liquid metal properties by material name
package eval

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/lmprops/mdl/liquid"
)

// Policy defines what happens when the temperature is outside the validity interval
//  Note: the same policy is applied to all kinds of property
type Policy int

// policies
const (
	Strict      Policy = iota // fail with OutOfRangeTemperature (default)
	Clamp                     // evaluate at the nearest bound of the validity interval
	Extrapolate               // evaluate the correlation outside its validity interval
)

// String returns the name of policy
func (o Policy) String() string {
	switch o {
	case Strict:
		return "strict"
	case Clamp:
		return "clamp"
	case Extrapolate:
		return "extrapolate"
	}
	return "?"
}

// ParsePolicy returns the policy corresponding to name (case-insensitive)
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "strict", "":
		return Strict, nil
	case "clamp":
		return Clamp, nil
	case "extrapolate":
		return Extrapolate, nil
	}
	return Strict, chk.Err("policy %q is invalid; options are \"strict\", \"clamp\" and \"extrapolate\"", name)
}

// Options holds the configuration of an Evaluator
type Options struct {
	Policy Policy // out-of-range policy
}

// Evaluator evaluates properties of liquid metals
//  Note: the zero value uses the process-wide registry and the Strict policy;
//        Evaluator has no mutable state and can be used concurrently
type Evaluator struct {
	reg  *liquid.Registry
	opts Options
}

// New returns a new Evaluator
//  Input:
//   reg -- registry; nil means liquid.Default()
func New(reg *liquid.Registry, opts Options) *Evaluator {
	return &Evaluator{reg: reg, opts: opts}
}

// Options returns the options of this evaluator
func (o *Evaluator) Options() Options {
	return o.opts
}

// Registry returns the registry used by this evaluator
func (o *Evaluator) Registry() *liquid.Registry {
	if o.reg == nil {
		return liquid.Default()
	}
	return o.reg
}

// Eval computes a property of a material at temperature T [K]
func (o *Evaluator) Eval(kind liquid.Kind, T float64, name string) Result {
	return o.run(kind, T, name, false)
}

// Derivative computes d(property)/dT of a material at temperature T [K]
func (o *Evaluator) Derivative(kind liquid.Kind, T float64, name string) Result {
	return o.run(kind, T, name, true)
}

// GetDensity returns the density [kg/m³]
func (o *Evaluator) GetDensity(T float64, name string) (float64, error) {
	return o.Eval(liquid.Density, T, name).Get()
}

// GetSpecificHeat returns the specific heat [J/(kg・K)]
func (o *Evaluator) GetSpecificHeat(T float64, name string) (float64, error) {
	return o.Eval(liquid.SpecificHeat, T, name).Get()
}

// GetViscosity returns the dynamic viscosity [Pa・s]
func (o *Evaluator) GetViscosity(T float64, name string) (float64, error) {
	return o.Eval(liquid.Viscosity, T, name).Get()
}

// GetThermalConductivity returns the thermal conductivity [W/(m・K)]
func (o *Evaluator) GetThermalConductivity(T float64, name string) (float64, error) {
	return o.Eval(liquid.ThermalConductivity, T, name).Get()
}

// Table evaluates a property at npts evenly spaced temperatures in [T0, T1]
func (o *Evaluator) Table(kind liquid.Kind, name string, T0, T1 float64, npts int) (res []Result, err error) {
	if npts < 2 {
		return nil, chk.Err("number of points must be at least 2. npts = %d is invalid", npts)
	}
	if _, err = o.Registry().Lookup(name); err != nil {
		return
	}
	temps := utl.LinSpace(T0, T1, npts)
	temps[npts-1] = T1
	for _, T := range temps {
		res = append(res, o.Eval(kind, T, name))
	}
	return
}

// run performs the evaluation: lookup, policy and correlation
func (o *Evaluator) run(kind liquid.Kind, T float64, name string, deriv bool) (res Result) {
	res = Result{Value: math.NaN(), Name: name, Kind: kind, T: T, Tmin: math.NaN(), Tmax: math.NaN()}
	if !kind.Valid() {
		return res.fail(&liquid.Error{Status: liquid.UnknownProperty, Name: name, Kind: kind, T: T, Tmin: math.NaN(), Tmax: math.NaN()})
	}
	set, err := o.Registry().Lookup(name)
	if err != nil {
		return res.fail(err)
	}
	c := set.Correlation(kind)
	res.Tmin, res.Tmax = c.Tmin, c.Tmax

	// apply policy
	var val float64
	switch {
	case c.InRange(T):
		val, err = o.compute(c, T, deriv)
	case o.opts.Policy == Clamp && !math.IsNaN(T) && !math.IsInf(T, 0):
		val, err = o.compute(c, c.Clamp(T), deriv)
	case o.opts.Policy == Extrapolate && !math.IsNaN(T) && !math.IsInf(T, 0):
		if deriv {
			val, err = c.Finite(T, c.G(T))
		} else {
			val, err = c.Finite(T, c.F(T))
		}
	default:
		val, err = c.Eval(T) // fails with OutOfRangeTemperature
	}
	if err != nil {
		return res.fail(err)
	}
	res.Value = val
	res.Status = liquid.OK
	return
}

// compute evaluates the correlation or its derivative within the validity interval
func (o *Evaluator) compute(c *liquid.Correlation, T float64, deriv bool) (float64, error) {
	if deriv {
		return c.Deriv(T)
	}
	return c.Eval(T)
}
