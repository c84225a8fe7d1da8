// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"

	"github.com/cpmech/lmprops/mdl/liquid"
)

// derived quantities computed from the basic correlations
//
//   ν  = μ / ρ              kinematic viscosity     [m²/s]
//   α  = k / (ρ・cp)         thermal diffusivity     [m²/s]
//   Pr = μ・cp / k           Prandtl number          [-]
//   β  = -(1/ρ)・dρ/dT       volumetric expansion    [1/K]
//
// All of them fail with the first failing basic property

// KinematicViscosity computes ν = μ/ρ
func (o *Evaluator) KinematicViscosity(T float64, name string) (float64, error) {
	v, err := o.values(T, name, liquid.Viscosity, liquid.Density)
	if err != nil {
		return math.NaN(), err
	}
	return v[0] / v[1], nil
}

// ThermalDiffusivity computes α = k/(ρ・cp)
func (o *Evaluator) ThermalDiffusivity(T float64, name string) (float64, error) {
	v, err := o.values(T, name, liquid.ThermalConductivity, liquid.Density, liquid.SpecificHeat)
	if err != nil {
		return math.NaN(), err
	}
	return v[0] / (v[1] * v[2]), nil
}

// Prandtl computes Pr = μ・cp/k
func (o *Evaluator) Prandtl(T float64, name string) (float64, error) {
	v, err := o.values(T, name, liquid.Viscosity, liquid.SpecificHeat, liquid.ThermalConductivity)
	if err != nil {
		return math.NaN(), err
	}
	return v[0] * v[1] / v[2], nil
}

// ExpansionCoefficient computes β = -(1/ρ)・dρ/dT
func (o *Evaluator) ExpansionCoefficient(T float64, name string) (float64, error) {
	rho, err := o.Eval(liquid.Density, T, name).Get()
	if err != nil {
		return math.NaN(), err
	}
	drho, err := o.Derivative(liquid.Density, T, name).Get()
	if err != nil {
		return math.NaN(), err
	}
	return -drho / rho, nil
}

// values evaluates several properties at once
func (o *Evaluator) values(T float64, name string, kinds ...liquid.Kind) (res []float64, err error) {
	res = make([]float64, len(kinds))
	for i, kind := range kinds {
		res[i], err = o.Eval(kind, T, name).Get()
		if err != nil {
			return nil, err
		}
	}
	return
}
