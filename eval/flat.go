// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"

	"github.com/cpmech/lmprops/mdl/liquid"
)

// Flat interface: one function per property, string-keyed material and a NaN
// sentinel for every failure (UnknownMaterial, OutOfRangeTemperature and
// NonFiniteResult). These functions never panic. Use Query to find out why a
// call returned the sentinel.

// std is the evaluator behind the flat interface: default registry, Strict policy
var std Evaluator

// Sentinel is returned by the flat interface on failure
var Sentinel = math.NaN()

// IsSentinel tells whether v is the failure sentinel
func IsSentinel(v float64) bool {
	return math.IsNaN(v)
}

// GetDensity returns the density [kg/m³] at temperature [K] or the sentinel
func GetDensity(temperature float64, material string) float64 {
	return std.Eval(liquid.Density, temperature, material).Value
}

// GetSpecificHeat returns the specific heat [J/(kg・K)] at temperature [K] or the sentinel
func GetSpecificHeat(temperature float64, material string) float64 {
	return std.Eval(liquid.SpecificHeat, temperature, material).Value
}

// GetViscosity returns the dynamic viscosity [Pa・s] at temperature [K] or the sentinel
func GetViscosity(temperature float64, material string) float64 {
	return std.Eval(liquid.Viscosity, temperature, material).Value
}

// GetThermalConductivity returns the thermal conductivity [W/(m・K)] at temperature [K] or the sentinel
func GetThermalConductivity(temperature float64, material string) float64 {
	return std.Eval(liquid.ThermalConductivity, temperature, material).Value
}

// Query evaluates like the flat functions but returns the full result, which
// distinguishes UnknownMaterial from OutOfRangeTemperature
func Query(kind liquid.Kind, temperature float64, material string) Result {
	return std.Eval(kind, temperature, material)
}
