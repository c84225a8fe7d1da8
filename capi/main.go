// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// capi exports the flat property functions with C linkage
//
//  Build:
//   go build -buildmode=c-shared -o liblmprops.so ./capi
//
//  Signatures (see the generated liblmprops.h):
//   double GetDensity(double temperature, const char* material);
//   double GetSpecificHeat(double temperature, const char* material);
//   double GetViscosity(double temperature, const char* material);
//   double GetThermalConductivity(double temperature, const char* material);
//
//  Temperatures are in Kelvin. Every failure (unknown material, NULL material,
//  temperature out of range) returns NaN.
package main

import "C"

import (
	"github.com/cpmech/lmprops/eval"
	"github.com/cpmech/lmprops/mdl/liquid"
)

// call converts the C arguments and evaluates one property
func call(kind liquid.Kind, temperature C.double, material *C.char) C.double {
	if material == nil {
		return C.double(property(kind, float64(temperature), nil))
	}
	name := C.GoString(material)
	return C.double(property(kind, float64(temperature), &name))
}

// property evaluates one property through the flat interface
//  Note: a nil material corresponds to a NULL pointer and gives the sentinel
func property(kind liquid.Kind, temperature float64, material *string) float64 {
	if material == nil {
		return eval.Sentinel
	}
	return eval.Query(kind, temperature, *material).Value
}

//export GetDensity
func GetDensity(temperature C.double, material *C.char) C.double {
	return call(liquid.Density, temperature, material)
}

//export GetSpecificHeat
func GetSpecificHeat(temperature C.double, material *C.char) C.double {
	return call(liquid.SpecificHeat, temperature, material)
}

//export GetViscosity
func GetViscosity(temperature C.double, material *C.char) C.double {
	return call(liquid.Viscosity, temperature, material)
}

//export GetThermalConductivity
func GetThermalConductivity(temperature C.double, material *C.char) C.double {
	return call(liquid.ThermalConductivity, temperature, material)
}

// build the registry when the library is loaded
func init() {
	liquid.Default()
}

func main() {}
