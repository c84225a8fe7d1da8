// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lmprops/mdl/liquid"
)

// Result holds the outcome of one evaluation: either a value (Status == OK) or a
// failure status; Value is NaN on failure
type Result struct {
	Value  float64       // property value in SI units
	Status liquid.Status // outcome
	Name   string        // material name as requested
	Kind   liquid.Kind   // kind of property
	T      float64       // requested temperature [K]
	Tmin   float64       // validity interval [K]; NaN if material is unknown
	Tmax   float64       // validity interval [K]; NaN if material is unknown

	err error // failure details
}

// OK tells whether the evaluation succeeded
func (o Result) OK() bool {
	return o.Status == liquid.OK
}

// Err returns nil or an *liquid.Error
func (o Result) Err() error {
	if o.Status == liquid.OK {
		return nil
	}
	if o.err == nil {
		return &liquid.Error{Status: o.Status, Name: o.Name, Kind: o.Kind, T: o.T, Tmin: o.Tmin, Tmax: o.Tmax}
	}
	return o.err
}

// Get returns the value and error
func (o Result) Get() (float64, error) {
	return o.Value, o.Err()
}

// String returns a short description of result
func (o Result) String() string {
	if o.OK() {
		return io.Sf("%s(%s, T=%g K) = %g %s", o.Kind.Symbol(), o.Name, o.T, o.Value, o.Kind.Unit())
	}
	return io.Sf("%s(%s, T=%g K) failed: %v", o.Kind.Symbol(), o.Name, o.T, o.Err())
}

// fail sets the status of result from err
func (o Result) fail(err error) Result {
	o.Value = math.NaN()
	o.Status = liquid.StatusOf(err)
	o.err = err
	return o
}
