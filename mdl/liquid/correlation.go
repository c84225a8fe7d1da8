// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"

	"github.com/cpmech/lmprops/mdl/corr"
)

// Correlation holds a correlation model of one property of one material and its
// validity interval [Tmin, Tmax]
//  Note: Eval fails hard outside the validity interval (both ends are included)
type Correlation struct {
	Material Material   // material
	Kind     Kind       // kind of property
	Form     string     // name of correlation model; e.g. "poly"
	Model    corr.Model // actual correlation model
	Tmin     float64    // minimum temperature [K]
	Tmax     float64    // maximum temperature [K]
}

// Unit returns the unit of results
func (o *Correlation) Unit() string {
	return o.Kind.Unit()
}

// InRange tells whether T is within [Tmin, Tmax]
//  Note: NaN is never in range
func (o *Correlation) InRange(T float64) bool {
	return T >= o.Tmin && T <= o.Tmax
}

// Mid returns the midpoint of the validity interval
func (o *Correlation) Mid() float64 {
	return (o.Tmin + o.Tmax) / 2.0
}

// Clamp returns T limited to [Tmin, Tmax]
//  Note: NaN is returned unchanged
func (o *Correlation) Clamp(T float64) float64 {
	if T < o.Tmin {
		return o.Tmin
	}
	if T > o.Tmax {
		return o.Tmax
	}
	return T
}

// F computes the property without checking the validity interval
func (o *Correlation) F(T float64) float64 {
	return o.Model.F(T)
}

// G computes d(property)/dT without checking the validity interval
func (o *Correlation) G(T float64) float64 {
	return o.Model.G(T)
}

// Eval computes the property at T
func (o *Correlation) Eval(T float64) (float64, error) {
	if !o.InRange(T) {
		return math.NaN(), o.fail(OutOfRangeTemperature, T)
	}
	return o.Finite(T, o.Model.F(T))
}

// Deriv computes d(property)/dT at T
func (o *Correlation) Deriv(T float64) (float64, error) {
	if !o.InRange(T) {
		return math.NaN(), o.fail(OutOfRangeTemperature, T)
	}
	return o.Finite(T, o.Model.G(T))
}

// Finite returns val if it is finite; otherwise returns NaN and a NonFiniteResult error
func (o *Correlation) Finite(T, val float64) (float64, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return math.NaN(), o.fail(NonFiniteResult, T)
	}
	return val, nil
}

// fail returns an error for this correlation
func (o *Correlation) fail(status Status, T float64) error {
	return &Error{
		Status: status,
		Name:   o.Material.String(),
		Kind:   o.Kind,
		T:      T,
		Tmin:   o.Tmin,
		Tmax:   o.Tmax,
	}
}
