// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import "github.com/cpmech/gosl/io"

// Status defines the outcome of one property evaluation
type Status int

// statuses
//  Note: the zero value is Unset, thus an empty result is never OK
const (
	Unset                 Status = iota // nothing has been evaluated
	OK                                  // value is valid
	UnknownMaterial                     // material name is not in the registry
	UnknownProperty                     // kind of property is not one of Kinds()
	OutOfRangeTemperature               // temperature is outside the validity interval
	NonFiniteResult                     // correlation returned ±Inf or NaN (defect in data)
)

// String returns the name of status
func (o Status) String() string {
	switch o {
	case Unset:
		return "Unset"
	case OK:
		return "OK"
	case UnknownMaterial:
		return "UnknownMaterial"
	case UnknownProperty:
		return "UnknownProperty"
	case OutOfRangeTemperature:
		return "OutOfRangeTemperature"
	case NonFiniteResult:
		return "NonFiniteResult"
	}
	return io.Sf("Status(%d)", int(o))
}

// Error holds information about a failed evaluation
type Error struct {
	Status Status  // what went wrong; never OK
	Name   string  // material name as requested
	Kind   Kind    // property; undefined if Status == UnknownMaterial
	T      float64 // requested temperature [K]
	Tmin   float64 // validity interval of correlation [K]
	Tmax   float64 // validity interval of correlation [K]
}

// sentinel errors to be used with errors.Is
var (
	ErrUnknownMaterial = &Error{Status: UnknownMaterial}
	ErrUnknownProperty = &Error{Status: UnknownProperty}
	ErrOutOfRange      = &Error{Status: OutOfRangeTemperature}
	ErrNonFinite       = &Error{Status: NonFiniteResult}
)

// Error implements the error interface
func (o *Error) Error() string {
	switch o.Status {
	case UnknownMaterial:
		return io.Sf("material %q is not available", o.Name)
	case UnknownProperty:
		return io.Sf("kind of property %d is not available. options are %v", int(o.Kind), Kinds())
	case OutOfRangeTemperature:
		return io.Sf("%s of %s: temperature T = %g K is outside [%g, %g] K", o.Kind, o.Name, o.T, o.Tmin, o.Tmax)
	case NonFiniteResult:
		return io.Sf("%s of %s: correlation gives a non-finite value at T = %g K", o.Kind, o.Name, o.T)
	}
	return io.Sf("%s: %v", o.Name, o.Status)
}

// Is reports whether target is an *Error with the same status
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == o.Status
}

// StatusOf returns the status carried by err
//  Note: nil gives OK; errors not created by this package give NonFiniteResult
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return NonFiniteResult
}
