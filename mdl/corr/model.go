// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package corr implements closed-form correlations of a thermophysical property
// as a function of temperature
//  Note: temperatures are given in Kelvin; the unit of the result is defined
//        by the coefficients
package corr

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines correlation models y(T)
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	F(T float64) float64             // F computes y(T)
	G(T float64) float64             // G computes dy/dT
}

// New correlation model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'corr' database", name)
	}
	return allocator(), nil
}

// Make allocates and initialises a correlation model
func Make(name string, prms dbf.Params) (model Model, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise %q correlation:\n%v", name, err)
	}
	return
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkRequired returns an error if any of the required parameters is missing
func checkRequired(prms dbf.Params, caller string, names ...string) error {
	for _, name := range names {
		if prms.Find(name) == nil {
			return chk.Err("%s: parameter %q is missing\n", caller, name)
		}
	}
	return nil
}
