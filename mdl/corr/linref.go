// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinRef implements a straight line through a reference point
//
//   y = y0  +  s・(T - Tr)
//
// where (Tr, y0) is usually the melting point
type LinRef struct {
	y0 float64 // value at reference temperature
	s  float64 // slope dy/dT
	Tr float64 // reference temperature
}

// add model to factory
func init() {
	allocators["linref"] = func() Model { return new(LinRef) }
}

// Init initialises model
func (o *LinRef) Init(prms dbf.Params) (err error) {
	o.s, o.Tr = 0, 0
	for _, p := range prms {
		switch p.N {
		case "y0":
			o.y0 = p.V
		case "s":
			o.s = p.V
		case "Tr":
			o.Tr = p.V
		default:
			return chk.Err("linref: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkRequired(prms, "linref", "y0", "s")
}

// GetPrms gets (an example) of parameters
func (o LinRef) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "y0", V: 1000},
			&dbf.P{N: "s", V: -0.25},
			&dbf.P{N: "Tr", V: 300},
		}
	}
	return dbf.Params{
		&dbf.P{N: "y0", V: o.y0},
		&dbf.P{N: "s", V: o.s},
		&dbf.P{N: "Tr", V: o.Tr},
	}
}

// F computes y(T)
func (o LinRef) F(T float64) float64 {
	return o.y0 + o.s*(T-o.Tr)
}

// G computes dy/dT
func (o LinRef) G(T float64) float64 {
	return o.s
}
