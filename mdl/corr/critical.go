// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Critical implements the liquid density form that approaches the critical point
//
//   y = yc  +  f・(1 - T/Tc)  +  g・(1 - T/Tc)^h
//
//  Reference:
//   [1] Fink JK and Leibowitz L (1995) Thermodynamic and transport properties of sodium
//       liquid and vapor. Argonne National Laboratory, ANL/RE-95/2
type Critical struct {
	yc float64 // value at the critical point
	f  float64 // linear coefficient
	g  float64 // power coefficient
	h  float64 // exponent
	Tc float64 // critical temperature
}

// add model to factory
func init() {
	allocators["critical"] = func() Model { return new(Critical) }
}

// Init initialises model
func (o *Critical) Init(prms dbf.Params) (err error) {
	o.h = 0.5
	for _, p := range prms {
		switch p.N {
		case "yc":
			o.yc = p.V
		case "f":
			o.f = p.V
		case "g":
			o.g = p.V
		case "h":
			o.h = p.V
		case "Tc":
			o.Tc = p.V
		default:
			return chk.Err("critical: parameter named %q is incorrect\n", p.N)
		}
	}
	err = checkRequired(prms, "critical", "yc", "f", "g", "Tc")
	if err != nil {
		return
	}
	if o.Tc <= 0 {
		return chk.Err("critical: Tc must be positive. Tc = %g is invalid\n", o.Tc)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Critical) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "yc", V: 219.0},
			&dbf.P{N: "f", V: 275.32},
			&dbf.P{N: "g", V: 511.58},
			&dbf.P{N: "h", V: 0.5},
			&dbf.P{N: "Tc", V: 2503.7},
		}
	}
	return dbf.Params{
		&dbf.P{N: "yc", V: o.yc},
		&dbf.P{N: "f", V: o.f},
		&dbf.P{N: "g", V: o.g},
		&dbf.P{N: "h", V: o.h},
		&dbf.P{N: "Tc", V: o.Tc},
	}
}

// F computes y(T)
//  Note: returns NaN above Tc
func (o Critical) F(T float64) float64 {
	x := 1.0 - T/o.Tc
	return o.yc + o.f*x + o.g*math.Pow(x, o.h)
}

// G computes dy/dT
func (o Critical) G(T float64) float64 {
	x := 1.0 - T/o.Tc
	return -(o.f + o.g*o.h*math.Pow(x, o.h-1.0)) / o.Tc
}
