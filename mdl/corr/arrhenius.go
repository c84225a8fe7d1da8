// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Arrhenius implements an Arrhenius-type (Andrade) viscosity law
//
//   y = A・Tⁿ・exp(B/T)   thus   ln y = ln A + n ln T + B/T
//
//  Note: n = 0 gives the plain Arrhenius law
type Arrhenius struct {
	A float64 // pre-exponential factor
	n float64 // temperature exponent
	B float64 // activation temperature
}

// add model to factory
func init() {
	allocators["arrhenius"] = func() Model { return new(Arrhenius) }
}

// Init initialises model
func (o *Arrhenius) Init(prms dbf.Params) (err error) {
	o.n = 0
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "n":
			o.n = p.V
		case "B":
			o.B = p.V
		default:
			return chk.Err("arrhenius: parameter named %q is incorrect\n", p.N)
		}
	}
	err = checkRequired(prms, "arrhenius", "A", "B")
	if err != nil {
		return
	}
	if o.A <= 0 {
		return chk.Err("arrhenius: A must be positive. A = %g is invalid\n", o.A)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Arrhenius) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "A", V: 4.55e-4},
			&dbf.P{N: "n", V: 0},
			&dbf.P{N: "B", V: 1069},
		}
	}
	return dbf.Params{
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "B", V: o.B},
	}
}

// F computes y(T)
func (o Arrhenius) F(T float64) float64 {
	return o.A * math.Pow(T, o.n) * math.Exp(o.B/T)
}

// G computes dy/dT
func (o Arrhenius) G(T float64) float64 {
	return o.F(T) * (o.n/T - o.B/(T*T))
}
