// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Poly implements a cubic polynomial with an additional inverse-square term
//
//   y = a0  +  a1 T  +  a2 T²  +  a3 T³  +  am2 / T²
//
//  Note: the inverse-square term is the usual form of specific heat fits of
//        liquid metals; absent coefficients are zero
type Poly struct {
	a0, a1, a2, a3, am2 float64
}

// add model to factory
func init() {
	allocators["poly"] = func() Model { return new(Poly) }
}

// Init initialises model
func (o *Poly) Init(prms dbf.Params) (err error) {
	o.a0, o.a1, o.a2, o.a3, o.am2 = 0, 0, 0, 0, 0
	for _, p := range prms {
		switch p.N {
		case "a0":
			o.a0 = p.V
		case "a1":
			o.a1 = p.V
		case "a2":
			o.a2 = p.V
		case "a3":
			o.a3 = p.V
		case "am2":
			o.am2 = p.V
		default:
			return chk.Err("poly: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkRequired(prms, "poly", "a0")
}

// GetPrms gets (an example) of parameters
func (o Poly) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "a0", V: 1.0},
			&dbf.P{N: "a1", V: -1e-3},
			&dbf.P{N: "a2", V: 1e-6},
			&dbf.P{N: "a3", V: 0},
			&dbf.P{N: "am2", V: -1e3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "a0", V: o.a0},
		&dbf.P{N: "a1", V: o.a1},
		&dbf.P{N: "a2", V: o.a2},
		&dbf.P{N: "a3", V: o.a3},
		&dbf.P{N: "am2", V: o.am2},
	}
}

// F computes y(T)
func (o Poly) F(T float64) float64 {
	return o.a0 + T*(o.a1+T*(o.a2+T*o.a3)) + o.am2/(T*T)
}

// G computes dy/dT
func (o Poly) G(T float64) float64 {
	return o.a1 + T*(2.0*o.a2+3.0*o.a3*T) - 2.0*o.am2/(T*T*T)
}
