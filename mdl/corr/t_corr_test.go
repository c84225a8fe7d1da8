// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

func Test_corr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr01. factory")

	_, err := New("spline")
	if err == nil {
		tst.Errorf("New should have failed for unknown model\n")
		return
	}

	names := Names()
	chk.Strings(tst, "names", names, []string{"arrhenius", "critical", "linref", "poly"})

	for _, name := range names {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("Init of %q with example parameters failed: %v\n", name, err)
			return
		}
		y := mdl.F(500)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			tst.Errorf("%q: F(500) = %g is not finite\n", name, y)
		}
	}
}

func Test_corr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr02. poly")

	mdl, err := Make("poly", dbf.Params{
		&dbf.P{N: "a0", V: 1658.2},
		&dbf.P{N: "a1", V: -0.84790},
		&dbf.P{N: "a2", V: 4.4541e-4},
		&dbf.P{N: "am2", V: -2.9926e6},
	})
	if err != nil {
		tst.Errorf("Make failed: %v\n", err)
		return
	}

	T := 873.15
	chk.Float64(tst, "cp(873.15)", 1e-10, mdl.F(T), 1658.2-0.84790*T+4.4541e-4*T*T-2.9926e6/(T*T))

	prms := mdl.GetPrms(false)
	chk.Float64(tst, "a3", 1e-15, prms.Find("a3").V, 0)
	chk.Float64(tst, "am2", 1e-15, prms.Find("am2").V, -2.9926e6)

	for _, x := range utl.LinSpace(371, 2000, 7) {
		chk.DerivScaSca(tst, "dcp/dT", 1e-6, mdl.G(x), x, 1e-2, chk.Verbose, mdl.F)
	}

	_, err = Make("poly", dbf.Params{&dbf.P{N: "b0", V: 1}})
	if err == nil {
		tst.Errorf("Make should have failed with wrong parameter name\n")
	}
	_, err = Make("poly", dbf.Params{&dbf.P{N: "a1", V: 1}})
	if err == nil {
		tst.Errorf("Make should have failed with missing a0\n")
	}
}

func Test_corr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr03. linref and critical")

	lin, err := Make("linref", dbf.Params{
		&dbf.P{N: "y0", V: 13690},
		&dbf.P{N: "s", V: -2.4402},
		&dbf.P{N: "Tr", V: 234.32},
	})
	if err != nil {
		tst.Errorf("Make failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(Tr)", 1e-12, lin.F(234.32), 13690)
	chk.Float64(tst, "dy/dT", 1e-15, lin.G(400), -2.4402)

	crt, err := Make("critical", new(Critical).GetPrms(true))
	if err != nil {
		tst.Errorf("Make failed: %v\n", err)
		return
	}
	chk.Float64(tst, "y(Tc)", 1e-12, crt.F(2503.7), 219.0)
	for _, x := range utl.LinSpace(371, 2000, 7) {
		chk.DerivScaSca(tst, "dρ/dT", 1e-6, crt.G(x), x, 1e-2, chk.Verbose, crt.F)
		if crt.G(x) >= 0 {
			tst.Errorf("critical density must decrease with T; dρ/dT(%g) = %g\n", x, crt.G(x))
		}
	}

	_, err = Make("critical", dbf.Params{
		&dbf.P{N: "yc", V: 1},
		&dbf.P{N: "f", V: 1},
		&dbf.P{N: "g", V: 1},
		&dbf.P{N: "Tc", V: 0},
	})
	if err == nil {
		tst.Errorf("Make should have failed with Tc = 0\n")
	}
}

func Test_corr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr04. arrhenius")

	mdl, err := Make("arrhenius", dbf.Params{
		&dbf.P{N: "A", V: math.Exp(-6.4406)},
		&dbf.P{N: "n", V: -0.3958},
		&dbf.P{N: "B", V: 556.835},
	})
	if err != nil {
		tst.Errorf("Make failed: %v\n", err)
		return
	}

	// ln μ = -6.4406 - 0.3958 ln T + 556.835/T
	T := 873.15
	chk.Float64(tst, "ln μ", 1e-12, math.Log(mdl.F(T)), -6.4406-0.3958*math.Log(T)+556.835/T)
	for _, x := range utl.LinSpace(371, 2500, 7) {
		chk.DerivScaSca(tst, "dμ/dT", 1e-12, mdl.G(x), x, 1e-2, chk.Verbose, mdl.F)
	}

	_, err = Make("arrhenius", dbf.Params{
		&dbf.P{N: "A", V: -1},
		&dbf.P{N: "B", V: 1},
	})
	if err == nil {
		tst.Errorf("Make should have failed with negative A\n")
	}
}
