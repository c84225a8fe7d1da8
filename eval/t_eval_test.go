// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/lmprops/ana"
	"github.com/cpmech/lmprops/mdl/liquid"
)

// flatFcns holds the flat interface in the order of liquid.Kinds()
var flatFcns = []func(float64, string) float64{
	GetDensity,
	GetSpecificHeat,
	GetViscosity,
	GetThermalConductivity,
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. flat interface: midpoints, bounds and idempotence")

	reg := liquid.Default()
	for _, mat := range reg.Materials() {
		set := reg.Get(mat)
		for _, kind := range liquid.Kinds() {
			c := set.Correlation(kind)
			get := flatFcns[kind]
			for _, T := range []float64{c.Tmin, c.Mid(), c.Tmax} {
				v := get(T, mat.String())
				if IsSentinel(v) || math.IsInf(v, 0) || v <= 0 {
					tst.Errorf("%s of %s at T = %g must be finite and positive; got %g\n", kind, mat, T, v)
					continue
				}
				again := get(T, mat.String())
				if math.Float64bits(v) != math.Float64bits(again) {
					tst.Errorf("%s of %s at T = %g is not idempotent: %v != %v\n", kind, mat, T, v, again)
				}
			}
		}
	}
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. unknown material and out of range")

	for _, kind := range liquid.Kinds() {
		for _, name := range []string{"Unobtainium", "sodium", ""} {
			v := flatFcns[kind](500, name)
			if !IsSentinel(v) {
				tst.Errorf("%s of %q should return the sentinel; got %g\n", kind, name, v)
			}
			res := Query(kind, 500, name)
			chk.Int(tst, "status", int(res.Status), int(liquid.UnknownMaterial))
			if !errors.Is(res.Err(), liquid.ErrUnknownMaterial) {
				tst.Errorf("error should be UnknownMaterial; got %v\n", res.Err())
			}
			io.Pforan("%v\n", res)
		}
	}

	// sodium is solid at 300 K
	v := GetDensity(300.0, "Sodium")
	if !IsSentinel(v) {
		tst.Errorf("ρ(Na, 300K) should return the sentinel; got %g\n", v)
	}
	res := Query(liquid.Density, 300.0, "Sodium")
	chk.Int(tst, "status", int(res.Status), int(liquid.OutOfRangeTemperature))
	chk.Float64(tst, "Tmin", 1e-15, res.Tmin, 371.0)
	if !errors.Is(res.Err(), liquid.ErrOutOfRange) {
		tst.Errorf("error should be OutOfRangeTemperature; got %v\n", res.Err())
	}
	io.Pforan("%v\n", res)

	// mercury is liquid at 300 K
	v = GetViscosity(300.0, "Mercury")
	if IsSentinel(v) || math.IsInf(v, 0) || v <= 0 {
		tst.Errorf("μ(Hg, 300K) must be finite and positive; got %g\n", v)
	}

	// NaN temperature
	for _, kind := range liquid.Kinds() {
		res = Query(kind, math.NaN(), "Lead")
		chk.Int(tst, "status(NaN)", int(res.Status), int(liquid.OutOfRangeTemperature))
	}
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. regression and handbook values")

	for _, p := range ana.Regression() {
		io.Pforan("\n%s @ %g K: %s\n", p.Material, p.Θ, p.Source)
		chk.Float64(tst, "ρ ", p.Tol*p.Rho, GetDensity(p.Θ, p.Material), p.Rho)
		chk.Float64(tst, "cp", p.Tol*p.Cp, GetSpecificHeat(p.Θ, p.Material), p.Cp)
		chk.Float64(tst, "μ ", p.TolMu*p.Mu, GetViscosity(p.Θ, p.Material), p.Mu)
		chk.Float64(tst, "k ", p.Tol*p.K, GetThermalConductivity(p.Θ, p.Material), p.K)
	}

	for _, p := range ana.Handbook() {
		io.Pforan("\n%s @ %g K: %s\n", p.Material, p.Θ, p.Source)
		chk.Float64(tst, "ρ ", p.Tol*p.Rho, GetDensity(p.Θ, p.Material), p.Rho)
		chk.Float64(tst, "cp", p.Tol*p.Cp, GetSpecificHeat(p.Θ, p.Material), p.Cp)
		chk.Float64(tst, "μ ", p.TolMu*p.Mu, GetViscosity(p.Θ, p.Material), p.Mu)
		chk.Float64(tst, "k ", p.Tol*p.K, GetThermalConductivity(p.Θ, p.Material), p.K)
	}

	// liquid sodium @ 600°C is of the order of 900 kg/m³
	rho := GetDensity(873.15, "Sodium")
	if rho < 700 || rho > 1000 {
		tst.Errorf("ρ(Na, 873.15K) = %g is not realistic\n", rho)
	}
}

func Test_eval04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval04. density decreases with temperature")

	for _, mat := range liquid.Default().Materials() {
		c := liquid.Default().Get(mat).Correlation(liquid.Density)
		prev := GetDensity(c.Tmin, mat.String())
		temps := utl.LinSpace(c.Tmin, c.Tmax, 51)
		temps[len(temps)-1] = c.Tmax
		for _, T := range temps[1:] {
			cur := GetDensity(T, mat.String())
			if !(cur < prev) {
				tst.Errorf("density of %s must decrease: ρ(%g) = %g\n", mat, T, cur)
				break
			}
			prev = cur
		}
		beta, err := std.ExpansionCoefficient(c.Mid(), mat.String())
		if err != nil {
			tst.Errorf("ExpansionCoefficient failed: %v\n", err)
			continue
		}
		if beta <= 0 {
			tst.Errorf("β of %s must be positive; got %g\n", mat, beta)
		}
		drho := num.DerivCen5(c.Mid(), 1e-2, c.F)
		chk.Float64(tst, "β = -(1/ρ)・dρ/dT", 1e-12, beta, -drho/c.F(c.Mid()))
		io.Pforan("%-12s β(%7.2f) = %g 1/K\n", mat, c.Mid(), beta)
	}
}

func Test_eval05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval05. policies")

	for _, name := range []string{"strict", "Clamp", "EXTRAPOLATE", ""} {
		if _, err := ParsePolicy(name); err != nil {
			tst.Errorf("ParsePolicy(%q) failed: %v\n", name, err)
		}
	}
	if _, err := ParsePolicy("ignore"); err == nil {
		tst.Errorf("ParsePolicy should have failed\n")
	}

	clamp := New(nil, Options{Policy: Clamp})
	extra := New(nil, Options{Policy: Extrapolate})
	chk.String(tst, clamp.Options().Policy.String(), "clamp")

	// below and above the validity interval of sodium density
	Tmin, Tmax := 371.0, 2000.0
	lo, hi := GetDensity(Tmin, "Sodium"), GetDensity(Tmax, "Sodium")
	for _, kind := range liquid.Kinds() {
		c := liquid.Default().Get(liquid.Sodium).Correlation(kind)
		res := clamp.Eval(kind, c.Tmin-50, "Sodium")
		if !res.OK() {
			tst.Errorf("clamp should not fail: %v\n", res.Err())
			continue
		}
		chk.Float64(tst, "clamp low "+kind.Symbol(), 1e-15, res.Value, c.F(c.Tmin))
		res = clamp.Eval(kind, c.Tmax+50, "Sodium")
		chk.Float64(tst, "clamp high "+kind.Symbol(), 1e-15, res.Value, c.F(c.Tmax))
	}
	v, err := clamp.GetDensity(300, "Sodium")
	if err != nil {
		tst.Errorf("clamp failed: %v\n", err)
	}
	chk.Float64(tst, "clamp ρ(300)", 1e-15, v, lo)
	v, _ = clamp.GetDensity(2100, "Sodium")
	chk.Float64(tst, "clamp ρ(2100)", 1e-15, v, hi)

	v, err = extra.GetDensity(300, "Sodium")
	if err != nil {
		tst.Errorf("extrapolate failed: %v\n", err)
	}
	if !(v > lo) {
		tst.Errorf("extrapolated ρ(300) = %g must be larger than ρ(Tmin) = %g\n", v, lo)
	}

	// the critical form is not defined above Tc
	res := extra.Eval(liquid.Density, 2600, "Sodium")
	chk.Int(tst, "status above Tc", int(res.Status), int(liquid.NonFiniteResult))

	// NaN and ±Inf are out of range for every policy
	for _, e := range []*Evaluator{clamp, extra} {
		for _, T := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			for _, kind := range liquid.Kinds() {
				res = e.Eval(kind, T, "Sodium")
				chk.Int(tst, io.Sf("status(%g) %s", T, e.Options().Policy), int(res.Status), int(liquid.OutOfRangeTemperature))
				if !IsSentinel(res.Value) {
					tst.Errorf("%s of Sodium at T = %g with %s policy must be NaN; got %g\n", kind, T, e.Options().Policy, res.Value)
				}
				res = e.Derivative(kind, T, "Sodium")
				chk.Int(tst, io.Sf("status d/dT(%g) %s", T, e.Options().Policy), int(res.Status), int(liquid.OutOfRangeTemperature))
			}
		}
	}

	// unknown material is not affected by the policy
	res = extra.Eval(liquid.Density, 500, "Unobtainium")
	chk.Int(tst, "status unknown", int(res.Status), int(liquid.UnknownMaterial))
}

func Test_eval06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval06. derived quantities and tables")

	T, name := 673.15, "LBE"
	rho := GetDensity(T, name)
	cp := GetSpecificHeat(T, name)
	mu := GetViscosity(T, name)
	k := GetThermalConductivity(T, name)

	nu, err := std.KinematicViscosity(T, name)
	if err != nil {
		tst.Errorf("KinematicViscosity failed: %v\n", err)
		return
	}
	alpha, err := std.ThermalDiffusivity(T, name)
	if err != nil {
		tst.Errorf("ThermalDiffusivity failed: %v\n", err)
		return
	}
	pr, err := std.Prandtl(T, name)
	if err != nil {
		tst.Errorf("Prandtl failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ν", 1e-20, nu, mu/rho)
	chk.Float64(tst, "α", 1e-20, alpha, k/(rho*cp))
	chk.Float64(tst, "Pr", 1e-15, pr, mu*cp/k)
	chk.Float64(tst, "Pr = ν/α", 1e-14, pr, nu/alpha)

	// LBE viscosity starts at 400 K
	_, err = std.Prandtl(398.5, name)
	if !errors.Is(err, liquid.ErrOutOfRange) {
		tst.Errorf("Prandtl @ 398.5 K should fail with OutOfRangeTemperature; got %v\n", err)
	}
	_, err = std.KinematicViscosity(500, "Unobtainium")
	if !errors.Is(err, liquid.ErrUnknownMaterial) {
		tst.Errorf("KinematicViscosity should fail with UnknownMaterial; got %v\n", err)
	}

	d := std.Derivative(liquid.Density, 500, "LeadBismuth")
	chk.Float64(tst, "dρ/dT", 1e-15, d.Value, -1.293)

	res, err := std.Table(liquid.ThermalConductivity, "Pb", 500, 1400, 10)
	if err != nil {
		tst.Errorf("Table failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(table)", len(res), 10)
	chk.Int(tst, "status(500)", int(res[0].Status), int(liquid.OutOfRangeTemperature))
	chk.Int(tst, "status(700)", int(res[2].Status), int(liquid.OK))
	chk.Int(tst, "status(1400)", int(res[9].Status), int(liquid.OutOfRangeTemperature))
	chk.Float64(tst, "k(Pb, 700)", 1e-13, res[2].Value, 9.2+0.011*700)

	_, err = std.Table(liquid.Density, "Unobtainium", 500, 600, 3)
	if err == nil {
		tst.Errorf("Table should have failed with unknown material\n")
	}
	_, err = std.Table(liquid.Density, "Pb", 700, 800, 1)
	if err == nil {
		tst.Errorf("Table should have failed with npts = 1\n")
	}
}

func Test_eval07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval07. concurrent callers")

	names := []string{"Sodium", "Lead", "LeadBismuth", "Mercury", "Gallium", "Unobtainium"}
	temps := []float64{300, 400, 500, 700, 900}
	want := make(map[string][]uint64)
	for _, name := range names {
		for _, T := range temps {
			for _, get := range flatFcns {
				want[name] = append(want[name], math.Float64bits(get(T, name)))
			}
		}
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range names {
				i := 0
				for _, T := range temps {
					for _, get := range flatFcns {
						if math.Float64bits(get(T, name)) != want[name][i] {
							errs <- io.Sf("%s @ %g differs", name, T)
							return
						}
						i++
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		tst.Errorf("%s\n", msg)
	}
}

func Test_eval08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval08. invalid kind and empty result")

	for _, kind := range []liquid.Kind{-1, liquid.NumKinds, 42} {
		res := Query(kind, 500, "Sodium")
		chk.Int(tst, io.Sf("status(kind=%d)", int(kind)), int(res.Status), int(liquid.UnknownProperty))
		if !IsSentinel(res.Value) {
			tst.Errorf("Query with kind %d must return the sentinel; got %g\n", int(kind), res.Value)
		}
		if !errors.Is(res.Err(), liquid.ErrUnknownProperty) {
			tst.Errorf("Query with kind %d should fail with UnknownProperty; got %v\n", int(kind), res.Err())
		}
		res = New(nil, Options{Policy: Clamp}).Derivative(kind, 500, "Sodium")
		chk.Int(tst, "status of derivative", int(res.Status), int(liquid.UnknownProperty))
		io.Pforan("%v\n", res)
	}

	// ParseKind gives -1 on error
	kind, err := liquid.ParseKind("enthalpy")
	if err == nil {
		tst.Errorf("ParseKind should have failed\n")
	}
	if _, err = std.Eval(kind, 500, "Lead").Get(); !errors.Is(err, liquid.ErrUnknownProperty) {
		tst.Errorf("Eval with unparsed kind should fail with UnknownProperty; got %v\n", err)
	}

	// the zero value is not a valid result
	var res Result
	if res.OK() {
		tst.Errorf("empty result must not be OK\n")
	}
	chk.String(tst, res.Status.String(), "Unset")
	if res.Err() == nil {
		tst.Errorf("empty result must carry an error\n")
	}
	if _, err = res.Get(); err == nil {
		tst.Errorf("Get of empty result should fail\n")
	}
}
