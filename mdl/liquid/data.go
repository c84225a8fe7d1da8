// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// References:
//   [1] Fink JK and Leibowitz L (1995) Thermodynamic and transport properties of sodium
//       liquid and vapor. Argonne National Laboratory, ANL/RE-95/2
//   [2] OECD/NEA (2015) Handbook on lead-bismuth eutectic alloy and lead properties,
//       materials compatibility, thermal-hydraulics and technologies. NEA No. 7268
//   [3] Assael MJ et al. (2012) Reference data for the density and viscosity of liquid
//       cadmium, cobalt, gallium, indium, mercury, silicon, thallium, and zinc.
//       J Phys Chem Ref Data, 41(3), 033101, http://dx.doi.org/10.1063/1.4729873
//   [4] Incropera FP and DeWitt DP, Fundamentals of heat and mass transfer, Table A.7
//       (saturated liquid metals)

// corrData holds the input data of one correlation
type corrData struct {
	form string     // correlation model
	tmin float64    // validity interval [K]
	tmax float64    // validity interval [K]
	prms dbf.Params // coefficients
}

// matData holds the input data of one material
type matData struct {
	tmelt float64             // melting temperature [K]
	tboil float64             // normal boiling temperature [K]
	corrs [NumKinds]*corrData // correlations
}

// database holds the data of all materials
var database = [NumMaterials]*matData{

	// sodium [1]
	Sodium: {
		tmelt: 371.0,
		tboil: 1156.5,
		corrs: [NumKinds]*corrData{
			Density: {"critical", 371.0, 2000.0, dbf.Params{
				&dbf.P{N: "yc", V: 219.0},
				&dbf.P{N: "f", V: 275.32},
				&dbf.P{N: "g", V: 511.58},
				&dbf.P{N: "h", V: 0.5},
				&dbf.P{N: "Tc", V: 2503.7},
			}},
			SpecificHeat: {"poly", 371.0, 2000.0, dbf.Params{
				&dbf.P{N: "a0", V: 1658.2},
				&dbf.P{N: "a1", V: -0.84790},
				&dbf.P{N: "a2", V: 4.4541e-4},
				&dbf.P{N: "am2", V: -2.9926e6},
			}},
			Viscosity: {"arrhenius", 371.0, 2500.0, dbf.Params{
				&dbf.P{N: "A", V: math.Exp(-6.4406)},
				&dbf.P{N: "n", V: -0.3958},
				&dbf.P{N: "B", V: 556.835},
			}},
			ThermalConductivity: {"poly", 371.0, 1500.0, dbf.Params{
				&dbf.P{N: "a0", V: 124.67},
				&dbf.P{N: "a1", V: -0.11381},
				&dbf.P{N: "a2", V: 5.5226e-5},
				&dbf.P{N: "a3", V: -1.1842e-8},
			}},
		},
	},

	// lead [2]
	Lead: {
		tmelt: 600.6,
		tboil: 2021.0,
		corrs: [NumKinds]*corrData{
			Density: {"poly", 600.6, 2021.0, dbf.Params{
				&dbf.P{N: "a0", V: 11441.0},
				&dbf.P{N: "a1", V: -1.2795},
			}},
			SpecificHeat: {"poly", 600.6, 2000.0, dbf.Params{
				&dbf.P{N: "a0", V: 175.1},
				&dbf.P{N: "a1", V: -4.961e-2},
				&dbf.P{N: "a2", V: 1.985e-5},
				&dbf.P{N: "a3", V: -2.099e-9},
				&dbf.P{N: "am2", V: -1.524e6},
			}},
			Viscosity: {"arrhenius", 600.6, 1473.0, dbf.Params{
				&dbf.P{N: "A", V: 4.55e-4},
				&dbf.P{N: "B", V: 1069.0},
			}},
			ThermalConductivity: {"poly", 600.6, 1300.0, dbf.Params{
				&dbf.P{N: "a0", V: 9.2},
				&dbf.P{N: "a1", V: 0.011},
			}},
		},
	},

	// lead-bismuth eutectic [2]
	LeadBismuth: {
		tmelt: 398.0,
		tboil: 1943.0,
		corrs: [NumKinds]*corrData{
			Density: {"poly", 398.0, 1300.0, dbf.Params{
				&dbf.P{N: "a0", V: 11065.0},
				&dbf.P{N: "a1", V: -1.293},
			}},
			SpecificHeat: {"poly", 398.0, 1100.0, dbf.Params{
				&dbf.P{N: "a0", V: 164.8},
				&dbf.P{N: "a1", V: -3.94e-2},
				&dbf.P{N: "a2", V: 1.25e-5},
				&dbf.P{N: "am2", V: -4.56e5},
			}},
			Viscosity: {"arrhenius", 400.0, 1100.0, dbf.Params{
				&dbf.P{N: "A", V: 4.94e-4},
				&dbf.P{N: "B", V: 754.1},
			}},
			ThermalConductivity: {"poly", 398.0, 1100.0, dbf.Params{
				&dbf.P{N: "a0", V: 3.284},
				&dbf.P{N: "a1", V: 1.617e-2},
				&dbf.P{N: "a2", V: -2.305e-6},
			}},
		},
	},

	// mercury: density and viscosity [3]; cp and k are least-squares fits of [4]
	Mercury: {
		tmelt: 234.32,
		tboil: 629.88,
		corrs: [NumKinds]*corrData{
			Density: {"linref", 234.32, 600.0, dbf.Params{
				&dbf.P{N: "y0", V: 13690.0},
				&dbf.P{N: "s", V: -2.4402},
				&dbf.P{N: "Tr", V: 234.32},
			}},
			SpecificHeat: {"poly", 273.15, 600.0, dbf.Params{
				&dbf.P{N: "a0", V: 157.0068},
				&dbf.P{N: "a1", V: -8.211521e-2},
				&dbf.P{N: "a2", V: 7.728785e-5},
			}},
			Viscosity: {"arrhenius", 234.32, 600.0, dbf.Params{
				&dbf.P{N: "A", V: 5.544980e-4}, // 10^(-0.2561) mPa・s
				&dbf.P{N: "B", V: 307.5793},    // 133.58・ln(10) K
			}},
			ThermalConductivity: {"poly", 273.15, 600.0, dbf.Params{
				&dbf.P{N: "a0", V: 3.963263},
				&dbf.P{N: "a1", V: 1.720197e-2},
				&dbf.P{N: "a2", V: -6.490556e-6},
			}},
		},
	},

	// gallium: density and viscosity [3]
	Gallium: {
		tmelt: 302.91,
		tboil: 2673.0,
		corrs: [NumKinds]*corrData{
			Density: {"linref", 302.91, 800.0, dbf.Params{
				&dbf.P{N: "y0", V: 6073.0},
				&dbf.P{N: "s", V: -0.7555},
				&dbf.P{N: "Tr", V: 302.91},
			}},
			SpecificHeat: {"poly", 302.91, 800.0, dbf.Params{
				&dbf.P{N: "a0", V: 397.6},
			}},
			Viscosity: {"arrhenius", 302.91, 800.0, dbf.Params{
				&dbf.P{N: "A", V: 3.576844e-4}, // 10^(-0.4465) mPa・s
				&dbf.P{N: "B", V: 469.7964},    // 204.03・ln(10) K
			}},
			ThermalConductivity: {"linref", 302.91, 800.0, dbf.Params{
				&dbf.P{N: "y0", V: 28.7},
				&dbf.P{N: "s", V: 0.034},
				&dbf.P{N: "Tr", V: 302.91},
			}},
		},
	},
}
