// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds reference values of liquid metal properties to verify correlations
package ana

// RefPoint holds the properties of a liquid metal at one temperature
type RefPoint struct {
	Material string  // canonical material name
	Θ        float64 // temperature [K]
	Rho      float64 // density [kg/m³]
	Cp       float64 // specific heat [J/(kg・K)]
	Mu       float64 // dynamic viscosity [Pa・s]
	K        float64 // thermal conductivity [W/(m・K)]
	Tol      float64 // relative tolerance of Rho, Cp and K
	TolMu    float64 // relative tolerance of Mu
	Source   string  // origin of values
}

// Nu returns the kinematic viscosity [m²/s]
func (o RefPoint) Nu() float64 {
	return o.Mu / o.Rho
}

// Alpha returns the thermal diffusivity [m²/s]
func (o RefPoint) Alpha() float64 {
	return o.K / (o.Rho * o.Cp)
}

// Pr returns the Prandtl number [-]
func (o RefPoint) Pr() float64 {
	return o.Mu * o.Cp / o.K
}

// Regression returns values computed once with the recommended correlations
//  Note: these points are used to detect any change of coefficients
func Regression() []RefPoint {
	return []RefPoint{
		{"Sodium", 873.15, 811.151, 1253.51, 2.06901e-4, 59.5176, 1e-5, 1e-5, "Fink and Leibowitz (1995) @ 600°C"},
		{"Sodium", 371.0, 925.681, 1383.19, 6.88270e-4, 89.4431, 1e-5, 1e-5, "Fink and Leibowitz (1995) @ melting point"},
		{"Lead", 700.0, 10545.4, 146.269, 2.09528e-3, 16.9, 1e-5, 1e-5, "OECD/NEA (2015)"},
		{"LeadBismuth", 673.15, 10194.6, 142.936, 1.51442e-3, 13.1244, 1e-5, 1e-5, "OECD/NEA (2015) @ 400°C"},
		{"Gallium", 400.0, 5999.65, 397.6, 1.15764e-3, 32.0011, 1e-5, 1e-5, "Assael et al. (2012)"},
		{"Mercury", 300.0, 13529.7, 139.328, 1.54585e-3, 8.5397, 1e-5, 1e-5, "Assael et al. (2012); Incropera Table A.7 fits"},
	}
}

// Handbook returns tabulated values of saturated liquid mercury
//  Note: μ = ν・ρ with ν from the table
//  Reference: Incropera FP and DeWitt DP, Fundamentals of heat and mass transfer, Table A.7
func Handbook() []RefPoint {
	return []RefPoint{
		{"Mercury", 300.0, 13529, 139.3, 1.125e-7 * 13529, 8.54, 5e-3, 6e-2, "Incropera Table A.7"},
		{"Mercury", 400.0, 13287, 136.5, 0.876e-7 * 13287, 9.80, 5e-3, 6e-2, "Incropera Table A.7"},
		{"Mercury", 500.0, 13048, 135.3, 0.757e-7 * 13048, 10.95, 5e-3, 6e-2, "Incropera Table A.7"},
		{"Mercury", 600.0, 12809, 135.5, 0.690e-7 * 12809, 11.95, 5e-3, 6e-2, "Incropera Table A.7"},
	}
}
