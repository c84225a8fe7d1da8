// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Kind defines the kind of property
type Kind int

// kinds of property
const (
	Density             Kind = iota // ρ [kg/m³]
	SpecificHeat                    // cp [J/(kg・K)]
	Viscosity                       // μ [Pa・s]
	ThermalConductivity             // k [W/(m・K)]
	NumKinds
)

// kindData holds names, symbols and units of properties
var kindData = [NumKinds]struct {
	name, symbol, unit string
}{
	{"Density", "rho", "kg/m3"},
	{"SpecificHeat", "cp", "J/(kg.K)"},
	{"Viscosity", "mu", "Pa.s"},
	{"ThermalConductivity", "k", "W/(m.K)"},
}

// Kinds returns all kinds of property in order
func Kinds() []Kind {
	return []Kind{Density, SpecificHeat, Viscosity, ThermalConductivity}
}

// Valid tells whether o is one of the known kinds
func (o Kind) Valid() bool {
	return o >= 0 && o < NumKinds
}

// String returns the name of property
func (o Kind) String() string {
	if !o.Valid() {
		return "Kind(?)"
	}
	return kindData[o].name
}

// Symbol returns a short symbol; e.g. "rho"
func (o Kind) Symbol() string {
	if !o.Valid() {
		return "?"
	}
	return kindData[o].symbol
}

// Unit returns the (fixed) SI unit of property
func (o Kind) Unit() string {
	if !o.Valid() {
		return "?"
	}
	return kindData[o].unit
}

// ParseKind finds a kind of property by name or symbol (case-insensitive)
//  Examples: "density", "rho", "SpecificHeat", "cp", "mu", "conductivity"
func ParseKind(s string) (kind Kind, err error) {
	key := strings.ToLower(s)
	for i, d := range kindData {
		if key == strings.ToLower(d.name) || key == d.symbol {
			return Kind(i), nil
		}
	}
	switch key {
	case "dynamicviscosity":
		return Viscosity, nil
	case "conductivity", "lambda":
		return ThermalConductivity, nil
	case "heatcapacity", "c":
		return SpecificHeat, nil
	}
	return -1, chk.Err("property %q is not available. options are %v", s, Kinds())
}
