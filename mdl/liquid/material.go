// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package liquid implements the database of thermophysical properties of liquid metals
//  Units (fixed):
//   temperature          [K]
//   density              [kg/m³]
//   specific heat        [J/(kg・K)]
//   dynamic viscosity    [Pa・s]
//   thermal conductivity [W/(m・K)]
//  Names:
//   materials are found by exact (case-sensitive) match of the canonical name,
//   e.g. "Sodium", or of one of its aliases, e.g. "Na"
package liquid

import "sort"

// Material defines the supported liquid metals
type Material int

// materials
const (
	Sodium      Material = iota // Na
	Lead                        // Pb
	LeadBismuth                 // Pb-Bi eutectic (44.5 wt% Pb)
	Mercury                     // Hg
	Gallium                     // Ga
	NumMaterials
)

// materialNames holds the canonical names
var materialNames = [NumMaterials]string{
	"Sodium",
	"Lead",
	"LeadBismuth",
	"Mercury",
	"Gallium",
}

// materialAliases holds alternative names; e.g. chemical symbols
var materialAliases = map[string]Material{
	"Na":   Sodium,
	"Pb":   Lead,
	"LBE":  LeadBismuth,
	"PbBi": LeadBismuth,
	"Hg":   Mercury,
	"Ga":   Gallium,
}

// Valid tells whether o is one of the supported materials
func (o Material) Valid() bool {
	return o >= 0 && o < NumMaterials
}

// String returns the canonical name
func (o Material) String() string {
	if !o.Valid() {
		return "Material(?)"
	}
	return materialNames[o]
}

// Aliases returns the alternative names of this material
func (o Material) Aliases() (res []string) {
	for name, mat := range materialAliases {
		if mat == o {
			res = append(res, name)
		}
	}
	sort.Strings(res)
	return
}
