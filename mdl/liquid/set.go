// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Set holds one correlation per kind of property of a material
//  Note: a Set is complete and read-only after construction
type Set struct {
	Material Material // material
	Tmelt    float64  // melting temperature [K]
	Tboil    float64  // normal boiling temperature [K]

	// correlations
	corrs [NumKinds]*Correlation
}

// Correlation returns the correlation of a kind of property
func (o *Set) Correlation(kind Kind) *Correlation {
	if !kind.Valid() {
		chk.Panic("kind of property %d is invalid", int(kind))
	}
	return o.corrs[kind]
}

// Range returns the interval where all correlations are valid
func (o *Set) Range() (Tmin, Tmax float64) {
	Tmin, Tmax = math.Inf(-1), math.Inf(1)
	for _, c := range o.corrs {
		Tmin = math.Max(Tmin, c.Tmin)
		Tmax = math.Min(Tmax, c.Tmax)
	}
	return
}
