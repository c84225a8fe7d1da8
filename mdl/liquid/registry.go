// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/lmprops/mdl/corr"
)

// nCheck is the number of stations used to verify correlations at construction
const nCheck = 21

// Registry maps material names to sets of correlations
//  Note: a Registry is never modified after NewRegistry returns; thus it can be
//        shared by any number of goroutines without locking
type Registry struct {
	sets   [NumMaterials]*Set  // all sets
	byName map[string]Material // canonical names and aliases
}

// NewRegistry allocates and initialises all correlations in the database
//  Note: every material must have all kinds of properties; each correlation
//        must be finite and positive within its validity interval
func NewRegistry() (o *Registry, err error) {
	o = new(Registry)
	o.byName = make(map[string]Material)
	for i, md := range database {
		mat := Material(i)
		if md == nil {
			return nil, chk.Err("material %q has no data", mat)
		}
		set := &Set{Material: mat, Tmelt: md.tmelt, Tboil: md.tboil}
		for _, kind := range Kinds() {
			cd := md.corrs[kind]
			if cd == nil {
				return nil, chk.Err("%s of %q is missing", kind, mat)
			}
			set.corrs[kind], err = newCorrelation(mat, kind, cd)
			if err != nil {
				return nil, err
			}
		}
		o.sets[mat] = set
		o.byName[mat.String()] = mat
	}
	for name, mat := range materialAliases {
		if _, ok := o.byName[name]; ok {
			return nil, chk.Err("alias %q conflicts with another name", name)
		}
		o.byName[name] = mat
	}
	return
}

// newCorrelation allocates a correlation and verifies it
func newCorrelation(mat Material, kind Kind, cd *corrData) (c *Correlation, err error) {
	if !(cd.tmin > 0 && cd.tmin < cd.tmax) {
		return nil, chk.Err("%s of %q: validity interval [%g, %g] is invalid", kind, mat, cd.tmin, cd.tmax)
	}
	model, err := corr.Make(cd.form, cd.prms)
	if err != nil {
		return nil, chk.Err("%s of %q:\n%v", kind, mat, err)
	}
	c = &Correlation{
		Material: mat,
		Kind:     kind,
		Form:     cd.form,
		Model:    model,
		Tmin:     cd.tmin,
		Tmax:     cd.tmax,
	}
	temps := utl.LinSpace(cd.tmin, cd.tmax, nCheck)
	temps[nCheck-1] = cd.tmax
	for _, T := range temps {
		y := model.F(T)
		if math.IsNaN(y) || math.IsInf(y, 0) || y <= 0 {
			return nil, chk.Err("%s of %q: correlation gives %g at T = %g K within [%g, %g]", kind, mat, y, T, cd.tmin, cd.tmax)
		}
	}
	return
}

// Lookup finds the set of correlations of a material by name
//  Note: name must match exactly (case-sensitive) a canonical name or an alias
func (o *Registry) Lookup(name string) (*Set, error) {
	mat, ok := o.byName[name]
	if !ok {
		return nil, &Error{Status: UnknownMaterial, Name: name, Kind: -1, T: math.NaN()}
	}
	return o.sets[mat], nil
}

// Get returns the set of correlations of a material
func (o *Registry) Get(mat Material) *Set {
	if !mat.Valid() {
		chk.Panic("material %d is invalid", int(mat))
	}
	return o.sets[mat]
}

// Materials returns all materials in order
func (o *Registry) Materials() (res []Material) {
	for _, set := range o.sets {
		res = append(res, set.Material)
	}
	return
}

// default registry
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry
//  Note: the registry is built on first call; the database is static data, thus
//        any construction error is a defect and causes a panic
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry()
		if err != nil {
			chk.Panic("cannot build registry of liquid metals:\n%v", err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
