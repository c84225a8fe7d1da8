// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lmprops/eval"
	"github.com/cpmech/lmprops/mdl/liquid"
	"gopkg.in/yaml.v3"
)

// Row holds one line of a table
//  Note: Value is nil when the evaluation failed
type Row struct {
	T      float64  `json:"T" yaml:"T"`
	Value  *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Status string   `json:"status" yaml:"status"`
}

// Table holds values of one property of one material
type Table struct {
	Material string  `json:"material" yaml:"material"`
	Property string  `json:"property" yaml:"property"`
	Unit     string  `json:"unit" yaml:"unit"`
	Tmin     float64 `json:"tmin" yaml:"tmin"`
	Tmax     float64 `json:"tmax" yaml:"tmax"`
	Rows     []Row   `json:"rows" yaml:"rows"`
}

// newTable converts results to a table
func newTable(mat liquid.Material, kind liquid.Kind, res []eval.Result) (o *Table) {
	o = &Table{Material: mat.String(), Property: kind.String(), Unit: kind.Unit()}
	for i, r := range res {
		if i == 0 {
			o.Tmin, o.Tmax = r.Tmin, r.Tmax
		}
		row := Row{T: r.T, Status: r.Status.String()}
		if r.OK() {
			v := r.Value
			row.Value = &v
		}
		o.Rows = append(o.Rows, row)
	}
	return
}

// formatTable returns the table as text, json or yaml
func formatTable(format string, tab *Table) (string, error) {
	switch format {
	case "text", "":
		var buf bytes.Buffer
		buf.WriteString(io.Sf("# %s of %s [%s]; correlation valid in [%g, %g] K\n", tab.Property, tab.Material, tab.Unit, tab.Tmin, tab.Tmax))
		buf.WriteString(io.Sf("# %12s %23s\n", "T [K]", "value"))
		for _, row := range tab.Rows {
			if row.Value == nil {
				buf.WriteString(io.Sf("%14g %23s\n", row.T, row.Status))
				continue
			}
			buf.WriteString(io.Sf("%14g %23.15e\n", row.T, *row.Value))
		}
		return buf.String(), nil
	case "json":
		b, err := json.MarshalIndent(tab, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case "yaml":
		b, err := yaml.Marshal(tab)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", chk.Err("format %q is invalid; options are \"text\", \"json\" and \"yaml\"", format)
}
