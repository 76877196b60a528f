// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material data
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/nairr/opm-material/mdl/fluid"
	"github.com/nairr/opm-material/mdl/retention"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; "reten" or "column"
	Model string     `json:"model"` // name of model; e.g. "bc", "vg", "lin"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Reten    retention.Model     `json:"-"` // retention model
	EffToAbs *retention.EffToAbs `json:"-"` // converter of saturations; with zero residual saturations if not given
	Column   *fluid.Column       `json:"-"` // column of fluid
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Retens  map[string]*Material `json:"-"` // subset with materials/models: retention models
	Columns map[string]*Material `json:"-"` // subset with materials/models: fluid columns
}

// ReadMat reads all materials data from a .mat JSON file
//  Note: io.ReadFile panics on failure; the panic is returned as an error
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	defer func() {
		if r := recover(); r != nil {
			mdb, err = nil, chk.Err("cannot read materials file:\n%v", r)
		}
	}()
	b := io.ReadFile(filepath.Join(dir, fn))
	return ParseMat(b)
}

// ParseMat decodes materials data in JSON format and initialises all models
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials data:\n%v", err)
	}

	// subsets
	mdb.Retens = make(map[string]*Material)
	mdb.Columns = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "reten":
			mdb.Retens[m.Name] = m
		case "column":
			mdb.Columns[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"reten\" and \"column\"", m.Type)
		}
	}

	// alloc/init: retens
	for _, m := range mdb.Retens {
		var mprms, eprms dbf.Params
		for _, p := range m.Prms {
			switch strings.ToLower(p.N) {
			case "swr", "snr":
				eprms = append(eprms, p)
			default:
				mprms = append(mprms, p)
			}
		}
		m.Reten, err = retention.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Reten.Init(mprms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		m.EffToAbs = new(retention.EffToAbs)
		err = m.EffToAbs.Init(eprms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
	}

	// alloc/init: columns
	for _, m := range mdb.Columns {
		var cprms dbf.Params
		H, grav := 0.0, 9.81
		for _, p := range m.Prms {
			switch strings.ToLower(p.N) {
			case "h":
				H = p.V
			case "grav":
				grav = p.V
			default:
				cprms = append(cprms, p)
			}
		}
		m.Column = new(fluid.Column)
		err = m.Column.Init(cprms, H, grav)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	prms := make([]string, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%s\n      ]\n    }",
		o.Name, o.Type, o.Model, o.Extra, strings.Join(prms, ",\n"))
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
