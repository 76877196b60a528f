// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	goio "io"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/nairr/opm-material/inp"
	"github.com/nairr/opm-material/mdl/fluid"
	"github.com/nairr/opm-material/mdl/retention"
	"github.com/nairr/opm-material/out"
	"github.com/spf13/cobra"
)

// global flags
var (
	matFile string // material file
	outFile string // output file; stdout if empty
	npts    int    // number of stations
	verbose bool   // show messages
)

// retention flags
var (
	retModel string
	sweMin   float64
)

// fluid flags
var (
	tmin, tmax float64
	pgas       float64
	xN2        float64
)

// column flags
var (
	isGas   bool
	height  float64
	gravity float64
)

// RootCmd is the main command
var RootCmd = &cobra.Command{
	Use:   "matprops",
	Short: "Tabulates material properties of porous media and fluids",
	Long: `Tabulates capillary pressure and relative permeability laws, properties of the
H2O-N2 fluid system and hydrostatic fluid columns together with their derivatives
obtained by automatic differentiation. Results are written in CSV format.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = verbose
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&matFile, "mat", "", "materials file (.mat JSON)")
	RootCmd.PersistentFlags().StringVarP(&outFile, "out", "o", "", "output CSV file; standard output if empty")
	RootCmd.PersistentFlags().IntVarP(&npts, "npts", "n", 11, "number of stations")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")

	retentionCmd.Flags().StringVar(&retModel, "model", "bc", "retention model used when no material is given: bc, vg or lin")
	retentionCmd.Flags().Float64Var(&sweMin, "swemin", 0.05, "minimum effective saturation")

	fluidCmd.Flags().Float64Var(&tmin, "tmin", 283.15, "minimum temperature [K]")
	fluidCmd.Flags().Float64Var(&tmax, "tmax", 363.15, "maximum temperature [K]")
	fluidCmd.Flags().Float64Var(&pgas, "pg", 1e5, "gas pressure [Pa]")
	fluidCmd.Flags().Float64Var(&xN2, "xn2", 0.9, "mole fraction of N2 in the gas")

	columnCmd.Flags().BoolVar(&isGas, "gas", false, "use dry air instead of water when no material is given")
	columnCmd.Flags().Float64Var(&height, "height", 10, "height of column [m] when no material is given")
	columnCmd.Flags().Float64Var(&gravity, "grav", 9.81, "gravity acceleration [m/s²] when no material is given")

	RootCmd.AddCommand(retentionCmd, fluidCmd, columnCmd)
}

var retentionCmd = &cobra.Command{
	Use:   "retention [material]",
	Short: "Tabulate a capillary pressure and relative permeability law",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdl, eff, err := getRetention(args)
		if err != nil {
			return err
		}
		rows, err := out.RetentionTable(mdl, eff, sweMin, npts)
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), rows)
	},
}

var fluidCmd = &cobra.Command{
	Use:   "fluid",
	Short: "Tabulate properties of the H2O-N2 fluid system versus temperature",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := out.FluidTable(tmin, tmax, pgas, xN2, npts)
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), rows)
	},
}

var columnCmd = &cobra.Command{
	Use:   "column [material]",
	Short: "Tabulate pressure and density along a column of fluid",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := getColumn(args)
		if err != nil {
			return err
		}
		rows, err := out.ColumnTable(col, npts)
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), rows)
	},
}

// getRetention returns the retention model of the material in args[0] or, without
// arguments, the example of the model named by the --model flag
func getRetention(args []string) (mdl retention.Model, eff *retention.EffToAbs, err error) {
	if len(args) == 0 {
		mdl, err = retention.New(retModel)
		if err != nil {
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		io.Pf("> retention model %q with example parameters\n", retModel)
		return
	}
	m, err := getMaterial(args[0])
	if err != nil {
		return
	}
	if m.Reten == nil {
		return nil, nil, chk.Err("material %q is not a retention material", args[0])
	}
	io.Pf("> retention model %q of material %q\n", m.Model, m.Name)
	return m.Reten, m.EffToAbs, nil
}

// getColumn returns the column of the material in args[0] or, without arguments, a
// column of water or dry air
func getColumn(args []string) (col *fluid.Column, err error) {
	if len(args) == 0 {
		col = &fluid.Column{Gas: isGas}
		err = col.Init(col.GetPrms(true), height, gravity)
		io.Pf("> column with example parameters; gas = %v\n", isGas)
		return
	}
	m, err := getMaterial(args[0])
	if err != nil {
		return
	}
	if m.Column == nil {
		return nil, chk.Err("material %q is not a column material", args[0])
	}
	io.Pf("> column of material %q\n", m.Name)
	return m.Column, nil
}

// getMaterial reads the materials file and returns one material
func getMaterial(name string) (m *inp.Material, err error) {
	if matFile == "" {
		return nil, chk.Err("materials file must be given with --mat when a material name is given")
	}
	mdb, err := inp.ReadMat("", matFile)
	if err != nil {
		return
	}
	m = mdb.Get(name)
	if m == nil {
		return nil, chk.Err("cannot find material %q in %q", name, matFile)
	}
	return
}

// write writes rows to outFile or to w
func write(w goio.Writer, rows interface{}) error {
	if outFile == "" {
		return out.WriteCSV(w, rows)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return chk.Err("cannot create output file:\n%v", err)
	}
	defer f.Close()
	err = out.WriteCSV(f, rows)
	if err != nil {
		return err
	}
	io.Pf("> file <%s> written\n", outFile)
	return nil
}
