/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/amr3d/InputParameters"
	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/convert"
	"github.com/notargets/amr3d/plotfile"
	"github.com/notargets/amr3d/types"
	"github.com/notargets/amr3d/utils"
)

type Model3D struct {
	Infile      string
	ParamsFile  string
	Mode        convert.Mode
	NCells      int   // Thickness of the extruded axis, extrude only
	IsPeriodic  []int // Empty keeps the source periodicity in plane
	MaxGridSize []int
	Workers     int
	Verify      bool
}

const exampleFile = `
########################################
Title: "Shock bubble"
Infile: plt00100
NCells: 16
IsPeriodic: [1, 1, 1]
MaxGridSize: [32, 32, 16]
Verify: true
########################################
`

func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("infile", "F", "", "2D plotfile directory to convert")
	cmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with conversion parameters, flags take precedence:"+exampleFile)
	cmd.Flags().IntSlice("isPer", nil, "periodicity of the output per axis, 0 or 1, like: --isPer 1,1,1")
	cmd.Flags().IntSlice("maxGridSize", nil, "largest box extent per axis of the output, like: --maxGridSize 32,32,16")
	cmd.Flags().Bool("verify", false, "check the output against the source before writing")
}

func processInput(cmd *cobra.Command, mode convert.Mode) (m3d *Model3D, err error) {
	var (
		flags = cmd.Flags()
		ip    = &InputParameters.ConversionParameters{}
	)
	m3d = &Model3D{Mode: mode, Workers: viper.GetInt("workers")}
	m3d.Infile, _ = flags.GetString("infile")
	m3d.ParamsFile, _ = flags.GetString("inputParametersFile")
	m3d.IsPeriodic, _ = flags.GetIntSlice("isPer")
	m3d.MaxGridSize, _ = flags.GetIntSlice("maxGridSize")
	m3d.Verify, _ = flags.GetBool("verify")
	if flags.Lookup("nCells") != nil {
		m3d.NCells, _ = flags.GetInt("nCells")
	}
	if len(m3d.ParamsFile) != 0 {
		var data []byte
		if data, err = afero.ReadFile(appFs, m3d.ParamsFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("%s: %w", m3d.ParamsFile, err)
			return
		}
		if err = ip.Validate(); err != nil {
			err = fmt.Errorf("%s: %w", m3d.ParamsFile, err)
			return
		}
		if len(ip.Mode) != 0 {
			var fileMode convert.Mode
			if fileMode, err = convert.NewMode(ip.Mode); err != nil {
				return
			}
			if fileMode != mode {
				err = fmt.Errorf("%w: %s asks for %s, running %s",
					amr.ErrInvalidOption, m3d.ParamsFile, fileMode, mode)
				return
			}
		}
		m3d.merge(ip, flags.Changed)
	}
	if len(m3d.Infile) == 0 {
		err = fmt.Errorf("must supply a 2D plotfile (-F, --infile)")
		return
	}
	if mode == convert.Extrude3D && m3d.NCells <= 0 {
		err = fmt.Errorf("%w: have %d", amr.ErrInvalidThickness, m3d.NCells)
	}
	return
}

// merge takes the file parameters for every setting not given on the command line.
func (m3d *Model3D) merge(ip *InputParameters.ConversionParameters, changed func(name string) bool) {
	if !changed("infile") && len(ip.Infile) != 0 {
		m3d.Infile = ip.Infile
	}
	if !changed("nCells") && ip.NCells != nil {
		m3d.NCells = *ip.NCells
	}
	if !changed("isPer") && len(ip.IsPeriodic) != 0 {
		m3d.IsPeriodic = ip.IsPeriodic
	}
	if !changed("maxGridSize") && len(ip.MaxGridSize) != 0 {
		m3d.MaxGridSize = ip.MaxGridSize
	}
	if !changed("workers") && ip.Workers != 0 {
		m3d.Workers = ip.Workers
	}
	if !changed("verify") {
		m3d.Verify = m3d.Verify || ip.Verify
	}
}

func (m3d *Model3D) Options(log *zap.Logger) (opts convert.Options) {
	opts = convert.DefaultOptions()
	opts.Lift.Periodicity = m3d.IsPeriodic
	opts.Lift.MaxGridSize = types.NewIntVect(m3d.MaxGridSize...)
	opts.Workers = m3d.Workers
	opts.Logger = log
	return
}

func RunConversion(m3d *Model3D, store *plotfile.Store, log *zap.Logger) (err error) {
	var (
		src, out *amr.Hierarchy
		dest     = plotfile.OutputPath(m3d.Infile)
	)
	if src, err = store.Read(m3d.Infile); err != nil {
		return
	}
	ReportSource(src, log)
	if out, err = convert.Run(src, m3d.Mode, m3d.NCells, m3d.Options(log)); err != nil {
		return
	}
	if m3d.Verify {
		if err = convert.Verify(src, out, m3d.Mode); err != nil {
			return
		}
		log.Info("Verified output against source")
	}
	if err = store.Write(dest, out); err != nil {
		return
	}
	log.Info("Wrote 3D plotfile",
		zap.String("path", dest),
		zap.Int("levels", out.NumLevels()),
		zap.Ints("cells", out.NumPts()),
		zap.String("memory", utils.GetMemUsage()))
	return
}

func ReportSource(h *amr.Hierarchy, log *zap.Logger) {
	log.Info("Read plotfile",
		zap.Int("finestLevel", h.FinestLevel()),
		zap.Int("nComp", h.NComp()),
		zap.Float64("time", h.Time))
	for i, name := range h.VarNames {
		log.Info("Variable", zap.Int("index", i), zap.String("name", name))
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for l, lev := range h.Levels {
		for comp, name := range h.VarNames {
			lo, hi := lev.Data.ComponentRange(comp)
			log.Debug("Component range",
				zap.Int("level", l),
				zap.String("name", name),
				zap.Float64("min", lo),
				zap.Float64("max", hi))
		}
	}
}

func runCommand(cmd *cobra.Command, mode convert.Mode) (err error) {
	var m3d *Model3D
	if m3d, err = processInput(cmd, mode); err != nil {
		logger.Error("Invalid input", zap.Error(err))
		return
	}
	store := plotfile.NewStore(appFs)
	store.Logger = logger
	if err = RunConversion(m3d, store, logger); err != nil {
		logger.Error("Conversion failed", zap.String("infile", m3d.Infile), zap.Error(err))
	}
	return
}
