// Package amrtest builds synthetic AMR levels for tests.
package amrtest

import (
	"math"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/types"
)

// LevelSpec describes a synthetic level.
type LevelSpec struct {
	Domain types.Box
	Boxes  []types.Box
	NComp  int
	NGrow  types.IntVect
	NProcs int
	Dx     float64 // Cell width, the same along every axis
	Step   int
}

// NewLevel builds a Cartesian, fully periodic level starting at the origin.
// fill sets every cell of every block, ghost cells included.
func NewLevel(spec LevelSpec, fill func(iv types.IntVect, comp int) float64) (lev amr.Level, err error) {
	var (
		dim    = spec.Domain.Dim()
		lo, hi = make([]float64, dim), make([]float64, dim)
		nGrow  = spec.NGrow
	)
	if nGrow == nil {
		nGrow = types.UniformIntVect(dim, 0)
	}
	for d := 0; d < dim; d++ {
		hi[d] = float64(spec.Domain.Length(d)) * spec.Dx
	}
	lev.Geom = amr.NewGeometry(spec.Domain, types.NewRealBox(lo, hi), types.Cartesian,
		types.UniformIntVect(dim, 1))
	lev.Grids = amr.BoxArray(spec.Boxes).Copy()
	lev.DistMap = amr.NewDistributionMap(len(spec.Boxes), max(spec.NProcs, 1))
	lev.Step = spec.Step
	if lev.Data, err = amr.NewMultiFab(lev.Grids, lev.DistMap, spec.NComp, nGrow); err != nil {
		return
	}
	if fill != nil {
		for _, fab := range lev.Data.Fabs {
			for comp := 0; comp < fab.NComp; comp++ {
				fab.DataBox().ForEachPoint(func(iv types.IntVect) {
					fab.Set(iv, comp, fill(iv, comp))
				})
			}
		}
	}
	return
}

func NewHierarchy(levels []amr.Level, refRatios []types.IntVect, varNames []string, time float64) *amr.Hierarchy {
	return &amr.Hierarchy{
		Levels:    levels,
		Time:      time,
		RefRatios: refRatios,
		VarNames:  varNames,
	}
}

// CellValue gives a distinct value for every cell index and component in
// the range -10 <= iv[d] < 90.
func CellValue(iv types.IntVect, comp int) (val float64) {
	val = float64(comp+1) * math.Pow(100, float64(len(iv)))
	for d, i := range iv {
		val += float64(i+10) * math.Pow(100, float64(d))
	}
	return
}
