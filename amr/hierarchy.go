package amr

import (
	"github.com/notargets/amr3d/types"
)

// Level is one refinement tier. Boxes, owners and blocks share indexing.
type Level struct {
	Geom    Geometry
	Grids   BoxArray
	DistMap DistributionMap
	Data    *MultiFab
	Step    int
}

// Hierarchy is a multi level AMR snapshot; level 0 is the coarsest.
type Hierarchy struct {
	Levels    []Level
	Time      float64
	RefRatios []types.IntVect // RefRatios[l] relates level l to l+1
	VarNames  []string
}

func (h *Hierarchy) NumLevels() int { return len(h.Levels) }

func (h *Hierarchy) FinestLevel() int { return len(h.Levels) - 1 }

func (h *Hierarchy) NComp() int { return len(h.VarNames) }

func (h *Hierarchy) Dim() int {
	if len(h.Levels) == 0 {
		return 0
	}
	return h.Levels[0].Geom.Dim()
}

func (h *Hierarchy) Steps() (steps []int) {
	steps = make([]int, len(h.Levels))
	for l, lev := range h.Levels {
		steps[l] = lev.Step
	}
	return
}

// NumPts is the number of valid cells on every level.
func (h *Hierarchy) NumPts() (n []int) {
	n = make([]int, len(h.Levels))
	for l, lev := range h.Levels {
		n[l] = lev.Grids.NumPts()
	}
	return
}
