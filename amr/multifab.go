package amr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/amr3d/types"
)

// MultiFab is the field array of one level: one FArrayBox per box of Grids,
// all with the same component count and ghost width.
type MultiFab struct {
	Grids   BoxArray
	DistMap DistributionMap
	NComp   int
	NGrow   types.IntVect
	Fabs    []*FArrayBox
}

// NewMultiFab allocates zero filled blocks for every box.
func NewMultiFab(grids BoxArray, dm DistributionMap, nComp int, nGrow types.IntVect) (mf *MultiFab, err error) {
	if nComp < 1 {
		err = fmt.Errorf("%w: component count %d", ErrInconsistentHierarchy, nComp)
		return
	}
	if err = dm.Validate(len(grids)); err != nil {
		err = fmt.Errorf("%w: %v", ErrInconsistentHierarchy, err)
		return
	}
	for i, b := range grids {
		if b.IsEmpty() || b.Dim() != nGrow.Dim() {
			err = fmt.Errorf("%w: box %d %s does not match ghost width %s",
				ErrInconsistentHierarchy, i, b, nGrow)
			return
		}
	}
	for _, ng := range nGrow {
		if ng < 0 {
			err = fmt.Errorf("%w: negative ghost width %s", ErrInconsistentHierarchy, nGrow)
			return
		}
	}
	mf = &MultiFab{
		Grids:   grids.Copy(),
		DistMap: dm.Copy(),
		NComp:   nComp,
		NGrow:   nGrow.Copy(),
		Fabs:    make([]*FArrayBox, len(grids)),
	}
	for i, b := range grids {
		mf.Fabs[i] = NewFArrayBox(b, nGrow, nComp)
	}
	return
}

func (mf *MultiFab) Dim() int { return mf.NGrow.Dim() }

func (mf *MultiFab) Len() int { return len(mf.Fabs) }

// Fab gives read access to the block of box i.
func (mf *MultiFab) Fab(i int) *FArrayBox { return mf.Fabs[i] }

// ComponentRange is the min and max of one component over all valid cells.
func (mf *MultiFab) ComponentRange(comp int) (lo, hi float64) {
	var (
		first = true
	)
	for _, fab := range mf.Fabs {
		vals := fab.ValidValues(comp)
		if len(vals) == 0 {
			continue
		}
		fmin, fmax := floats.Min(vals), floats.Max(vals)
		if first {
			lo, hi, first = fmin, fmax, false
			continue
		}
		lo, hi = min(lo, fmin), max(hi, fmax)
	}
	return
}
