package assemble

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/types"
)

// Input holds the per level pieces of a hierarchy, indexed by level.
type Input struct {
	Geoms     []amr.Geometry
	Grids     []amr.BoxArray
	Owners    []amr.DistributionMap
	Fields    []*amr.MultiFab
	Time      float64
	Steps     []int
	RefRatios []types.IntVect
	VarNames  []string
}

/*
Hierarchy checks the cross level invariants of in and combines the pieces into
one hierarchy. Metadata slices are copied; the field arrays are taken over by
the result. Every violation found is reported, wrapped in
amr.ErrInconsistentHierarchy.
*/
func Hierarchy(in Input) (h *amr.Hierarchy, err error) {
	if err = Check(in); err != nil {
		return
	}
	h = &amr.Hierarchy{
		Levels:    make([]amr.Level, len(in.Geoms)),
		Time:      in.Time,
		RefRatios: make([]types.IntVect, len(in.RefRatios)),
		VarNames:  append([]string(nil), in.VarNames...),
	}
	for l := range in.Geoms {
		h.Levels[l] = amr.Level{
			Geom:    in.Geoms[l].Copy(),
			Grids:   in.Grids[l].Copy(),
			DistMap: in.Owners[l].Copy(),
			Data:    in.Fields[l],
			Step:    in.Steps[l],
		}
	}
	for l, r := range in.RefRatios {
		h.RefRatios[l] = r.Copy()
	}
	return
}

// Check reports every invariant violation of in, nil when there are none.
func Check(in Input) error {
	var (
		errs    error
		nLevels = len(in.Geoms)
		nComp   = len(in.VarNames)
		add     = func(format string, args ...interface{}) {
			errs = multierr.Append(errs, fmt.Errorf(format, args...))
		}
	)
	if nLevels == 0 {
		add("no levels")
	}
	if nComp == 0 {
		add("no component names")
	}
	for _, count := range []struct {
		name string
		n    int
	}{
		{"partitions", len(in.Grids)},
		{"owner assignments", len(in.Owners)},
		{"field arrays", len(in.Fields)},
		{"step counters", len(in.Steps)},
	} {
		if count.n != nLevels {
			add("have %d %s for %d levels", count.n, count.name, nLevels)
		}
	}
	if nLevels > 0 && len(in.RefRatios) != nLevels-1 {
		add("have %d refinement ratios for %d levels", len(in.RefRatios), nLevels)
	}
	if errs != nil {
		return fmt.Errorf("%w: %v", amr.ErrInconsistentHierarchy, errs)
	}

	dim := in.Geoms[0].Dim()
	for l := 0; l < nLevels; l++ {
		var (
			geom  = in.Geoms[l]
			grids = in.Grids[l]
			mf    = in.Fields[l]
		)
		if err := geom.Validate(); err != nil {
			add("level %d: %v", l, err)
		}
		if geom.Dim() != dim {
			add("level %d has %d axes, level 0 has %d", l, geom.Dim(), dim)
		}
		if len(grids) == 0 {
			add("level %d has no boxes", l)
		}
		for i, b := range grids {
			if !geom.Domain.Contains(b) {
				add("level %d box %d %s lies outside the domain %s", l, i, b, geom.Domain)
			}
		}
		for _, pair := range grids.Overlaps() {
			add("level %d boxes %d and %d overlap", l, pair[0], pair[1])
		}
		if err := in.Owners[l].Validate(len(grids)); err != nil {
			add("level %d: %v", l, err)
		}
		if mf == nil {
			add("level %d has no field array", l)
			continue
		}
		if mf.NComp != nComp {
			add("level %d field has %d components, have %d names", l, mf.NComp, nComp)
		}
		if mf.Dim() != dim {
			add("level %d field has %d axes, geometry has %d", l, mf.Dim(), dim)
		}
		if !mf.Grids.Equal(grids) {
			add("level %d field boxes differ from the partition", l)
		}
		if !mf.DistMap.Equal(in.Owners[l]) {
			add("level %d field owners differ from the owner assignment", l)
		}
	}
	for l, r := range in.RefRatios {
		if r.Dim() != dim {
			add("refinement ratio %d %s has %d axes, levels have %d", l, r, r.Dim(), dim)
			continue
		}
		for d, v := range r {
			if v < 1 {
				add("refinement ratio %d is %d along axis %d", l, v, d)
			}
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %v", amr.ErrInconsistentHierarchy, errs)
	}
	return nil
}
