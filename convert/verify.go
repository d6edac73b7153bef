package convert

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/replicate"
	"github.com/notargets/amr3d/types"
)

/*
Verify checks a converted hierarchy against its source: for Extrude3D every
layer along the new axis must equal the level 0 source slice, for Pseudo3D
every level must flatten back to the source level exactly.
*/
func Verify(src, out *amr.Hierarchy, mode Mode) error {
	if src.NumLevels() == 0 {
		return fmt.Errorf("%w: source has no levels", amr.ErrInconsistentHierarchy)
	}
	if out.Dim() != 3 {
		return fmt.Errorf("%w: output has %d axes", amr.ErrInconsistentHierarchy, out.Dim())
	}
	if !slices.Equal(src.VarNames, out.VarNames) {
		return fmt.Errorf("%w: component names %v, source has %v",
			amr.ErrInconsistentHierarchy, out.VarNames, src.VarNames)
	}
	if out.Time != src.Time {
		return fmt.Errorf("%w: time %g, source has %g", amr.ErrInconsistentHierarchy, out.Time, src.Time)
	}
	switch mode {
	case Extrude3D:
		return verifyExtrude(src, out)
	case Pseudo3D:
		return verifyPseudo(src, out)
	}
	return fmt.Errorf("%w: %s", amr.ErrInvalidOption, mode)
}

func verifyExtrude(src, out *amr.Hierarchy) error {
	if out.NumLevels() != 1 {
		return fmt.Errorf("%w: extruded output has %d levels", amr.ErrInconsistentHierarchy, out.NumLevels())
	}
	var (
		srcLev = src.Levels[0]
		outLev = out.Levels[0]
	)
	if got, want := outLev.Grids.NumPts(), srcLev.Grids.NumPts()*outLev.Geom.Domain.Length(2); got != want {
		return fmt.Errorf("%w: output has %d cells, want %d", amr.ErrInconsistentHierarchy, got, want)
	}
	for i, fab := range outLev.Data.Fabs {
		var (
			b      = fab.Box
			parent = srcLev.Grids.Find(b.Project(2))
			nx     = b.Length(0)
		)
		if parent < 0 {
			return fmt.Errorf("%w: output box %d %s has no source box", amr.ErrInconsistentHierarchy, i, b)
		}
		srcFab := srcLev.Data.Fab(parent)
		for comp := 0; comp < fab.NComp; comp++ {
			for z := b.Lo[2]; z <= b.Hi[2]; z++ {
				for j := b.Lo[1]; j <= b.Hi[1]; j++ {
					row := fab.Row(types.IntVect{b.Lo[0], j, z}, comp, nx)
					if !floats.Same(row, srcFab.Row(types.IntVect{b.Lo[0], j}, comp, nx)) {
						return fmt.Errorf("%w: box %d component %d differs from the source at j = %d, z = %d",
							amr.ErrInconsistentHierarchy, i, comp, j, z)
					}
				}
			}
		}
	}
	return nil
}

func verifyPseudo(src, out *amr.Hierarchy) error {
	if out.NumLevels() != src.NumLevels() {
		return fmt.Errorf("%w: output has %d levels, source has %d",
			amr.ErrInconsistentHierarchy, out.NumLevels(), src.NumLevels())
	}
	if len(out.RefRatios) != len(src.RefRatios) {
		return fmt.Errorf("%w: output has %d ratios, source has %d",
			amr.ErrInconsistentHierarchy, len(out.RefRatios), len(src.RefRatios))
	}
	for l, r := range src.RefRatios {
		if !out.RefRatios[l].Equal(r.Append(1)) {
			return fmt.Errorf("%w: ratio %d is %s, source has %s",
				amr.ErrInconsistentHierarchy, l, out.RefRatios[l], r)
		}
	}
	for l, lev := range out.Levels {
		srcLev := src.Levels[l]
		if lev.Step != srcLev.Step {
			return fmt.Errorf("%w: level %d step %d, source has %d",
				amr.ErrInconsistentHierarchy, l, lev.Step, srcLev.Step)
		}
		if lev.Data.Len() != srcLev.Data.Len() {
			return fmt.Errorf("%w: level %d has %d blocks, source has %d",
				amr.ErrInconsistentHierarchy, l, lev.Data.Len(), srcLev.Data.Len())
		}
		for i, fab := range lev.Data.Fabs {
			flat, err := replicate.Flatten(fab)
			if err != nil {
				return fmt.Errorf("level %d block %d: %w", l, i, err)
			}
			srcFab := srcLev.Data.Fab(i)
			if !flat.Box.Equal(srcFab.Box) || !floats.Same(flat.Data, srcFab.Data) {
				return fmt.Errorf("%w: level %d block %d does not flatten to the source",
					amr.ErrInconsistentHierarchy, l, i)
			}
		}
	}
	return nil
}
