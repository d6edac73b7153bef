package replicate

import (
	"fmt"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/lift"
	"github.com/notargets/amr3d/types"
)

/*
Extrude fills a fresh 3-D field array over the lifted partition. Every cell
(i, j, z) of a lifted box receives the value at (i, j) of the source box it
was cut from, for all components, so each layer along the new axis is an
exact copy of the source slice. Ghost cells keep their zero value.
*/
func Extrude(src *amr.MultiFab, part *lift.Partition, owners amr.DistributionMap, n int,
	opts Options) (dst *amr.MultiFab, err error) {
	if n <= 0 {
		err = fmt.Errorf("%w: have %d", amr.ErrInvalidThickness, n)
		return
	}
	if err = checkExtrude(src, part, n); err != nil {
		return
	}
	if dst, err = amr.NewMultiFab(part.Grids, owners, src.NComp, src.NGrow.Append(0)); err != nil {
		return
	}
	err = forEachOwner(dst, opts, func(view *amr.OwnerView) error {
		for _, i := range view.Boxes() {
			fab, err := view.Fab(i)
			if err != nil {
				return err
			}
			extrudeBox(src.Fab(part.Parents[i]), fab)
		}
		return nil
	})
	if err != nil {
		dst = nil
	}
	return
}

func checkExtrude(src *amr.MultiFab, part *lift.Partition, n int) error {
	switch src.Dim() {
	case 2:
	case 3:
		return amr.ErrAlreadyThreeDimensional
	default:
		return fmt.Errorf("%w: source field has %d axes", amr.ErrInvalidOption, src.Dim())
	}
	if part.NumSource != src.Len() || len(part.Parents) != len(part.Grids) {
		return fmt.Errorf("%w: partition lifted from %d boxes, source has %d",
			amr.ErrInconsistentHierarchy, part.NumSource, src.Len())
	}
	for i, b := range part.Grids {
		parent := part.Parents[i]
		if b.Dim() != 3 || parent < 0 || parent >= src.Len() ||
			!src.Grids[parent].Contains(b.Project(2)) || b.Lo[2] < 0 || b.Hi[2] > n-1 {
			return fmt.Errorf("%w: lifted box %d %s does not lie over source box %d",
				amr.ErrInconsistentHierarchy, i, b, parent)
		}
	}
	return nil
}

func extrudeBox(src, dst *amr.FArrayBox) {
	var (
		b   = dst.Box
		nx  = b.Length(0)
		iv2 = types.IntVect{b.Lo[0], 0}
		iv3 = types.IntVect{b.Lo[0], 0, 0}
	)
	for comp := 0; comp < dst.NComp; comp++ {
		for z := b.Lo[2]; z <= b.Hi[2]; z++ {
			for j := b.Lo[1]; j <= b.Hi[1]; j++ {
				iv2[1] = j
				iv3[1], iv3[2] = j, z
				copy(dst.Row(iv3, comp, nx), src.Row(iv2, comp, nx))
			}
		}
	}
}
