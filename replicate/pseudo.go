package replicate

import (
	"fmt"

	"github.com/notargets/amr3d/amr"
)

/*
PseudoReplicate copies a 2-D field array into a fresh 3-D one whose boxes are
the source boxes with a single cell along the new axis. Owners are kept.
With extent one and no ghosts along the new axis the block layouts coincide,
so each block, ghost cells included, is copied wholesale.
*/
func PseudoReplicate(src *amr.MultiFab, grids amr.BoxArray, opts Options) (dst *amr.MultiFab, err error) {
	switch src.Dim() {
	case 2:
	case 3:
		err = amr.ErrAlreadyThreeDimensional
		return
	default:
		err = fmt.Errorf("%w: source field has %d axes", amr.ErrInvalidOption, src.Dim())
		return
	}
	if len(grids) != src.Len() {
		err = fmt.Errorf("%w: %d lifted boxes for %d source boxes",
			amr.ErrInconsistentHierarchy, len(grids), src.Len())
		return
	}
	for i, b := range grids {
		if b.Dim() != 3 || b.Length(2) != 1 || !b.Project(2).Equal(src.Grids[i]) {
			err = fmt.Errorf("%w: lifted box %d %s is not a reshape of %s",
				amr.ErrInconsistentHierarchy, i, b, src.Grids[i])
			return
		}
	}
	if dst, err = amr.NewMultiFab(grids, src.DistMap, src.NComp, src.NGrow.Append(0)); err != nil {
		return
	}
	err = forEachOwner(dst, opts, func(view *amr.OwnerView) error {
		for _, i := range view.Boxes() {
			fab, err := view.Fab(i)
			if err != nil {
				return err
			}
			if len(fab.Data) != len(src.Fab(i).Data) {
				return fmt.Errorf("%w: block %d holds %d values, source holds %d",
					amr.ErrInconsistentHierarchy, i, len(fab.Data), len(src.Fab(i).Data))
			}
			copy(fab.Data, src.Fab(i).Data)
		}
		return nil
	})
	if err != nil {
		dst = nil
	}
	return
}

// Flatten drops a singleton new axis from a 3-D block, the inverse of the
// pseudo-3D reshape.
func Flatten(fab *amr.FArrayBox) (flat *amr.FArrayBox, err error) {
	if fab.Dim() != 3 || fab.Box.Length(2) != 1 || fab.NGrow[2] != 0 {
		err = fmt.Errorf("%w: block %s is not one cell thick along axis 2",
			amr.ErrInvalidOption, fab)
		return
	}
	flat = amr.NewFArrayBox(fab.Box.Project(2), fab.NGrow[:2], fab.NComp)
	copy(flat.Data, fab.Data)
	return
}
