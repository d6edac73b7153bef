package lift

import (
	"fmt"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/types"
)

// Partition is a lifted BoxArray together with the source box each lifted
// box was cut from.
type Partition struct {
	Grids     amr.BoxArray
	Parents   []int
	NumSource int
}

// IsOneToOne is true when every source box became exactly one lifted box, in order.
func (p *Partition) IsOneToOne() bool {
	if len(p.Grids) != p.NumSource {
		return false
	}
	for i, parent := range p.Parents {
		if parent != i {
			return false
		}
	}
	return true
}

func checkSource(geom amr.Geometry, grids amr.BoxArray) error {
	switch dim := geom.Dim(); {
	case dim == 3:
		return amr.ErrAlreadyThreeDimensional
	case dim != 2:
		return fmt.Errorf("%w: source has %d axes, need 2", amr.ErrInvalidOption, dim)
	}
	for i, b := range grids {
		if b.Dim() != 2 {
			if b.Dim() == 3 {
				return fmt.Errorf("%w: box %d is %s", amr.ErrAlreadyThreeDimensional, i, b)
			}
			return fmt.Errorf("%w: box %d is %s", amr.ErrInvalidOption, i, b)
		}
	}
	return nil
}

/*
Domain lifts a 2-D level to 3-D with n cells along the new axis. The new axis
spans cell indices [0, n-1] and physical extent [0, n*dx] where dx is the
source cell width along axis 0. Every source box is lifted to span the full
new axis and then re-tiled by SplitBox, bounded by its own in-plane extents
and by n along the new axis (each further capped by opts.MaxGridSize).
*/
func Domain(geom amr.Geometry, grids amr.BoxArray, n int, opts Options) (g3 amr.Geometry, part *Partition, err error) {
	if n <= 0 {
		err = fmt.Errorf("%w: have %d", amr.ErrInvalidThickness, n)
		return
	}
	if err = checkSource(geom, grids); err != nil {
		return
	}
	if g3, err = Geometry(geom, n, geom.CellSize()[0], opts); err != nil {
		return
	}
	part = Boxes(grids, n, opts)
	return
}

// Geometry lifts only the geometry, with n cells of width dz along the new axis.
func Geometry(geom amr.Geometry, n int, dz float64, opts Options) (g3 amr.Geometry, err error) {
	if n <= 0 {
		err = fmt.Errorf("%w: have %d", amr.ErrInvalidThickness, n)
		return
	}
	if err = checkSource(geom, nil); err != nil {
		return
	}
	if err = geom.Validate(); err != nil {
		err = fmt.Errorf("%w: source geometry: %v", amr.ErrInconsistentHierarchy, err)
		return
	}
	if err = opts.Validate(); err != nil {
		return
	}
	if !(dz > 0) {
		err = fmt.Errorf("%w: cell width of the new axis is %g", amr.ErrInvalidOption, dz)
		return
	}
	g3 = amr.NewGeometry(
		geom.Domain.Lift(0, n-1),
		geom.ProbDomain.Append(0, float64(n)*dz),
		geom.Coord,
		opts.periodicity(geom.IsPeriodic),
	)
	err = g3.Validate()
	return
}

// Boxes lifts every box to span [0, n-1] along the new axis and re-tiles it.
func Boxes(grids amr.BoxArray, n int, opts Options) (part *Partition) {
	part = &Partition{NumSource: len(grids)}
	for i, b := range grids {
		maxExtent := types.IntVect{
			opts.bound(0, b.Length(0)),
			opts.bound(1, b.Length(1)),
			opts.bound(2, n),
		}
		for _, sub := range SplitBox(b.Lift(0, n-1), maxExtent) {
			part.Grids = append(part.Grids, sub)
			part.Parents = append(part.Parents, i)
		}
	}
	return
}

// Reshape lifts every box 1:1 to a single cell along the new axis.
func Reshape(grids amr.BoxArray) (part *Partition) {
	part = &Partition{
		Grids:     make(amr.BoxArray, len(grids)),
		Parents:   make([]int, len(grids)),
		NumSource: len(grids),
	}
	for i, b := range grids {
		part.Grids[i] = b.Lift(0, 0)
		part.Parents[i] = i
	}
	return
}

/*
Owners assigns the lifted boxes to compute units. A one to one lift keeps the
source assignment; otherwise the lifted boxes are spread in balanced runs over
the units the source used, in ascending unit order.
*/
func Owners(src amr.DistributionMap, part *Partition) (dm amr.DistributionMap) {
	if part.IsOneToOne() && len(src) == part.NumSource {
		return src.Copy()
	}
	units := src.Owners()
	if len(units) == 0 {
		units = []int{0}
	}
	dm = amr.NewDistributionMap(len(part.Grids), len(units))
	for i, bucket := range dm {
		dm[i] = units[bucket]
	}
	return
}
