package replicate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/internal/amrtest"
	"github.com/notargets/amr3d/lift"
	"github.com/notargets/amr3d/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func box(lo, hi types.IntVect) types.Box { return types.NewBox(lo, hi) }

func sourceLevel(t *testing.T, nProcs int) amr.Level {
	lev, err := amrtest.NewLevel(amrtest.LevelSpec{
		Domain: box(types.IntVect{0, 0}, types.IntVect{11, 7}),
		Boxes: []types.Box{
			box(types.IntVect{0, 0}, types.IntVect{7, 7}),
			box(types.IntVect{8, 0}, types.IntVect{11, 3}),
			box(types.IntVect{8, 4}, types.IntVect{11, 7}),
		},
		NComp:  2,
		NGrow:  types.IntVect{1, 2},
		NProcs: nProcs,
		Dx:     1,
	}, amrtest.CellValue)
	require.NoError(t, err)
	return lev
}

func snapshot(mf *amr.MultiFab) (data [][]float64) {
	for _, fab := range mf.Fabs {
		data = append(data, append([]float64(nil), fab.Data...))
	}
	return
}

func TestExtrude(t *testing.T) {
	var (
		lev    = sourceLevel(t, 2)
		before = snapshot(lev.Data)
		n      = 5
	)
	for _, opts := range []lift.Options{
		lift.DefaultOptions(),
		{ZPeriodic: 1, MaxGridSize: types.IntVect{3, 5, 2}},
	} {
		_, part, err := lift.Domain(lev.Geom, lev.Grids, n, opts)
		require.NoError(t, err)
		owners := lift.Owners(lev.DistMap, part)
		mf, err := Extrude(lev.Data, part, owners, n, Options{Workers: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, mf.Dim())
		assert.Equal(t, types.IntVect{1, 2, 0}, mf.NGrow)
		assert.Equal(t, lev.Data.NComp, mf.NComp)
		assert.Equal(t, lev.Grids.NumPts()*n, mf.Grids.NumPts())
		// Every layer equals the source slice, every component
		for i, fab := range mf.Fabs {
			srcFab := lev.Data.Fab(part.Parents[i])
			for comp := 0; comp < mf.NComp; comp++ {
				fab.Box.ForEachPoint(func(iv types.IntVect) {
					require.Equal(t, srcFab.Get(iv[:2], comp), fab.Get(iv, comp))
				})
				// Ghost cells are left at their zero value
				assert.Equal(t, 0., fab.Get(types.IntVect{fab.Box.Lo[0] - 1, fab.Box.Lo[1], fab.Box.Lo[2]}, comp))
			}
		}
	}
	assert.Equal(t, before, snapshot(lev.Data))
}

func TestExtrudeWorkerIndependence(t *testing.T) {
	var (
		lev = sourceLevel(t, 3)
		n   = 4
	)
	_, part, err := lift.Domain(lev.Geom, lev.Grids, n,
		lift.Options{ZPeriodic: 1, MaxGridSize: types.IntVect{2, 2, 1}})
	require.NoError(t, err)
	var reference [][]float64
	for _, nProcs := range []int{1, 2, 5, 16} {
		owners := amr.NewDistributionMap(len(part.Grids), nProcs)
		for _, workers := range []int{1, 2, 0} {
			mf, err := Extrude(lev.Data, part, owners, n, Options{Workers: workers})
			require.NoError(t, err)
			got := snapshot(mf)
			if reference == nil {
				reference = got
				continue
			}
			assert.Equal(t, reference, got, "nProcs %d workers %d", nProcs, workers)
		}
	}
}

func TestExtrudeErrors(t *testing.T) {
	lev := sourceLevel(t, 1)
	_, part, err := lift.Domain(lev.Geom, lev.Grids, 2, lift.DefaultOptions())
	require.NoError(t, err)
	owners := lift.Owners(lev.DistMap, part)

	for _, n := range []int{0, -1} {
		_, err = Extrude(lev.Data, part, owners, n, Options{})
		assert.True(t, errors.Is(err, amr.ErrInvalidThickness))
	}
	mf, err := Extrude(lev.Data, part, owners, 2, Options{})
	require.NoError(t, err)
	_, err = Extrude(mf, part, owners, 2, Options{})
	assert.True(t, errors.Is(err, amr.ErrAlreadyThreeDimensional))

	// Thickness smaller than the lifted partition
	_, err = Extrude(lev.Data, part, owners, 1, Options{})
	assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))

	bad := *part
	bad.Parents = []int{0, 0, 0}
	_, err = Extrude(lev.Data, &bad, owners, 2, Options{})
	assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))

	_, err = Extrude(lev.Data, part, amr.DistributionMap{0}, 2, Options{})
	assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))
}

func TestPseudoReplicate(t *testing.T) {
	var (
		lev    = sourceLevel(t, 2)
		before = snapshot(lev.Data)
		part   = lift.Reshape(lev.Grids)
	)
	mf, err := PseudoReplicate(lev.Data, part.Grids, Options{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, lev.DistMap, mf.DistMap)
	assert.Equal(t, types.IntVect{1, 2, 0}, mf.NGrow)
	for i, fab := range mf.Fabs {
		assert.Equal(t, 1, fab.Box.Length(2))
		srcFab := lev.Data.Fab(i)
		// Every cell, ghosts included, matches the source
		srcFab.DataBox().ForEachPoint(func(iv types.IntVect) {
			for comp := 0; comp < fab.NComp; comp++ {
				require.Equal(t, srcFab.Get(iv, comp), fab.Get(iv.Append(0), comp))
			}
		})
		// Round trip: flattening the new axis reproduces the source block
		flat, err := Flatten(fab)
		require.NoError(t, err)
		assert.True(t, flat.Box.Equal(srcFab.Box))
		assert.Equal(t, srcFab.NGrow, flat.NGrow)
		assert.Equal(t, srcFab.Data, flat.Data)
	}
	// Output shares no storage with the source
	mf.Fabs[0].Data[0] = -1
	assert.Equal(t, before, snapshot(lev.Data))
}

func TestPseudoReplicateErrors(t *testing.T) {
	lev := sourceLevel(t, 1)
	part := lift.Reshape(lev.Grids)
	_, err := PseudoReplicate(lev.Data, part.Grids[:2], Options{})
	assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))

	thick := part.Grids.Copy()
	thick[1] = thick[1].Project(2).Lift(0, 1)
	_, err = PseudoReplicate(lev.Data, thick, Options{})
	assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))

	mf, err := PseudoReplicate(lev.Data, part.Grids, Options{})
	require.NoError(t, err)
	_, err = PseudoReplicate(mf, part.Grids, Options{})
	assert.True(t, errors.Is(err, amr.ErrAlreadyThreeDimensional))

	_, err = Flatten(lev.Data.Fab(0))
	assert.True(t, errors.Is(err, amr.ErrInvalidOption))
}
