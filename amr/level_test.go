package amr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/internal/amrtest"
	"github.com/notargets/amr3d/types"
)

func TestMultiFab(t *testing.T) {
	lev, err := amrtest.NewLevel(amrtest.LevelSpec{
		Domain: types.NewBox(types.IntVect{0, 0}, types.IntVect{7, 3}),
		Boxes: []types.Box{
			types.NewBox(types.IntVect{0, 0}, types.IntVect{3, 3}),
			types.NewBox(types.IntVect{4, 0}, types.IntVect{7, 3}),
		},
		NComp:  2,
		NGrow:  types.IntVect{1, 1},
		NProcs: 2,
		Dx:     0.5,
	}, func(iv types.IntVect, comp int) float64 {
		return float64(iv[0] + 10*comp)
	})
	require.NoError(t, err)
	mf := lev.Data
	assert.Equal(t, 2, mf.Len())
	assert.Equal(t, 2, mf.Dim())
	lo, hi := mf.ComponentRange(1)
	assert.Equal(t, 10., lo)
	assert.Equal(t, 17., hi) // ghosts at x = -1 and 8 are excluded
	assert.InDeltaSlice(t, []float64{4, 2}, lev.Geom.ProbDomain.Hi, 1.e-15)

	{ // Owner views only expose their own boxes
		views := mf.OwnerViews()
		require.Len(t, views, 2)
		assert.Equal(t, []int{0}, views[0].Boxes())
		fab, err := views[0].Fab(0)
		require.NoError(t, err)
		assert.Same(t, mf.Fab(0), fab)
		_, err = views[0].Fab(1)
		assert.True(t, errors.Is(err, amr.ErrNotOwner))
		assert.Equal(t, 1, views[1].Owner())
	}
	{ // Allocation errors
		_, err = amr.NewMultiFab(lev.Grids, lev.DistMap, 0, types.IntVect{0, 0})
		assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))
		_, err = amr.NewMultiFab(lev.Grids, amr.DistributionMap{0}, 1, types.IntVect{0, 0})
		assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))
		_, err = amr.NewMultiFab(lev.Grids, lev.DistMap, 1, types.IntVect{0, 0, 0})
		assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))
		_, err = amr.NewMultiFab(lev.Grids, lev.DistMap, 1, types.IntVect{0, -1})
		assert.True(t, errors.Is(err, amr.ErrInconsistentHierarchy))
	}
}

func TestHierarchy(t *testing.T) {
	lev, err := amrtest.NewLevel(amrtest.LevelSpec{
		Domain: types.NewBox(types.IntVect{0, 0}, types.IntVect{3, 3}),
		Boxes:  []types.Box{types.NewBox(types.IntVect{0, 0}, types.IntVect{3, 3})},
		NComp:  1,
		Dx:     1,
		Step:   12,
	}, amrtest.CellValue)
	require.NoError(t, err)
	h := amrtest.NewHierarchy([]amr.Level{lev}, nil, []string{"density"}, 0.25)
	assert.Equal(t, 1, h.NumLevels())
	assert.Equal(t, 0, h.FinestLevel())
	assert.Equal(t, 2, h.Dim())
	assert.Equal(t, 1, h.NComp())
	assert.Equal(t, []int{12}, h.Steps())
	assert.Equal(t, []int{16}, h.NumPts())
	assert.Equal(t, 0, (&amr.Hierarchy{}).Dim())
	assert.NotEqual(t, amrtest.CellValue(types.IntVect{1, 0}, 0), amrtest.CellValue(types.IntVect{0, 1}, 0))
	assert.NotEqual(t, amrtest.CellValue(types.IntVect{0, 0}, 0), amrtest.CellValue(types.IntVect{0, 0}, 1))
}
