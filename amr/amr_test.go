package amr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/amr3d/types"
)

func TestGeometry(t *testing.T) {
	var (
		domain = types.NewBox(types.IntVect{0, 0}, types.IntVect{7, 3})
		rb     = types.NewRealBox([]float64{0, 0}, []float64{2, 0.5})
	)
	g := NewGeometry(domain, rb, types.RZ, []int{1, 0})
	require.NoError(t, g.Validate())
	assert.Equal(t, 2, g.Dim())
	assert.InDeltaSlice(t, []float64{0.25, 0.125}, g.CellSize(), 1.e-15)

	c := g.Copy()
	c.IsPeriodic[0] = 0
	assert.Equal(t, 1, g.IsPeriodic[0])

	bad := g.Copy()
	bad.IsPeriodic = []int{2, 0}
	assert.Error(t, bad.Validate())
	bad = g.Copy()
	bad.IsPeriodic = []int{1}
	assert.Error(t, bad.Validate())
	bad = g.Copy()
	bad.ProbDomain.Hi[1] = 0
	assert.Error(t, bad.Validate())
	bad = g.Copy()
	bad.Domain = types.Box{}
	assert.Error(t, bad.Validate())
}

func TestBoxArray(t *testing.T) {
	ba := BoxArray{
		types.NewBox(types.IntVect{0, 0}, types.IntVect{3, 3}),
		types.NewBox(types.IntVect{4, 0}, types.IntVect{7, 3}),
	}
	assert.True(t, ba.IsDisjoint())
	assert.Equal(t, 32, ba.NumPts())
	assert.Equal(t, 1, ba.Find(types.NewBox(types.IntVect{5, 1}, types.IntVect{6, 2})))
	assert.Equal(t, -1, ba.Find(types.NewBox(types.IntVect{3, 1}, types.IntVect{4, 2})))

	overlapping := append(ba.Copy(), types.NewBox(types.IntVect{3, 3}, types.IntVect{4, 4}))
	assert.False(t, overlapping.IsDisjoint())
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, overlapping.Overlaps())
	assert.False(t, overlapping.Equal(ba))
	assert.True(t, ba.Copy().Equal(ba))
}

func TestDistributionMap(t *testing.T) {
	dm := NewDistributionMap(5, 2)
	assert.Equal(t, DistributionMap{0, 0, 0, 1, 1}, dm)
	assert.Equal(t, 2, dm.NProcs())
	assert.Equal(t, []int{0, 1}, dm.Owners())
	assert.Equal(t, []int{3, 4}, dm.BoxesOf(1))
	assert.NoError(t, dm.Validate(5))
	assert.Error(t, dm.Validate(4))
	assert.Error(t, DistributionMap{0, -1}.Validate(2))
	// More units than boxes leaves no idle owners
	assert.Equal(t, DistributionMap{0, 1}, NewDistributionMap(2, 8))
	assert.Equal(t, []int{2, 5}, DistributionMap{5, 2, 5}.Owners())
}

func TestFArrayBox(t *testing.T) {
	var (
		valid = types.NewBox(types.IntVect{2, 4}, types.IntVect{5, 6})
		fab   = NewFArrayBox(valid, types.IntVect{1, 2}, 3)
	)
	assert.True(t, fab.DataBox().Equal(types.NewBox(types.IntVect{1, 2}, types.IntVect{6, 8})))
	assert.Len(t, fab.Data, 6*7*3)
	assert.Equal(t, 0, fab.Index(types.IntVect{1, 2}, 0))
	assert.Equal(t, 1, fab.Index(types.IntVect{2, 2}, 0))
	assert.Equal(t, 6, fab.Index(types.IntVect{1, 3}, 0))
	assert.Equal(t, 42, fab.Index(types.IntVect{1, 2}, 1))

	fab.Set(types.IntVect{3, 5}, 2, 7.5)
	assert.Equal(t, 7.5, fab.Get(types.IntVect{3, 5}, 2))
	assert.Equal(t, 7.5, fab.Data[fab.Index(types.IntVect{3, 5}, 2)])
	assert.Equal(t, []float64{0, 7.5, 0}, fab.Row(types.IntVect{2, 5}, 2, 3))
	assert.Len(t, fab.ValidValues(2), 12)
}
