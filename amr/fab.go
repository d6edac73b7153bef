package amr

import (
	"fmt"

	"github.com/notargets/amr3d/types"
)

/*
FArrayBox holds the values of NComp components over one box grown by NGrow
ghost cells. Storage is dense, axis 0 varies fastest and the component index
slowest, so each component is one contiguous run of DataBox().NumPts() values.
*/
type FArrayBox struct {
	Box   types.Box     // Valid (interior) region
	NGrow types.IntVect // Ghost width per axis
	NComp int
	Data  []float64

	dataBox types.Box
	strides []int
	npts    int
}

func NewFArrayBox(valid types.Box, nGrow types.IntVect, nComp int) *FArrayBox {
	var (
		dataBox = valid.Grow(nGrow)
		dim     = valid.Dim()
	)
	f := &FArrayBox{
		Box:     valid.Copy(),
		NGrow:   nGrow.Copy(),
		NComp:   nComp,
		dataBox: dataBox,
		strides: make([]int, dim),
		npts:    dataBox.NumPts(),
	}
	stride := 1
	for d := 0; d < dim; d++ {
		f.strides[d] = stride
		stride *= dataBox.Length(d)
	}
	f.Data = make([]float64, f.npts*nComp)
	return f
}

// DataBox is the valid box grown by the ghost width.
func (f *FArrayBox) DataBox() types.Box { return f.dataBox }

func (f *FArrayBox) Dim() int { return f.Box.Dim() }

// Index is the offset of (iv, comp) in Data. iv must lie in DataBox.
func (f *FArrayBox) Index(iv types.IntVect, comp int) (ind int) {
	ind = comp * f.npts
	for d, s := range f.strides {
		ind += (iv[d] - f.dataBox.Lo[d]) * s
	}
	return
}

func (f *FArrayBox) Get(iv types.IntVect, comp int) float64 {
	return f.Data[f.Index(iv, comp)]
}

func (f *FArrayBox) Set(iv types.IntVect, comp int, val float64) {
	f.Data[f.Index(iv, comp)] = val
}

// Row is the run of values along axis 0 starting at iv and spanning n cells.
func (f *FArrayBox) Row(iv types.IntVect, comp, n int) []float64 {
	ind := f.Index(iv, comp)
	return f.Data[ind : ind+n]
}

// ValidValues copies the values of one component over the valid box, axis 0 fastest.
func (f *FArrayBox) ValidValues(comp int) (vals []float64) {
	vals = make([]float64, 0, f.Box.NumPts())
	f.Box.ForEachPoint(func(iv types.IntVect) {
		vals = append(vals, f.Get(iv, comp))
	})
	return
}

func (f *FArrayBox) String() string {
	return fmt.Sprintf("FArrayBox{%s, ngrow %s, ncomp %d}", f.Box, f.NGrow, f.NComp)
}
