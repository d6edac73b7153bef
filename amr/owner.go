package amr

import (
	"fmt"
)

/*
OwnerView is the write capability of one compute unit over a MultiFab. It only
hands out the blocks the DistributionMap assigns to its owner, so two views of
the same MultiFab never share a writable block.
*/
type OwnerView struct {
	owner int
	mf    *MultiFab
	boxes []int
	owned map[int]bool
}

func (mf *MultiFab) OwnerView(owner int) *OwnerView {
	ov := &OwnerView{
		owner: owner,
		mf:    mf,
		boxes: mf.DistMap.BoxesOf(owner),
		owned: make(map[int]bool),
	}
	for _, i := range ov.boxes {
		ov.owned[i] = true
	}
	return ov
}

// OwnerViews returns one view per distinct owner, in ascending owner order.
func (mf *MultiFab) OwnerViews() (views []*OwnerView) {
	for _, owner := range mf.DistMap.Owners() {
		views = append(views, mf.OwnerView(owner))
	}
	return
}

func (ov *OwnerView) Owner() int { return ov.owner }

// Boxes lists the box indices this view may write.
func (ov *OwnerView) Boxes() []int { return append([]int(nil), ov.boxes...) }

// Fab returns the writable block of box i, or ErrNotOwner.
func (ov *OwnerView) Fab(i int) (*FArrayBox, error) {
	if !ov.owned[i] {
		return nil, fmt.Errorf("%w: box %d, unit %d", ErrNotOwner, i, ov.owner)
	}
	return ov.mf.Fabs[i], nil
}
