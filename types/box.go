package types

import (
	"fmt"
)

/*
Box is an inclusive, axis aligned rectangle of integer cell indices: a cell iv
is inside the box when Lo[d] <= iv[d] <= Hi[d] on every axis d.
*/
type Box struct {
	Lo, Hi IntVect
}

func NewBox(lo, hi IntVect) Box {
	return Box{Lo: lo.Copy(), Hi: hi.Copy()}
}

func (b Box) Dim() int { return len(b.Lo) }

func (b Box) Copy() Box { return NewBox(b.Lo, b.Hi) }

func (b Box) Length(dir int) int { return b.Hi[dir] - b.Lo[dir] + 1 }

func (b Box) Size() (sz IntVect) {
	sz = make(IntVect, b.Dim())
	for d := range sz {
		sz[d] = b.Length(d)
	}
	return
}

// IsEmpty is true for boxes with mismatched corner dimensions or Hi < Lo on any axis.
func (b Box) IsEmpty() bool {
	if len(b.Lo) == 0 || len(b.Lo) != len(b.Hi) {
		return true
	}
	for d := range b.Lo {
		if b.Hi[d] < b.Lo[d] {
			return true
		}
	}
	return false
}

func (b Box) NumPts() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Size().Product()
}

func (b Box) Equal(other Box) bool {
	return b.Lo.Equal(other.Lo) && b.Hi.Equal(other.Hi)
}

func (b Box) ContainsPoint(iv IntVect) bool {
	if len(iv) != b.Dim() {
		return false
	}
	for d := range iv {
		if iv[d] < b.Lo[d] || iv[d] > b.Hi[d] {
			return false
		}
	}
	return true
}

func (b Box) Contains(other Box) bool {
	return !other.IsEmpty() && b.ContainsPoint(other.Lo) && b.ContainsPoint(other.Hi)
}

// Intersect returns the overlap of two boxes and whether it is non-empty.
func (b Box) Intersect(other Box) (isect Box, ok bool) {
	if b.Dim() != other.Dim() || b.IsEmpty() || other.IsEmpty() {
		return
	}
	isect = Box{Lo: make(IntVect, b.Dim()), Hi: make(IntVect, b.Dim())}
	for d := range b.Lo {
		isect.Lo[d] = max(b.Lo[d], other.Lo[d])
		isect.Hi[d] = min(b.Hi[d], other.Hi[d])
	}
	ok = !isect.IsEmpty()
	return
}

func (b Box) Intersects(other Box) bool {
	_, ok := b.Intersect(other)
	return ok
}

// Grow extends the box by ng[d] cells on both sides of axis d.
func (b Box) Grow(ng IntVect) (g Box) {
	g = b.Copy()
	for d := range ng {
		g.Lo[d] -= ng[d]
		g.Hi[d] += ng[d]
	}
	return
}

// Lift returns a box with one more axis spanning [lo, hi].
func (b Box) Lift(lo, hi int) Box {
	return Box{Lo: b.Lo.Append(lo), Hi: b.Hi.Append(hi)}
}

// Project keeps the first dim axes of the box.
func (b Box) Project(dim int) Box {
	return NewBox(b.Lo[:dim], b.Hi[:dim])
}

/*
ForEachPoint visits every cell of the box with axis 0 varying fastest. The
IntVect passed to fn is reused between calls and must be copied to be kept.
*/
func (b Box) ForEachPoint(fn func(iv IntVect)) {
	if b.IsEmpty() {
		return
	}
	var (
		dim = b.Dim()
		iv  = b.Lo.Copy()
	)
	for {
		fn(iv)
		d := 0
		for ; d < dim; d++ {
			if iv[d] < b.Hi[d] {
				iv[d]++
				break
			}
			iv[d] = b.Lo[d]
		}
		if d == dim {
			return
		}
	}
}

func (b Box) String() string {
	return fmt.Sprintf("(%s %s)", b.Lo, b.Hi)
}
