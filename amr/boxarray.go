package amr

import (
	"github.com/notargets/amr3d/types"
)

// BoxArray is the ordered partition of one level's index space. Boxes are
// addressed by their position.
type BoxArray []types.Box

func (ba BoxArray) Copy() (c BoxArray) {
	if ba == nil {
		return nil
	}
	c = make(BoxArray, len(ba))
	for i, b := range ba {
		c[i] = b.Copy()
	}
	return
}

func (ba BoxArray) Dim() int {
	if len(ba) == 0 {
		return 0
	}
	return ba[0].Dim()
}

func (ba BoxArray) NumPts() (n int) {
	for _, b := range ba {
		n += b.NumPts()
	}
	return
}


func (ba BoxArray) Equal(other BoxArray) bool {
	if len(ba) != len(other) {
		return false
	}
	for i := range ba {
		if !ba[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Overlaps returns every pair of box indices whose boxes intersect.
func (ba BoxArray) Overlaps() (pairs [][2]int) {
	for i := 0; i < len(ba); i++ {
		for j := i + 1; j < len(ba); j++ {
			if ba[i].Intersects(ba[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return
}

func (ba BoxArray) IsDisjoint() bool { return len(ba.Overlaps()) == 0 }

// Find returns the index of the first box containing b, or -1.
func (ba BoxArray) Find(b types.Box) int {
	for i, box := range ba {
		if box.Contains(b) {
			return i
		}
	}
	return -1
}
