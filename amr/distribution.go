package amr

import (
	"fmt"
	"sort"

	"github.com/notargets/amr3d/utils"
)

// DistributionMap assigns each box of a BoxArray, by index, to a compute unit.
type DistributionMap []int

// NewDistributionMap spreads nBoxes over nProcs units in contiguous, balanced runs.
func NewDistributionMap(nBoxes, nProcs int) DistributionMap {
	if nProcs > nBoxes {
		nProcs = nBoxes
	}
	return DistributionMap(utils.NewPartitionMap(nProcs, nBoxes).Assignments())
}

func (dm DistributionMap) Copy() DistributionMap {
	return append(DistributionMap(nil), dm...)
}

func (dm DistributionMap) Equal(other DistributionMap) bool {
	if len(dm) != len(other) {
		return false
	}
	for i := range dm {
		if dm[i] != other[i] {
			return false
		}
	}
	return true
}

// NProcs is the number of compute units the map refers to (largest owner id + 1).
func (dm DistributionMap) NProcs() (np int) {
	for _, owner := range dm {
		np = max(np, owner+1)
	}
	return
}

// Owners lists the distinct owners in ascending order.
func (dm DistributionMap) Owners() (owners []int) {
	seen := make(map[int]bool)
	for _, owner := range dm {
		if !seen[owner] {
			seen[owner] = true
			owners = append(owners, owner)
		}
	}
	sort.Ints(owners)
	return
}

// BoxesOf lists the indices of the boxes held by owner.
func (dm DistributionMap) BoxesOf(owner int) (boxes []int) {
	for i, o := range dm {
		if o == owner {
			boxes = append(boxes, i)
		}
	}
	return
}

func (dm DistributionMap) Validate(nBoxes int) error {
	if len(dm) != nBoxes {
		return fmt.Errorf("distribution map has %d owners for %d boxes", len(dm), nBoxes)
	}
	for i, owner := range dm {
		if owner < 0 {
			return fmt.Errorf("box %d has negative owner %d", i, owner)
		}
	}
	return nil
}
