package lift

import (
	"github.com/notargets/amr3d/types"
	"github.com/notargets/amr3d/utils"
)

/*
SplitBox re-tiles a box so that no sub-box is longer than maxExtent[d] along
axis d. Each axis is cut into the fewest balanced chunks that respect its
bound, the leading chunks taking the remainder. Sub-boxes are ordered with the
last axis varying slowest, so for a lifted box the new axis is the dominant
key. A maxExtent entry < 1 leaves that axis uncut. The result is disjoint and
its union is b.
*/
func SplitBox(b types.Box, maxExtent types.IntVect) (boxes []types.Box) {
	if b.IsEmpty() {
		return
	}
	var (
		dim    = b.Dim()
		chunks = make([]*utils.PartitionMap, dim)
		ic     = make([]int, dim) // Chunk counter, axis 0 fastest
	)
	for d := 0; d < dim; d++ {
		maxChunk := 0
		if d < len(maxExtent) {
			maxChunk = maxExtent[d]
		}
		chunks[d] = utils.NewChunkMap(b.Length(d), maxChunk)
	}
	for {
		sub := b.Copy()
		for d := 0; d < dim; d++ {
			kMin, kMax := chunks[d].GetBucketRange(ic[d])
			sub.Lo[d] = b.Lo[d] + kMin
			sub.Hi[d] = b.Lo[d] + kMax - 1
		}
		boxes = append(boxes, sub)
		d := 0
		for ; d < dim; d++ {
			if ic[d] < chunks[d].ParallelDegree-1 {
				ic[d]++
				break
			}
			ic[d] = 0
		}
		if d == dim {
			return
		}
	}
}
