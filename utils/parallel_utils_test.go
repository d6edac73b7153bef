package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Test PartitionMap
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				maxK := kMax - kMin
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Assignments agree with the bucket ranges
		pm := NewPartitionMap(3, 7)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 2, 2}, pm.Assignments())
		assert.Equal(t, 1, NewPartitionMap(0, 4).ParallelDegree)
	}
	{ // Chunk maps bound each bucket by the chunk size
		pm := NewChunkMap(10, 4)
		assert.Equal(t, 3, pm.ParallelDegree)
		assert.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, pm.Partitions)
		assert.Equal(t, 1, NewChunkMap(10, 0).ParallelDegree)
		assert.Equal(t, 1, NewChunkMap(3, 8).ParallelDegree)
		for length := 1; length < 50; length++ {
			for maxChunk := 1; maxChunk < 12; maxChunk++ {
				pm = NewChunkMap(length, maxChunk)
				for bn := 0; bn < pm.ParallelDegree; bn++ {
					kMin, kMax := pm.GetBucketRange(bn)
					assert.LessOrEqual(t, kMax-kMin, maxChunk)
					assert.Greater(t, kMax-kMin, 0)
				}
			}
		}
	}
}
