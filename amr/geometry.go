package amr

import (
	"fmt"

	"github.com/notargets/amr3d/types"
)

// Geometry describes one level's physical domain and cell index space.
type Geometry struct {
	ProbDomain types.RealBox
	Domain     types.Box
	Coord      types.CoordSys
	IsPeriodic []int // 0 or 1 per axis
}

func NewGeometry(domain types.Box, rb types.RealBox, coord types.CoordSys, isPeriodic []int) Geometry {
	return Geometry{
		ProbDomain: rb.Copy(),
		Domain:     domain.Copy(),
		Coord:      coord,
		IsPeriodic: append([]int(nil), isPeriodic...),
	}
}

func (g Geometry) Dim() int { return g.Domain.Dim() }

func (g Geometry) Copy() Geometry {
	return NewGeometry(g.Domain, g.ProbDomain, g.Coord, g.IsPeriodic)
}

// CellSize is the physical width of one cell along each axis.
func (g Geometry) CellSize() (dx []float64) {
	dx = make([]float64, g.Dim())
	for d := range dx {
		dx[d] = g.ProbDomain.Length(d) / float64(g.Domain.Length(d))
	}
	return
}

func (g Geometry) Validate() error {
	var (
		dim = g.Dim()
	)
	if g.Domain.IsEmpty() {
		return fmt.Errorf("empty index domain %s", g.Domain)
	}
	if g.ProbDomain.Dim() != dim || len(g.ProbDomain.Hi) != dim {
		return fmt.Errorf("physical domain %s does not match %d axes", g.ProbDomain, dim)
	}
	if len(g.IsPeriodic) != dim {
		return fmt.Errorf("have %d periodicity flags for %d axes", len(g.IsPeriodic), dim)
	}
	for d := 0; d < dim; d++ {
		if !(g.ProbDomain.Hi[d] > g.ProbDomain.Lo[d]) {
			return fmt.Errorf("physical domain %s is empty along axis %d", g.ProbDomain, d)
		}
		if p := g.IsPeriodic[d]; p != 0 && p != 1 {
			return fmt.Errorf("periodicity along axis %d is %d, must be 0 or 1", d, p)
		}
	}
	return nil
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry{domain %s, phys %s, %s, periodic %v}",
		g.Domain, g.ProbDomain, g.Coord, g.IsPeriodic)
}
