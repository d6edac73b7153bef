/*
Package plotfile stores AMR hierarchies on disk. A snapshot is a directory:

	<path>/Header.yaml                 hierarchy metadata
	<path>/Level_<l>/Cell_D_<i>.zst    block i of level l

Each block holds the float64 values of one box grown by its ghost width, all
components, little endian, axis 0 fastest and component slowest, compressed
with zstd.
*/
package plotfile

import (
	"fmt"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/types"
)

const (
	HeaderFile    = "Header.yaml"
	FormatVersion = "amr3d-plotfile-v1"
	OutputSuffix  = "_3D"
)

// Header is the YAML metadata of a snapshot. ghodss/yaml goes through
// encoding/json, hence the json tags.
type Header struct {
	Format    string        `json:"format"`
	RunID     string        `json:"runID,omitempty"`
	Dim       int           `json:"dim"`
	Time      float64       `json:"time"`
	CoordSys  string        `json:"coordSys"`
	VarNames  []string      `json:"varNames"`
	RefRatios [][]int       `json:"refRatios,omitempty"`
	Levels    []LevelHeader `json:"levels"`
}

type LevelHeader struct {
	Step     int         `json:"step"`
	ProbLo   []float64   `json:"probLo"`
	ProbHi   []float64   `json:"probHi"`
	DomainLo []int       `json:"domainLo"`
	DomainHi []int       `json:"domainHi"`
	Periodic []int       `json:"periodic"`
	NGrow    []int       `json:"nGrow"`
	Boxes    []BoxHeader `json:"boxes"`
}

type BoxHeader struct {
	Lo    []int  `json:"lo"`
	Hi    []int  `json:"hi"`
	Owner int    `json:"owner"`
	File  string `json:"file"`
}

func levelDir(l int) string { return fmt.Sprintf("Level_%d", l) }

func blockFile(i int) string { return fmt.Sprintf("Cell_D_%05d.zst", i) }

func newHeader(h *amr.Hierarchy, runID string) (hdr Header) {
	hdr = Header{
		Format:   FormatVersion,
		RunID:    runID,
		Dim:      h.Dim(),
		Time:     h.Time,
		VarNames: append([]string(nil), h.VarNames...),
	}
	if h.NumLevels() > 0 {
		hdr.CoordSys = h.Levels[0].Geom.Coord.String()
	}
	for _, r := range h.RefRatios {
		hdr.RefRatios = append(hdr.RefRatios, []int(r.Copy()))
	}
	for l, lev := range h.Levels {
		lh := LevelHeader{
			Step:     lev.Step,
			ProbLo:   append([]float64(nil), lev.Geom.ProbDomain.Lo...),
			ProbHi:   append([]float64(nil), lev.Geom.ProbDomain.Hi...),
			DomainLo: []int(lev.Geom.Domain.Lo.Copy()),
			DomainHi: []int(lev.Geom.Domain.Hi.Copy()),
			Periodic: append([]int(nil), lev.Geom.IsPeriodic...),
			NGrow:    []int(lev.Data.NGrow.Copy()),
		}
		for i, b := range lev.Grids {
			lh.Boxes = append(lh.Boxes, BoxHeader{
				Lo:    []int(b.Lo.Copy()),
				Hi:    []int(b.Hi.Copy()),
				Owner: lev.DistMap[i],
				File:  levelDir(l) + "/" + blockFile(i),
			})
		}
		hdr.Levels = append(hdr.Levels, lh)
	}
	return
}

func (lh LevelHeader) geometry(coord types.CoordSys) amr.Geometry {
	return amr.NewGeometry(
		types.NewBox(lh.DomainLo, lh.DomainHi),
		types.NewRealBox(lh.ProbLo, lh.ProbHi),
		coord,
		lh.Periodic,
	)
}

func (lh LevelHeader) grids() (grids amr.BoxArray, dm amr.DistributionMap) {
	for _, bh := range lh.Boxes {
		grids = append(grids, types.NewBox(bh.Lo, bh.Hi))
		dm = append(dm, bh.Owner)
	}
	return
}
