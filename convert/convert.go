package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/assemble"
	"github.com/notargets/amr3d/lift"
	"github.com/notargets/amr3d/replicate"
)

type Mode uint8

const (
	Extrude3D Mode = iota
	Pseudo3D
)

var ModeNames = map[string]Mode{
	"extrude":  Extrude3D,
	"pseudo3d": Pseudo3D,
	"pseudo":   Pseudo3D,
}

func NewMode(name string) (m Mode, err error) {
	var ok bool
	if m, ok = ModeNames[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: unknown conversion mode %q", amr.ErrInvalidOption, name)
	}
	return
}

func (m Mode) String() string {
	switch m {
	case Extrude3D:
		return "extrude"
	case Pseudo3D:
		return "pseudo3d"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

type Options struct {
	Lift    lift.Options
	Workers int
	Logger  *zap.Logger
}

func DefaultOptions() Options {
	return Options{Lift: lift.DefaultOptions()}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Run converts h with the given mode; n is the thickness and is ignored by Pseudo3D.
func Run(h *amr.Hierarchy, mode Mode, n int, opts Options) (*amr.Hierarchy, error) {
	switch mode {
	case Extrude3D:
		return Extrude(h, n, opts)
	case Pseudo3D:
		return PseudoReplicate(h, opts)
	}
	return nil, fmt.Errorf("%w: %s", amr.ErrInvalidOption, mode)
}

func checkSource(h *amr.Hierarchy) error {
	if h.NumLevels() == 0 {
		return fmt.Errorf("%w: source has no levels", amr.ErrInconsistentHierarchy)
	}
	if h.Dim() == 3 {
		return amr.ErrAlreadyThreeDimensional
	}
	return nil
}

/*
Extrude flattens h to its coarsest level and replicates it across n cells of
a new third axis. The result has one level and carries the source time,
level 0 step counter and component names.
*/
func Extrude(h *amr.Hierarchy, n int, opts Options) (out *amr.Hierarchy, err error) {
	var (
		log = opts.logger()
	)
	if n <= 0 {
		err = fmt.Errorf("%w: have %d", amr.ErrInvalidThickness, n)
		return
	}
	if err = checkSource(h); err != nil {
		return
	}
	lev := h.Levels[0]
	if h.NumLevels() > 1 {
		log.Info("Discarding refined levels", zap.Int("levels", h.NumLevels()-1))
	}
	g3, part, err := lift.Domain(lev.Geom, lev.Grids, n, opts.Lift)
	if err != nil {
		return
	}
	owners := lift.Owners(lev.DistMap, part)
	log.Debug("Lifted level 0",
		zap.Stringer("domain", g3.Domain),
		zap.Int("sourceBoxes", len(lev.Grids)),
		zap.Int("boxes", len(part.Grids)),
		zap.Int("owners", owners.NProcs()))
	log.Info("Writing data for level", zap.Int("level", 0))
	mf, err := replicate.Extrude(lev.Data, part, owners, n, replicate.Options{Workers: opts.Workers})
	if err != nil {
		return
	}
	return assemble.Hierarchy(assemble.Input{
		Geoms:    []amr.Geometry{g3},
		Grids:    []amr.BoxArray{part.Grids},
		Owners:   []amr.DistributionMap{owners},
		Fields:   []*amr.MultiFab{mf},
		Time:     h.Time,
		Steps:    []int{lev.Step},
		VarNames: h.VarNames,
	})
}

/*
PseudoReplicate keeps every level of h and gives each one a single cell along
a new third axis. All levels share the level 0 physical thickness, so the
refinement ratios gain a 1 along the new axis. Owners, step counters, time and
names are carried unchanged.
*/
func PseudoReplicate(h *amr.Hierarchy, opts Options) (out *amr.Hierarchy, err error) {
	var (
		log     = opts.logger()
		nLevels = h.NumLevels()
		in      = assemble.Input{
			Time:     h.Time,
			Steps:    h.Steps(),
			VarNames: h.VarNames,
		}
	)
	if err = checkSource(h); err != nil {
		return
	}
	dz := h.Levels[0].Geom.CellSize()[0]
	for l := 0; l < nLevels; l++ {
		var (
			lev = h.Levels[l]
			g3  amr.Geometry
			mf  *amr.MultiFab
		)
		if g3, err = lift.Geometry(lev.Geom, 1, dz, opts.Lift); err != nil {
			err = fmt.Errorf("level %d: %w", l, err)
			return
		}
		part := lift.Reshape(lev.Grids)
		log.Info("Writing data for level", zap.Int("level", l))
		if mf, err = replicate.PseudoReplicate(lev.Data, part.Grids,
			replicate.Options{Workers: opts.Workers}); err != nil {
			err = fmt.Errorf("level %d: %w", l, err)
			return
		}
		in.Geoms = append(in.Geoms, g3)
		in.Grids = append(in.Grids, part.Grids)
		in.Owners = append(in.Owners, lev.DistMap)
		in.Fields = append(in.Fields, mf)
	}
	for _, r := range h.RefRatios {
		in.RefRatios = append(in.RefRatios, r.Append(1))
	}
	return assemble.Hierarchy(in)
}
