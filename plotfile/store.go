package plotfile

import (
	"fmt"
	"path"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/assemble"
	"github.com/notargets/amr3d/types"
)

// Store reads and writes snapshots on a filesystem.
type Store struct {
	Fs     afero.Fs
	Level  zstd.EncoderLevel
	Logger *zap.Logger
}

func NewStore(fs afero.Fs) *Store {
	return &Store{
		Fs:     fs,
		Level:  zstd.SpeedDefault,
		Logger: zap.NewNop(),
	}
}

// OutputPath is where the 3-D conversion of the snapshot at in is written.
func OutputPath(in string) string {
	return strings.TrimRight(in, "/") + OutputSuffix
}

// ReadHeader reads only the metadata of a snapshot.
func (s *Store) ReadHeader(dir string) (hdr Header, err error) {
	var data []byte
	if data, err = afero.ReadFile(s.Fs, path.Join(dir, HeaderFile)); err != nil {
		err = fmt.Errorf("%w: %v", amr.ErrSourceRead, err)
		return
	}
	if err = yaml.Unmarshal(data, &hdr); err != nil {
		err = fmt.Errorf("%w: %s: %v", amr.ErrSourceRead, HeaderFile, err)
		return
	}
	if hdr.Format != FormatVersion {
		err = fmt.Errorf("%w: %s: unknown format %q", amr.ErrSourceRead, dir, hdr.Format)
	}
	return
}

// Read loads a whole snapshot. The result passes the assembler's checks.
func (s *Store) Read(dir string) (h *amr.Hierarchy, err error) {
	var (
		hdr   Header
		coord types.CoordSys
		dec   *zstd.Decoder
		in    assemble.Input
	)
	if hdr, err = s.ReadHeader(dir); err != nil {
		return
	}
	if coord, err = types.NewCoordSys(hdr.CoordSys); err != nil {
		err = fmt.Errorf("%w: %v", amr.ErrSourceRead, err)
		return
	}
	if dec, err = zstd.NewReader(nil); err != nil {
		err = fmt.Errorf("%w: %v", amr.ErrSourceRead, err)
		return
	}
	defer dec.Close()
	in = assemble.Input{
		Time:     hdr.Time,
		VarNames: hdr.VarNames,
	}
	for _, r := range hdr.RefRatios {
		in.RefRatios = append(in.RefRatios, types.NewIntVect(r...))
	}
	for l, lh := range hdr.Levels {
		var (
			geom      = lh.geometry(coord)
			grids, dm = lh.grids()
			mf        *amr.MultiFab
		)
		if mf, err = amr.NewMultiFab(grids, dm, len(hdr.VarNames), types.NewIntVect(lh.NGrow...)); err != nil {
			err = fmt.Errorf("%w: level %d: %w", amr.ErrSourceRead, l, err)
			return
		}
		for i, bh := range lh.Boxes {
			var data []byte
			if data, err = afero.ReadFile(s.Fs, path.Join(dir, bh.File)); err != nil {
				err = fmt.Errorf("%w: %v", amr.ErrSourceRead, err)
				return
			}
			if err = decodeBlock(dec, data, mf.Fabs[i].Data); err != nil {
				err = fmt.Errorf("%w: %s: %v", amr.ErrSourceRead, bh.File, err)
				return
			}
		}
		s.logger().Debug("Read level", zap.Int("level", l), zap.Int("boxes", len(grids)))
		in.Geoms = append(in.Geoms, geom)
		in.Grids = append(in.Grids, grids)
		in.Owners = append(in.Owners, dm)
		in.Fields = append(in.Fields, mf)
		in.Steps = append(in.Steps, lh.Step)
	}
	if h, err = assemble.Hierarchy(in); err != nil {
		err = fmt.Errorf("%w: %w", amr.ErrSourceRead, err)
		return
	}
	if h.Dim() != hdr.Dim {
		h, err = nil, fmt.Errorf("%w: header declares %d axes, levels have %d",
			amr.ErrSourceRead, hdr.Dim, h.Dim())
	}
	return
}

/*
Write stores h at dir, replacing anything already there. On failure the
partially written directory is removed.
*/
func (s *Store) Write(dir string, h *amr.Hierarchy) (err error) {
	var (
		hdr  Header
		enc  *zstd.Encoder
		data []byte
	)
	if err = assemble.Check(inputOf(h)); err != nil {
		return fmt.Errorf("%w: %w", amr.ErrDestinationWrite, err)
	}
	hdr = newHeader(h, uuid.NewString())
	if err = s.Fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: %v", amr.ErrDestinationWrite, err)
	}
	defer func() {
		if err != nil {
			_ = s.Fs.RemoveAll(dir)
			err = fmt.Errorf("%w: %v", amr.ErrDestinationWrite, err)
		}
	}()
	if enc, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(s.Level)); err != nil {
		return
	}
	defer enc.Close()
	for l, lev := range h.Levels {
		if err = s.Fs.MkdirAll(path.Join(dir, levelDir(l)), 0755); err != nil {
			return
		}
		for i, fab := range lev.Data.Fabs {
			if err = afero.WriteFile(s.Fs, path.Join(dir, hdr.Levels[l].Boxes[i].File),
				encodeBlock(enc, fab.Data), 0644); err != nil {
				return
			}
		}
		s.logger().Debug("Wrote level", zap.Int("level", l), zap.Int("boxes", lev.Data.Len()))
	}
	if data, err = yaml.Marshal(hdr); err != nil {
		return
	}
	err = afero.WriteFile(s.Fs, path.Join(dir, HeaderFile), data, 0644)
	return
}

func (s *Store) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func inputOf(h *amr.Hierarchy) (in assemble.Input) {
	in = assemble.Input{
		Time:      h.Time,
		Steps:     h.Steps(),
		RefRatios: h.RefRatios,
		VarNames:  h.VarNames,
	}
	for _, lev := range h.Levels {
		in.Geoms = append(in.Geoms, lev.Geom)
		in.Grids = append(in.Grids, lev.Grids)
		in.Owners = append(in.Owners, lev.DistMap)
		in.Fields = append(in.Fields, lev.Data)
	}
	return
}
