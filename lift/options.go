package lift

import (
	"fmt"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/types"
)

type Options struct {
	// ZPeriodic is the periodicity of the added axis, 0 or 1.
	ZPeriodic int
	// Periodicity optionally replaces the in-plane periodicity of the source.
	// Nil keeps the source flags; a third entry, when present, overrides ZPeriodic.
	Periodicity []int
	// MaxGridSize optionally caps the box extent per axis of the lifted
	// partition. Entries < 1 leave that axis uncapped beyond the default bounds.
	MaxGridSize types.IntVect
}

func DefaultOptions() Options {
	return Options{ZPeriodic: 1}
}

func (o Options) Validate() error {
	if o.ZPeriodic != 0 && o.ZPeriodic != 1 {
		return fmt.Errorf("%w: periodicity of the new axis is %d, must be 0 or 1",
			amr.ErrInvalidOption, o.ZPeriodic)
	}
	if n := len(o.Periodicity); n != 0 && n != 2 && n != 3 {
		return fmt.Errorf("%w: periodicity override needs 2 or 3 entries, have %d",
			amr.ErrInvalidOption, n)
	}
	for d, p := range o.Periodicity {
		if p != 0 && p != 1 {
			return fmt.Errorf("%w: periodicity along axis %d is %d, must be 0 or 1",
				amr.ErrInvalidOption, d, p)
		}
	}
	if n := len(o.MaxGridSize); n != 0 && n != 3 {
		return fmt.Errorf("%w: max grid size needs 3 entries, have %d",
			amr.ErrInvalidOption, n)
	}
	return nil
}

func (o Options) periodicity(src []int) (isPer []int) {
	isPer = append([]int(nil), src...)
	zPer := o.ZPeriodic
	if len(o.Periodicity) >= 2 {
		copy(isPer, o.Periodicity[:2])
	}
	if len(o.Periodicity) == 3 {
		zPer = o.Periodicity[2]
	}
	return append(isPer, zPer)
}

// bound caps an extent by MaxGridSize along dir when that entry is set.
func (o Options) bound(dir, extent int) int {
	if len(o.MaxGridSize) > dir && o.MaxGridSize[dir] > 0 {
		return min(extent, o.MaxGridSize[dir])
	}
	return extent
}
