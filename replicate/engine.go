package replicate

import (
	"golang.org/x/sync/errgroup"

	"github.com/notargets/amr3d/amr"
	"github.com/notargets/amr3d/utils"
)

type Options struct {
	// Workers bounds the number of owners processed at once; < 1 uses the CPU count.
	Workers int
}

/*
forEachOwner runs fn once per owner of mf, in parallel. Each call receives
the owner's write view and nothing else, so every block has exactly one
writer; the outcome does not depend on Workers or scheduling order.
*/
func forEachOwner(mf *amr.MultiFab, opts Options, fn func(view *amr.OwnerView) error) error {
	var (
		views = mf.OwnerViews()
		g     errgroup.Group
	)
	g.SetLimit(utils.SetParallelDegree(opts.Workers, len(views)))
	for _, view := range views {
		g.Go(func() error {
			return fn(view)
		})
	}
	return g.Wait()
}
