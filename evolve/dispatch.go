package evolve

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/huayno-cc/config"
	"github.com/katalvlaran/huayno-cc/nbsys"
)

// dispatchHalfStep recursively evolves every component in comps over
// [t0,t1] (h = t1-t0), running each eligible component as an independent
// task against its own scratch copy and joining at a single barrier
// before returning. A component is eligible when there is more than one
// sibling, its size exceeds Config.BSSubsysSize, and level is still
// within Config.MaxParallelDepth; ineligible components are evolved
// directly in the caller's goroutine, without copying.
func (e *Evolver) dispatchHalfStep(level int, comps []*nbsys.View, t0, t1, h float64, inttype config.IntegratorType, recenterSub bool) {
	eligible := len(comps) > 1 && level < e.Config.MaxParallelDepth

	g, _ := errgroup.WithContext(context.Background())

	for _, ci := range comps {
		ci := ci
		if eligible && ci.N > e.Config.BSSubsysSize {
			if e.Diag != nil {
				e.Diag.IncTasks(level, 1, int64(ci.N))
			}
			taskID := uuid.New()
			g.Go(func() error {
				e.runTask(taskID, level, ci, t0, t1, h, inttype, recenterSub)
				return nil
			})
			continue
		}
		e.Evolve(level+1, ci, t0, t1, h, inttype, recenterSub)
	}

	_ = g.Wait()
}

// runTask copies ci's particles into a freshly owned scratch buffer,
// recursively evolves the scratch view, copies the results back into ci's
// original positions, and logs the task's lifecycle tagged with taskID.
func (e *Evolver) runTask(taskID uuid.UUID, level int, ci *nbsys.View, t0, t1, h float64, inttype config.IntegratorType, recenterSub bool) {
	if e.Log != nil {
		e.Log.WithFields(logrus.Fields{
			"task_id": taskID.String(),
			"level":   level,
			"n":       ci.N,
		}).Debug("evolve: task start")
	}

	scratch := nbsys.CopyToScratch(ci)
	e.Evolve(level+1, scratch, t0, t1, h, inttype, recenterSub)
	nbsys.CopyBack(ci, scratch)

	if e.Log != nil {
		e.Log.WithFields(logrus.Fields{
			"task_id": taskID.String(),
			"level":   level,
		}).Debug("evolve: task done")
	}
}
