package diag

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// levelCounters holds the lock-free counters for a single recursion level.
type levelCounters struct {
	tStep     atomic.Int64 // Split invocations
	tCount    atomic.Int64 // pairwise timestep evaluations inside Split
	nTasks    atomic.Int64 // dispatched component tasks
	taskCount atomic.Int64 // particles covered by dispatched tasks
	deepSteps atomic.Int64 // completed leaf (non-recursive) kick/drift steps
}

// Snapshot is a point-in-time, race-free copy of one level's counters.
type Snapshot struct {
	Level     int
	TStep     int64
	TCount    int64
	NTasks    int64
	TaskCount int64
	DeepSteps int64
}

// Sink aggregates per-level Counters across however many goroutines an
// evolve run fans out to. The zero value is not usable; construct with
// NewSink.
type Sink struct {
	mu      sync.RWMutex
	levels  map[int]*levelCounters
	simTime atomic.Uint64 // bits of a float64, accumulated simulation time
	log     *logrus.Entry
}

// NewSink returns an empty Sink. log may be nil, in which case Dump is a
// no-op; callers that want per-level diagnostics logged should pass a
// configured *logrus.Entry.
func NewSink(log *logrus.Entry) *Sink {
	return &Sink{levels: make(map[int]*levelCounters), log: log}
}

func (s *Sink) at(level int) *levelCounters {
	s.mu.RLock()
	lc, ok := s.levels[level]
	s.mu.RUnlock()
	if ok {
		return lc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if lc, ok = s.levels[level]; ok {
		return lc
	}
	lc = &levelCounters{}
	s.levels[level] = lc
	return lc
}

// IncTStep records one Split invocation at level.
func (s *Sink) IncTStep(level int) { s.at(level).tStep.Add(1) }

// IncTCount records one pairwise timestep evaluation at level.
func (s *Sink) IncTCount(level int) { s.at(level).tCount.Add(1) }

// IncTasks records n dispatched component tasks covering taskSize particles
// at level, as observed by the task dispatcher.
func (s *Sink) IncTasks(level int, n, taskSize int64) {
	lc := s.at(level)
	lc.nTasks.Add(n)
	lc.taskCount.Add(taskSize)
}

// IncDeepStep records one completed leaf kick/drift step at level.
func (s *Sink) IncDeepStep(level int) { s.at(level).deepSteps.Add(1) }

// AddSimTime accumulates dt into the run-wide simulated time total.
func (s *Sink) AddSimTime(dt float64) {
	for {
		old := s.simTime.Load()
		next := math.Float64frombits(old) + dt
		if s.simTime.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// SimTime returns the run-wide accumulated simulated time.
func (s *Sink) SimTime() float64 { return math.Float64frombits(s.simTime.Load()) }

// Snapshot returns a race-free copy of every level's counters touched so
// far, ordered by level ascending.
func (s *Sink) Snapshot() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Snapshot, 0, len(s.levels))
	for lvl, lc := range s.levels {
		out = append(out, Snapshot{
			Level:     lvl,
			TStep:     lc.tStep.Load(),
			TCount:    lc.tCount.Load(),
			NTasks:    lc.nTasks.Load(),
			TaskCount: lc.taskCount.Load(),
			DeepSteps: lc.deepSteps.Load(),
		})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Level > out[j].Level; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Dump logs every level's current counters at debug level. A no-op if the
// sink was constructed without a logger.
func (s *Sink) Dump() {
	if s.log == nil {
		return
	}
	for _, snap := range s.Snapshot() {
		s.log.WithFields(logrus.Fields{
			"level":      snap.Level,
			"t_step":     snap.TStep,
			"t_count":    snap.TCount,
			"n_tasks":    snap.NTasks,
			"task_count": snap.TaskCount,
			"deep_steps": snap.DeepSteps,
		}).Debug("diag: level counters")
	}
	s.log.WithField("sim_time", s.SimTime()).Debug("diag: total simulated time")
}
