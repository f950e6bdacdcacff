package ccsplit

import (
	"github.com/katalvlaran/huayno-cc/nbsys"
)

// TimestepFunc is the pairwise critical time step collaborator. It must be
// symmetric in (p, q) up to sign(dir) and strictly positive for any
// distinct pair.
type TimestepFunc func(p, q *nbsys.Particle, dir int) float64

// Counters receives split bookkeeping. diag.Sink satisfies this interface;
// a nil Counters is accepted and simply disables bookkeeping.
type Counters interface {
	IncTStep(level int)
	IncTCount(level int)
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Split runs a connected-component search on s with threshold dt, and
// returns the head of a nil-terminated list of non-trivial components (a
// copy of nbsys.ZeroView when there are none) plus the rest view. s must satisfy s.N >= 2 and
// be contiguous (see nbsys.View.CheckContiguous); violations panic.
//
// Algorithm: in-place partition by swaps. Within the massive range and,
// symmetrically, the massless range, the view is logically divided into
// [visited | stack | unvisited | rest]. The outer loop seeds a one-element
// stack (preferring a massive seed, falling back to massless), then grows
// it by probing every unvisited candidate against the stack's head
// ("active") particle and swapping in every candidate within threshold.
// When the stack empties, the just-closed component is emitted if it has
// at least two members, or its lone member is demoted into rest.
func Split(level int, s nbsys.View, dt float64, ts TimestepFunc, c Counters) (head, rest *nbsys.View) {
	if c != nil {
		c.IncTStep(level)
	}
	if s.N <= 1 {
		nbsys.Fatalf(level, "split-min-size", "Split requires s.N >= 2, got %d", s.N)
	}
	s.CheckContiguous(level)

	dir := sign(dt)
	dtAbs := abs(dt)

	hasMassive := s.HasMassive()
	hasZero := s.HasMassless()

	// Raw buffer-index cursors, mirroring the original pointer arithmetic.
	var stackNext, restNext, compNext int
	var stackZeroNext, restZeroNext, compZeroNext int
	if hasMassive {
		stackNext, restNext = s.Part, s.Last
		compNext = stackNext
	}
	if hasZero {
		stackZeroNext, restZeroNext = s.ZeroPart, s.LastZero
		compZeroNext = stackZeroNext
	}

	buf := s.Buf()

	var listHead, listTail *nbsys.View
	processed := 0

	for processed < s.N {
		if hasMassive && stackNext != compNext {
			nbsys.Fatalf(level, "split-consistency", "massive stack_next=%d != comp_next=%d", stackNext, compNext)
		}
		if hasZero && stackZeroNext != compZeroNext {
			nbsys.Fatalf(level, "split-consistency", "massless stack_next=%d != comp_next=%d", stackZeroNext, compZeroNext)
		}

		compSize, compZeroSize, stackSize := 0, 0, 0

		// Seed the stack: prefer a massive candidate, else a massless one.
		if hasMassive && stackNext <= restNext {
			stackNext++
			stackSize = 1
		}
		if compNext == stackNext && hasZero && stackZeroNext <= restZeroNext {
			stackZeroNext++
			stackSize = 1
		}
		if stackSize == 0 {
			nbsys.Fatalf(level, "split-seed", "no candidate left to seed a component while processed=%d < s.N=%d", processed, s.N)
		}

		for stackSize > 0 {
			var activeZero bool
			switch {
			case hasMassive && stackNext > compNext:
				activeZero = false
			case hasZero && stackZeroNext > compZeroNext:
				activeZero = true
			default:
				nbsys.Fatalf(level, "split-active", "no active particle while stack_size=%d", stackSize)
			}

			var active *nbsys.Particle
			if activeZero {
				active = &buf[compZeroNext]
			} else {
				active = &buf[compNext]
			}

			if hasMassive {
				for i := stackNext; i <= restNext; i++ {
					if c != nil {
						c.IncTCount(level)
					}
					if ts(active, &buf[i], dir) <= dtAbs {
						buf[stackNext], buf[i] = buf[i], buf[stackNext]
						stackNext++
						stackSize++
					}
				}
			}
			if hasZero {
				for i := stackZeroNext; i <= restZeroNext; i++ {
					if c != nil {
						c.IncTCount(level)
					}
					if ts(active, &buf[i], dir) <= dtAbs {
						buf[stackZeroNext], buf[i] = buf[i], buf[stackZeroNext]
						stackZeroNext++
						stackSize++
					}
				}
			}

			if activeZero {
				compZeroNext++
				compZeroSize++
			} else {
				compNext++
			}
			compSize++
			stackSize--
		}

		processed += compSize

		if compSize > 1 {
			cv := &nbsys.View{}
			*cv = nbsys.ZeroView
			nbsys.InitComponent(cv, buf, compSize, compZeroSize, compNext, compZeroNext)
			if listHead == nil {
				listHead = cv
			} else {
				listTail.NextCC = cv
			}
			listTail = cv
		} else if compSize == 1 {
			if compZeroSize == 0 {
				compNext--
				buf[compNext], buf[restNext] = buf[restNext], buf[compNext]
				restNext--
				stackNext--
			} else {
				compZeroNext--
				buf[compZeroNext], buf[restZeroNext] = buf[restZeroNext], buf[compZeroNext]
				restZeroNext--
				stackZeroNext--
			}
		}
	}

	if hasMassive && stackNext != restNext+1 {
		nbsys.Fatalf(level, "split-exit", "massive stack_next=%d != rest_next+1=%d", stackNext, restNext+1)
	}
	if hasZero && stackZeroNext != restZeroNext+1 {
		nbsys.Fatalf(level, "split-exit", "massless stack_next=%d != rest_next+1=%d", stackZeroNext, restZeroNext+1)
	}
	if processed != s.N {
		nbsys.Fatalf(level, "split-count", "processed=%d != s.N=%d", processed, s.N)
	}

	r := &nbsys.View{}
	*r = nbsys.ZeroView
	rN, rNZero := 0, 0
	if hasMassive {
		rN = s.Last - restNext
	}
	if hasZero {
		rNZero = s.LastZero - restZeroNext
	}
	nbsys.InitRest(r, buf, rN+rNZero, rNZero, restNext, restZeroNext, s.Last, s.LastZero)

	if listHead == nil {
		zv := nbsys.ZeroView
		listHead = &zv
	}
	return listHead, r
}
