package labelsetting

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/aerocircuit/breitling/adjacency"
	"github.com/aerocircuit/breitling/arena"
	"github.com/aerocircuit/breitling/bestqueue"
	"github.com/aerocircuit/breitling/lowerbound"
	"github.com/aerocircuit/breitling/station"
)

// Solver is the label-setting driver. One Solver instance owns its label
// arena, fragment arena, per-station live-label index, and best-labels
// cache exclusively: there is no locking, and concurrent calls to Solve on
// the same Solver are undefined behaviour by contract (see Solve's doc
// comment).
type Solver struct {
	instance *station.ProblemInstance
	adj *adjacency.Index
	tables *lowerbound.Tables
	labels *arena.LabelArena
	fragments *arena.FragmentArena
	cache *bestqueue.Cache

	// perStation[s] holds the indices of every live (not-yet-freed) label
	// currently at station s, explored or not, kept for domination checks.
	perStation [][]int

	opts Options
	rng *rand.Rand
	stop atomic.Bool

	lastBestFragment int
}

// NewSolver builds a Solver for instance, constructing the partial adjacency
// index and lower-bound tables. Returns a ConfigError-class sentinel
// (ErrNonPositiveMinStations, ErrMinStationsExceedsCatalogue,
// ErrNonPositiveMaxDuration, or an adjacency/lowerbound construction error)
// on invalid configuration.
func NewSolver(instance *station.ProblemInstance, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(len(instance.Stations)); err != nil {
		return nil, err
	}

	adj, err := adjacency.Build(instance, o.K)
	if err != nil {
		return nil, err
	}
	tables, err := lowerbound.Build(instance, o.MinStations)
	if err != nil {
		return nil, err
	}

	return &Solver{
		instance: instance,
		adj: adj,
		tables: tables,
		labels: arena.NewLabelArena(o.InitialLabelArenaSize),
		fragments: arena.NewFragmentArena(o.InitialFragmentArenaSize),
		cache: bestqueue.NewCache(o.LabelCacheCapacity),
		perStation: make([][]int, len(instance.Stations)),
		opts: o,
		rng: rand.New(rand.NewSource(o.Seed)),
		lastBestFragment: arena.NoParentFragment,
	}, nil
}

// Stop atomically raises the cancellation flag; Solve observes it at the
// next iteration boundary and returns the best path found so far.
func (s *Solver) Stop() { s.stop.Store(true) }

// FragmentArenaLiveCount exposes the fragment arena's live-slot count, used
// by tests to verify that freeing the best-path fragment reduces the
// fragment arena's live count to zero.
func (s *Solver) FragmentArenaLiveCount() int { return s.fragments.LiveCount() }

// ReleaseBestPath releases the fragment chain backing the last path Solve
// returned, if it was backed by this Solver's fragment arena (a seed path
// with no search improvement is not). Safe to call multiple times.
func (s *Solver) ReleaseBestPath() {
	if s.lastBestFragment != arena.NoParentFragment {
		s.fragments.Release(s.lastBestFragment)
		s.lastBestFragment = arena.NoParentFragment
	}
}

// Solve runs the label-setting main loop until the queue drains, the stop
// flag is raised, or a configured iteration/time budget is exhausted,
// returning the best path found (possibly empty: Solve treats "no feasible
// path" as a normal, non-error result).
//
// seedPath/seedTime optionally warm-start the upper bound with a heuristic
// result (e.g. from package natural); pass nil/+Inf to search unseeded.
//
// There are no ordering guarantees across concurrent calls to Solve on the
// same Solver: two concurrent solves are undefined behaviour by contract.
func (s *Solver) Solve(seedPath []int, seedTime float64) ([]int, Diagnostics, error) {
	start := time.Now()
	var diag Diagnostics

	bestTime := math.Inf(1)
	var bestPath []int
	s.lastBestFragment = arena.NoParentFragment

	// Label times are clock times starting at DepartureTime, while seedTime
	// and the reported BestTime are durations measured from departure.
	if seedPath != nil && seedTime < bestTime {
		bestTime = s.instance.DepartureTime + seedTime
		bestPath = append([]int(nil), seedPath...)
		diag.SeedUsed = true
	}

	hasUpperBound := !math.IsInf(bestTime, 1)

	dep := s.instance.DepartureStation
	regions := s.instance.Regions()

	var visited arena.StationSet
	visited.Set(dep)
	var visitedRegions station.RegionSet
	if p := regions.PrimaryRegion(dep); p >= 0 {
		visitedRegions = station.RegionBit(p)
	}

	rootFragment := s.fragments.NewRoot(dep)
	depLabel := arena.Label{
		CurrentStation: dep,
		VisitedRegions: visitedRegions,
		VisitedStationCount: 1,
		VisitedStations: visited,
		CurrentTime: s.instance.DepartureTime,
		CurrentFuel: s.instance.PlaneFuelTime(),
		PathFragment: rootFragment,
	}
	depLabel.Score = scoreLabel(&depLabel, s.opts, s.rng, hasUpperBound)
	depIdx := s.labels.Push(depLabel)
	s.perStation[dep] = append(s.perStation[dep], depIdx)
	s.cache.Insert(depIdx, depLabel.Score)

	iterations := 0
	for {
		if s.stop.Load() {
			diag.StoppedEarly = true
			break
		}
		if s.opts.MaxSearchTime > 0 && time.Since(start) > s.opts.MaxSearchTime {
			diag.StoppedEarly = true
			break
		}
		if s.opts.MaxIterations > 0 && iterations >= s.opts.MaxIterations {
			diag.StoppedEarly = true
			break
		}

		labIdx, ok := s.cache.PopFront()
		if !ok {
			if !s.refillCache() {
				break
			}
			labIdx, ok = s.cache.PopFront()
			if !ok {
				break
			}
		}
		iterations++

		lbl := s.labels.Get(labIdx)
		if lbl.Score == arena.Explored {
			continue
		}
		s.labels.MarkExplored(labIdx)
		diag.ExploredLabels++

		if lowerBound(lbl, s.tables, s.adj, s.opts.MinStations) >= bestTime {
			continue
		}

		children := exploreChildren(lbl, s.instance, s.adj, s.opts.MinStations, bestTime)
		for _, c := range children {
			if c.VisitedStationCount == s.opts.MinStations {
				if c.VisitedRegions.PopCount() == station.RegionCount && c.Time < bestTime {
					// lbl may be stale if a prior child in this loop grew an
					// arena; re-resolve before reading PathFragment.
					parentFrag := s.labels.Get(labIdx).PathFragment
					newFrag, err := s.fragments.Push(c.Station, parentFrag)
					if err != nil {
						diag.Elapsed = time.Since(start)
						return bestPath, diag, err
					}
					s.ReleaseBestPath()
					s.lastBestFragment = newFrag
					bestTime = c.Time
					bestPath = s.fragments.Reconstruct(newFrag)
					hasUpperBound = true
					if s.opts.OnImprovement != nil {
						s.opts.OnImprovement(bestTime-s.instance.DepartureTime, time.Since(start).Milliseconds())
					}
				}
				continue
			}

			candidate := arena.Label{
				CurrentStation: c.Station,
				VisitedRegions: c.VisitedRegions,
				VisitedStationCount: c.VisitedStationCount,
				VisitedStations: c.VisitedStations,
				CurrentTime: c.Time,
				CurrentFuel: c.Fuel,
			}

			dominated := false
			for _, existingIdx := range s.perStation[c.Station] {
				existing := s.labels.Get(existingIdx)
				if Dominates(existing, &candidate) {
					dominated = true
					break
				}
			}
			if dominated {
				continue
			}

			kept := s.perStation[c.Station][:0]
			for _, existingIdx := range s.perStation[c.Station] {
				existing := s.labels.Get(existingIdx)
				if Dominates(&candidate, existing) {
					s.cache.Remove(existingIdx)
					s.fragments.Release(existing.PathFragment)
					s.labels.Free(existingIdx)
				} else {
					kept = append(kept, existingIdx)
				}
			}
			s.perStation[c.Station] = kept

			parentFrag := s.labels.Get(labIdx).PathFragment
			newFrag, err := s.fragments.Push(c.Station, parentFrag)
			if err != nil {
				diag.Elapsed = time.Since(start)
				return bestPath, diag, err
			}

			newLabel := arena.Label{
				CurrentStation: c.Station,
				VisitedRegions: c.VisitedRegions,
				VisitedStationCount: c.VisitedStationCount,
				VisitedStations: c.VisitedStations,
				CurrentTime: c.Time,
				CurrentFuel: c.Fuel,
				PathFragment: newFrag,
			}
			newLabel.Score = scoreLabel(&newLabel, s.opts, s.rng, hasUpperBound)
			newIdx := s.labels.Push(newLabel)
			s.perStation[c.Station] = append(s.perStation[c.Station], newIdx)
			s.cache.Insert(newIdx, newLabel.Score)
		}
	}

	// Release every label still held for domination checks, so that only
	// the best path's fragment chain stays live in the fragment arena.
	for st, idxs := range s.perStation {
		for _, idx := range idxs {
			s.fragments.Release(s.labels.Get(idx).PathFragment)
			s.labels.Free(idx)
		}
		s.perStation[st] = nil
	}
	s.cache.Reset()

	diag.Elapsed = time.Since(start)
	diag.BestTime = bestTime - s.instance.DepartureTime
	diag.Iterations = iterations
	diag.LabelReallocCount = s.labels.ReallocCount()
	diag.FragmentReallocCount = s.fragments.ReallocCount()

	return bestPath, diag, nil
}

// refillCache rescans every live, not-yet-explored label slot and re-inserts
// it into the best-labels cache. Returns false if no explorable label
// exists anywhere in the arena.
func (s *Solver) refillCache() bool {
	s.cache.Reset()
	found := false
	for i := 0; i < s.labels.Len(); i++ {
		if !s.labels.IsLive(i) || s.labels.IsExplored(i) {
			continue
		}
		found = true
		s.cache.Insert(i, s.labels.Get(i).Score)
	}
	return found
}
