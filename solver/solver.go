// Package solver implements the depth-first backtracking search engine
// described in §4.5: a single-threaded recursion over Game clones, pruned
// by a transposition cache, a draw-cycle guard and a stack-loop guard. A
// side errgroup goroutine reports node-rate diagnostics while the search
// goroutine runs, the way the teacher's endgame/negamax.Solver.Solve pairs
// a ticker with its iterative-deepening worker.
package solver

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cardspan/kspider/cache"
	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/move"
	"github.com/cardspan/kspider/movegen"
)

// diagnosticInterval is how often, in node entries, the solver reports
// counters to the side stream (§4.5 "Diagnostics").
const diagnosticInterval = 5000

// defaultCacheMemoryFraction is the portion of system RAM the transposition
// cache may occupy when a Solver is built with MaxCacheSize <= 0, mirroring
// the teacher's endgame/negamax.TranspositionTable.Reset memory-relative
// default instead of always falling back to cache.DefaultMaxSize.
const defaultCacheMemoryFraction = 0.25

// Status is the outcome of a Solve call (§6 "status").
type Status string

const (
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
	StatusTimeout Status = "timeout"
)

// Result is everything the driver needs to build a result envelope (§6).
type Result struct {
	Status          Status
	Moves           []move.Move
	TimedOut        bool
	MovesConsidered uint64
	Elapsed         time.Duration
}

// Solver owns the transposition cache and movegen candidate cache for one
// solve. Both are rebuilt per call to Solve so independent solves never
// share state (§5 "each with a fresh Solver").
type Solver struct {
	MaxCacheSize int
	LogStream    io.Writer

	nodes    atomic.Uint64
	trans    *cache.Set
	movegens *movegen.Cache
	seen     map[string]bool
	deadline time.Time
	timedOut bool
	start    time.Time
	log      zerolog.Logger
}

// New returns a Solver ready for one Solve call. maxCacheSize <= 0 sizes
// the transposition cache relative to system memory instead of a fixed
// entry count (see defaultCacheMemoryFraction).
func New(maxCacheSize int) *Solver {
	return &Solver{MaxCacheSize: maxCacheSize}
}

// Solve runs the search described in §4.5 against g, starting with
// can_flip_deck = false and an empty seen_card_stacks, and returns once
// either a winning line is found, the tree is exhausted, or timeout
// elapses.
func (s *Solver) Solve(ctx context.Context, g *game.Game, timeout time.Duration) (Result, error) {
	runID := uuid.New()
	log := zerolog.Nop()
	if s.LogStream != nil {
		log = zerolog.New(s.LogStream).With().Timestamp().Str("run", runID.String()).Logger()
	}
	s.log = log

	if s.MaxCacheSize <= 0 {
		s.trans = cache.NewSizedToMemory(defaultCacheMemoryFraction)
	} else {
		s.trans = cache.New(s.MaxCacheSize)
	}
	s.movegens = movegen.NewCache()
	s.seen = make(map[string]bool)
	s.nodes.Store(0)
	s.timedOut = false

	start := time.Now()
	s.start = start
	s.deadline = start.Add(timeout)

	done := make(chan struct{})
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-egCtx.Done():
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().
					Uint64("calls", nodes).
					Uint64("nodesPerSecond", nodes-lastNodes).
					Int("cacheSize", s.trans.Len()).
					Float64("enumeratorHitRatio", s.movegens.HitRatio()).
					Dur("elapsed", time.Since(start)).
					Msg("solver-progress")
				lastNodes = nodes
			}
		}
	})

	var moves []move.Move
	eg.Go(func() error {
		defer close(done)
		moves = s.search(g, false, 0)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("solve: %w", err)
	}

	elapsed := time.Since(start)
	calls := s.nodes.Load()

	status := StatusLose
	switch {
	case s.timedOut:
		status = StatusTimeout
	case moves != nil:
		status = StatusWin
	}

	log.Info().
		Str("status", string(status)).
		Uint64("calls", calls).
		Dur("elapsed", elapsed).
		Msg("solve-returning")

	return Result{
		Status:          status,
		Moves:           moves,
		TimedOut:        s.timedOut,
		MovesConsidered: calls,
		Elapsed:         elapsed,
	}, nil
}

// search is the per-node procedure of §4.5. A nil, non-timed-out return
// means "no solution down this path"; a non-nil return is the winning
// suffix of moves, in play order. depth is the number of moves from the
// root position to g.
func (s *Solver) search(g *game.Game, canFlipDeck bool, depth int) []move.Move {
	if s.timedOut {
		return nil
	}
	if time.Now().After(s.deadline) {
		s.timedOut = true
		return nil
	}
	count := s.nodes.Add(1)
	if count%diagnosticInterval == 0 {
		s.log.Debug().
			Uint64("calls", count).
			Int("cacheSize", s.trans.Len()).
			Int("depth", depth).
			Dur("elapsed", time.Since(s.start)).
			Float64("enumeratorHitRatio", s.movegens.HitRatio()).
			Msg("solver-node")
	}

	if g.IsWon() {
		return []move.Move{}
	}

	key := g.CanonicalID(canFlipDeck)
	if s.trans.Has(key) {
		return nil
	}
	s.trans.Add(key)

	for _, m := range movegen.Generate(g, s.movegens) {
		childCanFlip := canFlipDeck

		if m.Kind == move.Draw && len(g.Hand) == 0 {
			if canFlipDeck {
				childCanFlip = false
			} else {
				continue
			}
		}
		if m.Kind == move.WasteToFoundation || m.Kind == move.WasteToTableau {
			childCanFlip = true
		}

		child := g.Clone()
		child.Apply(m)

		guarded := m.Kind == move.TableauToTableau
		var srcKey, dstKey string
		var addedSrc, addedDst bool
		if guarded {
			srcKey = child.Tableau[m.TTSrc()].FaceUpKey()
			dstKey = child.Tableau[m.TTDst()].FaceUpKey()
			if s.seen[srcKey] && s.seen[dstKey] {
				continue
			}
			if !s.seen[srcKey] {
				s.seen[srcKey] = true
				addedSrc = true
			}
			if !s.seen[dstKey] {
				s.seen[dstKey] = true
				addedDst = true
			}
		}

		tail := s.search(child, childCanFlip, depth+1)

		if s.timedOut {
			return nil
		}
		if tail != nil {
			return append([]move.Move{m}, tail...)
		}

		if addedSrc {
			delete(s.seen, srcKey)
		}
		if addedDst {
			delete(s.seen, dstKey)
		}
	}

	return nil
}
