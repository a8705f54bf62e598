package search

import (
	"runtime"
	"time"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// workerResult is what a root worker publishes on the results channel:
// its local best move/score, or ok=false if the deadline expired before
// it finished its share of the root moves.
type workerResult struct {
	move  pieces.Move
	score float64
	ok    bool
}

// BestMove searches the given color's legal root moves to depth, cloning
// p once per worker and distributing root moves round-robin across
// runtime.NumCPU() goroutines, mirroring the reference engine's one
// OS thread per core. It returns ok=false if any worker hit the deadline,
// in which case move/score are meaningless and the caller should fall
// back to the previous iterative-deepening depth's result.
func BestMove(p *position.Position, c pieces.Color, depth int, deadline time.Time) (pieces.Move, float64, bool) {
	moves := legalMoves(p, c)
	if len(moves) == 0 {
		return pieces.Move{}, 0, false
	}

	cores := runtime.NumCPU()
	if cores > len(moves) {
		cores = len(moves)
	}
	groups := make([][]pieces.Move, cores)
	for i, m := range moves {
		groups[i%cores] = append(groups[i%cores], m)
	}

	results := make(chan workerResult, cores)
	for _, group := range groups {
		group := group
		go searchRootGroup(p.Clone(), c, group, depth, deadline, results)
	}

	best := initialBest(c)
	haveBest := false
	for i := 0; i < cores; i++ {
		r := <-results
		if !r.ok {
			return pieces.Move{}, 0, false
		}
		if !haveBest || better(c, r.score, best.score) {
			best = r
			haveBest = true
		}
	}
	return best.move, best.score, true
}

func initialBest(c pieces.Color) workerResult {
	if c == pieces.White {
		return workerResult{score: negInf}
	}
	return workerResult{score: posInf}
}

func better(c pieces.Color, candidate, current float64) bool {
	if c == pieces.White {
		return candidate > current
	}
	return candidate < current
}

const (
	negInf = -1e18
	posInf = 1e18
)

// searchRootGroup searches one worker's share of the root moves
// sequentially against its own position clone, publishing the group's
// single best result.
func searchRootGroup(p *position.Position, c pieces.Color, moves []pieces.Move, depth int, deadline time.Time, results chan<- workerResult) {
	best := initialBest(c)
	haveBest := false

	for _, m := range moves {
		if deadlineExceeded(deadline) {
			results <- workerResult{ok: false}
			return
		}
		tok := p.Make(c, m)
		var score *float64
		if c == pieces.White {
			score = Min(p, best.score, posInf, depth-1, deadline)
		} else {
			score = Max(p, negInf, best.score, depth-1, deadline)
		}
		p.Unmake(c, m, tok)

		if score == nil {
			results <- workerResult{ok: false}
			return
		}
		if !haveBest || better(c, *score, best.score) {
			best = workerResult{move: m, score: *score, ok: true}
			haveBest = true
		}
	}
	best.ok = true
	results <- best
}

// IterativeDeepening drives BestMove at depths 1, 2, 3, ... until
// deadline, reporting the last depth that completed before the deadline
// expired. If even depth 1 is cancelled, it returns the zero Move — the
// caller (the UCI front-end) is expected to have sized its time budget so
// this does not happen in practice.
func IterativeDeepening(p *position.Position, c pieces.Color, deadline time.Time) (pieces.Move, float64) {
	var fallbackMove pieces.Move
	var fallbackScore float64

	for depth := 1; ; depth++ {
		move, score, ok := BestMove(p, c, depth, deadline)
		if !ok {
			return fallbackMove, fallbackScore
		}
		fallbackMove, fallbackScore = move, score
		if deadlineExceeded(deadline) {
			return fallbackMove, fallbackScore
		}
	}
}
