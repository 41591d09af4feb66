package service

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type reporter interface {
	Printf(format string, args ...any)
}

// ScoredMove is a candidate with its score for the mark that plays it:
// 1 forced win, 0 draw, -1 forced loss.
type ScoredMove struct {
	Move  entity.Move
	Score int
}

// SearchPlayer searches the whole game tree for the best move.
type SearchPlayer struct {
	logger   *slog.Logger
	rng      *rand.Rand
	reporter reporter
}

// NewSearchPlayer returns a search player. reporter may be nil to keep decisions silent.
func NewSearchPlayer(logger *slog.Logger, rng *rand.Rand, reporter reporter) *SearchPlayer {
	return &SearchPlayer{
		logger:   logger.With("component", "search"),
		rng:      rng,
		reporter: reporter,
	}
}

func (that *SearchPlayer) SelectMove(state entity.GameState) (entity.Move, error) {
	best, err := that.Decide(state)
	if err != nil {
		return entity.Move{}, err
	}

	if that.reporter != nil {
		that.reporter.Printf("AI chooses move %d, %d with score %d\n", best.Move.Col, best.Move.Row, best.Score)
	}

	return best.Move, nil
}

// Decide scores every legal move and returns one with the highest score.
// Candidates are shuffled before a stable sort so ties go to a uniformly random move.
func (that *SearchPlayer) Decide(state entity.GameState) (ScoredMove, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return ScoredMove{}, apperror.ErrNoAvailableMoves
	}

	candidates := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		candidates = append(candidates, ScoredMove{Move: move, Score: scoreMove(state, move)})
	}

	that.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	slices.SortStableFunc(candidates, func(a, b ScoredMove) int {
		return cmp.Compare(a.Score, b.Score)
	})

	best := candidates[len(candidates)-1]

	that.logger.Debug("move selected",
		"mark", state.CurrentMark().String(),
		"col", best.Move.Col,
		"row", best.Move.Row,
		"score", best.Score,
		"candidates", len(candidates),
	)

	return best, nil
}

// scoreMove rates move for the mark playing it. An unfinished position is
// worth the negation of the best reply available to the opponent.
func scoreMove(state entity.GameState, move entity.Move) int {
	next, err := state.ApplyMove(move)
	if err != nil {
		panic(fmt.Sprintf("search reached an illegal move: %v", err))
	}

	switch outcome := next.Outcome(); outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == state.CurrentMark() {
			return 1
		}
		return -1
	case entity.StatusDraw:
		return 0
	case entity.StatusInProgress:
	}

	replies := next.LegalMoves()
	if len(replies) == 0 {
		return 0
	}

	best := scoreMove(next, replies[0])
	for _, reply := range replies[1:] {
		best = max(best, scoreMove(next, reply))
	}

	return -best
}
