package service

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// Player picks the next move for the mark to move in state.
type Player interface {
	SelectMove(state entity.GameState) (entity.Move, error)
}

// Factory builds the player chosen in the menu.
type Factory struct {
	Logger  *slog.Logger
	Console *console.Console
	Rand    *rand.Rand
	// ReportAI prints each search decision to the console.
	ReportAI bool
}

func (that Factory) New(kind entity.PlayerKind) (Player, error) {
	switch kind {
	case entity.HumanPlayer:
		return NewHumanPlayer(that.Console), nil
	case entity.AIPlayer:
		if that.ReportAI {
			return NewSearchPlayer(that.Logger, that.Rand, that.Console), nil
		}
		return NewSearchPlayer(that.Logger, that.Rand, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, kind)
	}
}

type HumanPlayer struct {
	console *console.Console
}

func NewHumanPlayer(cons *console.Console) *HumanPlayer {
	return &HumanPlayer{
		console: cons,
	}
}

// SelectMove asks for "col,row" until the answer names a free cell.
func (that *HumanPlayer) SelectMove(state entity.GameState) (entity.Move, error) {
	move, err := console.PromptMap(that.console, "Enter your move: ", func(input string) (entity.Move, error) {
		move, err := ParseMove(input)
		if err != nil {
			return entity.Move{}, err
		}

		if !state.IsLegalMove(move.Col, move.Row) {
			return entity.Move{}, apperror.ErrCellOccupied
		}

		return move, nil
	})
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
	}

	return move, nil
}

// ParseMove reads "col,row". Anything after a second comma is ignored.
func ParseMove(input string) (entity.Move, error) {
	parts := strings.Split(input, ",")

	col, ok := parseIndex(parts[0])
	if !ok {
		return entity.Move{}, apperror.ErrCouldNotParseRow
	}

	if len(parts) < 2 {
		return entity.Move{}, apperror.ErrCouldNotParseColumn
	}

	row, ok := parseIndex(parts[1])
	if !ok {
		return entity.Move{}, apperror.ErrCouldNotParseColumn
	}

	return entity.Move{Col: col, Row: row}, nil
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
