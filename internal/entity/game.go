package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardSize is the width and height of the grid.
const BoardSize = 3

type Mark uint8

const (
	MarkX Mark = iota + 1
	MarkO
)

// Opponent returns the other mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// Cell is either empty or holds one Mark.
type Cell uint8

const EmptyCell Cell = 0

// CellOf returns a cell occupied by the given mark.
func CellOf(mark Mark) Cell {
	return Cell(mark)
}

// Mark reports the occupying mark, ok is false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	if that == EmptyCell {
		return 0, false
	}
	return Mark(that), true
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) String() string {
	if mark, ok := that.Mark(); ok {
		return mark.String()
	}
	return " "
}

// Move addresses a cell by column and row.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Move) InBounds() bool {
	return that.Col >= 0 && that.Col < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusDraw       Status = "draw"
	StatusWin        Status = "win"
)

// Outcome classifies a GameState. Winner is set only for StatusWin.
type Outcome struct {
	Status Status
	Winner Mark
}

func InProgress() Outcome { return Outcome{Status: StatusInProgress} }

func Draw() Outcome { return Outcome{Status: StatusDraw} }

func Win(mark Mark) Outcome { return Outcome{Status: StatusWin, Winner: mark} }

func (that Outcome) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that Outcome) String() string {
	if that.Status == StatusWin {
		return fmt.Sprintf("%s(%s)", that.Status, that.Winner)
	}
	return string(that.Status)
}

// GameState is an immutable board position plus the mark to move.
// Transitions return a new value and never touch the receiver.
type GameState struct {
	cells  [BoardSize][BoardSize]Cell // indexed [col][row]
	toMove Mark
}

func NewGameState(startingMark Mark) GameState {
	return GameState{toMove: startingMark}
}

func (that GameState) CurrentMark() Mark {
	return that.toMove
}

// CellAt returns the occupancy at (col, row) or ErrInvalidCell when out of range.
func (that GameState) CellAt(col, row int) (Cell, error) {
	if !(Move{Col: col, Row: row}).InBounds() {
		return EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, col, row)
	}

	return that.cells[col][row], nil
}

// IsLegalMove is safe for any coordinates.
func (that GameState) IsLegalMove(col, row int) bool {
	if !(Move{Col: col, Row: row}).InBounds() {
		return false
	}

	return that.cells[col][row].IsEmpty()
}

// LegalMoves lists empty cells, column outer and row inner, both ascending.
func (that GameState) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if that.cells[col][row].IsEmpty() {
				moves = append(moves, Move{Col: col, Row: row})
			}
		}
	}

	return moves
}

// ApplyMove places the current mark at move and passes the turn.
func (that GameState) ApplyMove(move Move) (GameState, error) {
	if !move.InBounds() {
		return that, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, move.Col, move.Row)
	}

	if !that.cells[move.Col][move.Row].IsEmpty() {
		return that, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, move.Col, move.Row)
	}

	next := that
	next.cells[move.Col][move.Row] = CellOf(that.toMove)
	next.toMove = that.toMove.Opponent()

	return next, nil
}

// Outcome checks rows top to bottom, then columns left to right, then the
// main diagonal and finally the anti-diagonal. The first full line wins.
func (that GameState) Outcome() Outcome {
	for row := 0; row < BoardSize; row++ {
		if mark, ok := matching(that.cells[0][row], that.cells[1][row], that.cells[2][row]); ok {
			return Win(mark)
		}
	}

	for col := 0; col < BoardSize; col++ {
		if mark, ok := matching(that.cells[col][0], that.cells[col][1], that.cells[col][2]); ok {
			return Win(mark)
		}
	}

	if mark, ok := matching(that.cells[0][0], that.cells[1][1], that.cells[2][2]); ok {
		return Win(mark)
	}

	if mark, ok := matching(that.cells[0][2], that.cells[1][1], that.cells[2][0]); ok {
		return Win(mark)
	}

	// the game continues while any cell is free
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if that.cells[col][row].IsEmpty() {
				return InProgress()
			}
		}
	}

	return Draw()
}

func matching(a, b, c Cell) (Mark, bool) {
	if a.IsEmpty() || a != b || b != c {
		return 0, false
	}
	return a.Mark()
}

// Format draws the board, styling each cell and the turn marker with style.
func (that GameState) Format(style func(Cell) string) string {
	const divider = "---+---+---+---+"

	var sb strings.Builder

	fmt.Fprintf(&sb, " %s | 0 | 1 | 2 |\n%s\n", style(CellOf(that.toMove)), divider)

	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, " %-2d| %s | %s | %s |\n%s\n",
			row,
			style(that.cells[0][row]),
			style(that.cells[1][row]),
			style(that.cells[2][row]),
			divider,
		)
	}

	return sb.String()
}

func (that GameState) String() string {
	return that.Format(Cell.String)
}
