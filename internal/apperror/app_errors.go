package apperror

import "errors"

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input stream closed")
	ErrUnknownPlayer    = errors.New("unknown player kind")
)

// Diagnostics below are printed to the player as is.
//
//nolint:stylecheck,revive // capitalized on purpose
var (
	ErrCellOccupied        = errors.New("Cell is already occupied")
	ErrCouldNotParseRow    = errors.New("Could not parse row")
	ErrCouldNotParseColumn = errors.New("Could not parse column")
	ErrNotValidNumber      = errors.New("Not a valid number")
	ErrNotValidSelection   = errors.New("Not a valid selection")
	ErrNotYesOrNo          = errors.New("please enter 'y' or 'n'")
)
