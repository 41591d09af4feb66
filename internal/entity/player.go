package entity

// PlayerKind names a move-selection strategy offered in the player menu.
type PlayerKind string

const (
	HumanPlayer PlayerKind = "Human"
	AIPlayer    PlayerKind = "AI"
)

// PlayerKinds is the menu order.
var PlayerKinds = []PlayerKind{HumanPlayer, AIPlayer}
