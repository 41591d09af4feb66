package entity

import "fmt"

// Score is the running tally of finished rounds.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Record counts a finished round. In-progress outcomes are ignored.
func (that *Score) Record(outcome Outcome) {
	switch outcome.Status {
	case StatusWin:
		if outcome.Winner == MarkX {
			that.X++
		} else {
			that.O++
		}
	case StatusDraw:
		that.Draws++
	case StatusInProgress:
	}
}

func (that Score) String() string {
	return fmt.Sprintf("X has %d wins, O has %d wins, and there have been %d draws.", that.X, that.O, that.Draws)
}
