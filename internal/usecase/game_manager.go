package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrRoundFailed = errors.New("round failed")

type playerFactory interface {
	New(kind entity.PlayerKind) (service.Player, error)
}

// GameManager runs the session: player selection, rounds, tally and replay prompt.
type GameManager struct {
	logger  *slog.Logger
	console *console.Console
	rng     *rand.Rand
	players playerFactory

	score entity.Score
	round int
}

func NewGameManager(logger *slog.Logger, cons *console.Console, rng *rand.Rand, players playerFactory) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		console: cons,
		rng:     rng,
		players: players,
	}
}

// Score returns the tally of finished rounds.
func (that *GameManager) Score() entity.Score {
	return that.score
}

// Run plays rounds until the operator declines another one.
func (that *GameManager) Run() error {
	that.drawTitle()

	px, err := that.selectPlayer("Select Player X")
	if err != nil {
		return fmt.Errorf("failed to select player X: %w", err)
	}

	po, err := that.selectPlayer("Select Player O")
	if err != nil {
		return fmt.Errorf("failed to select player O: %w", err)
	}

	for {
		that.round++
		that.drawUnderlined(fmt.Sprintf("Round %d", that.round))

		outcome, err := that.PlayRound(px, po)
		if err != nil {
			return fmt.Errorf("%w: round %d: %w", ErrRoundFailed, that.round, err)
		}

		that.score.Record(outcome)
		that.drawEndOfRound(outcome)

		again, err := that.playAgain()
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			break
		}
	}

	that.drawFarewell()

	return nil
}

// PlayRound plays one game from an empty board. The first mark is picked at random.
func (that *GameManager) PlayRound(px, po service.Player) (entity.Outcome, error) {
	log := that.logger.With("round", that.round)

	startMark := entity.MarkX
	if that.rng.IntN(2) == 1 {
		startMark = entity.MarkO
	}

	log.Info("round started", "start_mark", startMark.String())
	that.console.Printf("%s starts the round!\n", startMark)

	state := entity.NewGameState(startMark)
	for {
		that.console.Printf("\n%s\n", that.console.RenderBoard(state))

		mark := state.CurrentMark()
		player := px
		if mark == entity.MarkO {
			player = po
		}

		that.console.Printf("%s's turn\n", mark)

		move, err := player.SelectMove(state)
		if err != nil {
			return entity.InProgress(), fmt.Errorf("player %s failed to select a move: %w", mark, err)
		}

		state, err = state.ApplyMove(move)
		if err != nil {
			return entity.InProgress(), fmt.Errorf("player %s made an illegal move: %w", mark, err)
		}

		log.Debug("move applied", "mark", mark.String(), "col", move.Col, "row", move.Row)

		if outcome := state.Outcome(); outcome.IsFinished() {
			that.console.Printf("\n%s\n", that.console.RenderBoard(state))
			log.Info("round finished", "outcome", outcome.String())

			return outcome, nil
		}
	}
}

func (that *GameManager) selectPlayer(title string) (service.Player, error) {
	options := make([]string, 0, len(entity.PlayerKinds))
	for _, kind := range entity.PlayerKinds {
		options = append(options, string(kind))
	}

	index, err := that.selectMenu(title, options)
	if err != nil {
		return nil, err
	}

	that.console.Println()

	kind := entity.PlayerKinds[index]
	that.logger.Info("player selected", "slot", title, "kind", string(kind))

	player, err := that.players.New(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// selectMenu returns the zero-based index of the chosen option.
func (that *GameManager) selectMenu(title string, options []string) (int, error) {
	that.drawUnderlined(title)
	for i, option := range options {
		that.console.Printf("%d. %s\n", i+1, option)
	}

	return console.PromptMap(that.console, "> ", func(input string) (int, error) {
		selection, err := strconv.Atoi(input)
		if err != nil || selection < 0 {
			return 0, apperror.ErrNotValidNumber
		}

		if selection < 1 || selection > len(options) {
			return 0, apperror.ErrNotValidSelection
		}

		return selection - 1, nil
	})
}

func (that *GameManager) playAgain() (bool, error) {
	again, err := console.PromptMap(that.console, "Play again? (y/n) ", func(input string) (bool, error) {
		switch input {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			return false, apperror.ErrNotYesOrNo
		}
	})
	if err != nil {
		return false, err
	}

	that.console.Println()

	return again, nil
}

func (that *GameManager) drawTitle() {
	that.drawUnderlined("Let's play Tic Tac Toe!")
	that.console.Println()
}

func (that *GameManager) drawEndOfRound(outcome entity.Outcome) {
	result := "It's a draw!"
	if outcome.Status == entity.StatusWin {
		result = fmt.Sprintf("%s wins!", outcome.Winner)
	}

	that.console.Println()
	that.drawUnderlined(result)
	that.console.Println(that.score.String())
}

func (that *GameManager) drawFarewell() {
	that.console.Println("===================")
	that.console.Println("Thanks for playing!")
	that.console.Println("===================")
}

func (that *GameManager) drawUnderlined(title string) {
	that.console.Println(title)
	that.console.Println(strings.Repeat("=", len(title)))
}
