package suite

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
}

// New returns a suite whose console answers prompts with lines, in order.
// Once lines run out every further prompt fails with ErrInputClosed.
func New(t *testing.T, lines ...string) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	cons, err := console.New(strings.NewReader(input), output, console.ColorNever)
	if err != nil {
		t.Fatalf("could not create console: %v", err)
	}

	return &Suite{
		T:       t,
		Logger:  logger,
		Console: cons,
		Output:  output,
	}
}

// Transcript is everything written to the console so far.
func (that *Suite) Transcript() string {
	return that.Output.String()
}
