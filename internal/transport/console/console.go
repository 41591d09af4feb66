package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrUnknownColorMode = errors.New("unknown color mode")

const (
	colorX = "9"
	colorO = "12"
)

// Console is the line-oriented terminal the game talks to.
type Console struct {
	reader *bufio.Reader
	output *termenv.Output
}

// New builds a console over in/out. colorMode is one of ColorAuto, ColorAlways or ColorNever.
func New(in io.Reader, out io.Writer, colorMode string) (*Console, error) {
	var opts []termenv.OutputOption

	switch colorMode {
	case ColorAuto, "":
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorMode, colorMode)
	}

	return &Console{
		reader: bufio.NewReader(in),
		output: termenv.NewOutput(out, opts...),
	}, nil
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.output, format, args...)
}

func (that *Console) Println(args ...any) {
	fmt.Fprintln(that.output, args...)
}

// Prompt prints msg and returns the next input line with surrounding whitespace removed.
func (that *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(that.output, msg)

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		// last line without a newline is still an answer
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	}

	return strings.TrimSpace(line), nil
}

// PromptMap asks until parse accepts the answer, printing every rejection.
func PromptMap[T any](c *Console, msg string, parse func(string) (T, error)) (T, error) {
	for {
		resp, err := c.Prompt(msg)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(resp)
		if err == nil {
			return value, nil
		}

		c.Println(err.Error())
	}
}

// RenderBoard draws state with colored marks when the terminal supports it.
func (that *Console) RenderBoard(state entity.GameState) string {
	return state.Format(that.styleCell)
}

func (that *Console) styleCell(cell entity.Cell) string {
	mark, ok := cell.Mark()
	if !ok {
		return cell.String()
	}

	color := colorX
	if mark == entity.MarkO {
		color = colorO
	}

	return that.output.String(mark.String()).Foreground(that.output.Color(color)).Bold().String()
}
