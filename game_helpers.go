package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/model"
	"github.com/sheikhrachel/go-lightsout/solver"
	"github.com/sheikhrachel/go-lightsout/tui"
	"github.com/sheikhrachel/go-lightsout/utils"
	"github.com/sheikhrachel/go-lightsout/view"
)

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(out, "Grid: %dx%d | Light probability: %.2f | Initial lit cells: %d\n",
		grid.Rows(), grid.Cols(), config.LightProbability, grid.CountLit())
	fmt.Fprintln(out, "Enter \"<row> <col>\" to toggle, \"hint\", \"restart\", \"json\" or \"quit\"")
	fmt.Fprintln(out)
}

// displayGameStatus prints the board and the status line under it
func displayGameStatus(out io.Writer, renderer *model.TerminalRenderer, session *game.Session) {
	v := view.New(session, session.Config().ShowHints)
	renderer.Display(session.Grid())
	fmt.Fprintln(out, view.StatusLine(v, session.Stats().Runtime()))
	if v.Won {
		fmt.Fprintln(out, "All lights are out! Type \"restart\" for a new board or \"quit\" to exit.")
	}
}

// parseCoord reads "<row> <col>" or "<row>,<col>"
func parseCoord(line string) (model.Coord, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) != 2 {
		return model.Coord{}, errors.Errorf("[parseCoord] expected two numbers, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Coord{}, errors.Wrapf(err, "[parseCoord] bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Coord{}, errors.Wrapf(err, "[parseCoord] bad column %q", fields[1])
	}
	return model.Coord{Row: row, Col: col}, nil
}

// runPlain plays a session line by line until quit, EOF or cancellation
func runPlain(ctx context.Context, session *game.Session, in io.Reader, out io.Writer) error {
	renderer := model.NewTerminalRenderer(out)
	displayGameInfo(out, session.Config(), session.Grid())
	displayGameStatus(out, renderer, session)

	var (
		lines   = make(chan string)
		readErr = make(chan error, 1)
		done    = make(chan struct{})
	)
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return errors.Wrap(<-readErr, "[runPlain] failed to read input")
			}
			line = l
		}

		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "hint":
			if c, ok := session.Hint(); ok {
				fmt.Fprintf(out, "Try %d %d\n", c.Row, c.Col)
			} else if session.HasWon() {
				fmt.Fprintln(out, "Board is already clear")
			} else {
				fmt.Fprintln(out, "This board cannot be cleared; try \"restart\"")
			}
		case "r", "restart":
			if err := session.Restart(); err != nil {
				return err
			}
			displayGameStatus(out, renderer, session)
		case "json":
			data, err := view.New(session, session.Config().ShowHints).JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		default:
			c, err := parseCoord(cmd)
			if err != nil {
				fmt.Fprintln(out, errors.Cause(err))
				continue
			}
			session.Toggle(c)
			displayGameStatus(out, renderer, session)
		}
	}
}

// runSurvey solves a batch of random boards and prints the summary
func runSurvey(ctx context.Context, config utils.Config, boards int, asJSON bool, out io.Writer) error {
	result, err := solver.Survey(ctx, solver.SurveyParams{
		Rows:             config.Rows,
		Cols:             config.Cols,
		LightProbability: config.LightProbability,
		Boards:           boards,
		Workers:          config.Workers,
		Seed:             config.Seed,
	})
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return errors.Wrap(err, "[runSurvey] failed to marshal result")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Grid: %dx%d | Light probability: %.2f | Boards: %d\n",
		config.Rows, config.Cols, config.LightProbability, result.Boards)
	fmt.Fprintf(out, "Solvable: %d (%.1f%%) | Already clear: %d\n",
		result.Solvable, result.SolvableRatio()*100, result.AlreadyWon)
	fmt.Fprintf(out, "Presses: avg %.2f | max %d | took %s\n",
		result.AveragePresses, result.MaxPresses, result.Duration)

	presses := make([]int, 0, len(result.PressHistogram))
	for n := range result.PressHistogram {
		presses = append(presses, n)
	}
	sort.Ints(presses)
	for _, n := range presses {
		fmt.Fprintf(out, "  %3d presses: %d\n", n, result.PressHistogram[n])
	}
	return nil
}

// runTUI takes over the terminal until the player quits
func runTUI(session *game.Session, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTUI] failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[runTUI] failed to initialise screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	return tui.New(screen, session, log).Run()
}
