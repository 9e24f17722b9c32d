// Package term is the interactive front end: a read-eval-print loop
// over GameState. Every command is one synchronous core call; the
// loop owns the only thread that ever touches the game.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/game"
	"svw.info/termdoku/internal/ports"
)

// UI wires the game, the wall clock, and the score file to a
// line-oriented terminal.
type UI struct {
	Game     *game.GameState
	Scores   ports.ScoreStore
	Renderer Renderer

	in  io.Reader
	out io.Writer

	clock    game.Stopwatch
	ticked   float64 // seconds already pushed into the game timer
	rewarded bool    // best time submitted for the current game
}

func NewUI(gs *game.GameState, scores ports.ScoreStore, in io.Reader, out io.Writer) *UI {
	return &UI{Game: gs, Scores: scores, in: in, out: out}
}

// syncClock pushes the stopwatch delta into the game timer.
func (u *UI) syncClock() {
	now := u.clock.Elapsed().Seconds()
	u.Game.Tick(now - u.ticked)
	u.ticked = now
}

// Run drives the loop until EOF or quit.
func (u *UI) Run(ctx context.Context, diff domain.Difficulty) error {
	fmt.Fprintln(u.out, "termdoku (type 'help' for commands)")
	if err := u.newGame(ctx, diff); err != nil {
		return err
	}
	return u.loop(ctx)
}

// RunLoaded starts the loop on a puzzle the caller already installed
// with LoadPuzzle (resuming from the library).
func (u *UI) RunLoaded(ctx context.Context) error {
	fmt.Fprintln(u.out, "termdoku (type 'help' for commands)")
	u.clock.Reset()
	u.clock.Start()
	u.ticked = 0
	u.rewarded = false
	return u.loop(ctx)
}

func (u *UI) loop(ctx context.Context) error {
	sc := bufio.NewScanner(u.in)
	for {
		u.syncClock()
		fmt.Fprint(u.out, u.Renderer.Render(u.Game))
		u.maybeRecord()
		fmt.Fprint(u.out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := u.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (u *UI) newGame(ctx context.Context, diff domain.Difficulty) error {
	fmt.Fprintf(u.out, "generating %s puzzle...\n", diff)
	if err := u.Game.NewGame(ctx, diff); err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	u.clock.Reset()
	u.clock.Start()
	u.ticked = 0
	u.rewarded = false
	return nil
}

// maybeRecord submits the completion time once per finished game.
func (u *UI) maybeRecord() {
	if !u.Game.IsComplete() || u.rewarded || u.Scores == nil {
		return
	}
	u.clock.Stop()
	u.rewarded = true
	if u.Scores.SubmitTime(u.Game.Difficulty, u.Game.Timer) {
		fmt.Fprintf(u.out, "new best time for %s: %s\n", u.Game.Difficulty, u.Game.FormatTime())
	}
}

// dispatch runs one command; returns true to exit the loop.
func (u *UI) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help", "?":
		u.printHelp()
	case "new":
		diff := u.Game.Difficulty
		if len(args) > 0 {
			diff = domain.ParseDifficulty(args[0])
		}
		if err := u.newGame(ctx, diff); err != nil {
			fmt.Fprintf(u.out, "error: %v\n", err)
		}
	case "m", "move":
		u.cmdMove(args)
	case "d", "digit":
		u.cmdDigit(args)
	case "note", "notes":
		u.Game.ToggleNotesMode()
	case "clear":
		u.cmdClear(args)
	case "sel":
		if r, c, ok := parseCell(args); ok {
			u.Game.SelectCell(r, c)
		} else {
			fmt.Fprintln(u.out, "usage: sel <row> <col>")
		}
	case "up":
		u.Game.MoveSelection(-1, 0)
	case "down":
		u.Game.MoveSelection(1, 0)
	case "left":
		u.Game.MoveSelection(0, -1)
	case "right":
		u.Game.MoveSelection(0, 1)
	case "next":
		u.Game.MoveToNextEmpty(false)
	case "prev":
		u.Game.MoveToNextEmpty(true)
	case "undo":
		if !u.Game.Undo() {
			fmt.Fprintln(u.out, "nothing to undo")
		}
	case "redo":
		if !u.Game.Redo() {
			fmt.Fprintln(u.out, "nothing to redo")
		}
	case "hint":
		if h, ok := u.Game.ApplyHint(); ok {
			fmt.Fprintf(u.out, "hint: %d at r%dc%d\n", h.Value, h.Row+1, h.Col+1)
		} else {
			fmt.Fprintln(u.out, "no hint available")
		}
	case "pause":
		u.Game.TogglePause()
		if u.Game.Paused() {
			u.clock.Stop()
		} else if !u.Game.IsComplete() {
			u.clock.Start()
		}
	case "best":
		u.printBest()
	case "q", "quit", "exit":
		return true
	default:
		fmt.Fprintf(u.out, "unknown command %q, try 'help'\n", cmd)
	}
	return false
}

// cmdMove handles "m r c v": enter digit v at (r,c), or a note when
// notes mode is on.
func (u *UI) cmdMove(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(u.out, "usage: m <row> <col> <digit>")
		return
	}
	r, c, ok := parseCell(args[:2])
	v, err := strconv.Atoi(args[2])
	if !ok || err != nil || v < 0 || v > 9 {
		fmt.Fprintln(u.out, "usage: m <row> <col> <digit 0-9>")
		return
	}
	if u.Game.Paused() {
		fmt.Fprintln(u.out, "game is paused")
		return
	}
	u.Game.SelectCell(r, c)
	if !u.Game.MakeMove(r, c, uint8(v)) {
		fmt.Fprintln(u.out, "move rejected (given clue or finished game)")
	}
}

// cmdDigit enters a digit at the current cursor.
func (u *UI) cmdDigit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(u.out, "usage: d <digit>")
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 0 || v > 9 {
		fmt.Fprintln(u.out, "usage: d <digit 0-9>")
		return
	}
	sel, ok := u.Game.SelectedCell()
	if !ok {
		fmt.Fprintln(u.out, "no cell selected; use sel or next first")
		return
	}
	if u.Game.Paused() {
		fmt.Fprintln(u.out, "game is paused")
		return
	}
	if !u.Game.MakeMove(sel.Row, sel.Col, uint8(v)) {
		fmt.Fprintln(u.out, "move rejected (given clue or finished game)")
	}
}

func (u *UI) cmdClear(args []string) {
	var r, c int
	if len(args) == 0 {
		sel, ok := u.Game.SelectedCell()
		if !ok {
			fmt.Fprintln(u.out, "no cell selected")
			return
		}
		r, c = sel.Row, sel.Col
	} else {
		var ok bool
		r, c, ok = parseCell(args)
		if !ok {
			fmt.Fprintln(u.out, "usage: clear [<row> <col>]")
			return
		}
	}
	if !u.Game.ClearCell(r, c) {
		fmt.Fprintln(u.out, "move rejected (given clue or finished game)")
	}
}

func (u *UI) printBest() {
	if u.Scores == nil {
		return
	}
	for _, d := range domain.Difficulties() {
		if sec, ok := u.Scores.BestTime(d); ok {
			fmt.Fprintf(u.out, "  %-6s %s\n", d, formatSeconds(sec))
		} else {
			fmt.Fprintf(u.out, "  %-6s --:--\n", d)
		}
	}
}

func formatSeconds(sec float64) string {
	total := int(sec)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func (u *UI) printHelp() {
	fmt.Fprint(u.out, `commands (rows/cols are 1-9):
  m <r> <c> <d>   enter digit (toggles a note in notes mode)
  d <d>           enter digit at the cursor
  clear [r c]     clear cell (value and notes)
  note            toggle notes mode
  sel <r> <c>     place cursor; up/down/left/right to move it
  next / prev     jump cursor to next/previous empty cell
  undo / redo     step through move history
  hint            fill in the next wrong or empty cell
  pause           pause/resume the timer
  new [difficulty]  easy|medium|hard|expert
  best            show best times
  q               quit
`)
}

// parseCell reads two 1-based coordinates.
func parseCell(args []string) (r, c int, ok bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(args[0])
	c, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || r < 1 || r > 9 || c < 1 || c > 9 {
		return 0, 0, false
	}
	return r - 1, c - 1, true
}
