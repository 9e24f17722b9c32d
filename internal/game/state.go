package game

import (
	"context"
	"fmt"

	"svw.info/termdoku/internal/board"
	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/ports"
)

// GameState owns one running game: the board, the retained solution,
// the undo/redo log, the timer, and the selection cursor. It is
// mutated by a single control thread only; nothing here locks.
type GameState struct {
	Board      *board.Board
	Solution   domain.Grid
	Difficulty domain.Difficulty

	gen    ports.Generator
	hinter ports.Hinter

	// Timer holds elapsed play time in seconds, advanced by Tick.
	Timer float64

	history      []domain.Move
	historyIndex int // -1 = nothing applied; entries > index are redoable

	notesMode bool
	paused    bool
	complete  bool

	selected    domain.CellCoord
	hasSelected bool
}

// New builds an idle GameState around a generator and hint oracle.
// Call NewGame before anything else.
func New(gen ports.Generator, hinter ports.Hinter) *GameState {
	return &GameState{
		Board:        board.New(),
		gen:          gen,
		hinter:       hinter,
		historyIndex: -1,
	}
}

// NewGame generates a fresh puzzle and resets every piece of state.
// No partial puzzle is ever visible: the board is only replaced once
// generation has succeeded.
func (g *GameState) NewGame(ctx context.Context, diff domain.Difficulty) error {
	p, _, err := g.gen.Generate(ctx, diff)
	if err != nil {
		return err
	}
	g.LoadPuzzle(p)
	return nil
}

// LoadPuzzle installs an already-generated puzzle, resetting history,
// timer, modes, and selection.
func (g *GameState) LoadPuzzle(p *domain.Puzzle) {
	g.Difficulty = p.Difficulty
	g.Solution = p.Solution
	g.Board = board.New()
	g.Board.LoadPuzzle(p.Givens)
	g.Timer = 0
	g.history = nil
	g.historyIndex = -1
	g.notesMode = false
	g.paused = false
	g.complete = false
	g.selected = domain.CellCoord{}
	g.hasSelected = true
}

// appendMove drops any redoable tail first, the classic linear undo
// log with branch truncation.
func (g *GameState) appendMove(m domain.Move) {
	if g.historyIndex < len(g.history)-1 {
		g.history = g.history[:g.historyIndex+1]
	}
	g.history = append(g.history, m)
	g.historyIndex = len(g.history) - 1
}

// MakeMove enters a digit (or, in notes mode, toggles a note) at
// (r,c) and records it. Returns false on a finished game or a given
// clue.
func (g *GameState) MakeMove(r, c int, v uint8) bool {
	if g.complete || g.Board.IsGiven(r, c) {
		return false
	}

	oldValue := g.Board.Value(r, c)
	oldNotes := g.Board.Notes(r, c)

	var m domain.Move
	if g.notesMode && v != 0 {
		if !g.Board.ToggleNote(r, c, v) {
			return false
		}
		m = domain.Move{Row: r, Col: c, OldValue: oldValue, NewValue: oldValue,
			OldNotes: oldNotes, NewNotes: g.Board.Notes(r, c)}
	} else {
		g.Board.SetValue(r, c, v)
		m = domain.Move{Row: r, Col: c, OldValue: oldValue, NewValue: v,
			OldNotes: oldNotes}
	}
	g.appendMove(m)

	if g.Board.IsComplete() {
		g.complete = true
	}
	return true
}

// ClearCell empties (r,c), value and notes both, regardless of notes
// mode. A clear of an already-empty, note-free cell is not recorded.
func (g *GameState) ClearCell(r, c int) bool {
	if g.Board.IsGiven(r, c) {
		return false
	}
	oldValue := g.Board.Value(r, c)
	oldNotes := g.Board.Notes(r, c)

	g.Board.SetValue(r, c, 0)
	g.Board.SetNotes(r, c, 0)

	if oldValue != 0 || !oldNotes.Empty() {
		g.appendMove(domain.Move{Row: r, Col: c, OldValue: oldValue, OldNotes: oldNotes})
	}
	return true
}

// Undo rolls back the move at the history index. Undoing can
// un-complete a finished board, so the flag clears unconditionally.
func (g *GameState) Undo() bool {
	if g.historyIndex < 0 {
		return false
	}
	m := g.history[g.historyIndex]
	g.Board.SetValue(m.Row, m.Col, m.OldValue)
	g.Board.SetNotes(m.Row, m.Col, m.OldNotes)
	g.historyIndex--
	g.complete = false
	return true
}

// Redo reapplies the next undone move, if any.
func (g *GameState) Redo() bool {
	if g.historyIndex >= len(g.history)-1 {
		return false
	}
	g.historyIndex++
	m := g.history[g.historyIndex]
	g.Board.SetValue(m.Row, m.Col, m.NewValue)
	g.Board.SetNotes(m.Row, m.Col, m.NewNotes)
	if g.Board.IsComplete() {
		g.complete = true
	}
	return true
}

// Hint returns the oracle's suggestion without applying it.
func (g *GameState) Hint() (domain.Hint, bool) {
	return g.hinter.Hint(g.Board.Grid(), g.Solution)
}

// ApplyHint plays the oracle's suggestion as a regular move. Hints
// always set a value, never a note, so notes mode is sidestepped for
// the duration of the move.
func (g *GameState) ApplyHint() (domain.Hint, bool) {
	h, ok := g.Hint()
	if !ok {
		return domain.Hint{}, false
	}
	wasNotes := g.notesMode
	g.notesMode = false
	g.MakeMove(h.Row, h.Col, h.Value)
	g.notesMode = wasNotes
	return h, true
}

// ToggleNotesMode flips between value entry and note entry.
func (g *GameState) ToggleNotesMode() { g.notesMode = !g.notesMode }

// NotesMode reports whether digit keys toggle notes.
func (g *GameState) NotesMode() bool { return g.notesMode }

// TogglePause flips the paused flag; the front end stops ticking the
// timer and hides the grid while paused.
func (g *GameState) TogglePause() { g.paused = !g.paused }

func (g *GameState) Paused() bool { return g.paused }

// IsComplete reports whether the board is correctly finished.
func (g *GameState) IsComplete() bool { return g.complete }

// Tick advances the timer; called by the front end's clock, on the
// same thread as every other mutation.
func (g *GameState) Tick(dt float64) {
	if dt > 0 {
		g.Timer += dt
	}
}

// SelectedCell returns the cursor position, if any.
func (g *GameState) SelectedCell() (domain.CellCoord, bool) {
	return g.selected, g.hasSelected
}

// SelectCell places the cursor, ignoring out-of-range coordinates.
func (g *GameState) SelectCell(r, c int) {
	if r >= 0 && r < 9 && c >= 0 && c < 9 {
		g.selected = domain.CellCoord{Row: r, Col: c}
		g.hasSelected = true
	}
}

// Deselect clears the cursor.
func (g *GameState) Deselect() { g.hasSelected = false }

// MoveSelection shifts the cursor by (dr,dc), clamped to the grid.
// With no cursor it lands on (0,0) without moving.
func (g *GameState) MoveSelection(dr, dc int) {
	if !g.hasSelected {
		g.selected = domain.CellCoord{}
		g.hasSelected = true
		return
	}
	g.selected.Row = clamp(g.selected.Row+dr, 0, 8)
	g.selected.Col = clamp(g.selected.Col+dc, 0, 8)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToNextEmpty jumps the cursor to the next empty cell after the
// current one in row-major order (before it when reverse), wrapping
// around. No-op when the board has no empty cells.
func (g *GameState) MoveToNextEmpty(reverse bool) {
	if !g.hasSelected {
		g.selected = domain.CellCoord{}
		g.hasSelected = true
	}
	empty := g.Board.EmptyCells()
	if len(empty) == 0 {
		return
	}
	if reverse {
		for i := len(empty) - 1; i >= 0; i-- {
			if before(empty[i], g.selected) {
				g.selected = empty[i]
				return
			}
		}
		g.selected = empty[len(empty)-1]
		return
	}
	for _, cell := range empty {
		if before(g.selected, cell) {
			g.selected = cell
			return
		}
	}
	g.selected = empty[0]
}

// before is row-major ordering on coordinates.
func before(a, b domain.CellCoord) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}

// SelectedDigit returns the digit under the cursor, 0 if none.
func (g *GameState) SelectedDigit() uint8 {
	if !g.hasSelected {
		return 0
	}
	return g.Board.Value(g.selected.Row, g.selected.Col)
}

// FormatTime renders the timer as MM:SS, or HH:MM:SS past an hour.
func (g *GameState) FormatTime() string {
	total := int(g.Timer)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// History exposes the applied/redoable split for the stats widget.
func (g *GameState) History() (applied, redoable int) {
	return g.historyIndex + 1, len(g.history) - g.historyIndex - 1
}
