package board

import (
	"svw.info/termdoku/internal/domain"
)

// Board tracks one puzzle in play: the immutable givens, the player's
// current values, and per-cell candidate notes.
type Board struct {
	initial domain.Grid
	current domain.Grid
	notes   [9][9]domain.NoteSet
}

// New returns an empty board; use LoadPuzzle to populate it.
func New() *Board { return &Board{} }

// LoadPuzzle copies the puzzle into both the given and current grids
// and wipes all notes. The caller guarantees the puzzle is solvable;
// no validation happens here.
func (b *Board) LoadPuzzle(puzzle domain.Grid) {
	b.initial = puzzle
	b.current = puzzle
	b.notes = [9][9]domain.NoteSet{}
}

// Value returns the current value at (r,c).
func (b *Board) Value(r, c int) uint8 { return b.current[r][c] }

// Grid returns a copy of the current grid.
func (b *Board) Grid() domain.Grid { return b.current }

// Givens returns a copy of the initial grid.
func (b *Board) Givens() domain.Grid { return b.initial }

// IsGiven reports whether (r,c) holds an immutable clue.
func (b *Board) IsGiven(r, c int) bool { return b.initial[r][c] != 0 }

// SetValue writes v at (r,c). Placing a nonzero value clears the
// cell's notes. Returns false without touching anything if the cell
// is a given clue.
func (b *Board) SetValue(r, c int, v uint8) bool {
	if b.initial[r][c] != 0 {
		return false
	}
	b.current[r][c] = v
	if v != 0 {
		b.notes[r][c] = 0
	}
	return true
}

// ClearCell resets (r,c) to empty. Returns false for given clues.
func (b *Board) ClearCell(r, c int) bool { return b.SetValue(r, c, 0) }

// Notes returns the note set at (r,c).
func (b *Board) Notes(r, c int) domain.NoteSet { return b.notes[r][c] }

// SetNotes overwrites the note set at (r,c); used by undo/redo to
// restore a recorded state.
func (b *Board) SetNotes(r, c int, n domain.NoteSet) { b.notes[r][c] = n }

// ToggleNote flips candidate d at (r,c). Returns false if the cell
// already holds a value.
func (b *Board) ToggleNote(r, c int, d uint8) bool {
	if b.current[r][c] != 0 {
		return false
	}
	b.notes[r][c] = b.notes[r][c].Toggle(d)
	return true
}

// IsValidPlacement reports whether v at (r,c) would conflict with no
// other cell in the same row, column, or box. v == 0 is always valid.
func (b *Board) IsValidPlacement(r, c int, v uint8) bool {
	if v == 0 {
		return true
	}
	for i := 0; i < 9; i++ {
		if i != c && b.current[r][i] == v {
			return false
		}
		if i != r && b.current[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && b.current[rr][cc] == v {
				return false
			}
		}
	}
	return true
}

// Conflicts lists the cells sharing a row, column, or box with (r,c)
// that hold the same nonzero value, each listed once, self excluded.
func (b *Board) Conflicts(r, c int) []domain.CellCoord {
	v := b.current[r][c]
	if v == 0 {
		return nil
	}
	var out []domain.CellCoord
	seen := [9][9]bool{}
	add := func(rr, cc int) {
		if (rr == r && cc == c) || seen[rr][cc] {
			return
		}
		if b.current[rr][cc] == v {
			seen[rr][cc] = true
			out = append(out, domain.CellCoord{Row: rr, Col: cc})
		}
	}
	for i := 0; i < 9; i++ {
		add(r, i)
	}
	for i := 0; i < 9; i++ {
		add(i, c)
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			add(br+dr, bc+dc)
		}
	}
	return out
}

// SameDigitPositions lists every cell currently holding digit d.
// Empty for d == 0.
func (b *Board) SameDigitPositions(d uint8) []domain.CellCoord {
	if d == 0 {
		return nil
	}
	var out []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.current[r][c] == d {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// DigitCounts maps each digit 1..9 to its number of occurrences.
func (b *Board) DigitCounts() map[uint8]int {
	counts := make(map[uint8]int, 9)
	for d := uint8(1); d <= 9; d++ {
		counts[d] = 0
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.current[r][c]; v != 0 {
				counts[v]++
			}
		}
	}
	return counts
}

// IsComplete reports whether the grid is full and every row, column,
// and box holds nine distinct digits.
func (b *Board) IsComplete() bool {
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			v := b.current[r][c]
			if v == 0 {
				return false
			}
			m |= 1 << v
		}
		if m != 0x3FE {
			return false
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m |= 1 << b.current[r][c]
		}
		if m != 0x3FE {
			return false
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << b.current[br*3+dr][bc*3+dc]
				}
			}
			if m != 0x3FE {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists all empty cells in row-major order.
func (b *Board) EmptyCells() []domain.CellCoord {
	var out []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.current[r][c] == 0 {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Copy returns an independent clone of the board.
func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}
