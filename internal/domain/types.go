package domain

// Grid is a 9x9 Sudoku grid; 0 means empty.
type Grid [9][9]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoteSet is a bitmask of candidate digits 1..9 for one cell.
// Bit v is set when digit v is noted; bit 0 is unused.
type NoteSet uint16

// Has reports whether digit d is noted.
func (n NoteSet) Has(d uint8) bool { return n&(1<<d) != 0 }

// With returns the set with digit d added.
func (n NoteSet) With(d uint8) NoteSet { return n | (1 << d) }

// Without returns the set with digit d removed.
func (n NoteSet) Without(d uint8) NoteSet { return n &^ (1 << d) }

// Toggle returns the set with digit d flipped.
func (n NoteSet) Toggle(d uint8) NoteSet { return n ^ (1 << d) }

// Empty reports whether no digits are noted.
func (n NoteSet) Empty() bool { return n == 0 }

// Digits lists the noted digits in ascending order.
func (n NoteSet) Digits() []uint8 {
	var out []uint8
	for d := uint8(1); d <= 9; d++ {
		if n.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Move is one undoable board mutation. Value types throughout, so a
// recorded move cannot be altered by later play.
type Move struct {
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	OldValue uint8   `json:"oldValue"`
	NewValue uint8   `json:"newValue"`
	OldNotes NoteSet `json:"oldNotes,omitempty"`
	NewNotes NoteSet `json:"newNotes,omitempty"`
}

// Hint names the cell to fix next and the digit that belongs there.
type Hint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// CountGivens returns the number of nonzero cells in g.
func (g *Grid) CountGivens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
