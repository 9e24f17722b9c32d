package hint

import (
	"testing"

	"svw.info/termdoku/internal/domain"
)

var solution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestWrongCellBeatsEmptyCell(t *testing.T) {
	cur := solution
	cur[0][1] = 0 // earlier empty cell
	cur[4][4] = 9 // wrong entry later in row-major order
	h, ok := New().Hint(cur, solution)
	if !ok {
		t.Fatal("expected a hint")
	}
	if h.Row != 4 || h.Col != 4 || h.Value != 5 {
		t.Fatalf("hint = %+v, want the wrong cell (4,4)=5", h)
	}
}

func TestFirstEmptyCellWhenNothingWrong(t *testing.T) {
	cur := solution
	cur[2][7] = 0
	cur[6][0] = 0
	h, ok := New().Hint(cur, solution)
	if !ok {
		t.Fatal("expected a hint")
	}
	if h.Row != 2 || h.Col != 7 || h.Value != 6 {
		t.Fatalf("hint = %+v, want first empty (2,7)=6", h)
	}
}

func TestNoHintOnSolvedGrid(t *testing.T) {
	if _, ok := New().Hint(solution, solution); ok {
		t.Fatal("solved grid must yield no hint")
	}
}
