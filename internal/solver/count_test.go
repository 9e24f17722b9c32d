package solver

import (
	"context"
	"testing"

	"svw.info/termdoku/internal/domain"
)

var sampleSolved = domain.Grid{
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

// twoSolutionGrid blanks an unavoidable rectangle: (0,3)/(0,4) hold
// 6/7 and (3,3)/(3,4) hold 7/6, so the pair can be filled two ways.
func twoSolutionGrid() domain.Grid {
	g := sampleSolved
	g[0][3], g[0][4] = 0, 0
	g[3][3], g[3][4] = 0, 0
	return g
}

func TestCountSolutions(t *testing.T) {
	ctx := context.Background()
	s := NewBacktrackingSolver()

	t.Run("solved grid counts one", func(t *testing.T) {
		n, _, err := s.CountSolutions(ctx, sampleSolved, 2)
		if err != nil || n != 1 {
			t.Fatalf("count = %d, err = %v, want 1", n, err)
		}
	})

	t.Run("unique puzzle counts one", func(t *testing.T) {
		n, _, err := s.CountSolutions(ctx, sample, 2)
		if err != nil || n != 1 {
			t.Fatalf("count = %d, err = %v, want 1", n, err)
		}
	})

	t.Run("ambiguous rectangle counts two", func(t *testing.T) {
		n, _, err := s.CountSolutions(ctx, twoSolutionGrid(), 2)
		if err != nil || n != 2 {
			t.Fatalf("count = %d, err = %v, want 2", n, err)
		}
	})

	t.Run("limit caps the count", func(t *testing.T) {
		var empty domain.Grid
		n, _, err := s.CountSolutions(ctx, empty, 2)
		if err != nil || n != 2 {
			t.Fatalf("count = %d, err = %v, want limit 2", n, err)
		}
		n, _, err = s.CountSolutions(ctx, twoSolutionGrid(), 1)
		if err != nil || n != 1 {
			t.Fatalf("count = %d, err = %v, want limit 1", n, err)
		}
	})

	t.Run("contradiction counts zero", func(t *testing.T) {
		g := sample
		g[0][2] = 5 // duplicates the 5 in row 0
		n, _, err := s.CountSolutions(ctx, g, 2)
		if err != nil || n != 0 {
			t.Fatalf("count = %d, err = %v, want 0", n, err)
		}
	})
}

func TestDLXCountAgrees(t *testing.T) {
	ctx := context.Background()
	d := NewDLXSolver()
	cases := []struct {
		name string
		grid domain.Grid
		want int
	}{
		{"unique", sample, 1},
		{"two", twoSolutionGrid(), 2},
		{"solved", sampleSolved, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, _, err := d.CountSolutions(ctx, tc.grid, 2)
			if err != nil || n != tc.want {
				t.Fatalf("dlx count = %d, err = %v, want %d", n, err, tc.want)
			}
		})
	}
}
