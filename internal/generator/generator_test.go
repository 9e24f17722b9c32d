package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/solver"
	"svw.info/termdoku/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	s := solver.NewBacktrackingSolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			g := New(s, 12345)
			p, st, err := g.Generate(ctx, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v (dur=%v)", tc.name, err, st.Duration)
			}

			// the solution is a valid complete grid
			if n := p.Solution.CountGivens(); n != 81 {
				t.Fatalf("solution has %d filled cells, want 81", n)
			}
			if ok, conf, _ := validator.New().Validate(ctx, p.Solution); !ok {
				t.Fatalf("solution invalid, conflicts: %v", conf)
			}

			// every given matches the retained solution
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := p.Givens[r][c]; v != 0 && v != p.Solution[r][c] {
						t.Fatalf("given at (%d,%d) contradicts solution", r, c)
					}
				}
			}

			// clue count never exceeds the range's max; the permutation
			// may legitimately leave it above min, never below 17
			clues := p.Givens.CountGivens()
			cr := tc.diff.Clues()
			if clues > 81 || clues < 17 {
				t.Fatalf("clue count %d out of sane bounds", clues)
			}
			if clues < cr.Min {
				t.Fatalf("clue count %d below difficulty minimum %d", clues, cr.Min)
			}

			// uniqueness holds post-generation
			n, _, err := s.CountSolutions(ctx, p.Givens, 2)
			if err != nil || n != 1 {
				t.Fatalf("puzzle for %s has %d solutions (err=%v)", tc.name, n, err)
			}
		})
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	s := solver.NewBacktrackingSolver()

	a, _, err := New(s, 777).Generate(ctx, domain.Medium)
	if err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	b, _, err := New(s, 777).Generate(ctx, domain.Medium)
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	if a.Givens != b.Givens || a.Solution != b.Solution {
		t.Fatal("same seed produced different puzzles")
	}

	c, _, err := New(s, 778).Generate(ctx, domain.Medium)
	if err != nil {
		t.Fatalf("third generate failed: %v", err)
	}
	if a.Solution == c.Solution {
		t.Fatal("different seeds produced the same solved grid")
	}
}

func TestFillRandomProducesValidFullGrid(t *testing.T) {
	g := New(solver.NewBacktrackingSolver(), 42)
	var grid domain.Grid
	if !fillRandom(context.Background(), g, &grid) {
		t.Fatal("fillRandom failed from an empty grid")
	}
	if n := grid.CountGivens(); n != 81 {
		t.Fatalf("filled %d cells, want 81", n)
	}
	if ok, conf, _ := validator.New().Validate(context.Background(), grid); !ok {
		t.Fatalf("filled grid invalid, conflicts: %v", conf)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New(solver.NewBacktrackingSolver(), 1).Generate(ctx, domain.Easy)
	if err == nil {
		t.Fatal("canceled context should abort generation")
	}
}
