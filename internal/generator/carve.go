package generator

import (
	"context"
	"time"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/ports"
)

// Generate builds a full random solution, then carves cells out one
// at a time while the solver confirms the puzzle still has exactly
// one solution.
//
// The removal order is a single random permutation of all 81 cells,
// traversed once. A restored cell is never retried, so an unlucky
// permutation can leave more clues than the difficulty's range asks
// for; that shortfall is accepted rather than looped on.
func (g *UniqueGenerator) Generate(ctx context.Context, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()

	// 1) full random solution
	var full domain.Grid
	if !fillRandom(ctx, g, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	// 2) pick a clue target inside the difficulty's range
	cr := diff.Clues()
	target := cr.Min + g.rng.Intn(cr.Max-cr.Min+1)

	// 3) carve while uniqueness holds
	puz := full
	clues := 81
	nodes := 0
	perm := g.rng.Perm(81)
	for _, pos := range perm {
		if clues <= target {
			break
		}
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, puz, 2)
		nodes += st.Nodes
		if err != nil || n != 1 {
			puz[r][c] = old // revert, uniqueness lost
			continue
		}
		clues--
	}

	p := &domain.Puzzle{
		Seed:       g.seed,
		Difficulty: diff,
		Givens:     puz,
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution, trying
// digits in a freshly shuffled order at every cell. From an empty
// grid this always succeeds; failure only means cancellation.
func fillRandom(ctx context.Context, g *UniqueGenerator, grid *domain.Grid) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		if grid[r][c] != 0 {
			return dfs(nr, nc)
		}
		g.rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
