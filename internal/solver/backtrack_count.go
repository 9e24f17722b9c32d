package solver

import (
	"context"
	"time"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/ports"
)

// CountSolutions counts complete solutions of g, stopping as soon as
// limit are found. Digits are tried in ascending order; only the
// count matters, so there is nothing to randomize. The grid is taken
// by value, so the caller's copy is never touched.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := [9][9]uint8(g)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
