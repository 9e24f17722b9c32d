package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := [9][9]uint8(g)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
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
	if !dfs() {
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("unsolvable or canceled")
	}
	return domain.Grid(grid), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
