package ports

import (
	"context"
	"time"

	"svw.info/termdoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can count its solutions.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	// CountSolutions explores until limit solutions are found, then
	// stops. The result is min(actual solution count, limit).
	CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter locates the next cell worth fixing given the known solution.
type Hinter interface {
	Hint(current, solution domain.Grid) (domain.Hint, bool)
}

// PuzzleStore persists and retrieves puzzles as JSON.
type PuzzleStore interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

// ScoreStore keeps per-difficulty best completion times.
// Implementations are best-effort: I/O failures stay internal.
type ScoreStore interface {
	BestTime(d domain.Difficulty) (seconds float64, ok bool)
	SubmitTime(d domain.Difficulty, seconds float64) (record bool)
}
