package usecase

import (
	"context"
	"errors"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/ports"
)

// Service bundles the engine pieces behind one façade for the
// non-interactive CLI commands and the front end's menus.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Puzzles   ports.PuzzleStore
	Scores    ports.ScoreStore
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, ps ports.PuzzleStore, sc ports.ScoreStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Puzzles: ps, Scores: sc}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, g, limit)
}

func (u *Service) Generate(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, d)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if u.Puzzles == nil {
		return errNotConfigured
	}
	return u.Puzzles.Save(ctx, p)
}

func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.Load(ctx, id)
}

func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.List(ctx)
}
