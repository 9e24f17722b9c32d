package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/termdoku/internal/adapters/term"
	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/game"
	"svw.info/termdoku/internal/generator"
	"svw.info/termdoku/internal/hint"
	"svw.info/termdoku/internal/infrastructure/storage"
	"svw.info/termdoku/internal/ports"
	"svw.info/termdoku/internal/solver"
	"svw.info/termdoku/internal/usecase"
	"svw.info/termdoku/internal/validator"
)

var (
	flagLogLevel string
	flagDataDir  string
	flagScores   string
	flagSolver   string
	flagSeed     int64
	flagProfile  bool
)

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(flagLogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func pickSolver() (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(flagSolver)) {
	case "", "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), nil
	case "dlx":
		return solver.NewDLXSolver(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want backtrack|dlx)", flagSolver)
	}
}

func newService() (*usecase.Service, error) {
	s, err := pickSolver()
	if err != nil {
		return nil, err
	}
	g := generator.New(s, flagSeed)
	v := validator.New()
	h := hint.New()
	ps := storage.NewFS(flagDataDir)
	sc := storage.NewScores(flagScores)
	return usecase.NewService(s, g, v, h, ps, sc), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termdoku",
		Short:         "Sudoku for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefault("TERMDOKU_LOG_LEVEL", "info"), "debug|info|warn|error")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", envDefault("TERMDOKU_DATA_DIR", "./data"), "puzzle library directory")
	root.PersistentFlags().StringVar(&flagScores, "scores", envDefault("TERMDOKU_SCORES", storage.DefaultScoresPath()), "best-times file")
	root.PersistentFlags().StringVar(&flagSolver, "solver", "backtrack", "uniqueness/solve engine: backtrack|dlx")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "generator seed (0 = random)")
	root.PersistentFlags().BoolVar(&flagProfile, "cpuprofile", false, "write a CPU profile to the current directory")
	root.AddCommand(newPlayCmd(), newGenerateCmd(), newSolveCmd())
	return root
}

func newPlayCmd() *cobra.Command {
	var diffName, puzzleID string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newService()
			if err != nil {
				return err
			}
			gs := game.New(uc.Generator, uc.Hinter)
			if puzzleID != "" {
				p, err := uc.LoadPuzzle(cmd.Context(), puzzleID)
				if err != nil {
					return fmt.Errorf("load puzzle %s: %w", puzzleID, err)
				}
				gs.LoadPuzzle(p)
			}
			ui := term.NewUI(gs, uc.Scores, cmd.InOrStdin(), cmd.OutOrStdout())
			if puzzleID != "" {
				// already loaded; skip the initial generation
				return ui.RunLoaded(cmd.Context())
			}
			return ui.Run(cmd.Context(), domain.ParseDifficulty(diffName))
		},
	}
	cmd.Flags().StringVarP(&diffName, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().StringVar(&puzzleID, "id", "", "resume a saved puzzle instead of generating")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var diffName string
	var count int
	var save bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagProfile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			}
			logger := newLogger()
			uc, err := newService()
			if err != nil {
				return err
			}
			diff := domain.ParseDifficulty(diffName)
			for i := 0; i < count; i++ {
				p, st, err := uc.Generate(cmd.Context(), diff)
				if err != nil {
					return err
				}
				logger.Debug("generated", "difficulty", diff.String(),
					"givens", p.Givens.CountGivens(), "nodes", st.Nodes,
					"dur", st.Duration.Round(time.Millisecond))
				if save {
					if err := uc.SavePuzzle(cmd.Context(), p); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", p.ID)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatGrid(p.Givens))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&diffName, "difficulty", "d", "medium", "easy|medium|hard|expert")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles")
	cmd.Flags().BoolVar(&save, "save", false, "save puzzles to the library")
	return cmd
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <81-char grid or file>",
		Short: "Solve a puzzle given as 81 digits (0 or . = empty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagProfile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			}
			uc, err := newService()
			if err != nil {
				return err
			}
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			if ok, conflicts, _ := uc.Validate(cmd.Context(), g); !ok {
				return fmt.Errorf("input grid has %d conflicting cells", len(conflicts))
			}
			n, _, err := uc.CountSolutions(cmd.Context(), g, 2)
			if err != nil {
				return err
			}
			if n == 0 {
				return errors.New("no solution")
			}
			if n > 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "warning: solution is not unique")
			}
			out, st, err := uc.Solve(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatGrid(out))
			newLogger().Debug("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
			return nil
		},
	}
	return cmd
}

// parseGrid accepts 81 grid characters inline or the name of a file
// holding them; whitespace is ignored, '.' and '0' mean empty.
func parseGrid(arg string) (domain.Grid, error) {
	text := arg
	if data, err := os.ReadFile(arg); err == nil {
		text = string(data)
	}
	var g domain.Grid
	i := 0
	for _, ch := range text {
		switch {
		case ch == '.' || (ch >= '0' && ch <= '9'):
			if i >= 81 {
				return g, errors.New("grid has more than 81 cells")
			}
			if ch != '.' && ch != '0' {
				g[i/9][i%9] = uint8(ch - '0')
			}
			i++
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t' || ch == '|' || ch == '+' || ch == '-':
			// layout characters from pretty-printed grids
		default:
			return g, fmt.Errorf("unexpected character %q in grid", ch)
		}
	}
	if i != 81 {
		return g, fmt.Errorf("grid has %d cells, want 81", i)
	}
	return g, nil
}

func formatGrid(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
		if r < 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: .env not loaded:", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
