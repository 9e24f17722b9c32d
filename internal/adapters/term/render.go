package term

import (
	"fmt"
	"strings"

	"svw.info/termdoku/internal/domain"
	"svw.info/termdoku/internal/game"
)

// ANSI fragments used by the renderer. NoColor strips them for dumb
// terminals and tests.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiDim     = "\x1b[2m"
	ansiInverse = "\x1b[7m"
	ansiRed     = "\x1b[31m"
	ansiCyan    = "\x1b[36m"
	ansiGreen   = "\x1b[32m"
)

// Renderer draws a GameState as terminal text.
type Renderer struct {
	NoColor bool
}

func (rd *Renderer) paint(s, style string) string {
	if rd.NoColor || style == "" {
		return s
	}
	return style + s + ansiReset
}

// Render produces the full frame: grid, digit counts, timer/status.
func (rd *Renderer) Render(gs *game.GameState) string {
	var b strings.Builder
	if gs.Paused() {
		b.WriteString("   (paused: board hidden, 'pause' to resume)\n")
		b.WriteString(rd.statusLine(gs))
		return b.String()
	}

	sel, hasSel := gs.SelectedCell()
	conflicted := map[domain.CellCoord]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for _, cc := range gs.Board.Conflicts(r, c) {
				conflicted[cc] = true
				conflicted[domain.CellCoord{Row: r, Col: c}] = true
			}
		}
	}

	b.WriteString("    1 2 3   4 5 6   7 8 9\n")
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			b.WriteString("  +-------+-------+-------+\n")
		}
		fmt.Fprintf(&b, "%d ", r+1)
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				b.WriteString("| ")
			}
			b.WriteString(rd.cell(gs, r, c, sel, hasSel, conflicted))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	b.WriteString("  +-------+-------+-------+\n")

	b.WriteString(rd.countsLine(gs))
	if hasSel {
		if notes := gs.Board.Notes(sel.Row, sel.Col); !notes.Empty() {
			fmt.Fprintf(&b, "  notes @ r%dc%d: %v\n", sel.Row+1, sel.Col+1, notes.Digits())
		}
	}
	b.WriteString(rd.statusLine(gs))
	return b.String()
}

func (rd *Renderer) cell(gs *game.GameState, r, c int, sel domain.CellCoord, hasSel bool, conflicted map[domain.CellCoord]bool) string {
	v := gs.Board.Value(r, c)
	s := "."
	style := ""
	switch {
	case v == 0 && !gs.Board.Notes(r, c).Empty():
		s = "*"
		style = ansiDim
	case v != 0:
		s = fmt.Sprintf("%d", v)
		if gs.Board.IsGiven(r, c) {
			style = ansiBold
		} else {
			style = ansiCyan
		}
		if conflicted[domain.CellCoord{Row: r, Col: c}] {
			style = ansiRed
		}
	}
	if hasSel && sel.Row == r && sel.Col == c {
		style = ansiInverse
	}
	return rd.paint(s, style)
}

func (rd *Renderer) countsLine(gs *game.GameState) string {
	counts := gs.Board.DigitCounts()
	var b strings.Builder
	b.WriteString("  left:")
	for d := uint8(1); d <= 9; d++ {
		remaining := 9 - counts[d]
		if remaining <= 0 {
			b.WriteString(rd.paint(fmt.Sprintf(" %d", d), ansiDim))
		} else {
			fmt.Fprintf(&b, " %d", d)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (rd *Renderer) statusLine(gs *game.GameState) string {
	mode := "digits"
	if gs.NotesMode() {
		mode = "notes"
	}
	status := ""
	if gs.IsComplete() {
		status = "  " + rd.paint("SOLVED!", ansiGreen+ansiBold)
	}
	return fmt.Sprintf("  [%s] %s  mode:%s%s\n", gs.Difficulty, gs.FormatTime(), mode, status)
}
