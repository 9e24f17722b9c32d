package hint

import (
	"svw.info/termdoku/internal/domain"
)

// Oracle suggests the next cell to fix by comparing the player's
// grid against the known solution.
type Oracle struct{}

func New() *Oracle { return &Oracle{} }

// Hint returns the first wrong filled cell in row-major order, or
// failing that the first empty cell, together with the solution
// digit. Wrong entries take priority so a hint never gives away a
// fresh cell while an error sits uncorrected elsewhere. ok is false
// when the grid already matches the solution.
func (o *Oracle) Hint(current, solution domain.Grid) (domain.Hint, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current[r][c] != 0 && current[r][c] != solution[r][c] {
				return domain.Hint{Row: r, Col: c, Value: solution[r][c]}, true
			}
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current[r][c] == 0 {
				return domain.Hint{Row: r, Col: c, Value: solution[r][c]}, true
			}
		}
	}
	return domain.Hint{}, false
}
