package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Difficulty selects how many givens a generated puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// ClueRange is an inclusive [Min,Max] span of givens to keep.
type ClueRange struct {
	Min, Max int
}

var clueRanges = map[Difficulty]ClueRange{
	Easy:   {36, 40},
	Medium: {28, 35},
	Hard:   {22, 27},
	Expert: {17, 21},
}

// Clues returns the target givens range for d.
func (d Difficulty) Clues() ClueRange {
	if r, ok := clueRanges[d]; ok {
		return r
	}
	return clueRanges[Medium]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a difficulty name to its enum; unknown names
// default to Medium, matching the lenient HTTP-era parsing.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// Difficulties lists all levels in ascending order of sparseness.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}

// MarshalJSON writes the difficulty as its name so saved files stay
// readable and a missing field never masquerades as Easy.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	*d = ParseDifficulty(s)
	return nil
}
