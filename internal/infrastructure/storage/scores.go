package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"svw.info/termdoku/internal/domain"
)

// Scores keeps per-difficulty best completion times in one JSON file:
//
//	{"best_times": {"easy": null, "medium": 312.4, ...}}
//
// Persistence is best-effort. A missing or corrupt file loads as
// all-null defaults and a failed write is swallowed; gameplay never
// sees a storage error.
type Scores struct {
	path string
	data scoresFile
}

type scoresFile struct {
	BestTimes map[string]*float64 `json:"best_times"`
}

// DefaultScoresPath is ~/.termdoku_scores.json.
func DefaultScoresPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".termdoku_scores.json"
	}
	return filepath.Join(home, ".termdoku_scores.json")
}

// NewScores loads the file at path, falling back to defaults on any
// read or decode error.
func NewScores(path string) *Scores {
	s := &Scores{path: path}
	s.data = defaultScores()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var parsed scoresFile
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.BestTimes == nil {
		return s
	}
	for _, d := range domain.Difficulties() {
		if v, ok := parsed.BestTimes[d.String()]; ok {
			s.data.BestTimes[d.String()] = v
		}
	}
	return s
}

func defaultScores() scoresFile {
	bt := make(map[string]*float64, 4)
	for _, d := range domain.Difficulties() {
		bt[d.String()] = nil
	}
	return scoresFile{BestTimes: bt}
}

// BestTime returns the stored best for d, if one exists.
func (s *Scores) BestTime(d domain.Difficulty) (float64, bool) {
	v := s.data.BestTimes[d.String()]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// SubmitTime records seconds as the new best for d when it beats the
// stored one, and reports whether it did. The write is fire-and-forget.
func (s *Scores) SubmitTime(d domain.Difficulty, seconds float64) bool {
	if best, ok := s.BestTime(d); ok && seconds >= best {
		return false
	}
	v := seconds
	s.data.BestTimes[d.String()] = &v
	s.flush()
	return true
}

// AllBestTimes returns the stored table keyed by difficulty name.
func (s *Scores) AllBestTimes() map[string]*float64 {
	out := make(map[string]*float64, len(s.data.BestTimes))
	for k, v := range s.data.BestTimes {
		out[k] = v
	}
	return out
}

func (s *Scores) flush() {
	f, err := os.Create(s.path)
	if err != nil {
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	_ = enc.Encode(s.data)
}
