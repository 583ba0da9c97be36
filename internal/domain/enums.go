package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Difficulty selects how many cells are carved out of the answer key.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ClearCount returns the number of cells removed from the solved grid for
// this difficulty. More clears means fewer clues and a harder puzzle.
func (d Difficulty) ClearCount() int {
	switch d {
	case Easy:
		return 30
	case Hard:
		return 56
	default:
		return 45 // Medium
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q", s)
	}
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Difficulty) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
