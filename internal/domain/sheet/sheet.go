package sheet

import (
	"errors"
	"fmt"

	"github.com/dsaprep/backend/internal/id"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty validates a difficulty string coming from the store
// or an import payload.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q: must be Easy, Medium, or Hard", s)
}

// Sheet is a named collection of practice questions.
//
// TotalQuestions is the count declared by whoever authored the sheet.
// It can diverge from the number of questions actually loaded; derived
// statistics always count loaded questions, never this field.
type Sheet struct {
	ID             string
	Name           string
	Description    string
	TotalQuestions int
	Questions      []Question
}

// Question is a single practice problem. Immutable after catalog load.
type Question struct {
	ID         string
	Title      string
	Difficulty Difficulty
	URL        string // external problem link (LeetCode, GfG, ...)
	Topic      string // free-text label, not scoped to a sheet
	SheetID    string
}

func New(name, description string) *Sheet {
	return &Sheet{
		ID:          id.GenerateID(),
		Name:        name,
		Description: description,
		Questions:   []Question{},
	}
}

func (s *Sheet) AddQuestion(title string, difficulty Difficulty, url, topic string) error {
	if title == "" {
		return errors.New("question title cannot be empty")
	}
	if _, err := ParseDifficulty(string(difficulty)); err != nil {
		return err
	}

	s.Questions = append(s.Questions, Question{
		ID:         id.GenerateID(),
		Title:      title,
		Difficulty: difficulty,
		URL:        url,
		Topic:      topic,
		SheetID:    s.ID,
	})
	s.TotalQuestions = len(s.Questions)
	return nil
}
