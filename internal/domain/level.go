package domain

import "fmt"

// Level is the proficiency of a user on a single word.
type Level string

const (
	LevelNew      Level = "new"
	LevelLearning Level = "learning"
	LevelFamiliar Level = "familiar"
	LevelMastered Level = "mastered"
)

// Levels lists all proficiency levels in ascending order.
var Levels = []Level{LevelNew, LevelLearning, LevelFamiliar, LevelMastered}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelNew, LevelLearning, LevelFamiliar, LevelMastered:
		return true
	}
	return false
}

// ParseLevel converts s into a Level, rejecting anything outside the enum.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", NewValidationError("level", fmt.Sprintf("invalid value %q", s))
	}
	return l, nil
}

// Next returns the level a word moves to after one answer.
//
// A correct answer promotes by one step and saturates at mastered.
// An incorrect answer keeps new and learning where they are, sends familiar
// back to learning and mastered back to familiar.
func (l Level) Next(correct bool) Level {
	if correct {
		switch l {
		case LevelNew:
			return LevelLearning
		case LevelLearning:
			return LevelFamiliar
		default:
			return LevelMastered
		}
	}
	switch l {
	case LevelFamiliar:
		return LevelLearning
	case LevelMastered:
		return LevelFamiliar
	case LevelLearning:
		return LevelLearning
	default:
		return LevelNew
	}
}
