package collection

import (
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// SnapshotVersion is the current export format version.
const SnapshotVersion = 1

// Snapshot is the portable export of all of a user's collections.
type Snapshot struct {
	Version     int                  `json:"version"`
	ExportedAt  time.Time            `json:"exportedAt"`
	Collections []SnapshotCollection `json:"collections"`
}

// SnapshotCollection is one exported collection with its words.
type SnapshotCollection struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Emoji       string         `json:"emoji,omitempty"`
	Color       string         `json:"color,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Words       []SnapshotWord `json:"words"`
}

// SnapshotWord is one exported word.
type SnapshotWord struct {
	GermanWord     string            `json:"germanWord"`
	Translation    string            `json:"translation"`
	Level          string            `json:"level,omitempty"`
	CorrectCount   int               `json:"correctCount"`
	IncorrectCount int               `json:"incorrectCount"`
	AddedAt        time.Time         `json:"addedAt"`
	LastReviewed   *time.Time        `json:"lastReviewed,omitempty"`
	NextReview     *time.Time        `json:"nextReview,omitempty"`
	Examples       []SnapshotExample `json:"examples,omitempty"`
}

// SnapshotExample is one exported usage sentence.
type SnapshotExample struct {
	German      string  `json:"german"`
	Translation string  `json:"translation"`
	Level       *string `json:"level,omitempty"`
}

func snapshotCollection(c domain.Collection, words []domain.Word) SnapshotCollection {
	out := SnapshotCollection{
		Name:        c.Name,
		Description: c.Description,
		Emoji:       c.Emoji,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		Words:       make([]SnapshotWord, 0, len(words)),
	}
	for _, w := range words {
		sw := SnapshotWord{
			GermanWord:     w.Term,
			Translation:    w.Translation,
			Level:          w.Level.String(),
			CorrectCount:   w.CorrectCount,
			IncorrectCount: w.IncorrectCount,
			AddedAt:        w.AddedAt,
			LastReviewed:   w.LastReviewed,
			NextReview:     w.NextReview,
		}
		for _, ex := range w.Examples {
			sw.Examples = append(sw.Examples, SnapshotExample{German: ex.German, Translation: ex.Translation, Level: ex.Level})
		}
		out.Words = append(out.Words, sw)
	}
	return out
}
