package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Collection is a named, user-owned set of vocabulary words together with
// its denormalized statistics.
type Collection struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Emoji       string
	Color       string
	WordsCount  int
	Progress    Progress
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Default presentation attributes of a new collection.
const (
	DefaultCollectionEmoji = "📚"
	DefaultCollectionColor = "blue"
)

// LevelCounts holds the number of words at each proficiency level.
type LevelCounts struct {
	New      int
	Learning int
	Familiar int
	Mastered int
}

// Total returns the number of words across all levels.
func (c LevelCounts) Total() int {
	return c.New + c.Learning + c.Familiar + c.Mastered
}

// Get returns the counter for level l.
func (c LevelCounts) Get(l Level) int {
	switch l {
	case LevelNew:
		return c.New
	case LevelLearning:
		return c.Learning
	case LevelFamiliar:
		return c.Familiar
	case LevelMastered:
		return c.Mastered
	}
	return 0
}

// Add changes the counter for level l by n.
func (c *LevelCounts) Add(l Level, n int) {
	switch l {
	case LevelNew:
		c.New += n
	case LevelLearning:
		c.Learning += n
	case LevelFamiliar:
		c.Familiar += n
	case LevelMastered:
		c.Mastered += n
	}
}

// CountLevels tallies the levels of words.
func CountLevels(words []Word) LevelCounts {
	var c LevelCounts
	for i := range words {
		c.Add(words[i].Level, 1)
	}
	return c
}

// Progress is the learning summary of a collection.
type Progress struct {
	Total      int
	New        int
	Learning   int
	Familiar   int
	Mastered   int
	Percentage int
}

// NewProgress derives a Progress from the stored counters. Percentage is
// always computed here and never stored.
func NewProgress(total int, c LevelCounts) Progress {
	return Progress{
		Total:      total,
		New:        c.New,
		Learning:   c.Learning,
		Familiar:   c.Familiar,
		Mastered:   c.Mastered,
		Percentage: MasteredPercentage(c.Mastered, total),
	}
}

// Counts returns the per-level counters of p.
func (p Progress) Counts() LevelCounts {
	return LevelCounts{New: p.New, Learning: p.Learning, Familiar: p.Familiar, Mastered: p.Mastered}
}

// Consistent reports whether the counters agree with each other.
func (p Progress) Consistent(wordsCount int) bool {
	return p.Total == wordsCount && p.Counts().Total() == p.Total &&
		p.Percentage == MasteredPercentage(p.Mastered, p.Total)
}

// MasteredPercentage returns round(mastered/total*100), or 0 for an empty
// collection.
func MasteredPercentage(mastered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(mastered) * 100 / float64(total)))
}

// ProgressDelta is a relative change applied to a collection's counters.
// Storage applies every component atomically and floors each counter at 0.
type ProgressDelta struct {
	Words  int
	Levels LevelCounts
}

// IsZero reports whether applying d changes nothing.
func (d ProgressDelta) IsZero() bool {
	return d.Words == 0 && d.Levels == LevelCounts{}
}

// WordAdded is the delta of inserting one word at level l.
func WordAdded(l Level) ProgressDelta {
	d := ProgressDelta{Words: 1}
	d.Levels.Add(l, 1)
	return d
}

// WordRemoved is the delta of deleting one word that was at level l.
func WordRemoved(l Level) ProgressDelta {
	d := ProgressDelta{Words: -1}
	d.Levels.Add(l, -1)
	return d
}

// LevelChanged is the delta of moving one word from one level to another.
func LevelChanged(from, to Level) ProgressDelta {
	var d ProgressDelta
	if from == to {
		return d
	}
	d.Levels.Add(from, -1)
	d.Levels.Add(to, 1)
	return d
}

// ApplyFloor adds delta to current, flooring the result at 0.
func ApplyFloor(current, delta int) int {
	if v := current + delta; v > 0 {
		return v
	}
	return 0
}

// CollectionPatch holds the descriptive attributes to change on a collection.
// Nil fields are left untouched; counters are never patched.
type CollectionPatch struct {
	Name        *string
	Description *string
	Emoji       *string
	Color       *string
}

// IsEmpty reports whether p changes nothing.
func (p CollectionPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Emoji == nil && p.Color == nil
}
