package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary item inside a collection.
type Word struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CollectionID   uuid.UUID
	Term           string
	TermNormalized string
	Translation    string
	Level          Level
	CorrectCount   int
	IncorrectCount int
	Examples       []Example
	AddedAt        time.Time
	LastReviewed   *time.Time
	// NextReview is reserved for a future scheduler and is never computed.
	NextReview *time.Time
}

// Example is a usage sentence attached to a word.
type Example struct {
	German      string
	Translation string
	// Level is an optional CEFR tag such as "A1".
	Level *string
}

// Review describes the outcome of a single answer, applied together with a
// level change.
type Review struct {
	Correct    bool
	ReviewedAt time.Time
}

// Input limits shared by the service and transport layers.
const (
	MaxCollectionNameLength = 100
	MaxDescriptionLength    = 500
	MaxEmojiLength          = 16
	MaxColorLength          = 32
	MaxTermLength           = 200
	MaxTranslationLength    = 500
	MaxExamplesPerWord      = 20
	MaxExampleLength        = 1000
	MaxCollectionsPerUser   = 200
	MaxWordsPerCollection   = 5000
)
