package study

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

// ErrNothingToStudy is returned when a collection has no eligible words.
var ErrNothingToStudy = errors.New("nothing to study")

// State is the lifecycle state of a Session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Card is one word in a session together with its transient review state.
type Card struct {
	Word     domain.Word
	Flipped  bool
	Answered bool
	Correct  bool
}

// Summary is the running score of a session.
type Summary struct {
	Correct    int `json:"correct"`
	Incorrect  int `json:"incorrect"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// AnswerOutcome describes what an Answer call did.
type AnswerOutcome struct {
	Card          Card
	PreviousLevel domain.Level
	NewLevel      domain.Level
	// Ignored is set when the card was already answered or the session is
	// over. Nothing is recorded in that case.
	Ignored bool
	// Err holds a store failure. The answer still counts in the session.
	Err error
}

type levelUpdater interface {
	UpdateWordLevel(ctx context.Context, input collection.UpdateWordLevelInput) (*collection.LevelChange, error)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// OnComplete is called once, when Next moves past the last card.
	OnComplete func(Summary)
	Logger     *slog.Logger
}

// Session drives one pass over a bounded set of cards. It is safe for
// concurrent use, though a session normally belongs to a single client.
type Session struct {
	mu sync.Mutex

	collectionID uuid.UUID
	cards        []Card
	index        int
	state        State
	correct      int
	incorrect    int

	store      levelUpdater
	onComplete func(Summary)
	log        *slog.Logger
}

// NewSession wraps words as unrevealed cards. Callers normally pass the
// output of SelectCards.
func NewSession(collectionID uuid.UUID, words []domain.Word, store levelUpdater, opts SessionOptions) (*Session, error) {
	if len(words) == 0 {
		return nil, ErrNothingToStudy
	}

	cards := make([]Card, len(words))
	for i, w := range words {
		cards[i] = Card{Word: w}
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Session{
		collectionID: collectionID,
		cards:        cards,
		store:        store,
		onComplete:   opts.OnComplete,
		log:          log.With("session_collection_id", collectionID.String()),
	}, nil
}

// CollectionID returns the collection the session was built from.
func (s *Session) CollectionID() uuid.UUID {
	return s.collectionID
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Len returns the number of cards.
func (s *Session) Len() int {
	return len(s.cards)
}

// Position returns the zero-based index of the current card.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Cards returns a copy of all cards.
func (s *Session) Cards() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Current shows the current card. The first call starts the session.
func (s *Session) Current() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()
	return s.cards[s.index]
}

// Flip reveals the current card.
func (s *Session) Flip() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()
	if s.state == StateInProgress {
		s.cards[s.index].Flipped = true
	}
	return s.cards[s.index]
}

// Answer scores the current card and persists the resulting level. A card
// can be scored once; later attempts are reported as ignored. The store is
// called without holding the session lock.
func (s *Session) Answer(ctx context.Context, correct bool) AnswerOutcome {
	s.mu.Lock()
	s.begin()

	idx := s.index
	card := &s.cards[idx]
	if s.state == StateCompleted || card.Answered {
		out := AnswerOutcome{Card: *card, PreviousLevel: card.Word.Level, NewLevel: card.Word.Level, Ignored: true}
		s.mu.Unlock()
		return out
	}

	previous := card.Word.Level
	next := previous.Next(correct)
	wordID := card.Word.ID

	card.Flipped = true
	card.Answered = true
	card.Correct = correct
	if correct {
		s.correct++
	} else {
		s.incorrect++
	}
	s.mu.Unlock()

	out := AnswerOutcome{PreviousLevel: previous, NewLevel: next}

	change, err := s.store.UpdateWordLevel(ctx, collection.UpdateWordLevelInput{
		CollectionID: s.collectionID,
		WordID:       wordID,
		Level:        next,
		WasCorrect:   &correct,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.WarnContext(ctx, "study answer not persisted",
			slog.String("word_id", wordID.String()),
			slog.String("level", next.String()),
			slog.String("error", err.Error()),
		)
		out.Err = err
	} else {
		s.cards[idx].Word = *change.Word
	}

	out.Card = s.cards[idx]
	return out
}

// Next moves to the following card. Moving past the last card completes the
// session and fires OnComplete. It reports whether a card is left to show.
func (s *Session) Next() bool {
	s.mu.Lock()
	if s.state == StateCompleted {
		s.mu.Unlock()
		return false
	}
	s.begin()

	if s.index < len(s.cards)-1 {
		s.index++
		s.mu.Unlock()
		return true
	}

	s.state = StateCompleted
	summary := s.summary()
	onComplete := s.onComplete
	s.mu.Unlock()

	s.log.Info("study session completed",
		slog.Int("correct", summary.Correct),
		slog.Int("incorrect", summary.Incorrect),
		slog.Int("total", summary.Total),
	)
	if onComplete != nil {
		onComplete(summary)
	}
	return false
}

// Previous moves back one card without touching scores. It reports whether
// the position changed.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Result returns the running summary.
func (s *Session) Result() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) begin() {
	if s.state == StateNotStarted {
		s.state = StateInProgress
	}
}

func (s *Session) summary() Summary {
	total := len(s.cards)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(s.correct) * 100 / float64(total)))
	}
	return Summary{Correct: s.correct, Incorrect: s.incorrect, Total: total, Percentage: pct}
}
