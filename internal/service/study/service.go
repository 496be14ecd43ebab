// Package study builds review sessions over a collection and applies the
// level transition rules to answers. It owns no data: every level change is
// persisted through the collection store.
package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

type collectionStore interface {
	ListWords(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	UpdateWordLevel(ctx context.Context, input collection.UpdateWordLevelInput) (*collection.LevelChange, error)
}

// Options bounds session sizes.
type Options struct {
	DefaultSize int
	MaxSize     int
}

// Service implements the study business logic.
type Service struct {
	store collectionStore
	opts  Options
	log   *slog.Logger
}

// NewService creates a new Study service.
func NewService(log *slog.Logger, store collectionStore, opts Options) *Service {
	if opts.DefaultSize <= 0 {
		opts.DefaultSize = DefaultSessionSize
	}
	if opts.MaxSize < opts.DefaultSize {
		opts.MaxSize = opts.DefaultSize
	}
	return &Service{
		store: store,
		opts:  opts,
		log:   log.With("service", "study"),
	}
}

// BuildSession loads the caller's collection and returns a session over its
// eligible words. It returns ErrNothingToStudy when every word is mastered or
// the collection is empty.
func (s *Service) BuildSession(ctx context.Context, input BuildSessionInput) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.opts.MaxSize); err != nil {
		return nil, err
	}

	size := input.Size
	if size == 0 {
		size = s.opts.DefaultSize
	}

	words, err := s.store.ListWords(ctx, input.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	selected := SelectCards(words, size, input.Shuffle, nil)
	session, err := NewSession(input.CollectionID, selected, s.store, SessionOptions{
		OnComplete: input.OnComplete,
		Logger:     s.log,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "study session built",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.Int("cards", session.Len()),
		slog.Int("eligible_of", len(words)),
		slog.Bool("shuffle", input.Shuffle),
	)

	return session, nil
}

// ReviewResult is the outcome of a single stateless review.
type ReviewResult struct {
	Previous domain.Level
	Level    domain.Level
	Word     *domain.Word
}

// Review applies one answer to a word outside of a session: it reads the
// word, computes the next level and persists it with the answer.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.store.GetWord(ctx, input.WordID)
	if err != nil {
		return nil, err
	}
	if input.CollectionID != uuid.Nil && w.CollectionID != input.CollectionID {
		return nil, fmt.Errorf("word %s in collection %s: %w", w.ID, input.CollectionID, domain.ErrNotFound)
	}

	correct := input.Correct
	change, err := s.store.UpdateWordLevel(ctx, collection.UpdateWordLevelInput{
		CollectionID: w.CollectionID,
		WordID:       w.ID,
		Level:        w.Level.Next(correct),
		WasCorrect:   &correct,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", w.ID.String()),
		slog.Bool("correct", correct),
		slog.String("from", change.Previous.String()),
		slog.String("to", change.Word.Level.String()),
	)

	return &ReviewResult{Previous: change.Previous, Level: change.Word.Level, Word: change.Word}, nil
}
