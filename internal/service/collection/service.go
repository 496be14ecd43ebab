// Package collection is the single source of truth for vocabulary
// collections and their words. Every public operation leaves a collection's
// counters consistent with its word set: wordsCount equals the progress total
// and equals the sum of the per-level counters.
package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type collectionRepo interface {
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p domain.CollectionPatch) (*domain.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Counters
	AdjustProgress(ctx context.Context, id uuid.UUID, d domain.ProgressDelta) (*domain.Collection, error)
	SetProgress(ctx context.Context, id uuid.UUID, c domain.LevelCounts) (*domain.Collection, error)
}

type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ExistsByTerm(ctx context.Context, collectionID uuid.UUID, normalized string) (bool, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	DeleteByCollection(ctx context.Context, collectionID uuid.UUID) (int, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level, review *domain.Review) (domain.Level, *domain.Word, error)
	CountByLevel(ctx context.Context, collectionID uuid.UUID) (domain.LevelCounts, error)
	BulkCreate(ctx context.Context, words []domain.Word) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides collection and word management operations.
type Service struct {
	collections collectionRepo
	words       wordRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Collection service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	words wordRepo,
	tx txManager,
) *Service {
	return &Service{
		collections: collections,
		words:       words,
		tx:          tx,
		log:         log.With("service", "collection"),
	}
}

// ownedCollection loads a collection and checks that userID owns it.
// A missing collection is domain.ErrNotFound, a foreign one domain.ErrForbidden.
func (s *Service) ownedCollection(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("collection %s: %w", collectionID, domain.ErrForbidden)
	}
	return c, nil
}

// ownedWord loads a word and checks that userID owns it.
func (s *Service) ownedWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	if w.UserID != userID {
		return nil, fmt.Errorf("word %s: %w", wordID, domain.ErrForbidden)
	}
	return w, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func orDefault(s, def string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return def
}
