package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// ListWords returns the words of one of the caller's collections ordered by
// the time they were added.
func (s *Service) ListWords(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collectionId", "required")
	}

	if _, err := s.ownedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	words, err := s.words.ListByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// GetWord returns one of the caller's words.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("wordId", "required")
	}

	return s.ownedWord(ctx, userID, wordID)
}
