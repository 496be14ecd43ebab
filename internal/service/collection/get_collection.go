package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// ListCollections returns the caller's collections ordered by creation time.
func (s *Service) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.collections.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return list, nil
}

// GetCollection returns one of the caller's collections.
func (s *Service) GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	return s.ownedCollection(ctx, userID, collectionID)
}
