package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// CreateCollection creates an empty collection for the authenticated user.
func (s *Service) CreateCollection(ctx context.Context, input CreateCollectionInput) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.collections.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}
	if count >= domain.MaxCollectionsPerUser {
		return nil, domain.NewValidationError("collections", fmt.Sprintf("limit reached (max %d)", domain.MaxCollectionsPerUser))
	}

	now := time.Now().UTC()
	c, err := s.collections.Create(ctx, &domain.Collection{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Emoji:       orDefault(input.Emoji, domain.DefaultCollectionEmoji),
		Color:       orDefault(input.Color, domain.DefaultCollectionColor),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", c.ID.String()),
		slog.String("name", c.Name),
	)

	return c, nil
}
