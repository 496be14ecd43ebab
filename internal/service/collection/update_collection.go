package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// UpdateCollection changes the descriptive attributes of a collection.
// Counters are never touched here.
func (s *Service) UpdateCollection(ctx context.Context, input UpdateCollectionInput) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.CollectionPatch{}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		patch.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		patch.Description = &trimmed
	}
	if input.Emoji != nil {
		v := orDefault(*input.Emoji, domain.DefaultCollectionEmoji)
		patch.Emoji = &v
	}
	if input.Color != nil {
		v := orDefault(*input.Color, domain.DefaultCollectionColor)
		patch.Color = &v
	}

	var updated *domain.Collection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedCollection(txCtx, userID, input.CollectionID); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.collections.Update(txCtx, input.CollectionID, patch)
		if updateErr != nil {
			return fmt.Errorf("update collection: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "collection updated",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", input.CollectionID.String()),
	)

	return updated, nil
}
