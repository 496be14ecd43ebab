package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// DeleteCollection removes a collection and all of its words in one
// transaction. Deleting a collection that does not exist is a no-op.
func (s *Service) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var purged int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedCollection(txCtx, userID, collectionID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}

		var err error
		purged, err = s.words.DeleteByCollection(txCtx, collectionID)
		if err != nil {
			return fmt.Errorf("delete words: %w", err)
		}

		if err := s.collections.Delete(txCtx, collectionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete collection: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.Int("words_purged", purged),
	)

	return nil
}
