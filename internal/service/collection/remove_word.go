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

// RemoveWord deletes one of the caller's words and decrements the parent's
// counters by the word's level at the moment of removal.
//
// It reports false, nil when the word does not exist. If the parent
// collection record is gone the word is still removed and the counter step is
// skipped.
func (s *Service) RemoveWord(ctx context.Context, input RemoveWordInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	var removed *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		w, err := s.ownedWord(txCtx, userID, input.WordID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if input.CollectionID != uuid.Nil && input.CollectionID != w.CollectionID {
			return nil
		}

		removed, err = s.words.Delete(txCtx, w.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("delete word: %w", err)
		}

		_, err = s.collections.AdjustProgress(txCtx, removed.CollectionID, domain.WordRemoved(removed.Level))
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "word removed from missing collection",
				slog.String("collection_id", removed.CollectionID.String()),
				slog.String("word_id", removed.ID.String()),
			)
			return nil
		}
		if err != nil {
			return fmt.Errorf("adjust progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed == nil {
		return false, nil
	}

	s.log.InfoContext(ctx, "word removed",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", removed.CollectionID.String()),
		slog.String("word_id", removed.ID.String()),
		slog.String("level", removed.Level.String()),
	)

	return true, nil
}
