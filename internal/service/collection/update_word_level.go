package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// LevelChange is the result of a level update.
type LevelChange struct {
	Previous domain.Level
	Word     *domain.Word
}

// UpdateWordLevel moves a word to a new level and shifts one unit between the
// collection's level counters. The previous level is read atomically with the
// write, so concurrent updates of the same word cannot double-count.
// With WasCorrect set, the answer is recorded as well.
func (s *Service) UpdateWordLevel(ctx context.Context, input UpdateWordLevelInput) (*LevelChange, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var review *domain.Review
	if input.WasCorrect != nil {
		review = &domain.Review{Correct: *input.WasCorrect, ReviewedAt: time.Now().UTC()}
	}

	var change LevelChange
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		w, err := s.ownedWord(txCtx, userID, input.WordID)
		if err != nil {
			return err
		}
		if input.CollectionID != uuid.Nil && input.CollectionID != w.CollectionID {
			return fmt.Errorf("word %s in collection %s: %w", w.ID, input.CollectionID, domain.ErrNotFound)
		}

		change.Previous, change.Word, err = s.words.UpdateLevel(txCtx, w.ID, input.Level, review)
		if err != nil {
			return fmt.Errorf("update level: %w", err)
		}

		_, err = s.collections.AdjustProgress(txCtx, w.CollectionID, domain.LevelChanged(change.Previous, input.Level))
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "level changed in missing collection",
				slog.String("collection_id", w.CollectionID.String()),
				slog.String("word_id", w.ID.String()),
			)
			return nil
		}
		if err != nil {
			return fmt.Errorf("adjust progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("word_id", change.Word.ID.String()),
		slog.String("from", change.Previous.String()),
		slog.String("to", change.Word.Level.String()),
	}
	if review != nil {
		attrs = append(attrs, slog.Bool("correct", review.Correct))
	}
	s.log.InfoContext(ctx, "word level updated", attrs...)

	return &change, nil
}
