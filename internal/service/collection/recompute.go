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

// RecomputeProgress rebuilds a collection's counters from its live word set.
func (s *Service) RecomputeProgress(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var c *domain.Collection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedCollection(txCtx, userID, collectionID); err != nil {
			return err
		}
		var err error
		c, _, err = s.recompute(txCtx, collectionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "collection progress recomputed",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.Int("words_count", c.WordsCount),
	)

	return c, nil
}

// ReconcileAll checks every collection in the system and rewrites the
// counters of those that disagree with their word set. It keeps going past
// individual failures and returns how many collections were repaired.
func (s *Service) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := s.collections.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list collections: %w", err)
	}

	var (
		repaired int
		errs     []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}

		var fixed bool
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			_, fixed, err = s.recompute(txCtx, id)
			return err
		})
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// deleted while reconciling
		case err != nil:
			s.log.ErrorContext(ctx, "reconcile collection failed",
				slog.String("collection_id", id.String()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("collection %s: %w", id, err))
		case fixed:
			repaired++
		}
	}

	s.log.InfoContext(ctx, "reconciliation finished",
		slog.Int("checked", len(ids)),
		slog.Int("repaired", repaired),
		slog.Int("failed", len(errs)),
	)

	return repaired, errors.Join(errs...)
}

// recompute writes absolute counters if they drifted. It reports whether a
// write happened. It must run inside a transaction: the collection row stays
// locked until commit, so relative counter updates from concurrent word writes
// wait for the recount instead of being overwritten by it.
func (s *Service) recompute(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, bool, error) {
	c, err := s.collections.GetByIDForUpdate(ctx, collectionID)
	if err != nil {
		return nil, false, fmt.Errorf("get collection: %w", err)
	}

	counts, err := s.words.CountByLevel(ctx, collectionID)
	if err != nil {
		return nil, false, fmt.Errorf("count words: %w", err)
	}

	if c.WordsCount == counts.Total() && c.Progress.Counts() == counts {
		return c, false, nil
	}

	fixed, err := s.collections.SetProgress(ctx, collectionID, counts)
	if err != nil {
		return nil, false, fmt.Errorf("set progress: %w", err)
	}

	s.log.WarnContext(ctx, "collection progress drift repaired",
		slog.String("collection_id", collectionID.String()),
		slog.Int("words_count_before", c.WordsCount),
		slog.Int("words_count_after", fixed.WordsCount),
		slog.Int("mastered_before", c.Progress.Mastered),
		slog.Int("mastered_after", fixed.Progress.Mastered),
	)

	return fixed, true, nil
}
