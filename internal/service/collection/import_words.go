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

// BulkAddResult summarizes an ImportWords call.
type BulkAddResult struct {
	Added      int
	Duplicates int
	Invalid    []domain.FieldError
}

// ImportWords adds many words to one of the caller's collections. Invalid rows
// are reported and skipped. Terms already present in the collection, or
// repeated within the batch, are counted as duplicates.
func (s *Service) ImportWords(ctx context.Context, input ImportWordsInput) (*BulkAddResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &BulkAddResult{}
	now := time.Now().UTC()
	seen := make(map[string]bool, len(input.Rows))
	words := make([]domain.Word, 0, len(input.Rows))

	for i, row := range input.Rows {
		if rowErrs := appendWordErrors(nil, fmt.Sprintf("rows[%d].", i), row.Term, row.Translation, row.Examples); len(rowErrs) > 0 {
			result.Invalid = append(result.Invalid, rowErrs...)
			continue
		}

		term := strings.TrimSpace(row.Term)
		normalized := domain.NormalizeTerm(term)
		if seen[normalized] {
			result.Duplicates++
			continue
		}
		seen[normalized] = true

		words = append(words, domain.Word{
			ID:             uuid.New(),
			UserID:         userID,
			CollectionID:   input.CollectionID,
			Term:           term,
			TermNormalized: normalized,
			Translation:    strings.TrimSpace(row.Translation),
			Level:          domain.LevelNew,
			Examples:       toDomainExamples(row.Examples),
			// Keep the file order stable when listing by addedAt.
			AddedAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.ownedCollection(txCtx, userID, input.CollectionID)
		if err != nil {
			return err
		}
		inserted, err := s.words.BulkCreate(txCtx, words)
		if err != nil {
			return fmt.Errorf("bulk create words: %w", err)
		}
		// Rows that already exist are skipped by BulkCreate, so only the
		// inserted ones count against the limit. Exceeding it rolls back.
		if c.WordsCount+inserted > domain.MaxWordsPerCollection {
			return domain.NewValidationError("rows", fmt.Sprintf("word limit reached (max %d)", domain.MaxWordsPerCollection))
		}

		delta := domain.ProgressDelta{Words: inserted, Levels: domain.LevelCounts{New: inserted}}
		if _, err := s.collections.AdjustProgress(txCtx, c.ID, delta); err != nil {
			return fmt.Errorf("adjust progress: %w", err)
		}

		result.Added = inserted
		result.Duplicates += len(words) - inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "words imported",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.Int("added", result.Added),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("invalid", len(result.Invalid)),
	)

	return result, nil
}
