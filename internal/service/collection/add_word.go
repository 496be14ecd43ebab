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

// AddWord adds a new word at level new to one of the caller's collections and
// increments the collection's counters in the same transaction.
// A term that already exists in the collection (case-insensitively) is
// rejected with domain.ErrAlreadyExists and leaves the counters unchanged.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	term := strings.TrimSpace(input.Term)
	normalized := domain.NormalizeTerm(term)

	var word *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.ownedCollection(txCtx, userID, input.CollectionID)
		if err != nil {
			return err
		}
		if c.WordsCount >= domain.MaxWordsPerCollection {
			return domain.NewValidationError("collectionId", fmt.Sprintf("word limit reached (max %d)", domain.MaxWordsPerCollection))
		}

		exists, err := s.words.ExistsByTerm(txCtx, c.ID, normalized)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return fmt.Errorf("word %q: %w", term, domain.ErrAlreadyExists)
		}

		word, err = s.words.Create(txCtx, &domain.Word{
			ID:             uuid.New(),
			UserID:         userID,
			CollectionID:   c.ID,
			Term:           term,
			TermNormalized: normalized,
			Translation:    strings.TrimSpace(input.Translation),
			Level:          domain.LevelNew,
			Examples:       toDomainExamples(input.Examples),
			AddedAt:        time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create word: %w", err)
		}

		if _, err := s.collections.AdjustProgress(txCtx, c.ID, domain.WordAdded(domain.LevelNew)); err != nil {
			return fmt.Errorf("adjust progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", word.CollectionID.String()),
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term),
	)

	return word, nil
}

func toDomainExamples(in []ExampleInput) []domain.Example {
	out := make([]domain.Example, 0, len(in))
	for _, ex := range in {
		out = append(out, domain.Example{
			German:      strings.TrimSpace(ex.German),
			Translation: strings.TrimSpace(ex.Translation),
			Level:       trimOrNil(ex.Level),
		})
	}
	return out
}
