package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// ImportResult summarizes an import.
type ImportResult struct {
	Collections int
	Words       int
	// Skipped counts words dropped as duplicates within their collection.
	Skipped int
}

// ImportData replaces all of the caller's collections and words with the
// contents of a snapshot produced by ExportData. Malformed input is reported
// as a *domain.ValidationError and leaves existing data untouched. Counters
// of imported collections are computed from the imported words.
func (s *Service) ImportData(ctx context.Context, data []byte) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	plan, result, err := planImport(userID, snap, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.words.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("purge words: %w", err)
		}
		if _, err := s.collections.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("purge collections: %w", err)
		}

		for _, p := range plan {
			if _, err := s.collections.Create(txCtx, &p.collection); err != nil {
				return fmt.Errorf("create collection %q: %w", p.collection.Name, err)
			}
			if _, err := s.words.BulkCreate(txCtx, p.words); err != nil {
				return fmt.Errorf("create words of %q: %w", p.collection.Name, err)
			}
			if _, err := s.collections.SetProgress(txCtx, p.collection.ID, domain.CountLevels(p.words)); err != nil {
				return fmt.Errorf("set progress of %q: %w", p.collection.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "data imported",
		slog.String("user_id", userID.String()),
		slog.Int("collections", result.Collections),
		slog.Int("words", result.Words),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

func decodeSnapshot(data []byte) (*Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.NewValidationError("data", "empty input")
	}

	var snap Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&snap); err != nil {
		return nil, domain.NewValidationError("data", "malformed snapshot: "+err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("data", "unexpected data after snapshot")
	}
	switch snap.Version {
	case SnapshotVersion:
	case 0:
		return nil, domain.NewValidationError("version", "required")
	default:
		return nil, domain.NewValidationError("version", fmt.Sprintf("unsupported version %d", snap.Version))
	}
	return &snap, nil
}

type plannedCollection struct {
	collection domain.Collection
	words      []domain.Word
}

// planImport validates a snapshot and converts it into fresh domain records.
func planImport(userID uuid.UUID, snap *Snapshot, now time.Time) ([]plannedCollection, *ImportResult, error) {
	var errs []domain.FieldError
	result := &ImportResult{}

	if len(snap.Collections) > domain.MaxCollectionsPerUser {
		errs = append(errs, domain.FieldError{Field: "collections", Message: fmt.Sprintf("max %d collections", domain.MaxCollectionsPerUser)})
	}

	plan := make([]plannedCollection, 0, len(snap.Collections))
	for i, sc := range snap.Collections {
		prefix := fmt.Sprintf("collections[%d].", i)

		name := strings.TrimSpace(sc.Name)
		errs = appendNameErrors(errs, prefix+"name", name)
		if len(sc.Words) > domain.MaxWordsPerCollection {
			errs = append(errs, domain.FieldError{Field: prefix + "words", Message: fmt.Sprintf("max %d words", domain.MaxWordsPerCollection)})
		}

		createdAt := sc.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		p := plannedCollection{
			collection: domain.Collection{
				ID:          uuid.New(),
				UserID:      userID,
				Name:        name,
				Description: trimOrNil(sc.Description),
				Emoji:       orDefault(sc.Emoji, domain.DefaultCollectionEmoji),
				Color:       orDefault(sc.Color, domain.DefaultCollectionColor),
				CreatedAt:   createdAt,
				UpdatedAt:   now,
			},
		}

		seen := make(map[string]bool, len(sc.Words))
		for j, sw := range sc.Words {
			wprefix := fmt.Sprintf("%swords[%d].", prefix, j)

			examples := make([]ExampleInput, len(sw.Examples))
			for k, ex := range sw.Examples {
				examples[k] = ExampleInput{German: ex.German, Translation: ex.Translation, Level: ex.Level}
			}
			errs = appendWordErrors(errs, wprefix, sw.GermanWord, sw.Translation, examples)

			level := domain.LevelNew
			if sw.Level != "" {
				level = domain.Level(sw.Level)
				if !level.IsValid() {
					errs = append(errs, domain.FieldError{Field: wprefix + "level", Message: fmt.Sprintf("invalid value %q", sw.Level)})
				}
			}

			term := strings.TrimSpace(sw.GermanWord)
			normalized := domain.NormalizeTerm(term)
			if normalized == "" {
				continue
			}
			if seen[normalized] {
				result.Skipped++
				continue
			}
			seen[normalized] = true

			addedAt := sw.AddedAt
			if addedAt.IsZero() {
				addedAt = now
			}
			p.words = append(p.words, domain.Word{
				ID:             uuid.New(),
				UserID:         userID,
				CollectionID:   p.collection.ID,
				Term:           term,
				TermNormalized: normalized,
				Translation:    strings.TrimSpace(sw.Translation),
				Level:          level,
				CorrectCount:   max(sw.CorrectCount, 0),
				IncorrectCount: max(sw.IncorrectCount, 0),
				Examples:       toDomainExamples(examples),
				AddedAt:        addedAt,
				LastReviewed:   sw.LastReviewed,
				NextReview:     sw.NextReview,
			})
		}

		result.Collections++
		result.Words += len(p.words)
		plan = append(plan, p)
	}

	if len(errs) > 0 {
		return nil, nil, domain.NewValidationErrors(errs)
	}
	return plan, result, nil
}
