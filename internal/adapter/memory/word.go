package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// WordRepo implements word persistence on top of Store.
type WordRepo struct {
	s *Store
}

func cloneWord(w domain.Word) *domain.Word {
	w.Examples = slices.Clone(w.Examples)
	if w.Examples == nil {
		w.Examples = []domain.Example{}
	}
	return &w
}

// insert enforces the same constraints as the words table. Caller holds mu.
func (r *WordRepo) insert(w domain.Word) error {
	if _, ok := r.s.collections[w.CollectionID]; !ok {
		return notFound("collection", w.CollectionID)
	}
	if !w.Level.IsValid() {
		return fmt.Errorf("word %s: %w", w.ID, domain.ErrValidation)
	}
	if _, ok := r.s.words[w.ID]; ok {
		return fmt.Errorf("word %s: %w", w.ID, domain.ErrAlreadyExists)
	}
	if r.termTaken(w.CollectionID, w.TermNormalized) {
		return fmt.Errorf("word %s: %w", w.ID, domain.ErrAlreadyExists)
	}
	r.s.words[w.ID] = *cloneWord(w)
	return nil
}

func (r *WordRepo) termTaken(collectionID uuid.UUID, normalized string) bool {
	for _, w := range r.s.words {
		if w.CollectionID == collectionID && w.TermNormalized == normalized {
			return true
		}
	}
	return false
}

// Create inserts w.
func (r *WordRepo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	err := r.s.write(ctx, func() error { return r.insert(*w) })
	if err != nil {
		return nil, err
	}
	return cloneWord(*w), nil
}

// GetByID returns a word regardless of owner.
func (r *WordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	var out *domain.Word
	err := r.s.read(ctx, func() error {
		w, ok := r.s.words[id]
		if !ok {
			return notFound("word", id)
		}
		out = cloneWord(w)
		return nil
	})
	return out, err
}

// ExistsByTerm reports whether the collection has a word with the normalized term.
func (r *WordRepo) ExistsByTerm(ctx context.Context, collectionID uuid.UUID, normalized string) (bool, error) {
	var exists bool
	err := r.s.read(ctx, func() error {
		exists = r.termTaken(collectionID, normalized)
		return nil
	})
	return exists, err
}

// ListByCollection returns the words of a collection ordered by addedAt.
func (r *WordRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	return r.list(ctx, func(w domain.Word) bool { return w.CollectionID == collectionID })
}

// ListByUser returns all words owned by the user.
func (r *WordRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error) {
	return r.list(ctx, func(w domain.Word) bool { return w.UserID == userID })
}

func (r *WordRepo) list(ctx context.Context, match func(domain.Word) bool) ([]domain.Word, error) {
	out := []domain.Word{}
	err := r.s.read(ctx, func() error {
		for _, w := range r.s.words {
			if match(w) {
				out = append(out, *cloneWord(w))
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Word) int {
		if c := strings.Compare(a.CollectionID.String(), b.CollectionID.String()); c != 0 {
			return c
		}
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, err
}

// Delete removes a word and returns it as it was at deletion time.
func (r *WordRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	var out *domain.Word
	err := r.s.write(ctx, func() error {
		w, ok := r.s.words[id]
		if !ok {
			return notFound("word", id)
		}
		delete(r.s.words, id)
		out = cloneWord(w)
		return nil
	})
	return out, err
}

// DeleteByCollection removes every word of a collection.
func (r *WordRepo) DeleteByCollection(ctx context.Context, collectionID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, func(w domain.Word) bool { return w.CollectionID == collectionID })
}

// DeleteByUser removes every word owned by the user.
func (r *WordRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, func(w domain.Word) bool { return w.UserID == userID })
}

func (r *WordRepo) deleteWhere(ctx context.Context, match func(domain.Word) bool) (int, error) {
	n := 0
	err := r.s.write(ctx, func() error {
		for id, w := range r.s.words {
			if match(w) {
				delete(r.s.words, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// UpdateLevel sets the level of a word, records the answer when review is
// non-nil, and returns the level the word had before.
func (r *WordRepo) UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level, review *domain.Review) (domain.Level, *domain.Word, error) {
	var (
		prev domain.Level
		out  *domain.Word
	)
	err := r.s.write(ctx, func() error {
		w, ok := r.s.words[id]
		if !ok {
			return notFound("word", id)
		}
		if !level.IsValid() {
			return fmt.Errorf("word %s: %w", id, domain.ErrValidation)
		}
		prev = w.Level
		w.Level = level
		if review != nil {
			if review.Correct {
				w.CorrectCount++
			} else {
				w.IncorrectCount++
			}
			at := review.ReviewedAt
			w.LastReviewed = &at
		}
		r.s.words[id] = w
		out = cloneWord(w)
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return prev, out, nil
}

// CountByLevel tallies the live words of a collection per level.
func (r *WordRepo) CountByLevel(ctx context.Context, collectionID uuid.UUID) (domain.LevelCounts, error) {
	var c domain.LevelCounts
	err := r.s.read(ctx, func() error {
		for _, w := range r.s.words {
			if w.CollectionID == collectionID {
				c.Add(w.Level, 1)
			}
		}
		return nil
	})
	return c, err
}

// BulkCreate inserts words, skipping terms that already exist in their
// collection. Returns the number of words inserted.
func (r *WordRepo) BulkCreate(ctx context.Context, words []domain.Word) (int, error) {
	inserted := 0
	err := r.s.write(ctx, func() error {
		for _, w := range words {
			if r.termTaken(w.CollectionID, w.TermNormalized) {
				continue
			}
			if err := r.insert(w); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, err
}
