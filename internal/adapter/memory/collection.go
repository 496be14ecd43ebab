package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// CollectionRepo implements collection persistence on top of Store.
type CollectionRepo struct {
	s *Store
}

func cloneCollection(c domain.Collection) *domain.Collection {
	if c.Description != nil {
		d := *c.Description
		c.Description = &d
	}
	c.Progress = domain.NewProgress(c.WordsCount, c.Progress.Counts())
	return &c
}

// Create inserts c with zeroed counters.
func (r *CollectionRepo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	var out *domain.Collection
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.collections[c.ID]; ok {
			return fmt.Errorf("collection %s: %w", c.ID, domain.ErrAlreadyExists)
		}
		stored := *c
		stored.WordsCount = 0
		stored.Progress = domain.Progress{}
		r.s.collections[c.ID] = stored
		out = cloneCollection(stored)
		return nil
	})
	return out, err
}

// GetByID returns a collection regardless of owner.
func (r *CollectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	var out *domain.Collection
	err := r.s.read(ctx, func() error {
		c, ok := r.s.collections[id]
		if !ok {
			return notFound("collection", id)
		}
		out = cloneCollection(c)
		return nil
	})
	return out, err
}

// GetByIDForUpdate returns a collection while holding the writer lock, which
// a transaction already owns.
func (r *CollectionRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	var out *domain.Collection
	err := r.s.write(ctx, func() error {
		c, ok := r.s.collections[id]
		if !ok {
			return notFound("collection", id)
		}
		out = cloneCollection(c)
		return nil
	})
	return out, err
}

// ListByUser returns the user's collections ordered by creation time.
func (r *CollectionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	out := []domain.Collection{}
	err := r.s.read(ctx, func() error {
		for _, c := range r.s.collections {
			if c.UserID == userID {
				out = append(out, *cloneCollection(c))
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Collection) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, err
}

// CountByUser returns how many collections the user owns.
func (r *CollectionRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n := 0
	err := r.s.read(ctx, func() error {
		for _, c := range r.s.collections {
			if c.UserID == userID {
				n++
			}
		}
		return nil
	})
	return n, err
}

// ListIDs returns the ids of all collections.
func (r *CollectionRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.s.read(ctx, func() error {
		ids = make([]uuid.UUID, 0, len(r.s.collections))
		for id := range r.s.collections {
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

// Update applies a patch of descriptive attributes.
func (r *CollectionRepo) Update(ctx context.Context, id uuid.UUID, p domain.CollectionPatch) (*domain.Collection, error) {
	return r.mutate(ctx, id, func(c *domain.Collection) {
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Description != nil {
			c.Description = nil
			if d := *p.Description; d != "" {
				c.Description = &d
			}
		}
		if p.Emoji != nil {
			c.Emoji = *p.Emoji
		}
		if p.Color != nil {
			c.Color = *p.Color
		}
	})
}

// Delete removes a collection together with its words.
func (r *CollectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.collections[id]; !ok {
			return notFound("collection", id)
		}
		delete(r.s.collections, id)
		for wid, w := range r.s.words {
			if w.CollectionID == id {
				delete(r.s.words, wid)
			}
		}
		return nil
	})
}

// DeleteByUser removes every collection of the user together with their words.
func (r *CollectionRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n := 0
	err := r.s.write(ctx, func() error {
		for id, c := range r.s.collections {
			if c.UserID != userID {
				continue
			}
			delete(r.s.collections, id)
			n++
			for wid, w := range r.s.words {
				if w.CollectionID == id {
					delete(r.s.words, wid)
				}
			}
		}
		return nil
	})
	return n, err
}

// AdjustProgress applies a relative delta, flooring every counter at 0.
func (r *CollectionRepo) AdjustProgress(ctx context.Context, id uuid.UUID, d domain.ProgressDelta) (*domain.Collection, error) {
	return r.mutate(ctx, id, func(c *domain.Collection) {
		c.WordsCount = domain.ApplyFloor(c.WordsCount, d.Words)
		counts := c.Progress.Counts()
		for _, l := range domain.Levels {
			counts.Add(l, domain.ApplyFloor(counts.Get(l), d.Levels.Get(l))-counts.Get(l))
		}
		c.Progress = domain.NewProgress(c.WordsCount, counts)
	})
}

// SetProgress overwrites the counters with absolute values.
func (r *CollectionRepo) SetProgress(ctx context.Context, id uuid.UUID, counts domain.LevelCounts) (*domain.Collection, error) {
	return r.mutate(ctx, id, func(c *domain.Collection) {
		c.WordsCount = counts.Total()
		c.Progress = domain.NewProgress(c.WordsCount, counts)
	})
}

func (r *CollectionRepo) mutate(ctx context.Context, id uuid.UUID, fn func(c *domain.Collection)) (*domain.Collection, error) {
	var out *domain.Collection
	err := r.s.write(ctx, func() error {
		c, ok := r.s.collections[id]
		if !ok {
			return notFound("collection", id)
		}
		fn(&c)
		c.UpdatedAt = r.s.now()
		r.s.collections[id] = c
		out = cloneCollection(c)
		return nil
	})
	return out, err
}
