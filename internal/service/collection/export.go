package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// Export returns a snapshot of all of the caller's collections and words.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		collections []domain.Collection
		words       []domain.Word
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collections, err = s.collections.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list collections: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		words, err = s.words.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCollection := make(map[uuid.UUID][]domain.Word, len(collections))
	for _, w := range words {
		byCollection[w.CollectionID] = append(byCollection[w.CollectionID], w)
	}

	snap := &Snapshot{
		Version:     SnapshotVersion,
		ExportedAt:  time.Now().UTC(),
		Collections: make([]SnapshotCollection, 0, len(collections)),
	}
	for _, c := range collections {
		snap.Collections = append(snap.Collections, snapshotCollection(c, byCollection[c.ID]))
	}

	s.log.InfoContext(ctx, "data exported",
		slog.String("user_id", userID.String()),
		slog.Int("collections", len(collections)),
		slog.Int("words", len(words)),
	)

	return snap, nil
}

// ExportData returns Export encoded as indented JSON.
func (s *Service) ExportData(ctx context.Context) ([]byte, error) {
	snap, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
