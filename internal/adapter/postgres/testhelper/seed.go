package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCollection inserts an empty collection owned by userID.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Collection {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Collection{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Wortschatz " + uniqueSuffix(),
		Emoji:     domain.DefaultCollectionEmoji,
		Color:     domain.DefaultCollectionColor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collections (id, user_id, name, emoji, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.Name, c.Emoji, c.Color, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection: %v", err)
	}
	return c
}

// SeedWord inserts a word at the given level without touching the parent's
// counters, which lets tests create drift on purpose.
func SeedWord(t *testing.T, pool *pgxpool.Pool, c domain.Collection, term string, level domain.Level) domain.Word {
	t.Helper()

	w := domain.Word{
		ID:             uuid.New(),
		UserID:         c.UserID,
		CollectionID:   c.ID,
		Term:           term,
		TermNormalized: domain.NormalizeTerm(term),
		Translation:    "translation of " + term,
		Level:          level,
		AddedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, user_id, collection_id, term, term_normalized, translation, level, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.UserID, w.CollectionID, w.Term, w.TermNormalized, w.Translation, string(w.Level), w.AddedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}
