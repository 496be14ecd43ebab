// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const table = "words"

var columns = []string{
	"id", "user_id", "collection_id", "term", "term_normalized", "translation", "level",
	"correct_count", "incorrect_count", "examples", "added_at", "last_reviewed", "next_review",
}

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// updateLevelSQL locks the row, remembers its level and writes the new one in
// a single statement, so the previous level reported back is exactly the one
// that was replaced.
var updateLevelSQL = `
UPDATE words AS w
SET level           = $2,
    correct_count   = w.correct_count + $3,
    incorrect_count = w.incorrect_count + $4,
    last_reviewed   = COALESCE($5::timestamptz, w.last_reviewed)
FROM (SELECT id, level FROM words WHERE id = $1 FOR UPDATE) AS prev
WHERE w.id = prev.id
RETURNING prev.level AS previous_level, w.` + strings.Join(columns, ", w.")

const existsByTermSQL = `
SELECT EXISTS(SELECT 1 FROM words WHERE collection_id = $1 AND term_normalized = $2)`

const countByLevelSQL = `
SELECT level, count(*) AS n
FROM words
WHERE collection_id = $1
GROUP BY level`

const bulkInsertSQL = `
INSERT INTO words (id, user_id, collection_id, term, term_normalized, translation, level,
                   correct_count, incorrect_count, examples, added_at, last_reviewed, next_review)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (collection_id, term_normalized) DO NOTHING`

type row struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	CollectionID   uuid.UUID  `db:"collection_id"`
	Term           string     `db:"term"`
	TermNormalized string     `db:"term_normalized"`
	Translation    string     `db:"translation"`
	Level          string     `db:"level"`
	CorrectCount   int        `db:"correct_count"`
	IncorrectCount int        `db:"incorrect_count"`
	Examples       []byte     `db:"examples"`
	AddedAt        time.Time  `db:"added_at"`
	LastReviewed   *time.Time `db:"last_reviewed"`
	NextReview     *time.Time `db:"next_review"`
}

type levelRow struct {
	PreviousLevel string `db:"previous_level"`
	row
}

type exampleJSON struct {
	German      string  `json:"german"`
	Translation string  `json:"translation"`
	Level       *string `json:"level,omitempty"`
}

func (r row) toDomain() (*domain.Word, error) {
	var examples []exampleJSON
	if len(r.Examples) > 0 {
		if err := json.Unmarshal(r.Examples, &examples); err != nil {
			return nil, fmt.Errorf("decode examples of word %s: %w", r.ID, err)
		}
	}

	w := &domain.Word{
		ID:             r.ID,
		UserID:         r.UserID,
		CollectionID:   r.CollectionID,
		Term:           r.Term,
		TermNormalized: r.TermNormalized,
		Translation:    r.Translation,
		Level:          domain.Level(r.Level),
		CorrectCount:   r.CorrectCount,
		IncorrectCount: r.IncorrectCount,
		Examples:       make([]domain.Example, len(examples)),
		AddedAt:        r.AddedAt,
		LastReviewed:   r.LastReviewed,
		NextReview:     r.NextReview,
	}
	for i, e := range examples {
		w.Examples[i] = domain.Example{German: e.German, Translation: e.Translation, Level: e.Level}
	}
	return w, nil
}

func encodeExamples(examples []domain.Example) ([]byte, error) {
	out := make([]exampleJSON, len(examples))
	for i, e := range examples {
		out[i] = exampleJSON{German: e.German, Translation: e.Translation, Level: e.Level}
	}
	return json.Marshal(out)
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts w. A term already present in the collection (by normalized
// key) yields domain.ErrAlreadyExists; a missing collection yields
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	examples, err := encodeExamples(w.Examples)
	if err != nil {
		return nil, fmt.Errorf("encode examples: %w", err)
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(w.ID, w.UserID, w.CollectionID, w.Term, w.TermNormalized, w.Translation, string(w.Level),
			w.CorrectCount, w.IncorrectCount, examples, w.AddedAt, w.LastReviewed, w.NextReview).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word: %w", err)
	}
	return r.getOne(ctx, w.ID, query, args...)
}

// GetByID returns a word regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// ExistsByTerm reports whether the collection already has a word with the
// given normalized term.
func (r *Repo) ExistsByTerm(ctx context.Context, collectionID uuid.UUID, normalized string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsByTermSQL, collectionID, normalized).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("word exists: %w", err)
	}
	return exists, nil
}

// ListByCollection returns the words of a collection ordered by addedAt.
func (r *Repo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	return r.list(ctx, sq.Eq{"collection_id": collectionID})
}

// ListByUser returns all words owned by the user, grouped by collection.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Word, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(where).
		OrderBy("collection_id", "added_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	out := make([]domain.Word, 0, len(rows))
	for i := range rows {
		w, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, nil
}

// Delete removes a word and returns it as it was at deletion time.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete word: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// DeleteByCollection removes every word of a collection.
func (r *Repo) DeleteByCollection(ctx context.Context, collectionID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, sq.Eq{"collection_id": collectionID})
}

// DeleteByUser removes every word owned by the user.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, sq.Eq{"user_id": userID})
}

func (r *Repo) deleteWhere(ctx context.Context, where sq.Eq) (int, error) {
	query, args, err := psql.Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete words: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete words: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UpdateLevel sets the level of a word and, when review is non-nil, records
// the answer. It returns the level the word had before the update.
func (r *Repo) UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level, review *domain.Review) (domain.Level, *domain.Word, error) {
	var correct, incorrect int
	var reviewedAt *time.Time
	if review != nil {
		if review.Correct {
			correct = 1
		} else {
			incorrect = 1
		}
		at := review.ReviewedAt
		reviewedAt = &at
	}

	var dst levelRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, updateLevelSQL,
		id, string(level), correct, incorrect, reviewedAt)
	if err != nil {
		return "", nil, postgres.MapError(err, "word", id)
	}

	w, err := dst.toDomain()
	if err != nil {
		return "", nil, err
	}
	return domain.Level(dst.PreviousLevel), w, nil
}

// CountByLevel tallies the live words of a collection per level.
func (r *Repo) CountByLevel(ctx context.Context, collectionID uuid.UUID) (domain.LevelCounts, error) {
	var rows []struct {
		Level string `db:"level"`
		N     int    `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, countByLevelSQL, collectionID); err != nil {
		return domain.LevelCounts{}, fmt.Errorf("count words by level: %w", err)
	}

	var c domain.LevelCounts
	for _, lr := range rows {
		c.Add(domain.Level(lr.Level), lr.N)
	}
	return c, nil
}

// BulkCreate inserts words in one batch, silently skipping terms that already
// exist in their collection. Returns the number of rows inserted.
func (r *Repo) BulkCreate(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range words {
		w := &words[i]
		examples, err := encodeExamples(w.Examples)
		if err != nil {
			return 0, fmt.Errorf("encode examples: %w", err)
		}
		batch.Queue(bulkInsertSQL,
			w.ID, w.UserID, w.CollectionID, w.Term, w.TermNormalized, w.Translation, string(w.Level),
			w.CorrectCount, w.IncorrectCount, examples, w.AddedAt, w.LastReviewed, w.NextReview)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for i := range words {
		tag, err := br.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "word", words[i].ID)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args ...any) (*domain.Word, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return dst.toDomain()
}
