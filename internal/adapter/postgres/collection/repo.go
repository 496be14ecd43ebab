// Package collection implements the Collection repository using PostgreSQL.
// Counter changes are relative, atomic UPDATEs floored at zero, so concurrent
// writers never overwrite each other's increments.
package collection

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const table = "collections"

var columns = []string{
	"id", "user_id", "name", "description", "emoji", "color",
	"words_count", "progress_new", "progress_learning", "progress_familiar", "progress_mastered",
	"created_at", "updated_at",
}

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returning  = "RETURNING " + strings.Join(columns, ", ")
	levelField = map[domain.Level]string{
		domain.LevelNew:      "progress_new",
		domain.LevelLearning: "progress_learning",
		domain.LevelFamiliar: "progress_familiar",
		domain.LevelMastered: "progress_mastered",
	}
)

type row struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Name             string    `db:"name"`
	Description      *string   `db:"description"`
	Emoji            string    `db:"emoji"`
	Color            string    `db:"color"`
	WordsCount       int       `db:"words_count"`
	ProgressNew      int       `db:"progress_new"`
	ProgressLearning int       `db:"progress_learning"`
	ProgressFamiliar int       `db:"progress_familiar"`
	ProgressMastered int       `db:"progress_mastered"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Collection {
	counts := domain.LevelCounts{
		New:      r.ProgressNew,
		Learning: r.ProgressLearning,
		Familiar: r.ProgressFamiliar,
		Mastered: r.ProgressMastered,
	}
	return &domain.Collection{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Emoji:       r.Emoji,
		Color:       r.Color,
		WordsCount:  r.WordsCount,
		Progress:    domain.NewProgress(r.WordsCount, counts),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new collection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts c with zeroed counters and returns the stored record.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	query, args, err := psql.Insert(table).
		Columns("id", "user_id", "name", "description", "emoji", "color", "created_at", "updated_at").
		Values(c.ID, c.UserID, c.Name, c.Description, c.Emoji, c.Color, c.CreatedAt, c.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert collection: %w", err)
	}
	return r.getOne(ctx, c.ID, query, args...)
}

// GetByID returns a collection regardless of owner so that callers can tell
// a missing collection from a foreign one.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get collection: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// GetByIDForUpdate is GetByID that also locks the row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock collection: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// ListByUser returns the user's collections ordered by creation time.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collections: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	out := make([]domain.Collection, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// CountByUser returns how many collections the user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count collections: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}
	return n, nil
}

// ListIDs returns the ids of all collections, for system-wide reconciliation.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := psql.Select("id").From(table).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collection ids: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list collection ids: %w", err)
	}
	return ids, nil
}

// Update applies a patch of descriptive attributes.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.CollectionPatch) (*domain.Collection, error) {
	b := psql.Update(table).Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Description != nil {
		// empty string clears the description
		var desc *string
		if *p.Description != "" {
			desc = p.Description
		}
		b = b.Set("description", desc)
	}
	if p.Emoji != nil {
		b = b.Set("emoji", *p.Emoji)
	}
	if p.Color != nil {
		b = b.Set("color", *p.Color)
	}

	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update collection: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// Delete removes a collection. Its words go with it through the foreign key.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete collection: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "collection", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every collection of the user and returns how many were deleted.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete user collections: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete user collections: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// AdjustProgress applies a relative delta to the counters in a single
// statement, flooring every counter at 0, and bumps updated_at.
// Returns domain.ErrNotFound if the collection does not exist.
func (r *Repo) AdjustProgress(ctx context.Context, id uuid.UUID, d domain.ProgressDelta) (*domain.Collection, error) {
	b := psql.Update(table).
		Set("words_count", sq.Expr("GREATEST(words_count + ?, 0)", d.Words)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	for _, l := range domain.Levels {
		col := levelField[l]
		b = b.Set(col, sq.Expr(fmt.Sprintf("GREATEST(%s + ?, 0)", col), d.Levels.Get(l)))
	}

	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build adjust progress: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

// SetProgress overwrites the counters with absolute values.
func (r *Repo) SetProgress(ctx context.Context, id uuid.UUID, c domain.LevelCounts) (*domain.Collection, error) {
	query, args, err := psql.Update(table).
		Set("words_count", c.Total()).
		Set("progress_new", c.New).
		Set("progress_learning", c.Learning).
		Set("progress_familiar", c.Familiar).
		Set("progress_mastered", c.Mastered).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set progress: %w", err)
	}
	return r.getOne(ctx, id, query, args...)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args ...any) (*domain.Collection, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}
	return dst.toDomain(), nil
}
