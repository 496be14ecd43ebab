package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "word", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_Mapping(t *testing.T) {
	t.Parallel()

	unexpected := errors.New("something unexpected")

	tests := []struct {
		name    string
		err     error
		want    error
		notWant error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan row: %w", pgx.ErrNoRows), want: domain.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrAlreadyExists},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: domain.ErrAlreadyExists},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrValidation},
		{name: "deadline exceeded passes through", err: context.DeadlineExceeded, want: context.DeadlineExceeded, notWant: domain.ErrNotFound},
		{name: "canceled passes through", err: context.Canceled, want: context.Canceled, notWant: domain.ErrNotFound},
		{name: "unknown error kept", err: unexpected, want: unexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err, "word", uuid.New())
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapping %v", tt.err, got, tt.want)
			}
			if tt.notWant != nil && errors.Is(got, tt.notWant) {
				t.Errorf("MapError(%v) should not wrap %v", tt.err, tt.notWant)
			}
		})
	}
}

func TestMapError_UnknownPgCodeNotMapped(t *testing.T) {
	t.Parallel()

	got := MapError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "collection", uuid.New())

	var pgErr *pgconn.PgError
	if !errors.As(got, &pgErr) {
		t.Fatalf("expected *pgconn.PgError in chain: %v", got)
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation} {
		if errors.Is(got, sentinel) {
			t.Errorf("unknown code mapped to %v", sentinel)
		}
	}
}

func TestMapError_MessagePrefix(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := MapError(pgx.ErrNoRows, "collection", id)

	if want := fmt.Sprintf("collection %s: not found", id); got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
	if !strings.HasPrefix(MapError(errors.New("boom"), "word", id).Error(), "word "+id.String()) {
		t.Error("message should start with entity and id")
	}
}
