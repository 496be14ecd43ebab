package study

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// BuildSessionInput holds the parameters for building a study session.
type BuildSessionInput struct {
	CollectionID uuid.UUID
	// Size is the maximum number of cards; 0 means the configured default.
	Size    int
	Shuffle bool
	// OnComplete is passed through to the session.
	OnComplete func(Summary)
}

// Validate checks all fields and collects all errors.
func (i BuildSessionInput) Validate(maxSize int) error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collectionId", Message: "required"})
	}
	if i.Size < 0 || i.Size > maxSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: fmt.Sprintf("must be between 0 and %d", maxSize)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput holds the parameters for a single review.
type ReviewInput struct {
	// CollectionID is optional; when set the word must belong to it.
	CollectionID uuid.UUID
	WordID       uuid.UUID
	Correct      bool
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("wordId", "required")
	}
	return nil
}
