package collection

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// CreateCollectionInput holds the parameters for creating a collection.
type CreateCollectionInput struct {
	Name        string
	Description *string
	Emoji       string
	Color       string
}

// Validate checks all fields and collects all errors.
func (i CreateCollectionInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, "name", i.Name)
	errs = appendPresentationErrors(errs, i.Description, &i.Emoji, &i.Color)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCollectionInput holds the parameters for updating a collection.
type UpdateCollectionInput struct {
	CollectionID uuid.UUID
	Name         *string
	Description  *string // nil = don't change; ptr("") = clear
	Emoji        *string
	Color        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCollectionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Emoji == nil && i.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, "name", *i.Name)
	}
	errs = appendPresentationErrors(errs, i.Description, i.Emoji, i.Color)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, field, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxCollectionNameLength {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", domain.MaxCollectionNameLength)})
	}
	return errs
}

func appendPresentationErrors(errs []domain.FieldError, description, emoji, color *string) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > domain.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", domain.MaxDescriptionLength)})
	}
	if emoji != nil && utf8.RuneCountInString(*emoji) > domain.MaxEmojiLength {
		errs = append(errs, domain.FieldError{Field: "emoji", Message: fmt.Sprintf("max %d characters", domain.MaxEmojiLength)})
	}
	if color != nil && len(*color) > domain.MaxColorLength {
		errs = append(errs, domain.FieldError{Field: "color", Message: fmt.Sprintf("max %d characters", domain.MaxColorLength)})
	}
	return errs
}

// ExampleInput is a usage sentence supplied with a new word.
type ExampleInput struct {
	German      string
	Translation string
	Level       *string
}

// AddWordInput holds the parameters for adding a word to a collection.
type AddWordInput struct {
	CollectionID uuid.UUID
	Term         string
	Translation  string
	Examples     []ExampleInput
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collectionId", Message: "required"})
	}
	errs = appendWordErrors(errs, "", i.Term, i.Translation, i.Examples)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// appendWordErrors validates the content of a word. prefix is prepended to
// field names so bulk callers can point at a row.
func appendWordErrors(errs []domain.FieldError, prefix, term, translation string, examples []ExampleInput) []domain.FieldError {
	term = strings.TrimSpace(term)
	if term == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "germanWord", Message: "required"})
	}
	if utf8.RuneCountInString(term) > domain.MaxTermLength {
		errs = append(errs, domain.FieldError{Field: prefix + "germanWord", Message: fmt.Sprintf("max %d characters", domain.MaxTermLength)})
	}

	translation = strings.TrimSpace(translation)
	if translation == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "translation", Message: "required"})
	}
	if utf8.RuneCountInString(translation) > domain.MaxTranslationLength {
		errs = append(errs, domain.FieldError{Field: prefix + "translation", Message: fmt.Sprintf("max %d characters", domain.MaxTranslationLength)})
	}

	if len(examples) > domain.MaxExamplesPerWord {
		errs = append(errs, domain.FieldError{Field: prefix + "examples", Message: fmt.Sprintf("max %d examples", domain.MaxExamplesPerWord)})
	}
	for j, ex := range examples {
		field := fmt.Sprintf("%sexamples[%d].german", prefix, j)
		if strings.TrimSpace(ex.German) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		}
		if utf8.RuneCountInString(ex.German) > domain.MaxExampleLength || utf8.RuneCountInString(ex.Translation) > domain.MaxExampleLength {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", domain.MaxExampleLength)})
		}
	}
	return errs
}

// RemoveWordInput holds the parameters for removing a word.
type RemoveWordInput struct {
	// CollectionID is optional; when set the word must belong to it.
	CollectionID uuid.UUID
	WordID       uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveWordInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// UpdateWordLevelInput holds the parameters for changing a word's level.
type UpdateWordLevelInput struct {
	// CollectionID is optional; when set the word must belong to it.
	CollectionID uuid.UUID
	WordID       uuid.UUID
	Level        domain.Level
	// WasCorrect records a study answer together with the level change.
	WasCorrect *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateWordLevelInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "wordId", Message: "required"})
	}
	if !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: fmt.Sprintf("invalid value %q", i.Level)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WordRow is one row of a bulk word import.
type WordRow struct {
	Term        string
	Translation string
	Examples    []ExampleInput
}

// ImportWordsInput holds the parameters for adding many words at once.
type ImportWordsInput struct {
	CollectionID uuid.UUID
	Rows         []WordRow
}

// Validate checks the envelope; individual rows are checked during import.
func (i ImportWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collectionId", Message: "required"})
	}
	if len(i.Rows) == 0 {
		errs = append(errs, domain.FieldError{Field: "rows", Message: "at least one row required"})
	}
	if len(i.Rows) > domain.MaxWordsPerCollection {
		errs = append(errs, domain.FieldError{Field: "rows", Message: fmt.Sprintf("max %d rows", domain.MaxWordsPerCollection)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
