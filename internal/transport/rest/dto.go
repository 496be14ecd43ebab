package rest

import (
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type createCollectionRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Emoji       string  `json:"emoji"       validate:"max=16"`
	Color       string  `json:"color"       validate:"max=32"`
}

type updateCollectionRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Emoji       *string `json:"emoji"       validate:"omitempty,max=16"`
	Color       *string `json:"color"       validate:"omitempty,max=32"`
}

type exampleRequest struct {
	German      string  `json:"german"      validate:"required"`
	Translation string  `json:"translation"`
	Level       *string `json:"level"`
}

type addWordRequest struct {
	CollectionID string           `json:"collectionId" validate:"required,uuid"`
	GermanWord   string           `json:"germanWord"   validate:"required"`
	Translation  string           `json:"translation"  validate:"required"`
	Examples     []exampleRequest `json:"examples"     validate:"max=20,dive"`
}

type updateLevelRequest struct {
	CollectionID string `json:"collectionId" validate:"omitempty,uuid"`
	WordID       string `json:"wordId"       validate:"required,uuid"`
	Level        string `json:"level"        validate:"required,oneof=new learning familiar mastered"`
	WasCorrect   *bool  `json:"wasCorrect"`
}

type answerRequest struct {
	CollectionID string `json:"collectionId" validate:"omitempty,uuid"`
	WordID       string `json:"wordId"       validate:"required,uuid"`
	Correct      *bool  `json:"correct"      validate:"required"`
}

type progressResponse struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Learning   int `json:"learning"`
	Familiar   int `json:"familiar"`
	Mastered   int `json:"mastered"`
	Percentage int `json:"percentage"`
}

type collectionResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Emoji       string           `json:"emoji"`
	Color       string           `json:"color"`
	WordsCount  int              `json:"wordsCount"`
	Progress    progressResponse `json:"progress"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type exampleResponse struct {
	German      string  `json:"german"`
	Translation string  `json:"translation"`
	Level       *string `json:"level,omitempty"`
}

type wordResponse struct {
	ID             string            `json:"id"`
	CollectionID   string            `json:"collectionId"`
	GermanWord     string            `json:"germanWord"`
	Translation    string            `json:"translation"`
	Level          string            `json:"level"`
	CorrectCount   int               `json:"correctCount"`
	IncorrectCount int               `json:"incorrectCount"`
	AddedAt        time.Time         `json:"addedAt"`
	LastReviewed   *time.Time        `json:"lastReviewed"`
	NextReview     *time.Time        `json:"nextReview"`
	Examples       []exampleResponse `json:"examples"`
}

func toCollectionResponse(c *domain.Collection) collectionResponse {
	return collectionResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Emoji:       c.Emoji,
		Color:       c.Color,
		WordsCount:  c.WordsCount,
		Progress: progressResponse{
			Total:      c.Progress.Total,
			New:        c.Progress.New,
			Learning:   c.Progress.Learning,
			Familiar:   c.Progress.Familiar,
			Mastered:   c.Progress.Mastered,
			Percentage: c.Progress.Percentage,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCollectionResponses(cs []domain.Collection) []collectionResponse {
	out := make([]collectionResponse, 0, len(cs))
	for i := range cs {
		out = append(out, toCollectionResponse(&cs[i]))
	}
	return out
}

func toWordResponse(w *domain.Word) wordResponse {
	examples := make([]exampleResponse, 0, len(w.Examples))
	for _, ex := range w.Examples {
		examples = append(examples, exampleResponse{German: ex.German, Translation: ex.Translation, Level: ex.Level})
	}
	return wordResponse{
		ID:             w.ID.String(),
		CollectionID:   w.CollectionID.String(),
		GermanWord:     w.Term,
		Translation:    w.Translation,
		Level:          w.Level.String(),
		CorrectCount:   w.CorrectCount,
		IncorrectCount: w.IncorrectCount,
		AddedAt:        w.AddedAt,
		LastReviewed:   w.LastReviewed,
		NextReview:     w.NextReview,
		Examples:       examples,
	}
}

func toWordResponses(ws []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(ws))
	for i := range ws {
		out = append(out, toWordResponse(&ws[i]))
	}
	return out
}
