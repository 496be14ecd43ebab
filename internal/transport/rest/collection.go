package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

type collectionService interface {
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	CreateCollection(ctx context.Context, input collection.CreateCollectionInput) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, input collection.UpdateCollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
	RecomputeProgress(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)

	ListWords(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)
	AddWord(ctx context.Context, input collection.AddWordInput) (*domain.Word, error)
	RemoveWord(ctx context.Context, input collection.RemoveWordInput) (bool, error)
	UpdateWordLevel(ctx context.Context, input collection.UpdateWordLevelInput) (*collection.LevelChange, error)
}

// CollectionHandler serves the collection and word endpoints.
type CollectionHandler struct {
	base
	svc collectionService
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, v *Validator, logger *slog.Logger, maxBody int64) *CollectionHandler {
	return &CollectionHandler{
		base: base{validator: v, log: logger.With("handler", "collection"), maxBody: maxBody},
		svc:  svc,
	}
}

// List handles GET /api/v1/collections.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCollections(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collections": toCollectionResponses(cs)})
}

// Create handles POST /api/v1/collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCollection(r.Context(), collection.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		Emoji:       req.Emoji,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"collection": toCollectionResponse(c)})
}

// Get handles GET /api/v1/collections/{id}.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collection": toCollectionResponse(c)})
}

// Update handles PATCH /api/v1/collections/{id}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateCollectionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCollection(r.Context(), collection.UpdateCollectionInput{
		CollectionID: id,
		Name:         req.Name,
		Description:  req.Description,
		Emoji:        req.Emoji,
		Color:        req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collection": toCollectionResponse(c)})
}

// Delete handles DELETE /api/v1/collections/{id}. Deleting a missing
// collection succeeds.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Recompute handles POST /api/v1/collections/{id}/recompute.
func (h *CollectionHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.RecomputeProgress(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collection": toCollectionResponse(c)})
}

// ListWords handles GET /api/v1/collections/words?collectionId=ID.
func (h *CollectionHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "collectionId", true)
	if !ok {
		return
	}
	words, err := h.svc.ListWords(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": toWordResponses(words)})
}

// AddWord handles POST /api/v1/collections/words.
func (h *CollectionHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	examples := make([]collection.ExampleInput, 0, len(req.Examples))
	for _, ex := range req.Examples {
		examples = append(examples, collection.ExampleInput{German: ex.German, Translation: ex.Translation, Level: ex.Level})
	}

	word, err := h.svc.AddWord(r.Context(), collection.AddWordInput{
		CollectionID: uuid.MustParse(req.CollectionID),
		Term:         req.GermanWord,
		Translation:  req.Translation,
		Examples:     examples,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "word": toWordResponse(word)})
}

// RemoveWord handles DELETE /api/v1/collections/words?id=ID. The optional
// collectionId restricts the word to one collection.
func (h *CollectionHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	wordID, ok := queryID(w, r, "id", true)
	if !ok {
		return
	}
	collectionID, ok := queryID(w, r, "collectionId", false)
	if !ok {
		return
	}

	removed, err := h.svc.RemoveWord(r.Context(), collection.RemoveWordInput{CollectionID: collectionID, WordID: wordID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "word not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateLevel handles PATCH /api/v1/collections/words/level.
func (h *CollectionHandler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	var req updateLevelRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	input := collection.UpdateWordLevelInput{
		WordID:     uuid.MustParse(req.WordID),
		Level:      domain.Level(req.Level),
		WasCorrect: req.WasCorrect,
	}
	if req.CollectionID != "" {
		input.CollectionID = uuid.MustParse(req.CollectionID)
	}

	change, err := h.svc.UpdateWordLevel(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"previousLevel": change.Previous.String(),
		"word":          toWordResponse(change.Word),
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses a UUID query parameter. A missing optional parameter yields
// uuid.Nil.
func queryID(w http.ResponseWriter, r *http.Request, name string, required bool) (uuid.UUID, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		if required {
			writeFieldError(w, name, "required")
			return uuid.Nil, false
		}
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeFieldError(w, name, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
