package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/service/study"
)

type studyService interface {
	BuildSession(ctx context.Context, input study.BuildSessionInput) (*study.Session, error)
	Review(ctx context.Context, input study.ReviewInput) (*study.ReviewResult, error)
}

// StudyHandler serves the study endpoints.
type StudyHandler struct {
	base
	svc studyService
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, v *Validator, logger *slog.Logger, maxBody int64) *StudyHandler {
	return &StudyHandler{
		base: base{validator: v, log: logger.With("handler", "study"), maxBody: maxBody},
		svc:  svc,
	}
}

// Session handles GET /api/v1/collections/study?collectionId=ID&size=N&shuffle=bool.
// A collection with nothing left to study yields an empty card list.
func (h *StudyHandler) Session(w http.ResponseWriter, r *http.Request) {
	collectionID, ok := queryID(w, r, "collectionId", true)
	if !ok {
		return
	}

	input := study.BuildSessionInput{CollectionID: collectionID}
	q := r.URL.Query()
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			writeFieldError(w, "size", "must be an integer")
			return
		}
		input.Size = size
	}
	if v := q.Get("shuffle"); v != "" {
		shuffle, err := strconv.ParseBool(v)
		if err != nil {
			writeFieldError(w, "shuffle", "must be a boolean")
			return
		}
		input.Shuffle = shuffle
	}

	session, err := h.svc.BuildSession(r.Context(), input)
	if errors.Is(err, study.ErrNothingToStudy) {
		writeJSON(w, http.StatusOK, map[string]any{"cards": []wordResponse{}, "total": 0})
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cards := session.Cards()
	out := make([]wordResponse, 0, len(cards))
	for i := range cards {
		out = append(out, toWordResponse(&cards[i].Word))
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": out, "total": len(out)})
}

// Answer handles POST /api/v1/collections/study/answer.
func (h *StudyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	input := study.ReviewInput{WordID: uuid.MustParse(req.WordID), Correct: *req.Correct}
	if req.CollectionID != "" {
		input.CollectionID = uuid.MustParse(req.CollectionID)
	}

	res, err := h.svc.Review(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"previousLevel": res.Previous.String(),
		"level":         res.Level.String(),
		"word":          toWordResponse(res.Word),
	})
}
