package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

type dataService interface {
	ExportData(ctx context.Context) ([]byte, error)
	ImportData(ctx context.Context, data []byte) (*collection.ImportResult, error)
}

// DataHandler serves snapshot export and import.
type DataHandler struct {
	base
	svc dataService
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(svc dataService, v *Validator, logger *slog.Logger, maxBody int64) *DataHandler {
	return &DataHandler{
		base: base{validator: v, log: logger.With("handler", "data"), maxBody: maxBody},
		svc:  svc,
	}
}

// Export handles GET /api/v1/data/export.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportData(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	filename := fmt.Sprintf("wortschatz-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import handles POST /api/v1/data/import. The body is a snapshot as produced
// by Export and replaces all of the caller's data.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r, h.maxBody)
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.ImportData(r.Context(), data)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"collections": res.Collections,
		"words":       res.Words,
		"skipped":     res.Skipped,
	})
}
