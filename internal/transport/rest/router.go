package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
)

// RouterDeps holds the handlers and middleware mounted by NewRouter.
type RouterDeps struct {
	Health      *HealthHandler
	Collections *CollectionHandler
	Study       *StudyHandler
	Data        *DataHandler

	// Global runs on every request in order, outermost first.
	Global []middleware.Middleware
	// API runs on /api/v1 only, after Global.
	API []middleware.Middleware
}

// NewRouter builds the HTTP routing tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range d.Global {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		for _, mw := range d.API {
			r.Use(mw)
		}
		r.Use(middleware.RequireUser)

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", d.Collections.List)
			r.Post("/", d.Collections.Create)

			r.Get("/words", d.Collections.ListWords)
			r.Post("/words", d.Collections.AddWord)
			r.Delete("/words", d.Collections.RemoveWord)
			r.Patch("/words/level", d.Collections.UpdateLevel)

			r.Get("/study", d.Study.Session)
			r.Post("/study/answer", d.Study.Answer)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Collections.Get)
				r.Patch("/", d.Collections.Update)
				r.Delete("/", d.Collections.Delete)
				r.Post("/recompute", d.Collections.Recompute)
			})
		})

		r.Get("/data/export", d.Data.Export)
		r.Post("/data/import", d.Data.Import)
	})

	return r
}
