package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/wortschatz-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// allow headers for configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{requestIDHeader, "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
