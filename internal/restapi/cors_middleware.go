package restapi

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware allows read-only cross-origin access from any origin and answers preflight requests.
func CORSMiddleware(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}).Handler(next)
}
