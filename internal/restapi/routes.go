package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/bus-stops.json", validateAPIKey(api, api.busStopsHandler))
	router.Handler(http.MethodGet, "/api/where/bus-stop/:id", validateAPIKey(api, api.busStopHandler))
	router.Handler(http.MethodGet, "/api/where/bus-lines.json", validateAPIKey(api, api.busLinesHandler))
	router.Handler(http.MethodGet, "/api/where/bus-routes.json", validateAPIKey(api, api.busRoutesHandler))
	router.Handler(http.MethodGet, "/api/where/train-line.json", validateAPIKey(api, api.trainLineHandler))
	router.Handler(http.MethodGet, "/api/where/train-quote.json", validateAPIKey(api, api.trainQuoteHandler))
}

// WithMiddleware wraps the router in the server's middleware chain, outermost first:
// request logging, CORS, security headers, compression and rate limiting.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = CORSMiddleware(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
