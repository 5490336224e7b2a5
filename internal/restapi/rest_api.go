package restapi

import (
	"net/http"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/patrickmn/go-cache"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
	planCache   *cache.Cache
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter.
// Bus plans are cached per stop pair for Config.RouteCacheTTL; a zero TTL disables the cache.
func NewRestAPI(app *app.Application) *RestAPI {
	api := &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
	if ttl := app.Config.RouteCacheTTL; ttl > 0 {
		api.planCache = cache.New(ttl, 2*ttl)
	}
	return api
}
