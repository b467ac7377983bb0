package middlewares

import (
	"errors"
	"net/http"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit allows App.MaxRequests per second per IP across the API.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("global request limit reached")))
		}),
	)
}

// ComputeRateLimiter builds the stricter limiter placed in front of the compute endpoint.
func (m *Middlewares) ComputeRateLimiter() *RateLimiter {
	return NewRateLimiter(
		m.Log,
		m.InternalConfig.App.ComputeRequestsPerSecond,
		time.Second,
		time.Duration(m.InternalConfig.App.ComputeBlockTimeInSeconds)*time.Second,
	)
}
