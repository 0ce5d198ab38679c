package http

import (
	"net"
	"net/http"

	"rental-agent/apperrors"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			w.Header().Set("Retry-After", "60")
			writeError(w, r, apperrors.ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
