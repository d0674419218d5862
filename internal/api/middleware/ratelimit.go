package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/theo/arena-forge/internal/kv"
)

// RateLimit caps requests per caller with fixed one-minute windows counted
// in the store. The counter key includes the window bucket, so stale
// buckets just expire. Store failures let the request through; throttling
// is not worth an outage.
func RateLimit(store kv.Store, action string, limit int64) func(http.Handler) http.Handler {
	const window = time.Minute

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID, ok := GetPlayerID(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			bucket := time.Now().UnixMilli() / window.Milliseconds()
			key := fmt.Sprintf("ratelimit:%s:%s:%d", action, playerID, bucket)

			count, err := store.Incr(r.Context(), key, 2*window)
			if err == nil && count > limit {
				w.Header().Set("Retry-After", "60")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
