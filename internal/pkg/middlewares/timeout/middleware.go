package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса. Вешается на короткие роуты,
// SSE стрим живет до отключения клиента и оборачивать его нельзя.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				DeadlineExceededTotal.Inc()
			}
		})
	}
}
