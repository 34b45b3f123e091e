package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/errors"
	"github.com/windfall/pitch_service/pkg/response"
)

// Recovery returns a panic recovery middleware.
func Recovery(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error().
						Interface("panic", rec).
						Str("stack", string(debug.Stack())).
						Str("request_id", middleware.GetReqID(r.Context())).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")

					response.Error(w, http.StatusInternalServerError, errors.Internal("internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
