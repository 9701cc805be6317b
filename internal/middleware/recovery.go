package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the response for a request whose handler
// panicked.
type PanicHandler func(w http.ResponseWriter, r *http.Request, v any)

// Recovery converts handler panics into logged errors and delegates
// the response to handle.
func Recovery(logger *slog.Logger, handle PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.Error("panic while serving request",
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				handle(w, r, v)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
