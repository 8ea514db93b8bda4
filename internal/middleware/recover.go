package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/httpx"
	"zoo-management/internal/platform/logger"
)

// Recover es el catch-all del borde: un panic se loguea con stack y el
// cliente recibe el 500 genérico en el envelope.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  fmt.Sprint(rec),
					"stack":  string(debug.Stack()),
				})
				httpx.WriteError(w, http.StatusInternalServerError, httpx.UnexpectedMessage, apperr.CodeUnknown)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
