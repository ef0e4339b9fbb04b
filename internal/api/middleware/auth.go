package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ndmitko/SLN-SchedulingService/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя.
// Заголовок проставляет API gateway после проверки токена.
const UserIDHeader = "X-User-ID"

type ctxKeyUserID struct{}

const msgUnauthorized = "требуется аутентификация"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст запроса
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(UserIDHeader)
			if userIDStr == "" {
				log.Warn("Auth: missing %s header for %s %s", UserIDHeader, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				log.Warn("Auth: invalid %s header %q for %s %s", UserIDHeader, userIDStr, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext извлекает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKeyUserID{}).(int64)
	return userID, ok
}
