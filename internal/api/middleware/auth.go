package middleware

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
)

const (
	msgTokenMissing = "authorization token missing"
	msgTokenInvalid = "invalid token"
)

// SessionResolver строит сессию из заголовка Authorization
type SessionResolver interface {
	Resolve(authorization string) (domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Auth требует Bearer токен и кладёт сессию в контекст запроса
func Auth(resolver SessionResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := resolver.Resolve(r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, session.ErrInvalidToken) {
					handlers.RespondUnauthorized(w, msgTokenInvalid)
					return
				}
				handlers.RespondUnauthorized(w, msgTokenMissing)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}
