package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarGateway/pkg/requestid"
)

// RequestID берёт X-Request-ID из запроса или генерирует новый
// ID попадает в контекст и уходит в запросы к бэкенду слотов
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithValue(r.Context(), id)))
	})
}
