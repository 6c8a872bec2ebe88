package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header заголовок, в котором передаётся ID запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// New генерирует новый ID запроса
func New() string {
	return uuid.NewString()
}

// WithValue кладёт ID запроса в контекст
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext возвращает ID запроса или пустую строку
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
