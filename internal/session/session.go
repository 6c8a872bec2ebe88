package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

var (
	// ErrMissingToken возвращается, когда в запросе нет Bearer токена
	ErrMissingToken = errors.New("session: authorization token missing")

	// ErrInvalidToken возвращается, когда подпись или срок действия токена не прошли проверку
	ErrInvalidToken = errors.New("session: invalid token")
)

const bearerPrefix = "Bearer "

// Resolver строит сессию из заголовка Authorization
// Роль берётся из claim токена, выданного бэкендом при логине
type Resolver struct {
	secret    []byte
	roleClaim string
}

// NewResolver создает резолвер. Пустой secret - claims читаются без проверки подписи
func NewResolver(secret, roleClaim string) *Resolver {
	if roleClaim == "" {
		roleClaim = "role"
	}
	return &Resolver{
		secret:    []byte(secret),
		roleClaim: roleClaim,
	}
}

// Resolve разбирает заголовок Authorization
// Токен, который не является JWT, даёт сессию с нераспознанной ролью, а не ошибку
func (r *Resolver) Resolve(authorization string) (domain.Session, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return domain.Session{}, ErrMissingToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if token == "" {
		return domain.Session{}, ErrMissingToken
	}

	claims, err := r.claims(token)
	if err != nil {
		return domain.Session{}, err
	}

	rawRole, _ := claims[r.roleClaim].(string)

	return domain.Session{
		Token:   token,
		Role:    domain.ParseRole(rawRole),
		RawRole: rawRole,
	}, nil
}

func (r *Resolver) claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	if len(r.secret) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return jwt.MapClaims{}, nil
		}
		return claims, nil
	}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

type ctxKey struct{}

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достаёт сессию из контекста
func FromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(domain.Session)
	return s, ok
}
