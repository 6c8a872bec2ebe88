package domain

// Role роль пользователя из сессии
type Role string

const (
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
	RoleUnknown   Role = ""
)

// ParseRole приводит строку к роли, неизвестные значения дают RoleUnknown
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleProfessor:
		return RoleProfessor
	case RoleStudent:
		return RoleStudent
	default:
		return RoleUnknown
	}
}

// Session данные сессии вызывающего: токен для бэкенда и роль
// Передаётся в use case явно, use case её не меняет
type Session struct {
	Token string
	Role  Role
	// RawRole исходное значение роли, только для логов
	RawRole string
}

// IsAuthenticated returns true if the session carries a token
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}
