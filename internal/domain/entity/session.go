package entity

// Session identidad del usuario que invoca una operación.
// Se construye en el borde HTTP y se pasa explícitamente a los casos de uso que la necesitan.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// HasRole reporta si la sesión tiene alguno de los roles indicados.
func (s Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
