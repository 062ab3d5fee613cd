package models

// Role is the role claim carried by the login token.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStylist Role = "STYLIST"
)

// Keys under which the session is kept in client-local storage.
const (
	StorageKeyToken    = "token"
	StorageKeyUserRole = "userRole"
)

// Session is the client-side view of authentication. Token validity is never
// checked locally; only its presence matters.
type Session struct {
	Token string `json:"-"`
	Role  Role   `json:"role,omitempty"`
}

// IsAuthenticated reports whether a token is present.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// EffectiveRole is the role to act on: empty when no token is present.
func (s Session) EffectiveRole() Role {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.Role
}
