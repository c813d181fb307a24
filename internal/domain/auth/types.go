// Package auth contains domain-level types for console sessions.
// It is pure and free of transport/adapter concerns.
package auth

// Role represents the console role of the authenticated admin.
// Keep string form for easy persistence.
type Role string

const (
	RoleSuperAdmin Role = "super-admin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
)

// Identity is the last-known authenticated principal.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// SessionState is the two-state lifecycle of the console session.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

// Session is an immutable snapshot of the current credential and identity.
// Identity may be nil while Credential is set (stale or unfetched principal),
// but never the other way around.
type Session struct {
	Credential string
	Identity   *Identity
}

// State reports whether the snapshot is authenticated.
func (s Session) State() SessionState {
	if s.Credential == "" {
		return StateAnonymous
	}
	return StateAuthenticated
}

// IsAnonymous returns true if no credential is held.
func (s Session) IsAnonymous() bool { return s.Credential == "" }
