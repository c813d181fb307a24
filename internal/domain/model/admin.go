package model

import (
	"time"

	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
)

// Admin is a console operator account.
type Admin struct {
	ID        string          `json:"_id"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email"`
	Role      domainauth.Role `json:"role,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitzero"`
}

// Identity converts the admin record into a session identity.
func (a Admin) Identity() *domainauth.Identity {
	return &domainauth.Identity{
		ID:          a.ID,
		DisplayName: a.FullName,
		Email:       a.Email,
		Role:        a.Role,
	}
}

// LoginRequest is the anonymous login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success value of a login call. Admin may be absent
// when the backend only returns a token.
type LoginResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin,omitempty"`
}

// CreateAdminRequest is the body for creating an admin.
type CreateAdminRequest struct {
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     domainauth.Role `json:"role,omitempty"`
}

// UpdateAdminRequest carries the fields to change.
type UpdateAdminRequest struct {
	FullName *string          `json:"fullName,omitempty"`
	Email    *string          `json:"email,omitempty"`
	Password *string          `json:"password,omitempty"`
	Role     *domainauth.Role `json:"role,omitempty"`
}
