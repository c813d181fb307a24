package service

import (
	"context"
	"fmt"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
	"github.com/learnhub/admin-console/internal/domain/model"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
	"github.com/learnhub/admin-console/internal/ports"
)

const (
	adminBasePath = "/admin"
	loginFailed   = "Login failed"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Requester  core.Requester         // Required
	Sessions   ports.SessionStore     // Required
	Identities ports.IdentityResolver // Optional: reads identity from the token when login omits it
}

// AuthService handles login/logout against the admin collection and
// exposes admin account management.
type AuthService struct {
	admins     resource[model.Admin, *model.CreateAdminRequest, *model.UpdateAdminRequest]
	sessions   ports.SessionStore
	identities ports.IdentityResolver
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("sessions is required")
	}
	return &AuthService{
		admins: newResource[model.Admin, *model.CreateAdminRequest, *model.UpdateAdminRequest](
			opts.Requester, adminBasePath, "admin", "admins"),
		sessions:   opts.Sessions,
		identities: opts.Identities,
	}
}

// LoginResult contains the session established by Login.
type LoginResult struct {
	Session domainauth.Session
}

// Login exchanges credentials for a bearer token and stores the new session.
// The call itself is sent without any existing credential.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	r := apiclient.Post("/login", req, loginFailed)
	r.Anonymous = true

	resp, err := call[model.LoginResponse](ctx, s.admins.requester, adminBasePath, r)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, svcerrors.New(svcerrors.KindUnknown, loginFailed+": response carried no token")
	}

	identity := s.identityFor(resp)
	if err := s.sessions.SetSession(ctx, resp.Token, identity); err != nil {
		return nil, svcerrors.Wrap(fmt.Errorf("set session: %w", err), svcerrors.KindUnknown, loginFailed)
	}

	sess := domainauth.Session{Credential: resp.Token, Identity: identity}
	return &LoginResult{Session: sess}, nil
}

func (s *AuthService) identityFor(resp model.LoginResponse) *domainauth.Identity {
	if resp.Admin != nil {
		return resp.Admin.Identity()
	}
	if s.identities == nil {
		return nil
	}
	identity, err := s.identities.IdentityFromToken(resp.Token)
	if err != nil {
		// Opaque tokens are valid; the identity is fetched later via Me.
		return nil
	}
	return identity
}

// Logout drops the local session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Me fetches the signed-in admin and refreshes the stored identity.
func (s *AuthService) Me(ctx context.Context) (*model.Admin, error) {
	admin, err := call[*model.Admin](ctx, s.admins.requester, adminBasePath,
		apiclient.Get("/me", "Failed to retrieve profile"))
	if err != nil || admin == nil {
		return admin, err
	}

	credential, ok := s.sessions.Credential()
	if !ok {
		return admin, nil
	}
	if err := s.sessions.SetSession(ctx, credential, admin.Identity()); err != nil {
		return nil, svcerrors.Wrap(fmt.Errorf("set session: %w", err), svcerrors.KindUnknown, "Failed to retrieve profile")
	}
	return admin, nil
}

// ListAdmins returns every admin account.
func (s *AuthService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return s.admins.list(ctx)
}

// GetAdmin returns an admin by id.
func (s *AuthService) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	return s.admins.get(ctx, id)
}

// GetAdminByEmail returns the admin registered under email.
func (s *AuthService) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return call[*model.Admin](ctx, s.admins.requester, adminBasePath,
		apiclient.Get("/email"+idPath(email), "Failed to retrieve admin"))
}

// CreateAdmin creates an admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error) {
	return s.admins.create(ctx, req)
}

// UpdateAdmin changes an admin account.
func (s *AuthService) UpdateAdmin(ctx context.Context, id string, req *model.UpdateAdminRequest) (*model.Admin, error) {
	return s.admins.update(ctx, id, req)
}

// DeleteAdmin deletes an admin account.
func (s *AuthService) DeleteAdmin(ctx context.Context, id string) error {
	return s.admins.remove(ctx, id)
}
