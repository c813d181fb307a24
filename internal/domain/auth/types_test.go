package auth

import "testing"

func TestSession_State(t *testing.T) {
	if got := (Session{}).State(); got != StateAnonymous {
		t.Fatalf("empty session state = %q, want %q", got, StateAnonymous)
	}
	if !(Session{}).IsAnonymous() {
		t.Fatalf("expected empty session to be anonymous")
	}

	s := Session{Credential: "T", Identity: &Identity{ID: "adm-1", Role: RoleAdmin}}
	if got := s.State(); got != StateAuthenticated {
		t.Fatalf("state = %q, want %q", got, StateAuthenticated)
	}
	if s.IsAnonymous() {
		t.Fatalf("did not expect anonymous")
	}
}

func TestSession_CredentialWithoutIdentityIsAuthenticated(t *testing.T) {
	s := Session{Credential: "opaque"}
	if s.State() != StateAuthenticated {
		t.Fatalf("expected a credential alone to authenticate the session")
	}
}
