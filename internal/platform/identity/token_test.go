package identity

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := NewTokenAuthenticator([]byte("test-secret"))

	token, err := auth.IssueToken("user-1", time.Minute)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	userID, err := auth.Authenticate(req)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestAuthenticateMissingHeader(t *testing.T) {
	auth := NewTokenAuthenticator([]byte("test-secret"))
	req := httptest.NewRequest("GET", "/api/auth/profile", nil)

	if _, err := auth.Authenticate(req); err == nil {
		t.Fatalf("expected error for missing header")
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	issuer := NewTokenAuthenticator([]byte("secret-a"))
	verifier := NewTokenAuthenticator([]byte("secret-b"))

	token, err := issuer.IssueToken("user-1", time.Minute)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	if _, err := verifier.Authenticate(req); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	auth := NewTokenAuthenticator([]byte("test-secret"))

	token, err := auth.IssueToken("user-1", -time.Minute)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	if _, err := auth.Authenticate(req); err == nil {
		t.Fatalf("expected error for expired token")
	}
}
