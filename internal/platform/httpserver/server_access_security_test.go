package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProfileRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProfileReturnsEnvelopeWithNullError(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	authorize(t, req, "user-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(body.Error) != "null" {
		t.Fatalf("expected null error, got %s", body.Error)
	}
	if body.Data.ID != "user-1" {
		t.Fatalf("expected own profile, got %s", rr.Body.String())
	}
}

func TestProfileAccessibleWhenBanned(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	authorize(t, req, "banned-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for banned self-read, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProfileMissingForAuthenticatedPrincipalIsForbidden(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	authorize(t, req, "ghost-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing profile, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListUsersRequiresAdminRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	authorize(t, req, "user-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListUsersAllowedForAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	authorize(t, req, "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateUserRequiresAdminRole(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"email":"new@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authorize(t, req, "user-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateUserValidatesRequiredFields(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"email":"new@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authorize(t, req, "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateUserSelfBanReturns400(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"userId":"admin-1","is_banned":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authorize(t, req, "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self-ban, got %d body=%s", rr.Code, rr.Body.String())
	}

	// The profile must be untouched.
	check := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	authorize(t, check, "admin-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, check)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected admin profile readable after rejected self-ban, got %d", rr.Code)
	}
}

func TestUpdateUserBanTakesImmediateEffect(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"userId":"user-2","is_banned":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	authorize(t, req, "admin-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 banning user-2, got %d body=%s", rr.Code, rr.Body.String())
	}

	list := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	authorize(t, list, "user-2")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, list)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for newly banned user, got %d body=%s", rr.Code, rr.Body.String())
	}
}
