package httpserver

import (
	"net/http"
	"testing"
	"time"

	accesscontrol "formdesk/contexts/identity-access/access-control"
	accessentities "formdesk/contexts/identity-access/access-control/domain/entities"
	submissionservice "formdesk/contexts/intake/submission-service"
	"formdesk/internal/platform/identity"
)

const testSecret = "httpserver-test-secret"

func testProfiles() []accessentities.Profile {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []accessentities.Profile{
		{ID: "admin-1", Email: "admin@example.com", Role: accessentities.RoleAdmin, CreatedAt: base, UpdatedAt: base},
		{ID: "user-1", Email: "user1@example.com", Role: accessentities.RoleBasic, CreatedAt: base, UpdatedAt: base},
		{ID: "user-2", Email: "user2@example.com", Role: accessentities.RoleBasic, CreatedAt: base, UpdatedAt: base},
		{ID: "banned-1", Email: "banned@example.com", Role: accessentities.RoleBasic, IsBanned: true, CreatedAt: base, UpdatedAt: base},
	}
}

func newTestServer() *Server {
	access := accesscontrol.NewInMemoryModule(testProfiles(), nil)
	intake := submissionservice.NewInMemoryModule(access.SubmissionAccess, nil, nil)
	auth := identity.NewTokenAuthenticator([]byte(testSecret))
	return New(access, intake, auth, nil, ":0")
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	auth := identity.NewTokenAuthenticator([]byte(testSecret))
	token, err := auth.IssueToken(userID, time.Minute)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	return "Bearer " + token
}

func authorize(t *testing.T, req *http.Request, userID string) {
	t.Helper()
	req.Header.Set("Authorization", bearer(t, userID))
}
