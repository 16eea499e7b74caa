package submissionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	accesscontrol "formdesk/contexts/identity-access/access-control"
	accessentities "formdesk/contexts/identity-access/access-control/domain/entities"
	accesserrors "formdesk/contexts/identity-access/access-control/domain/errors"
	domainerrors "formdesk/contexts/intake/submission-service/domain/errors"
	httptransport "formdesk/contexts/intake/submission-service/transport/http"
)

func newModules(t *testing.T) (accesscontrol.Module, Module) {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	access := accesscontrol.NewInMemoryModule([]accessentities.Profile{
		{ID: "admin-1", Email: "admin@example.com", Role: accessentities.RoleAdmin, CreatedAt: base, UpdatedAt: base},
		{ID: "user-1", Email: "user1@example.com", Role: accessentities.RoleBasic, CreatedAt: base, UpdatedAt: base},
		{ID: "user-2", Email: "user2@example.com", Role: accessentities.RoleBasic, CreatedAt: base, UpdatedAt: base},
		{ID: "banned-1", Email: "banned@example.com", Role: accessentities.RoleBasic, IsBanned: true, CreatedAt: base, UpdatedAt: base},
	}, nil)
	intake := NewInMemoryModule(access.SubmissionAccess, nil, nil)
	return access, intake
}

func TestCreateSubmissionStampsOwner(t *testing.T) {
	_, intake := newModules(t)

	resp, err := intake.Handler.CreateSubmissionHandler(context.Background(), "user-1", httptransport.CreateSubmissionRequest{
		FullName: "A",
		Email:    "a@x.com",
		// A spoofed owner must be ignored.
		UserID: "admin-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Submission.UserID != "user-1" {
		t.Fatalf("expected owner stamped to requester, got %s", resp.Submission.UserID)
	}
}

func TestCreateSubmissionValidation(t *testing.T) {
	_, intake := newModules(t)

	_, err := intake.Handler.CreateSubmissionHandler(context.Background(), "user-1", httptransport.CreateSubmissionRequest{
		FullName: "A",
	})
	if !errors.Is(err, domainerrors.ErrInvalidSubmissionInput) {
		t.Fatalf("expected invalid input for missing email, got %v", err)
	}

	_, err = intake.Handler.CreateSubmissionHandler(context.Background(), "user-1", httptransport.CreateSubmissionRequest{
		FullName: "A",
		Email:    "a@x.com",
		Priority: "urgent",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPriority) {
		t.Fatalf("expected invalid priority, got %v", err)
	}
}

func TestCreateSubmissionDeniedForBanned(t *testing.T) {
	_, intake := newModules(t)

	_, err := intake.Handler.CreateSubmissionHandler(context.Background(), "banned-1", httptransport.CreateSubmissionRequest{
		FullName: "A",
		Email:    "a@x.com",
	})
	if !errors.Is(err, accesserrors.ErrBanned) {
		t.Fatalf("expected banned denial, got %v", err)
	}
}

func TestListSubmissionsScopedByOwner(t *testing.T) {
	_, intake := newModules(t)

	for _, owner := range []string{"user-1", "user-1", "user-2"} {
		if _, err := intake.Handler.CreateSubmissionHandler(context.Background(), owner, httptransport.CreateSubmissionRequest{
			FullName: "A",
			Email:    "a@x.com",
		}); err != nil {
			t.Fatalf("create for %s failed: %v", owner, err)
		}
	}

	own, err := intake.Handler.ListSubmissionsHandler(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(own.Items) != 1 {
		t.Fatalf("expected user-2 to see 1 row, got %d", len(own.Items))
	}
	for _, item := range own.Items {
		if item.UserID != "user-2" {
			t.Fatalf("expected only own rows, saw %s", item.UserID)
		}
	}

	all, err := intake.Handler.ListSubmissionsHandler(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected admin to see 3 rows, got %d", len(all.Items))
	}
}

func TestListSubmissionsDeniedForBanned(t *testing.T) {
	_, intake := newModules(t)

	if _, err := intake.Handler.ListSubmissionsHandler(context.Background(), "banned-1"); !errors.Is(err, accesserrors.ErrBanned) {
		t.Fatalf("expected banned denial, got %v", err)
	}
}

func TestListSubmissionsDeniedWithoutProfile(t *testing.T) {
	_, intake := newModules(t)

	if _, err := intake.Handler.ListSubmissionsHandler(context.Background(), "ghost-1"); !errors.Is(err, accesserrors.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
}
