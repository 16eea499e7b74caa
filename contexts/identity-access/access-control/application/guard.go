package application

import (
	"context"
	"log/slog"
	"strings"

	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/domain/services"
	"formdesk/contexts/identity-access/access-control/ports"
)

// Guard is the profile gateway: it performs the single profile read backing
// one authorization decision and runs the evaluator on the result. Every use
// case goes through it before touching protected state.
type Guard struct {
	Profiles ports.ProfileRepository
	Logger   *slog.Logger
}

// Check loads the requester's profile and evaluates the request against it.
// A missing profile for an authenticated principal is an authorization
// failure (ErrProfileNotFound), not a store error; store errors pass through
// untouched so callers can surface them as 500s.
func (g Guard) Check(
	ctx context.Context,
	principalID string,
	req entities.AccessRequest,
) (entities.Profile, entities.Decision, error) {
	if strings.TrimSpace(principalID) == "" {
		return entities.Profile{}, entities.Decision{}, domainerrors.ErrUnauthenticated
	}

	profile, err := g.Profiles.GetProfile(ctx, strings.TrimSpace(principalID))
	if err != nil {
		return entities.Profile{}, entities.Decision{}, err
	}

	decision := services.Evaluate(profile, req)
	if !decision.Allowed {
		ResolveLogger(g.Logger).Info("access denied",
			"event", "access_denied",
			"module", "identity-access/access-control",
			"layer", "application",
			"user_id", profile.ID,
			"action", string(req.Action),
			"reason", string(decision.Reason),
		)
	}
	return profile, decision, nil
}

// DenyError maps a deny decision to its sentinel error; nil for allows.
func DenyError(decision entities.Decision) error {
	if decision.Allowed {
		return nil
	}
	switch decision.Reason {
	case entities.DenyReasonBanned:
		return domainerrors.ErrBanned
	case entities.DenyReasonCannotSelfBan:
		return domainerrors.ErrCannotSelfBan
	default:
		return domainerrors.ErrForbidden
	}
}
