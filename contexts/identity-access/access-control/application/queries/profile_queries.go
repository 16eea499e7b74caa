package queries

import (
	"context"
	"log/slog"
	"sort"

	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/domain/entities"
)

// ProfileQueries serves the read side: a principal's own profile and the
// admin-only user directory.
type ProfileQueries struct {
	Guard  application.Guard
	Logger *slog.Logger
}

// GetOwnProfile returns the requester's profile. Banned principals are still
// allowed here so the client can show the banned state.
func (q ProfileQueries) GetOwnProfile(ctx context.Context, principalID string) (entities.Profile, error) {
	profile, decision, err := q.Guard.Check(ctx, principalID, entities.AccessRequest{
		Action: entities.ActionReadOwnProfile,
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if err := application.DenyError(decision); err != nil {
		return entities.Profile{}, err
	}
	return profile, nil
}

func (q ProfileQueries) ListUsers(ctx context.Context, principalID string) ([]entities.Profile, error) {
	_, decision, err := q.Guard.Check(ctx, principalID, entities.AccessRequest{
		Action: entities.ActionListUsers,
	})
	if err != nil {
		return nil, err
	}
	if err := application.DenyError(decision); err != nil {
		return nil, err
	}

	profiles, err := q.Guard.Profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles, nil
}
