package services

import "formdesk/contexts/identity-access/access-control/domain/entities"

// Evaluate maps (profile, request) to a Decision. Rules run in a fixed order
// and the first match wins:
//  1. Banned profiles are denied everything except reading their own profile.
//  2. Admin-only actions are denied to non-admin profiles.
//  3. An admin banning their own account is denied.
//  4. Submission listings are allowed but scoped: admins see all rows,
//     everyone else only their own.
//  5. Anything else is allowed unscoped.
//
// The ordering is load-bearing: a banned admin must fail rule 1 before the
// role check is consulted, and a self-ban must fail rule 3 even though rule 2
// passed.
func Evaluate(profile entities.Profile, req entities.AccessRequest) entities.Decision {
	if profile.IsBanned && req.Action != entities.ActionReadOwnProfile {
		return entities.Deny(entities.DenyReasonBanned)
	}
	if req.Action.RequiresAdmin() && !profile.IsAdmin() {
		return entities.Deny(entities.DenyReasonForbidden)
	}
	if req.Action == entities.ActionUpdateUser && req.BanRequested && req.TargetUserID == profile.ID {
		return entities.Deny(entities.DenyReasonCannotSelfBan)
	}
	if req.Action == entities.ActionListSubmissions {
		if profile.IsAdmin() {
			return entities.Allow(entities.ListScope{AllRows: true})
		}
		return entities.Allow(entities.ListScope{OwnerID: profile.ID})
	}
	return entities.Allow(entities.ListScope{})
}
