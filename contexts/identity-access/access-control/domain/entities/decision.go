package entities

type Action string

const (
	ActionReadOwnProfile   Action = "read_own_profile"
	ActionCreateSubmission Action = "create_submission"
	ActionListSubmissions  Action = "list_submissions"
	ActionListUsers        Action = "list_users"
	ActionCreateUser       Action = "create_user"
	ActionUpdateUser       Action = "update_user"
)

// RequiresAdmin reports whether the action is reserved for admin profiles.
func (a Action) RequiresAdmin() bool {
	switch a {
	case ActionListUsers, ActionCreateUser, ActionUpdateUser:
		return true
	default:
		return false
	}
}

// AccessRequest describes one attempted action for evaluation.
// TargetUserID and BanRequested are only set for user updates.
type AccessRequest struct {
	Action       Action
	TargetUserID string
	BanRequested bool
}

type DenyReason string

const (
	DenyReasonBanned        DenyReason = "banned"
	DenyReasonForbidden     DenyReason = "forbidden"
	DenyReasonCannotSelfBan DenyReason = "cannot_self_ban"
)

// ListScope narrows which rows an allowed listing may touch.
// AllRows wins over OwnerID; an empty scope means no narrowing applies.
type ListScope struct {
	AllRows bool
	OwnerID string
}

// Decision is the evaluator output: either an allow carrying a row scope or
// a deny carrying the reason.
type Decision struct {
	Allowed bool
	Scope   ListScope
	Reason  DenyReason
}

func Allow(scope ListScope) Decision {
	return Decision{Allowed: true, Scope: scope}
}

func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}
