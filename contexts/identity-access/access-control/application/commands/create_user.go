package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/ports"
	"formdesk/internal/shared/outbox"
)

type CreateUserCommand struct {
	ActorID  string
	Email    string
	Password string
	Role     entities.Role
}

// CreateUserUseCase provisions a credential for a new user and, when a
// non-default role was requested, follows up with a role update. The two
// steps are not atomic: if the role update fails the account exists with the
// default role and the failure is surfaced to the caller. The orphaned user
// id is logged so an operator can retry the role update.
type CreateUserUseCase struct {
	Guard       application.Guard
	Credentials ports.CredentialProvisioner
	Profiles    ports.ProfileRepository
	Audit       ports.AuditOutbox
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (string, error) {
	logger := application.ResolveLogger(uc.Logger)

	_, decision, err := uc.Guard.Check(ctx, cmd.ActorID, entities.AccessRequest{
		Action: entities.ActionCreateUser,
	})
	if err != nil {
		return "", err
	}
	if err := application.DenyError(decision); err != nil {
		return "", err
	}

	input := entities.CreateUserInput{
		Email:    strings.TrimSpace(cmd.Email),
		Password: cmd.Password,
		Role:     cmd.Role,
	}
	if !input.Validate() {
		if input.Role != "" && !entities.IsValidRole(input.Role) {
			return "", domainerrors.ErrInvalidRole
		}
		return "", domainerrors.ErrInvalidUserInput
	}

	now := uc.Clock.Now().UTC()
	userID, err := uc.Credentials.ProvisionUser(ctx, input.Email, input.Password, now)
	if err != nil {
		return "", err
	}

	if input.Role != "" && input.Role != entities.RoleBasic {
		if err := uc.Profiles.SetRole(ctx, userID, input.Role, now); err != nil {
			logger.Error("role update after provisioning failed, account left at default role",
				"event", "user_create_role_step_failed",
				"module", "identity-access/access-control",
				"layer", "application",
				"user_id", userID,
				"requested_role", string(input.Role),
			)
			return "", fmt.Errorf("set role for provisioned user %s: %w", userID, err)
		}
	}

	uc.appendAudit(ctx, "user_created", cmd.ActorID, userID, map[string]any{
		"email": input.Email,
		"role":  string(roleOrDefault(input.Role)),
	})

	logger.Info("user created",
		"event", "user_created",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", cmd.ActorID,
		"user_id", userID,
	)
	return userID, nil
}

func roleOrDefault(role entities.Role) entities.Role {
	if role == "" {
		return entities.RoleBasic
	}
	return role
}

// Audit rows are best-effort from the use case's point of view: a failed
// append must not roll back the admin action itself.
func (uc CreateUserUseCase) appendAudit(
	ctx context.Context,
	eventType string,
	actorID string,
	targetID string,
	payload map[string]any,
) {
	appendAudit(ctx, uc.Audit, uc.Clock, uc.IDGen, uc.Logger, eventType, actorID, targetID, payload)
}

func appendAudit(
	ctx context.Context,
	audit ports.AuditOutbox,
	clock ports.Clock,
	idGen ports.IDGenerator,
	logger *slog.Logger,
	eventType string,
	actorID string,
	targetID string,
	payload map[string]any,
) {
	if audit == nil {
		return
	}
	log := application.ResolveLogger(logger)
	messageID, err := idGen.NewID(ctx)
	if err != nil {
		log.Warn("audit id generation failed",
			"event", "audit_append_failed",
			"module", "identity-access/access-control",
			"layer", "application",
			"event_type", eventType,
		)
		return
	}
	raw, _ := json.Marshal(payload)
	message := outbox.Message{
		ID:         messageID,
		EventType:  eventType,
		EntityType: "profile",
		EntityID:   targetID,
		ActorID:    actorID,
		Payload:    raw,
		Status:     outbox.StatusPending,
		CreatedAt:  clock.Now().UTC(),
	}
	if err := audit.AppendAudit(ctx, message); err != nil {
		log.Warn("audit append failed",
			"event", "audit_append_failed",
			"module", "identity-access/access-control",
			"layer", "application",
			"event_type", eventType,
			"entity_id", targetID,
		)
	}
}
