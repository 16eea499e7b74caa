package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/ports"
	"formdesk/internal/shared/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type profileModel struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Role      string    `gorm:"column:role"`
	IsBanned  bool      `gorm:"column:is_banned"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string { return "profiles" }

type credentialModel struct {
	UserID       string    `gorm:"primaryKey;column:user_id"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash []byte    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (credentialModel) TableName() string { return "credentials" }

type auditModel struct {
	ID          string     `gorm:"primaryKey;column:id"`
	EventType   string     `gorm:"column:event_type"`
	EntityType  string     `gorm:"column:entity_type"`
	EntityID    string     `gorm:"column:entity_id"`
	ActorID     string     `gorm:"column:actor_id"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;index"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (auditModel) TableName() string { return "access_audit_outbox" }

func (r *Repository) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	var row profileModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Profile{}, domainerrors.ErrProfileNotFound
		}
		return entities.Profile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListProfiles(ctx context.Context) ([]entities.Profile, error) {
	var rows []profileModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Profile, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, update ports.ProfileUpdate) (entities.Profile, error) {
	changes := map[string]any{"updated_at": update.UpdatedAt.UTC()}
	if update.Role != nil {
		changes["role"] = string(*update.Role)
	}
	if update.IsBanned != nil {
		changes["is_banned"] = *update.IsBanned
	}

	result := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("id = ?", strings.TrimSpace(update.UserID)).
		Updates(changes)
	if result.Error != nil {
		return entities.Profile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Profile{}, domainerrors.ErrUserNotFound
	}
	return r.GetProfile(ctx, update.UserID)
}

func (r *Repository) SetRole(ctx context.Context, userID string, role entities.Role, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("id = ?", strings.TrimSpace(userID)).
		Updates(map[string]any{
			"role":       string(role),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

// ProvisionUser creates the credential and the default-role profile in one
// transaction. The follow-up role update in user creation is a separate call
// on purpose: the two-step mirrors the external identity provider boundary.
func (r *Repository) ProvisionUser(ctx context.Context, email string, password string, now time.Time) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	userID := uuid.NewString()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		credential := credentialModel{
			UserID:       userID,
			Email:        normalized,
			PasswordHash: hash,
			CreatedAt:    now.UTC(),
		}
		if err := tx.Create(&credential).Error; err != nil {
			return err
		}
		profile := profileModel{
			ID:        userID,
			Email:     normalized,
			Role:      string(entities.RoleBasic),
			CreatedAt: now.UTC(),
			UpdatedAt: now.UTC(),
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return "", domainerrors.ErrEmailAlreadyRegistered
		}
		return "", err
	}
	return userID, nil
}

func (r *Repository) AppendAudit(ctx context.Context, message outbox.Message) error {
	row := auditModel{
		ID:         message.ID,
		EventType:  message.EventType,
		EntityType: message.EntityType,
		EntityID:   message.EntityID,
		ActorID:    message.ActorID,
		Payload:    message.Payload,
		Status:     message.Status,
		RetryCount: message.RetryCount,
		CreatedAt:  message.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingAudits(ctx context.Context, limit int) ([]outbox.Message, error) {
	var rows []auditModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, outbox.Message{
			ID:         row.ID,
			EventType:  row.EventType,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			ActorID:    row.ActorID,
			Payload:    row.Payload,
			Status:     row.Status,
			RetryCount: row.RetryCount,
			CreatedAt:  row.CreatedAt,
		})
	}
	return messages, nil
}

func (r *Repository) MarkAuditPublished(ctx context.Context, messageID string, publishedAt time.Time) error {
	at := publishedAt.UTC()
	return r.db.WithContext(ctx).
		Model(&auditModel{}).
		Where("id = ?", messageID).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": &at,
		}).
		Error
}

func (m profileModel) toEntity() entities.Profile {
	return entities.Profile{
		ID:        m.ID,
		Email:     m.Email,
		Role:      entities.Role(m.Role),
		IsBanned:  m.IsBanned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
