package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"formdesk/contexts/intake/submission-service/domain/entities"
	"formdesk/contexts/intake/submission-service/ports"

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

type submissionModel struct {
	ID        string    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"column:user_id;index"`
	FullName  string    `gorm:"column:full_name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Company   string    `gorm:"column:company"`
	JobTitle  string    `gorm:"column:job_title"`
	Message   string    `gorm:"column:message"`
	Category  string    `gorm:"column:category"`
	Priority  string    `gorm:"column:priority"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (submissionModel) TableName() string { return "form_submissions" }

func (r *Repository) CreateSubmission(ctx context.Context, submission entities.FormSubmission) error {
	row := submissionModel{
		ID:        submission.SubmissionID,
		UserID:    submission.UserID,
		FullName:  submission.FullName,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Company:   submission.Company,
		JobTitle:  submission.JobTitle,
		Message:   submission.Message,
		Category:  submission.Category,
		Priority:  string(submission.Priority),
		CreatedAt: submission.CreatedAt.UTC(),
		UpdatedAt: submission.UpdatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListSubmissions(ctx context.Context, filter ports.SubmissionFilter) ([]entities.FormSubmission, error) {
	tx := r.db.WithContext(ctx).Model(&submissionModel{})
	if strings.TrimSpace(filter.OwnerID) != "" {
		tx = tx.Where("user_id = ?", strings.TrimSpace(filter.OwnerID))
	}

	var rows []submissionModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.FormSubmission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (m submissionModel) toEntity() entities.FormSubmission {
	return entities.FormSubmission{
		SubmissionID: m.ID,
		UserID:       m.UserID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      m.Company,
		JobTitle:     m.JobTitle,
		Message:      m.Message,
		Category:     m.Category,
		Priority:     entities.Priority(m.Priority),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

