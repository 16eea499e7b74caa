package entities

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func IsValidPriority(priority Priority) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// FormSubmission is one submitted contact/request form. UserID is the owner
// and is stamped by the server at creation; it never changes afterwards.
type FormSubmission struct {
	SubmissionID string
	UserID       string
	FullName     string
	Email        string
	Phone        string
	Company      string
	JobTitle     string
	Message      string
	Category     string
	Priority     Priority
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s FormSubmission) ValidateCreate() bool {
	if strings.TrimSpace(s.FullName) == "" || strings.TrimSpace(s.Email) == "" {
		return false
	}
	return s.Priority == "" || IsValidPriority(s.Priority)
}
