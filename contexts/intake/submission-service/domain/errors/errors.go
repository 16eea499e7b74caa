package errors

import "errors"

var (
	ErrInvalidSubmissionInput = errors.New("full_name and email are required")
	ErrInvalidPriority        = errors.New("invalid priority")
	ErrSubmissionNotFound     = errors.New("submission not found")
)
