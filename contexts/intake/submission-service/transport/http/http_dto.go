package http

type CreateSubmissionRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"`
	// UserID is accepted on the wire for backwards compatibility but never
	// honored; the server stamps the owner from the authenticated principal.
	UserID string `json:"user_id,omitempty"`
}

type SubmissionDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Message   string `json:"message,omitempty"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateSubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type ListSubmissionsResponse struct {
	Items []SubmissionDTO `json:"items"`
}
