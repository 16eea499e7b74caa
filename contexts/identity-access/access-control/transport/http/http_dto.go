package http

type ProfileDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsBanned  bool   `json:"is_banned"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

type ListUsersResponse struct {
	Items []ProfileDTO `json:"items"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type CreateUserResponse struct {
	UserID string `json:"user_id"`
}

type UpdateUserRequest struct {
	UserID   string  `json:"userId"`
	Role     *string `json:"role,omitempty"`
	IsBanned *bool   `json:"is_banned,omitempty"`
}
