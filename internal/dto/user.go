package dto

// RegisterRequest defines the data needed to create a user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"required,cpf"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest is the privileged password-reset payload. The reset
// only proceeds when email and CPF match the same profile.
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// MessageResponse is a plain success message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
