package domain

// User represents an authenticated owner of freight records. CPF is kept
// alongside email because the privileged password reset verifies both before
// touching the credential.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider,omitempty"` // "local" or "google"
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// GoogleUserInfo mirrors the fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
