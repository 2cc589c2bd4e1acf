package models

// User is the database representation of an application user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	CPF          string `db:"cpf"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
