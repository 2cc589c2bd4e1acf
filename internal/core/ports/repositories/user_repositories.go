package repositories

import (
	"context"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByEmailAndCPF retrieves the user matching both identity fields.
	// Used by the privileged password reset; a miss on either field is a miss.
	FindUserByEmailAndCPF(ctx context.Context, email string, cpf string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePasswordHash replaces a user's credential. Called at most once
	// per reset request.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
