package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
)

// UserSvcFacade manages user accounts and credentials.
type UserSvcFacade interface {
	// RegisterUser creates a local-password account.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a user profile.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ResetPassword verifies that email and CPF identify the same profile
	// and then replaces the credential, exactly once. Verification failure
	// is reported generically, without revealing which field missed.
	ResetPassword(ctx context.Context, email string, cpf string, newPassword string) error

	// GetOrCreateGoogleUser finds the account for a verified Google identity
	// or provisions one.
	GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}
