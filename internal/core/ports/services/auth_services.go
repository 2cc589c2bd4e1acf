package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade wraps the Google OAuth code-exchange login flow.
type GoogleOAuthSvcFacade interface {
	// GetLoginURL returns the Google consent URL for the given CSRF state.
	GetLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's profile with the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token against our client ID.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
