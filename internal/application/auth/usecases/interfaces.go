package usecases

import (
	"context"

	"github.com/shiken-app/shiken/internal/infrastructure/auth"
)

// OAuthClient is the external identity-provider surface used by the login
// flow.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error)
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, isAdmin bool) (string, error)
}
