package usecases

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GoogleLoginResult struct {
	AuthURL string
	// State is echoed back on the callback and must match; the handler puts
	// it in a short-lived cookie.
	State string
}

// GoogleLoginUseCase starts the external sign-in flow.
type GoogleLoginUseCase struct {
	oauthClient OAuthClient
	logger      logger.Interface
}

func NewGoogleLoginUseCase(oauthClient OAuthClient, logger logger.Interface) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		oauthClient: oauthClient,
		logger:      logger,
	}
}

func (uc *GoogleLoginUseCase) Execute() (*GoogleLoginResult, error) {
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &GoogleLoginResult{
		AuthURL: uc.oauthClient.GetAuthURL(state),
		State:   state,
	}, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
