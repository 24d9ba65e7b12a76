package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shiken-app/shiken/internal/shared/config"
)

// httpClientTimeout bounds requests to the provider's userinfo endpoint.
const httpClientTimeout = 30 * time.Second

// OAuthUserInfo is the provider-neutral identity profile handed to the
// application layer.
type OAuthUserInfo struct {
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
	Provider      string
	ProviderID    string
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type GoogleOAuthClient struct {
	config *oauth2.Config
}

func NewGoogleOAuthClient(cfg config.GoogleOAuthConfig) *GoogleOAuthClient {
	return &GoogleOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// GetAuthURL builds the provider consent-screen URL for the given CSRF state.
func (c *GoogleOAuthClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the authorization code for an access token.
func (c *GoogleOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}

// GetUserInfo fetches the signed-in user's profile from the provider.
func (c *GoogleOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: httpClientTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	var gInfo googleUserInfo
	if err := json.Unmarshal(body, &gInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %w", err)
	}

	return &OAuthUserInfo{
		Email:         gInfo.Email,
		Name:          gInfo.Name,
		Picture:       gInfo.Picture,
		EmailVerified: gInfo.VerifiedEmail,
		Provider:      "google",
		ProviderID:    gInfo.ID,
	}, nil
}
