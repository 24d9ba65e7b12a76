package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shiken-app/shiken/internal/shared/config"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

const (
	apiBaseURL     = "https://api.lemonsqueezy.com/v1"
	requestTimeout = 30 * time.Second
)

// LemonSqueezyClient calls the Lemon Squeezy REST API. Checkout sessions are
// hosted by the provider; the backend only creates them and reacts to
// webhooks.
type LemonSqueezyClient struct {
	cfg        config.BillingConfig
	httpClient *http.Client
	logger     logger.Interface
}

func NewLemonSqueezyClient(cfg config.BillingConfig, logger logger.Interface) *LemonSqueezyClient {
	return &LemonSqueezyClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type checkoutResponse struct {
	Data struct {
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateCheckout creates a hosted checkout session carrying the user ID as
// custom data, so the subscription webhook can be attributed back to the
// account.
func (c *LemonSqueezyClient) CreateCheckout(ctx context.Context, userID uint, email string) (string, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "checkouts",
			"attributes": map[string]interface{}{
				"checkout_data": map[string]interface{}{
					"email": email,
					"custom": map[string]interface{}{
						"user_id": fmt.Sprintf("%d", userID),
					},
				},
				"product_options": map[string]interface{}{
					"redirect_url": c.cfg.SuccessURL,
				},
			},
			"relationships": map[string]interface{}{
				"store": map[string]interface{}{
					"data": map[string]interface{}{
						"type": "stores",
						"id":   c.cfg.StoreID,
					},
				},
				"variant": map[string]interface{}{
					"data": map[string]interface{}{
						"type": "variants",
						"id":   c.cfg.VariantID,
					},
				},
			},
		},
	}

	body, err := c.do(ctx, http.MethodPost, "/checkouts", payload)
	if err != nil {
		return "", err
	}

	var resp checkoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal checkout response: %w", err)
	}
	if resp.Data.Attributes.URL == "" {
		return "", fmt.Errorf("checkout response missing URL")
	}

	c.logger.Infow("checkout session created", "user_id", userID)
	return resp.Data.Attributes.URL, nil
}

// CancelSubscription asks the provider to cancel at period end. The
// authoritative state change still arrives later via webhook.
func (c *LemonSqueezyClient) CancelSubscription(ctx context.Context, externalID string) error {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "subscriptions",
			"id":   externalID,
			"attributes": map[string]interface{}{
				"cancelled": true,
			},
		},
	}

	if _, err := c.do(ctx, http.MethodPatch, "/subscriptions/"+externalID, payload); err != nil {
		return err
	}

	c.logger.Infow("subscription cancellation requested", "external_id", externalID)
	return nil
}

func (c *LemonSqueezyClient) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("Content-Type", "application/vnd.api+json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("billing API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read billing API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("billing API returned error", "method", method, "path", path, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("billing API error: status %d", resp.StatusCode)
	}

	return body, nil
}
