package billing

import (
	"encoding/json"
	"fmt"
	"time"
)

// Webhook event names sent by Lemon Squeezy.
const (
	EventSubscriptionCreated       = "subscription_created"
	EventSubscriptionUpdated       = "subscription_updated"
	EventSubscriptionCancelled     = "subscription_cancelled"
	EventSubscriptionExpired       = "subscription_expired"
	EventSubscriptionPaymentFailed = "subscription_payment_failed"
)

// WebhookEvent is the parsed shape of a subscription webhook delivery.
type WebhookEvent struct {
	EventName         string
	UserID            string
	SubscriptionID    string
	Status            string
	RenewsAt          *time.Time
	EndsAt            *time.Time
	CustomerPortalURL string
}

type webhookPayload struct {
	Meta struct {
		EventName  string `json:"event_name"`
		CustomData struct {
			UserID string `json:"user_id"`
		} `json:"custom_data"`
	} `json:"meta"`
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Status   string     `json:"status"`
			RenewsAt *time.Time `json:"renews_at"`
			EndsAt   *time.Time `json:"ends_at"`
			URLs     struct {
				CustomerPortal string `json:"customer_portal"`
			} `json:"urls"`
		} `json:"attributes"`
	} `json:"data"`
}

// ParseWebhook decodes a raw webhook body into a WebhookEvent.
func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook payload: %w", err)
	}
	if payload.Meta.EventName == "" {
		return nil, fmt.Errorf("webhook payload missing event name")
	}
	if payload.Data.ID == "" {
		return nil, fmt.Errorf("webhook payload missing subscription ID")
	}

	return &WebhookEvent{
		EventName:         payload.Meta.EventName,
		UserID:            payload.Meta.CustomData.UserID,
		SubscriptionID:    payload.Data.ID,
		Status:            payload.Data.Attributes.Status,
		RenewsAt:          payload.Data.Attributes.RenewsAt,
		EndsAt:            payload.Data.Attributes.EndsAt,
		CustomerPortalURL: payload.Data.Attributes.URLs.CustomerPortal,
	}, nil
}
