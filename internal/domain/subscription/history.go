package subscription

import (
	"errors"
	"time"

	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
)

const (
	EventCreated       = "CREATED"
	EventRenewed       = "RENEWED"
	EventCancelled     = "CANCELLED"
	EventExpired       = "EXPIRED"
	EventPaymentFailed = "PAYMENT_FAILED"
)

var ValidEvents = map[string]bool{
	EventCreated:       true,
	EventRenewed:       true,
	EventCancelled:     true,
	EventExpired:       true,
	EventPaymentFailed: true,
}

var ErrInvalidEvent = errors.New("invalid history event")

// History is one append-only audit entry for a subscription lifecycle event.
// Entries are written once and never mutated or deleted; duplicate webhook
// delivery may append an extra row, which the audit log tolerates.
type History struct {
	id             uint
	subscriptionID uint
	event          string
	previousStatus vo.SubscriptionStatus
	newStatus      vo.SubscriptionStatus
	metadata       map[string]interface{}
	createdAt      time.Time
}

// NewHistory creates an audit entry for a status transition.
func NewHistory(subscriptionID uint, event string, previous, next vo.SubscriptionStatus) (*History, error) {
	if subscriptionID == 0 {
		return nil, ErrZeroID
	}
	if !ValidEvents[event] {
		return nil, ErrInvalidEvent
	}
	return &History{
		subscriptionID: subscriptionID,
		event:          event,
		previousStatus: previous,
		newStatus:      next,
		metadata:       make(map[string]interface{}),
		createdAt:      time.Now(),
	}, nil
}

// ReconstructHistory rebuilds an audit entry from persistence.
func ReconstructHistory(
	id, subscriptionID uint,
	event string,
	previous, next vo.SubscriptionStatus,
	metadata map[string]interface{},
	createdAt time.Time,
) (*History, error) {
	if id == 0 || subscriptionID == 0 {
		return nil, ErrZeroID
	}
	if !ValidEvents[event] {
		return nil, ErrInvalidEvent
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &History{
		id:             id,
		subscriptionID: subscriptionID,
		event:          event,
		previousStatus: previous,
		newStatus:      next,
		metadata:       metadata,
		createdAt:      createdAt,
	}, nil
}

func (h *History) ID() uint                              { return h.id }
func (h *History) SubscriptionID() uint                  { return h.subscriptionID }
func (h *History) Event() string                         { return h.event }
func (h *History) PreviousStatus() vo.SubscriptionStatus { return h.previousStatus }
func (h *History) NewStatus() vo.SubscriptionStatus      { return h.newStatus }
func (h *History) CreatedAt() time.Time                  { return h.createdAt }

func (h *History) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(h.metadata))
	for k, v := range h.metadata {
		out[k] = v
	}
	return out
}

// AddMetadata attaches provider payload context to the entry.
func (h *History) AddMetadata(key string, value interface{}) {
	h.metadata[key] = value
}

// SetID sets the entry ID (persistence layer use only).
func (h *History) SetID(id uint) error {
	if h.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	h.id = id
	return nil
}
