package valueobjects

// SubscriptionStatus is the internal subscription state vocabulary.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusCancelled SubscriptionStatus = "CANCELLED"
	StatusExpired   SubscriptionStatus = "EXPIRED"
	StatusPastDue   SubscriptionStatus = "PAST_DUE"
	StatusPaused    SubscriptionStatus = "PAUSED"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
	StatusPastDue:   true,
	StatusPaused:    true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

// GrantsEntitlement reports whether the status alone grants the paid tier.
// Note that CANCELLED keeps entitlement until the provider reports expiry.
func (s SubscriptionStatus) GrantsEntitlement() bool {
	return s == StatusActive
}

// IsTerminal reports whether the subscription can never become current again.
func (s SubscriptionStatus) IsTerminal() bool {
	return s == StatusExpired
}

// MapProviderStatus translates the billing provider's status vocabulary into
// the internal enum. The boolean is false for unrecognized values; callers
// decide the fallback (create defaults to ACTIVE since checkout succeeded,
// update keeps the stored status unchanged rather than silently granting
// entitlement).
func MapProviderStatus(providerStatus string) (SubscriptionStatus, bool) {
	switch providerStatus {
	case "active", "on_trial":
		return StatusActive, true
	case "cancelled":
		return StatusCancelled, true
	case "expired":
		return StatusExpired, true
	case "past_due":
		return StatusPastDue, true
	case "paused":
		return StatusPaused, true
	default:
		return StatusActive, false
	}
}
