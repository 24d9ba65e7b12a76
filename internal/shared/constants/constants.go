// Package constants defines shared table names and gin context keys.
package constants

const (
	TableProblems              = "problems"
	TableMockExams             = "mock_exams"
	TableUsers                 = "users"
	TableSubscriptions         = "subscriptions"
	TableSubscriptionHistories = "subscription_histories"
)

const (
	ContextKeyUserID  = "user_id"
	ContextKeyIsAdmin = "is_admin"
)

// AdminPageSize is the fixed page size for admin problem listings.
const AdminPageSize = 50
