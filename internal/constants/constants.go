package constants

// Session and context keys
const (
	SessionCookieName = "folio_session"
	ContextKeyUserID  = "user_id"
)

// Validation limits
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50

	MinProficiencyLevel = 1
	MaxProficiencyLevel = 5
)

// Pagination defaults
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Public portfolio pages show at most this many recent posts.
const RecentPostsLimit = 5
