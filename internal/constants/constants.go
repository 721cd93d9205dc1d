package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "projects_session"

	// ContextKeyUserID is the key under which the authenticated user id is
	// stored in both the session and the gin context.
	ContextKeyUserID = "user_id"

	// SessionMaxAgeSeconds is the session lifetime (7 days).
	SessionMaxAgeSeconds = 86400 * 7
)
