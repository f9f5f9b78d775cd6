package models

// SessionState is the lifecycle state of the primary session.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateAuthenticating
	StateAuthenticated
	StateExpiredPendingLogout
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateExpiredPendingLogout:
		return "expired-pending-logout"
	default:
		return "unknown"
	}
}
