// Package services contains the session and identity orchestration layer of
// the client: login/logout, session-expiry handling, campus-system bridging,
// push-channel registration, and the offline cache gate.
package services

import "errors"

// Sentinel errors of the session layer. Callers match them with errors.Is;
// they distinguish real failures from recoverable absences.
var (
	// ErrAuthFailed covers invalid credentials and network failures during
	// primary login. It never carries transport details past the boundary.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrSessionExpired is returned by any authenticated operation whose
	// response carried the application-level error marker. The forced
	// logout and the user-facing interruption have already happened when
	// a caller sees it.
	ErrSessionExpired = errors.New("session expired")

	// ErrCampusUnlinked means no secondary campus session exists. It is a
	// capability-unavailable state, not a failure: primary-session flows
	// must proceed normally.
	ErrCampusUnlinked = errors.New("campus session not linked")

	// ErrChannelRegistration is the terminal outcome of the notification
	// channel protocol after its single fallback attempt failed.
	ErrChannelRegistration = errors.New("notification channel registration failed")
)

// User-facing messages. The app ships in Brazilian Portuguese.
const (
	sessionExpiredMessage     = "Sessão expirada ou inválida, faça login novamente!"
	notificationFailedMessage = "Não foi possível ativar as notificações para este dispositivo, tente novamente mais tarde!"
)

// supportTeamLabel is the author name shown for comments written by the
// support team rather than the service owner.
const supportTeamLabel = "Equipe PRACTICE"
