package services

import (
	"context"

	"github.com/murilodk/campushub/internal/client/ui"
	"github.com/murilodk/campushub/internal/logging"
)

// sessionEnder is the slice of SessionManager the monitor needs.
type sessionEnder interface {
	ForceLogout(ctx context.Context) error
}

// ExpiryMonitor inspects every authenticated response for the backend's
// session-invalid marker. On detection it forces a logout and surfaces the
// user-facing interruption exactly once per triggering call, then reports
// ErrSessionExpired so the caller aborts without returning data.
type ExpiryMonitor struct {
	session  sessionEnder
	notifier ui.Notifier
	log      logging.Logger
}

func NewExpiryMonitor(notifier ui.Notifier, log logging.Logger) *ExpiryMonitor {
	return &ExpiryMonitor{notifier: notifier, log: log}
}

// Attach wires the monitor to the session manager. Done after construction
// because the two reference each other.
func (m *ExpiryMonitor) Attach(session sessionEnder) {
	m.session = session
}

// errored is satisfied by api.Envelope and the response types embedding it.
type errored interface {
	Errored() bool
}

// Check returns nil when the response carries no error marker. Otherwise it
// runs the forced-logout flow and returns ErrSessionExpired.
func (m *ExpiryMonitor) Check(ctx context.Context, resp errored) error {
	if resp == nil || !resp.Errored() {
		return nil
	}

	m.log.Warn(ctx, "session-invalid marker in response, forcing logout")

	if m.session != nil {
		if err := m.session.ForceLogout(ctx); err == nil {
			m.notifier.Alert(ctx, sessionExpiredMessage)
			m.notifier.NavigateToLogin(ctx)
		}
	}
	return ErrSessionExpired
}
