package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/client/transport"
	"github.com/murilodk/campushub/internal/logging"
)

// SessionManager orchestrates the dual-identity session: the primary
// backend passport and the optional secondary campus token. It owns the
// Credentials lifecycle and the transport's default Authorization header.
type SessionManager struct {
	backend       *api.Backend
	campus        *CampusService
	store         *storage.Store
	http          *transport.Client
	notifications *NotificationService
	monitor       *ExpiryMonitor
	log           logging.Logger

	mu    sync.Mutex
	state models.SessionState
}

func NewSessionManager(
	backend *api.Backend,
	campus *CampusService,
	store *storage.Store,
	http *transport.Client,
	notifications *NotificationService,
	monitor *ExpiryMonitor,
	log logging.Logger,
) *SessionManager {
	return &SessionManager{
		backend:       backend,
		campus:        campus,
		store:         store,
		http:          http,
		notifications: notifications,
		monitor:       monitor,
		log:           log,
	}
}

// State returns the current session state.
func (s *SessionManager) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionManager) setState(st models.SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Login authenticates against the primary backend and, when the response
// carries a passport, chains the secondary campus authentication off the
// same credentials. A failed campus login is never fatal: the session is
// valid with the passport alone.
//
// Ordering matters: credentials are persisted before the transport header
// is reconfigured, and both complete before the notification registration
// starts, because the latter reads the passport back from storage.
func (s *SessionManager) Login(ctx context.Context, username, password string) error {
	s.setState(models.StateAuthenticating)

	resp, err := s.backend.Login(ctx, username, password)
	if err != nil {
		s.setState(models.StateUnauthenticated)
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	// The profile is persisted unconditionally; it survives logout so the
	// login screen can be prefilled.
	if err := s.store.SaveProfile(ctx, resp.User); err != nil {
		s.log.Warn(ctx, "failed to persist profile", "error", err)
	}

	if resp.Passport == "" {
		s.setState(models.StateUnauthenticated)
		return ErrAuthFailed
	}

	creds := models.Credentials{Username: username, Passport: resp.Passport}

	cuToken, err := s.campus.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		creds.CuAuth = cuToken
	case errors.Is(err, ErrCampusUnlinked):
		s.log.Info(ctx, "no campus session for user", "user", username)
	default:
		s.log.Warn(ctx, "campus authentication failed", "error", err)
	}

	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		s.setState(models.StateUnauthenticated)
		return fmt.Errorf("%w: persisting credentials: %v", ErrAuthFailed, err)
	}
	s.http.SetAuthorization(creds.Passport)

	if exp, ok := passportExpiry(creds.Passport); ok {
		s.log.Debug(ctx, "session opened", "user", username, "expires", exp)
	}

	settings, err := s.store.Settings(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load settings", "error", err)
	}
	if settings.AllowNotifications {
		// Fire-and-forget: registration neither delays nor fails the login.
		go func() {
			if err := s.notifications.Register(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn(context.Background(), "channel registration failed", "error", err)
			}
		}()
	}

	s.setState(models.StateAuthenticated)
	return nil
}

// Logout tears the session down best-effort: channel deregistration and
// cache clearing may fail without blocking it. The retained user profile
// survives; everything else goes.
func (s *SessionManager) Logout(ctx context.Context) error {
	// The channel delete must run before credentials are cleared: it reads
	// the stored passport.
	s.notifications.Delete(ctx)

	if err := s.store.RemoveAllButUserData(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear local store", "error", err)
	}
	s.http.ClearAuthorization()
	s.setState(models.StateUnauthenticated)
	return nil
}

// ForceLogout is the expiry path: the session transitions through
// ExpiredPendingLogout before the regular teardown runs.
func (s *SessionManager) ForceLogout(ctx context.Context) error {
	s.setState(models.StateExpiredPendingLogout)
	return s.Logout(ctx)
}

// RefreshUserData fetches the current profile. A session-invalid marker in
// the response is delegated to the expiry monitor instead of returning data.
func (s *SessionManager) RefreshUserData(ctx context.Context) (*models.UserProfile, error) {
	resp, err := s.backend.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.monitor.Check(ctx, resp.Envelope); err != nil {
		return nil, err
	}
	if err := s.store.SaveProfile(ctx, resp.UserProfile); err != nil {
		s.log.Warn(ctx, "failed to persist profile", "error", err)
	}
	profile := resp.UserProfile
	return &profile, nil
}

// passportExpiry decodes the passport without verifying it (the client has
// no key) to expose its expiry for diagnostics.
func passportExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
