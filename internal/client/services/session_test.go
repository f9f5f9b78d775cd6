package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murilodk/campushub/internal/client/models"
)

func loginBackend(t *testing.T, passport string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		if passport == "" {
			w.Write([]byte(`{"user":{"id":7,"name":"Alice","username":"alice"}}`))
			return
		}
		w.Write([]byte(`{"user":{"id":7,"name":"Alice","username":"alice"},"passport":"` + passport + `"}`))
	})
	mux.HandleFunc("DELETE /user/channels", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func campusDown(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func campusAccepting(t *testing.T, token string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"` + token + `"}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_PrimaryOnly_SetsPassportAndHeader(t *testing.T) {
	backend := loginBackend(t, "tok1")
	campus := campusDown(t)
	e := newEnv(t, backend.URL, campus.URL)
	ctx := context.Background()

	require.NoError(t, e.session.Login(ctx, "alice", "pw"))

	creds, err := e.store.Credentials(ctx)
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "tok1", creds.Passport)
	assert.False(t, creds.HasCampusToken(), "secondary failure must not attach a token")

	assert.Equal(t, "Bearer tok1", e.http.Authorization())
	assert.Equal(t, models.StateAuthenticated, e.session.State())
}

func TestLogin_SecondarySuccess_AttachesCampusToken(t *testing.T) {
	backend := loginBackend(t, "tok1")
	campus := campusAccepting(t, "cu-tok")
	e := newEnv(t, backend.URL, campus.URL)
	ctx := context.Background()

	require.NoError(t, e.session.Login(ctx, "alice", "pw"))

	creds, err := e.store.Credentials(ctx)
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "cu-tok", creds.CuAuth)
}

func TestLogin_SecondaryRejected_StillSucceeds(t *testing.T) {
	backend := loginBackend(t, "tok1")
	campus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	t.Cleanup(campus.Close)
	e := newEnv(t, backend.URL, campus.URL)

	require.NoError(t, e.session.Login(context.Background(), "alice", "pw"))

	creds, err := e.store.Credentials(context.Background())
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.False(t, creds.HasCampusToken())
}

func TestLogin_NoPassport_FailsWithoutSessionSideEffects(t *testing.T) {
	backend := loginBackend(t, "")
	campus := campusDown(t)
	e := newEnv(t, backend.URL, campus.URL)
	ctx := context.Background()

	err := e.session.Login(ctx, "alice", "pw")
	require.ErrorIs(t, err, ErrAuthFailed)

	creds, err := e.store.Credentials(ctx)
	require.NoError(t, err)
	assert.Nil(t, creds)
	assert.Empty(t, e.http.Authorization())
	assert.Equal(t, models.StateUnauthenticated, e.session.State())

	// The profile is persisted even when no session opened.
	profile, err := e.store.Profile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice", profile.Name)
}

func TestLogin_NetworkError_ReturnsAuthFailed(t *testing.T) {
	backend := loginBackend(t, "tok1")
	campus := campusDown(t)
	e := newEnv(t, backend.URL, campus.URL)
	backend.Close() // force connection failures

	err := e.session.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, models.StateUnauthenticated, e.session.State())
}

func TestLogin_NotificationsEnabled_TriggersRegistration(t *testing.T) {
	var registerCalls atomic.Int32
	var registerAuth atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":7,"name":"Alice"},"passport":"tok1"}`))
	})
	mux.HandleFunc("POST /user/channels", func(w http.ResponseWriter, r *http.Request) {
		registerCalls.Add(1)
		registerAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":99}`))
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	campus := campusDown(t)

	e := newEnv(t, backend.URL, campus.URL)
	e.setSettings(t, models.Settings{AllowNotifications: true})

	require.NoError(t, e.session.Login(context.Background(), "alice", "pw"))

	require.Eventually(t, func() bool {
		return registerCalls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond, "registration must fire after login")

	// Registration starts only after the header reconfiguration, so the
	// channel POST carries the fresh passport.
	assert.Equal(t, "Bearer tok1", registerAuth.Load())
}

func TestLogout_ClearsEverythingButProfile(t *testing.T) {
	var deleteAuth atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":7,"name":"Alice"},"passport":"tok1"}`))
	})
	mux.HandleFunc("DELETE /user/channels", func(w http.ResponseWriter, r *http.Request) {
		deleteAuth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	campus := campusDown(t)

	e := newEnv(t, backend.URL, campus.URL)
	ctx := context.Background()
	require.NoError(t, e.session.Login(ctx, "alice", "pw"))
	require.NoError(t, e.store.SetDeviceToken(ctx, "fcm-1"))

	require.NoError(t, e.session.Logout(ctx))

	// channel delete used the stored bearer, before it was cleared
	assert.Equal(t, "Bearer tok1", deleteAuth.Load())

	creds, err := e.store.Credentials(ctx)
	require.NoError(t, err)
	assert.Nil(t, creds)

	profile, err := e.store.Profile(ctx)
	require.NoError(t, err)
	assert.NotNil(t, profile, "profile must survive logout")

	assert.Empty(t, e.http.Authorization())
	assert.Equal(t, models.StateUnauthenticated, e.session.State())
}

func TestLogout_DeregistrationFailureDoesNotBlock(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":7},"passport":"tok1"}`))
	})
	mux.HandleFunc("DELETE /user/channels", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	campus := campusDown(t)

	e := newEnv(t, backend.URL, campus.URL)
	ctx := context.Background()
	require.NoError(t, e.session.Login(ctx, "alice", "pw"))

	require.NoError(t, e.session.Logout(ctx))
	assert.Equal(t, models.StateUnauthenticated, e.session.State())
}

func TestRefreshUserData_Success_PersistsProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Alice Renamed","username":"alice"}`))
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	campus := campusDown(t)

	e := newEnv(t, backend.URL, campus.URL)

	profile, err := e.session.RefreshUserData(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice Renamed", profile.Name)

	stored, err := e.store.Profile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Alice Renamed", stored.Name)
}

func TestRefreshUserData_SessionExpired_ForcesLogoutOnce(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true}`))
	})
	mux.HandleFunc("DELETE /user/channels", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)
	campus := campusDown(t)

	e := newEnv(t, backend.URL, campus.URL)
	e.http.SetAuthorization("stale")

	profile, err := e.session.RefreshUserData(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, profile)

	assert.Equal(t, 1, e.notifier.alertCount())
	assert.Equal(t, 1, e.notifier.navigationCount())
	assert.Empty(t, e.http.Authorization())
	assert.Equal(t, models.StateUnauthenticated, e.session.State())
}

func TestPassportExpiry_ParsesUnverifiedClaim(t *testing.T) {
	// header {"alg":"HS256","typ":"JWT"} + claims {"exp": 4102444800}
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjQxMDI0NDQ4MDB9." +
		"sig-not-checked"

	exp, ok := passportExpiry(token)
	require.True(t, ok)
	assert.Equal(t, int64(4102444800), exp.Unix())

	_, ok = passportExpiry("opaque-token")
	assert.False(t, ok)
}
