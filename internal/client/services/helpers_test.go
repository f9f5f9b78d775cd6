package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/device"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/client/transport"
	"github.com/murilodk/campushub/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- fakes ----

type fakeNotifier struct {
	mu          sync.Mutex
	alerts      []string
	navigations int
}

func (f *fakeNotifier) Alert(ctx context.Context, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, message)
}

func (f *fakeNotifier) NavigateToLogin(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navigations++
}

func (f *fakeNotifier) alertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

func (f *fakeNotifier) navigationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.navigations
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) PushToken(ctx context.Context) (string, error) {
	return f.token, f.err
}

// ---- environment ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE localstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return storage.NewStore(db)
}

// env wires a full service stack against httptest endpoints.
type env struct {
	store         *storage.Store
	http          *transport.Client
	backend       *api.Backend
	notifier      *fakeNotifier
	device        *device.Device
	monitor       *ExpiryMonitor
	session       *SessionManager
	notifications *NotificationService
	cache         *CacheGate
	mural         *MuralService
	campus        *CampusService
}

func newEnv(t *testing.T, backendURL, campusURL string) *env {
	t.Helper()

	store := setupStore(t)
	// Notifications stay off unless a test opts in; the login goroutine
	// would otherwise race with test teardown.
	require.NoError(t, store.SaveSettings(context.Background(), models.Settings{
		AllowNotifications: false,
		OfflineStorage:     true,
	}))

	httpClient := transport.New(2 * time.Second)
	backend := api.NewBackend(httpClient, backendURL+"/")
	campusAPI := api.NewCampus(httpClient, campusURL+"/")

	log := testLogger()
	notifier := &fakeNotifier{}
	dev := device.New(&fakeTokens{token: "fcm-token-1"})
	dev.SignalReady()

	monitor := NewExpiryMonitor(notifier, log)
	campusSvc := NewCampusService(campusAPI, store, log)
	notifications := NewNotificationService(backend, store, dev, notifier, log)
	session := NewSessionManager(backend, campusSvc, store, httpClient, notifications, monitor, log)
	monitor.Attach(session)
	cache := NewCacheGate(store, log)
	mural := NewMuralService(backend, store, monitor, cache, log)

	return &env{
		store:         store,
		http:          httpClient,
		backend:       backend,
		notifier:      notifier,
		device:        dev,
		monitor:       monitor,
		session:       session,
		notifications: notifications,
		cache:         cache,
		mural:         mural,
		campus:        campusSvc,
	}
}

func (e *env) setSettings(t *testing.T, s models.Settings) {
	t.Helper()
	require.NoError(t, e.store.SaveSettings(context.Background(), s))
}
