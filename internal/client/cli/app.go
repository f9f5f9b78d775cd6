package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/rs/zerolog"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/config"
	"github.com/murilodk/campushub/internal/client/device"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/services"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/client/transport"
	"github.com/murilodk/campushub/internal/client/ui"
	"github.com/murilodk/campushub/internal/logging"

	_ "modernc.org/sqlite"
)

// installTokens synthesizes a push token from the per-install identifier.
// Console builds carry no platform messaging SDK, so the channel protocol
// is exercised with a stable install-scoped token instead.
type installTokens struct {
	id string
}

func (t installTokens) PushToken(ctx context.Context) (string, error) {
	return "cli-" + t.id, nil
}

type App struct {
	config   *config.Config
	db       *sql.DB
	store    *storage.Store
	session  *services.SessionManager
	mural    *services.MuralService
	campus   *services.CampusService
	news     *services.NewsService
	log      logging.Logger
	userName string
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(db)

	settings, err := store.Settings(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log := logging.NewZerologLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	)

	httpClient := transport.New(cfg.HTTPTimeout)
	backend := api.NewBackend(httpClient, cfg.APIBaseURL(settings.DevMode, settings.TestAPI))
	campusAPI := api.NewCampus(httpClient, cfg.CuAPIURL)

	installID, err := device.EnsureInstallID(ctx, store)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	dev := device.New(installTokens{id: installID})
	dev.SignalReady()

	notifier := ui.NewConsoleNotifier(os.Stdout)
	monitor := services.NewExpiryMonitor(notifier, log)
	campusSvc := services.NewCampusService(campusAPI, store, log)
	notifications := services.NewNotificationService(backend, store, dev, notifier, log)
	session := services.NewSessionManager(backend, campusSvc, store, httpClient, notifications, monitor, log)
	monitor.Attach(session)
	cache := services.NewCacheGate(store, log)
	mural := services.NewMuralService(backend, store, monitor, cache, log)
	news := services.NewNewsService(httpClient, cfg.FeedURL, log)

	return &App{
		config:  cfg,
		db:      db,
		store:   store,
		session: session,
		mural:   mural,
		campus:  campusSvc,
		news:    news,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == models.StateAuthenticated
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
