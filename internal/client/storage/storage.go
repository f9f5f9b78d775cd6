// Package storage is the typed persistence layer of the client. Values are
// JSON-encoded into a sqlite-backed key/value repository so that the rest of
// the code never touches raw bytes or SQL.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/murilodk/campushub/internal/client/migrations"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/repositories/localstore"
	"github.com/murilodk/campushub/internal/dbx"
)

// Store provides typed access to the persisted client state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) the local sqlite database at dsn and applies the
// embedded migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) repo() localstore.Repository {
	return localstore.NewSQLiteRepository(s.db)
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.repo().Set(ctx, key, data)
}

// getJSON decodes the value under key into out. It reports false without an
// error when the key is absent.
func (s *Store) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.repo().Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) SaveProfile(ctx context.Context, p models.UserProfile) error {
	return s.setJSON(ctx, keyUserData, p)
}

func (s *Store) Profile(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	ok, err := s.getJSON(ctx, keyUserData, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SaveCredentials(ctx context.Context, c models.Credentials) error {
	return s.setJSON(ctx, keyUserCredentials, c)
}

func (s *Store) Credentials(ctx context.Context) (*models.Credentials, error) {
	var c models.Credentials
	ok, err := s.getJSON(ctx, keyUserCredentials, &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ClearCredentials(ctx context.Context) error {
	return s.repo().Delete(ctx, keyUserCredentials)
}

func (s *Store) SaveServiceSummaries(ctx context.Context, list []models.ServiceSummary) error {
	return s.setJSON(ctx, keyRequestedServices, list)
}

func (s *Store) ServiceSummaries(ctx context.Context) ([]models.ServiceSummary, error) {
	var list []models.ServiceSummary
	if _, err := s.getJSON(ctx, keyRequestedServices, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) SaveServiceDetail(ctx context.Context, rec models.ServiceRecord) error {
	return s.setJSON(ctx, keyServiceDetails, rec)
}

func (s *Store) ServiceDetail(ctx context.Context) (*models.ServiceRecord, error) {
	var rec models.ServiceRecord
	ok, err := s.getJSON(ctx, keyServiceDetails, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) SaveCuProfile(ctx context.Context, p models.CuProfile) error {
	return s.setJSON(ctx, keyCuData, p)
}

func (s *Store) CuProfile(ctx context.Context) (*models.CuProfile, error) {
	var p models.CuProfile
	ok, err := s.getJSON(ctx, keyCuData, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SetDeviceToken(ctx context.Context, token string) error {
	return s.repo().Set(ctx, keyFcmToken, []byte(token))
}

func (s *Store) DeviceToken(ctx context.Context) (string, error) {
	data, err := s.repo().Get(ctx, keyFcmToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) RemoveDeviceToken(ctx context.Context) error {
	return s.repo().Delete(ctx, keyFcmToken)
}

func (s *Store) SetDeviceID(ctx context.Context, id string) error {
	return s.repo().Set(ctx, keyDeviceID, []byte(id))
}

func (s *Store) DeviceID(ctx context.Context) (string, error) {
	data, err := s.repo().Get(ctx, keyDeviceID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Settings returns the persisted user settings, or the defaults when none
// were saved yet.
func (s *Store) Settings(ctx context.Context) (models.Settings, error) {
	var st models.Settings
	ok, err := s.getJSON(ctx, keySettings, &st)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.Settings{AllowNotifications: true, OfflineStorage: true}, nil
	}
	return st, nil
}

func (s *Store) SaveSettings(ctx context.Context, st models.Settings) error {
	return s.setJSON(ctx, keySettings, st)
}

// RemoveAllButUserData wipes the local store except the retained user
// profile, in a single transaction so a crash cannot leave a half-cleared
// store.
func (s *Store) RemoveAllButUserData(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		profile, err := repo.Get(ctx, keyUserData)
		if err != nil {
			return err
		}
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if profile != nil {
			return repo.Set(ctx, keyUserData, profile)
		}
		return nil
	})
}
