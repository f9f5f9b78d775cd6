package localstore

import (
	"context"
)

// Repository is the persistent key/value store backing all client-side
// state: credentials, profiles, cached records, the device push token,
// and user settings.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
