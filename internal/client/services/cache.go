package services

import (
	"context"

	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/logging"
)

// CacheGate decides, per fetch, whether service records are written through
// to the local store. Persistence is gated on the offlineStorage setting;
// list fetches store only a trimmed projection, detail fetches store the
// full enriched record.
type CacheGate struct {
	store *storage.Store
	log   logging.Logger
}

func NewCacheGate(store *storage.Store, log logging.Logger) *CacheGate {
	return &CacheGate{store: store, log: log}
}

// PersistList writes the trimmed projection of each record when offline
// storage is enabled.
func (g *CacheGate) PersistList(ctx context.Context, records []models.ServiceRecord) error {
	settings, err := g.store.Settings(ctx)
	if err != nil {
		return err
	}
	if !settings.OfflineStorage {
		return nil
	}

	summaries := make([]models.ServiceSummary, len(records))
	for i, r := range records {
		summaries[i] = models.ServiceSummary{
			ID:          r.ID,
			Status:      r.Status,
			Title:       r.Title,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		}
	}
	return g.store.SaveServiceSummaries(ctx, summaries)
}

// PersistDetail writes the full enriched record when offline storage is
// enabled and the response carried no application-level error.
func (g *CacheGate) PersistDetail(ctx context.Context, rec models.ServiceRecord, errored bool) error {
	settings, err := g.store.Settings(ctx)
	if err != nil {
		return err
	}
	if !settings.OfflineStorage || errored {
		return nil
	}
	return g.store.SaveServiceDetail(ctx, rec)
}
