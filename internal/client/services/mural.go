package services

import (
	"context"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/logging"
)

// MuralService exposes the service-request subsystem: listing, detail,
// and comments. Every response passes through the expiry monitor before any
// data is returned; list and detail fetches additionally pass through the
// cache gate.
type MuralService struct {
	backend *api.Backend
	store   *storage.Store
	monitor *ExpiryMonitor
	cache   *CacheGate
	log     logging.Logger
}

func NewMuralService(
	backend *api.Backend,
	store *storage.Store,
	monitor *ExpiryMonitor,
	cache *CacheGate,
	log logging.Logger,
) *MuralService {
	return &MuralService{backend: backend, store: store, monitor: monitor, cache: cache, log: log}
}

// ListServices fetches one page of service requests.
func (m *MuralService) ListServices(ctx context.Context, page int) (*models.ServicePage, error) {
	resp, err := m.backend.Orders(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := m.monitor.Check(ctx, resp.Envelope); err != nil {
		return nil, err
	}

	records := make([]models.ServiceRecord, len(resp.Data))
	for i, o := range resp.Data {
		records[i] = models.ServiceRecord{
			ID:               o.ID,
			Status:           o.Status,
			Title:            o.Title,
			Description:      o.Description,
			CreatedAt:        o.CreatedAt,
			RequestedDueDate: o.RequestedDueDate,
		}
	}

	if err := m.cache.PersistList(ctx, records); err != nil {
		m.log.Warn(ctx, "failed to cache service listing", "error", err)
	}

	return &models.ServicePage{Services: records, Meta: resp.Meta}, nil
}

// ServiceByID fetches a single service request and enriches it for display:
// comment authors are derived (owner's profile name vs. the support-team
// label), comment dates and the requested due date are formatted.
func (m *MuralService) ServiceByID(ctx context.Context, id int64) (*models.ServiceRecord, error) {
	profile, err := m.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := m.backend.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.monitor.Check(ctx, resp.Envelope); err != nil {
		return nil, err
	}

	rec := enrichOrder(resp.Order, profile)

	if err := m.cache.PersistDetail(ctx, rec, resp.Errored()); err != nil {
		m.log.Warn(ctx, "failed to cache service detail", "error", err)
	}

	return &rec, nil
}

func enrichOrder(o api.Order, owner *models.UserProfile) models.ServiceRecord {
	ownerName := ""
	if owner != nil {
		ownerName = owner.Name
	}

	comments := make([]models.Comment, len(o.Comments))
	for i, c := range o.Comments {
		name := supportTeamLabel
		if c.UserID == o.UserID {
			name = ownerName
		}
		comments[i] = models.Comment{
			UserName:  name,
			CreatedAt: formatDisplayDate(c.CreatedAt),
			Content:   c.Content,
		}
	}

	return models.ServiceRecord{
		ID:               o.ID,
		Status:           o.Status,
		Title:            o.Title,
		Description:      o.Description,
		CreatedAt:        o.CreatedAt,
		Comments:         comments,
		RequestedDueDate: formatDisplayDate(o.RequestedDueDate),
		User:             owner,
	}
}

// MuralUser fetches the mural-side view of the current user.
func (m *MuralService) MuralUser(ctx context.Context) (*models.UserProfile, error) {
	resp, err := m.backend.MuralMe(ctx)
	if err != nil {
		return nil, err
	}
	if err := m.monitor.Check(ctx, resp.Envelope); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

// PostComment creates a comment on a service request. The mural user is
// fetched first because the payload carries the author's id.
func (m *MuralService) PostComment(ctx context.Context, serviceID int64, text string) error {
	user, err := m.MuralUser(ctx)
	if err != nil {
		return err
	}

	resp, err := m.backend.PostComment(ctx, api.NewComment{
		Content:         text,
		IsHidden:        0,
		UserID:          user.ID,
		CommentableID:   serviceID,
		CommentableType: api.CommentableTypeOrder,
	})
	if err != nil {
		return err
	}
	return m.monitor.Check(ctx, resp)
}
