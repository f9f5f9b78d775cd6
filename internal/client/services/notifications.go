package services

import (
	"context"
	"fmt"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/device"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/client/ui"
	"github.com/murilodk/campushub/internal/logging"
)

// NotificationService registers, rotates, and removes the device's push
// channel on the backend. The protocol is two-tier: a rejected or failed
// registration falls back to exactly one update attempt; a failed update is
// terminal and surfaces a single alert. Update never re-enters Register, so
// no retry loop can form.
//
// All operations suspend on the device readiness gate before touching the
// push token.
type NotificationService struct {
	backend  *api.Backend
	store    *storage.Store
	device   *device.Device
	notifier ui.Notifier
	log      logging.Logger
}

func NewNotificationService(
	backend *api.Backend,
	store *storage.Store,
	dev *device.Device,
	notifier ui.Notifier,
	log logging.Logger,
) *NotificationService {
	return &NotificationService{backend: backend, store: store, device: dev, notifier: notifier, log: log}
}

// Register obtains the push token, persists it, and POSTs it to the channel
// endpoint using the transport's session header. A response without a
// channel id, or an outright failure, triggers the single Update fallback.
func (n *NotificationService) Register(ctx context.Context) error {
	token, err := n.device.PushToken(ctx)
	if err != nil {
		return fmt.Errorf("%w: obtaining push token: %v", ErrChannelRegistration, err)
	}
	if err := n.store.SetDeviceToken(ctx, token); err != nil {
		n.log.Warn(ctx, "failed to persist push token", "error", err)
	}

	resp, err := n.backend.RegisterChannel(ctx, token)
	if err != nil || resp.ID == 0 {
		n.log.Info(ctx, "channel registration rejected, falling back to update")
		return n.Update(ctx)
	}

	n.log.Debug(ctx, "channel registered", "channel_id", resp.ID)
	return nil
}

// Update refreshes the push token and PATCHes the channel endpoint. The
// bearer token is read from the persisted credentials, not from the
// transport's in-memory header, because this may run while no session
// reconfiguration is active. Failure is terminal: one alert, no retry.
func (n *NotificationService) Update(ctx context.Context) error {
	token, err := n.device.PushToken(ctx)
	if err != nil {
		n.notifier.Alert(ctx, notificationFailedMessage)
		return fmt.Errorf("%w: obtaining push token: %v", ErrChannelRegistration, err)
	}
	if err := n.store.SetDeviceToken(ctx, token); err != nil {
		n.log.Warn(ctx, "failed to persist push token", "error", err)
	}

	creds, err := n.store.Credentials(ctx)
	if err != nil || creds == nil {
		n.notifier.Alert(ctx, notificationFailedMessage)
		return fmt.Errorf("%w: no stored credentials", ErrChannelRegistration)
	}

	resp, err := n.backend.UpdateChannel(ctx, token, "Bearer "+creds.Passport)
	if err != nil || resp.Errored() {
		n.notifier.Alert(ctx, notificationFailedMessage)
		return fmt.Errorf("%w: update rejected", ErrChannelRegistration)
	}
	return nil
}

// Delete removes the stored push token and deregisters the channel with the
// stored bearer. Failures are swallowed: logout must never be blocked by
// notification cleanup.
func (n *NotificationService) Delete(ctx context.Context) {
	if err := n.device.Ready(ctx); err != nil {
		n.log.Debug(ctx, "device not ready, skipping channel delete")
		return
	}

	creds, err := n.store.Credentials(ctx)

	if rmErr := n.store.RemoveDeviceToken(ctx); rmErr != nil {
		n.log.Warn(ctx, "failed to remove push token", "error", rmErr)
	}

	if err != nil || creds == nil {
		return
	}
	if err := n.backend.DeleteChannel(ctx, "Bearer "+creds.Passport); err != nil {
		n.log.Warn(ctx, "channel delete failed", "error", err)
	}
}
