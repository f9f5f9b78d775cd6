// Package device models the host device's push-notification capability.
// Readiness is a one-time gate per process: the platform layer signals it
// once during startup, and token-dependent operations block until then.
package device

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// TokenSource yields the device's current push token. On mobile builds this
// is backed by the platform messaging SDK; tests provide fakes.
type TokenSource interface {
	PushToken(ctx context.Context) (string, error)
}

// IDStore persists the per-install device identifier.
type IDStore interface {
	DeviceID(ctx context.Context) (string, error)
	SetDeviceID(ctx context.Context, id string) error
}

// Device is the capability handle handed to services that need push tokens.
type Device struct {
	tokens TokenSource

	once  sync.Once
	ready chan struct{}
}

func New(tokens TokenSource) *Device {
	return &Device{tokens: tokens, ready: make(chan struct{})}
}

// SignalReady marks the device as ready. Safe to call more than once; only
// the first call has effect.
func (d *Device) SignalReady() {
	d.once.Do(func() { close(d.ready) })
}

// Ready blocks until the device signaled readiness or ctx is done.
func (d *Device) Ready(ctx context.Context) error {
	select {
	case <-d.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PushToken waits for readiness and returns the current push token.
func (d *Device) PushToken(ctx context.Context) (string, error) {
	if err := d.Ready(ctx); err != nil {
		return "", err
	}
	return d.tokens.PushToken(ctx)
}

// EnsureInstallID returns the persisted per-install identifier, generating
// and storing a new one on first run.
func EnsureInstallID(ctx context.Context, store IDStore) (string, error) {
	id, err := store.DeviceID(ctx)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := store.SetDeviceID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}
