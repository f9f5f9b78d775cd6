package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/murilodk/campushub/internal/client/transport"
)

// Backend is the typed client for the primary backend.
type Backend struct {
	http    *transport.Client
	baseURL string
}

// NewBackend builds a Backend rooted at baseURL (trailing slash expected,
// e.g. "https://api.example.edu/v1/").
func NewBackend(http *transport.Client, baseURL string) *Backend {
	return &Backend{http: http, baseURL: baseURL}
}

// Login posts the primary credentials. AppID is fixed: this client is the
// mobile app.
func (b *Backend) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{
		"user":     username,
		"password": password,
		"app_id":   "1",
	}
	var resp LoginResponse
	if _, err := b.http.Post(ctx, b.baseURL+"auth", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the current user's profile.
func (b *Backend) Me(ctx context.Context) (*MeResponse, error) {
	var resp MeResponse
	if _, err := b.http.Post(ctx, b.baseURL+"auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Orders fetches one page of the service-request listing.
func (b *Backend) Orders(ctx context.Context, page int) (*OrdersResponse, error) {
	var resp OrdersResponse
	url := fmt.Sprintf("%smural/orders?page=%d", b.baseURL, page)
	if _, err := b.http.Get(ctx, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OrderByID fetches a single service request with its comments.
func (b *Backend) OrderByID(ctx context.Context, id int64) (*OrderResponse, error) {
	var resp OrderResponse
	url := fmt.Sprintf("%smural/orders/%d", b.baseURL, id)
	if _, err := b.http.Get(ctx, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MuralMe fetches the mural-side view of the current user.
func (b *Backend) MuralMe(ctx context.Context) (*MuralMeResponse, error) {
	var resp MuralMeResponse
	if _, err := b.http.Get(ctx, b.baseURL+"mural/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PostComment creates a comment on an order.
func (b *Backend) PostComment(ctx context.Context, comment NewComment) (*Envelope, error) {
	var resp Envelope
	if _, err := b.http.Post(ctx, b.baseURL+"mural/comments", comment, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterChannel registers the device push token using the transport's
// default session header.
func (b *Backend) RegisterChannel(ctx context.Context, fcmToken string) (*ChannelResponse, error) {
	body := map[string]string{"fcm_token": fcmToken}
	var resp ChannelResponse
	if _, err := b.http.Post(ctx, b.baseURL+"user/channels", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateChannel rotates the device push token. The bearer token is passed
// explicitly because this call may run outside an active session
// reconfiguration and must use the durably stored passport.
func (b *Backend) UpdateChannel(ctx context.Context, fcmToken, bearer string) (*Envelope, error) {
	var resp Envelope
	_, err := b.http.Do(ctx, transport.Request{
		Method:        http.MethodPatch,
		URL:           b.baseURL + "user/channels",
		Body:          map[string]string{"fcm_token": fcmToken},
		Authorization: bearer,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteChannel deregisters the device's channel using the stored bearer.
func (b *Backend) DeleteChannel(ctx context.Context, bearer string) error {
	_, err := b.http.Do(ctx, transport.Request{
		Method:        http.MethodDelete,
		URL:           b.baseURL + "user/channels",
		Authorization: bearer,
	}, nil)
	return err
}
