// Package api contains the typed endpoint clients for the two external
// systems: the primary backend (auth, mural, notification channels) and the
// secondary campus system (CU). Response shapes are decoded into explicit
// records here, at the boundary, so the service layer never sees raw JSON.
package api

import (
	"github.com/murilodk/campushub/internal/client/models"
)

// Envelope carries the application-level error marker the backend attaches
// to authenticated responses. Presence of the marker means the session is
// expired or invalid.
type Envelope struct {
	Error bool `json:"error"`
}

// Errored reports whether the response carries the error marker.
func (e Envelope) Errored() bool { return e.Error }

// LoginResponse is the body of POST auth. Passport is empty when the backend
// did not open a session.
type LoginResponse struct {
	User     models.UserProfile `json:"user"`
	Passport string             `json:"passport"`
}

// MeResponse is the body of POST auth/me.
type MeResponse struct {
	Envelope
	models.UserProfile
}

// OrderComment is the wire form of a mural comment before author derivation.
type OrderComment struct {
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
}

// Order is the wire form of a service request.
type Order struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	Status           string         `json:"status"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	CreatedAt        string         `json:"created_at"`
	RequestedDueDate string         `json:"requested_due_date"`
	Comments         []OrderComment `json:"comments"`
}

// OrdersResponse is the body of GET mural/orders?page=N.
type OrdersResponse struct {
	Envelope
	Data []Order         `json:"data"`
	Meta models.PageMeta `json:"meta"`
}

// OrderResponse is the body of GET mural/orders/:id.
type OrderResponse struct {
	Envelope
	Order
}

// MuralMeResponse is the body of GET mural/me.
type MuralMeResponse struct {
	Envelope
	User models.UserProfile `json:"user"`
}

// NewComment is the payload of POST mural/comments.
type NewComment struct {
	Content         string `json:"content"`
	IsHidden        int    `json:"is_hidden"`
	UserID          int64  `json:"user_id"`
	CommentableID   int64  `json:"commentable_id"`
	CommentableType string `json:"commentable_type"`
}

// CommentableTypeOrder is the polymorphic type tag the backend expects for
// comments attached to orders.
const CommentableTypeOrder = `App\Models\Order`

// ChannelResponse is the body of POST user/channels. A missing ID means the
// server rejected the registration.
type ChannelResponse struct {
	Envelope
	ID int64 `json:"id"`
}
