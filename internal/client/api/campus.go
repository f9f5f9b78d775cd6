package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/transport"
)

// CuLoginResponse is the body of POST login on the campus system.
type CuLoginResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

// CuUser is the raw campus profile. BirthDate arrives as
// "YYYY-MM-DD hh:mm:ss" and is normalized by the service layer.
type CuUser struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EnrollmentID string `json:"enrollment_id"`
	BirthDate    string `json:"birth_date"`
}

// CuUserResponse is the body of GET user.
type CuUserResponse struct {
	Success bool   `json:"success"`
	Data    CuUser `json:"data"`
}

// CuNoOperationMessage is the literal the campus system returns instead of
// an operation object when no profile creation is in progress.
const CuNoOperationMessage = "User has no operation in progress."

// CuOperation is the state of a pending campus-profile creation.
type CuOperation struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CuOperationResponse is the body of GET user/operation/:username. Data is
// either an operation object or the bare no-operation string, so it is kept
// raw and interpreted lazily.
type CuOperationResponse struct {
	Data json.RawMessage `json:"data"`
}

// NoOperation reports whether the response carries the no-operation literal.
func (r *CuOperationResponse) NoOperation() bool {
	var s string
	if err := json.Unmarshal(r.Data, &s); err != nil {
		return false
	}
	return s == CuNoOperationMessage
}

// Operation decodes the pending-operation object. ok is false when the data
// is not an object (e.g. the no-operation literal).
func (r *CuOperationResponse) Operation() (CuOperation, bool) {
	var op CuOperation
	if err := json.Unmarshal(r.Data, &op); err != nil {
		return CuOperation{}, false
	}
	return op, true
}

// CuResourcesResponse is the body of GET ccr. The campus system wraps the
// paginated payload twice.
type CuResourcesResponse struct {
	Data struct {
		Data []models.Resource `json:"data"`
	} `json:"data"`
}

// CuSubmitResponse is the generic acknowledgement for campus submissions.
type CuSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IDCardPayload is the wire form of an identity-card submission.
type IDCardPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	BirthDate    string `json:"birth_date"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
	UID          string `json:"uid,omitempty"`
	Password     string `json:"password,omitempty"`
}

// Campus is the typed client for the secondary campus system. Authenticated
// campus calls carry their own cu_auth bearer explicitly instead of riding
// on the transport's default (primary) session header.
type Campus struct {
	http    *transport.Client
	baseURL string
}

func NewCampus(http *transport.Client, baseURL string) *Campus {
	return &Campus{http: http, baseURL: baseURL}
}

// Login authenticates against the campus system.
func (c *Campus) Login(ctx context.Context, uid, password string) (*CuLoginResponse, error) {
	body := map[string]string{"uid": uid, "password": password}
	var resp CuLoginResponse
	if _, err := c.http.Post(ctx, c.baseURL+"login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// User fetches the campus profile for the given bearer token.
func (c *Campus) User(ctx context.Context, bearer string) (*CuUserResponse, error) {
	var resp CuUserResponse
	_, err := c.http.Do(ctx, transport.Request{
		Method:        http.MethodGet,
		URL:           c.baseURL + "user",
		Authorization: bearer,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Operation fetches the profile-creation status for username. The status
// code is returned because 204 means the campus system does not know the
// user at all.
func (c *Campus) Operation(ctx context.Context, username string) (int, *CuOperationResponse, error) {
	var resp CuOperationResponse
	status, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "user/operation/" + username,
	}, &resp)
	if err != nil {
		return status, nil, err
	}
	return status, &resp, nil
}

// SubmitIDCard sends an identity-card request. PATCH updates an existing
// campus user, POST creates one. bearer may be empty: the campus system
// permits anonymous initial submissions.
func (c *Campus) SubmitIDCard(ctx context.Context, payload IDCardPayload, update bool, bearer string) (*CuSubmitResponse, error) {
	method := http.MethodPost
	if update {
		method = http.MethodPatch
	}
	var resp CuSubmitResponse
	_, err := c.http.Do(ctx, transport.Request{
		Method:        method,
		URL:           c.baseURL + "user/iduffs",
		Body:          payload,
		Authorization: bearer,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Resources lists the reservable campus resources (CCRs).
func (c *Campus) Resources(ctx context.Context, bearer string) ([]models.Resource, error) {
	var resp CuResourcesResponse
	_, err := c.http.Do(ctx, transport.Request{
		Method:        http.MethodGet,
		URL:           c.baseURL + "ccr",
		Authorization: bearer,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data.Data, nil
}

// Reserve submits a room reservation.
func (c *Campus) Reserve(ctx context.Context, r models.Reservation, bearer string) (*CuSubmitResponse, error) {
	var resp CuSubmitResponse
	_, err := c.http.Do(ctx, transport.Request{
		Method:        http.MethodPost,
		URL:           c.baseURL + "reserve",
		Body:          r,
		Authorization: bearer,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
