package services

import (
	"context"
	"net/http"

	"github.com/murilodk/campushub/internal/client/api"
	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/storage"
	"github.com/murilodk/campushub/internal/logging"
)

// cuStatusFailed is the status literal the campus system reports when a
// profile creation operation failed.
const cuStatusFailed = "Falha"

// CampusService bridges to the secondary campus identity system. It is
// stateless aside from what it persists: the cu_auth token lives inside
// Credentials (owned by SessionManager), the fetched profile in the local
// store.
type CampusService struct {
	campus *api.Campus
	store  *storage.Store
	log    logging.Logger
}

func NewCampusService(campus *api.Campus, store *storage.Store, log logging.Logger) *CampusService {
	return &CampusService{campus: campus, store: store, log: log}
}

// Authenticate logs into the campus system with the same credentials as the
// primary login. "No campus session" — whether from a rejected login or a
// network failure — is ErrCampusUnlinked, a recoverable absence; callers
// must never treat it as a login failure.
func (c *CampusService) Authenticate(ctx context.Context, uid, password string) (string, error) {
	resp, err := c.campus.Login(ctx, uid, password)
	if err != nil {
		c.log.Debug(ctx, "campus login unreachable", "error", err)
		return "", ErrCampusUnlinked
	}
	if !resp.Success || resp.Data.Token == "" {
		return "", ErrCampusUnlinked
	}
	return resp.Data.Token, nil
}

// campusBearer returns the Authorization value for the stored cu_auth token,
// or ErrCampusUnlinked when no secondary session is linked.
func (c *CampusService) campusBearer(ctx context.Context) (string, error) {
	creds, err := c.store.Credentials(ctx)
	if err != nil {
		return "", err
	}
	if creds == nil || !creds.HasCampusToken() {
		return "", ErrCampusUnlinked
	}
	return "Bearer " + creds.CuAuth, nil
}

// FetchProfile requires a linked campus session. On success the birth date
// is normalized to display form and the profile is persisted.
func (c *CampusService) FetchProfile(ctx context.Context) (*models.CuProfile, error) {
	bearer, err := c.campusBearer(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.campus.User(ctx, bearer)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, ErrCampusUnlinked
	}

	profile := models.CuProfile{
		UID:          resp.Data.UID,
		Name:         resp.Data.Name,
		Email:        resp.Data.Email,
		EnrollmentID: resp.Data.EnrollmentID,
		BirthDate:    normalizeBirthDate(resp.Data.BirthDate),
	}
	if err := c.store.SaveCuProfile(ctx, profile); err != nil {
		c.log.Warn(ctx, "failed to persist campus profile", "error", err)
	}
	return &profile, nil
}

// SubmitIDCardRequest sends an identity-card submission: PATCH when the
// campus user already exists, POST (with uid and password) to create one.
// The cu_auth bearer is attached when available; the campus system permits
// anonymous initial submissions.
func (c *CampusService) SubmitIDCardRequest(ctx context.Context, req models.IDCardRequest) (*api.CuSubmitResponse, error) {
	creds, err := c.store.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	bearer := ""
	if creds != nil && creds.HasCampusToken() {
		bearer = "Bearer " + creds.CuAuth
	}

	payload := api.IDCardPayload{
		EnrollmentID: req.EnrollmentID,
		BirthDate:    req.BirthDate,
		ProfilePhoto: req.ProfilePhoto,
	}
	update := req.IsUpdate()
	if !update {
		payload.UID = req.UID
		payload.Password = req.Password
	}

	return c.campus.SubmitIDCard(ctx, payload, update, bearer)
}

// ListResources lists the reservable campus resources. Requires a linked
// campus session.
func (c *CampusService) ListResources(ctx context.Context) ([]models.Resource, error) {
	bearer, err := c.campusBearer(ctx)
	if err != nil {
		return nil, err
	}
	return c.campus.Resources(ctx, bearer)
}

// SubmitReservation submits a room reservation. Requires a linked campus
// session.
func (c *CampusService) SubmitReservation(ctx context.Context, r models.Reservation) (*api.CuSubmitResponse, error) {
	bearer, err := c.campusBearer(ctx)
	if err != nil {
		return nil, err
	}
	return c.campus.Reserve(ctx, r, bearer)
}

// Status reports the state of the campus-profile creation operation for the
// logged-in user. A 204 means the campus system does not know the user.
// When no operation is in progress the cached profile is consulted;
// NeedLogout is set when that cache is empty. The interplay between the
// no-operation branch and NeedLogout mirrors observed server behavior and
// may be incomplete upstream.
func (c *CampusService) Status(ctx context.Context) (*models.CuStatus, error) {
	profile, err := c.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrAuthFailed
	}

	statusCode, resp, err := c.campus.Operation(ctx, profile.Username)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusNoContent {
		return &models.CuStatus{NoUser: true}, nil
	}

	var cached *models.CuProfile
	noOperation := resp.NoOperation()
	if noOperation {
		cached, err = c.store.CuProfile(ctx)
		if err != nil {
			return nil, err
		}
	}

	op, _ := resp.Operation()

	return &models.CuStatus{
		CreationError:  op.Status == cuStatusFailed,
		CreatingStatus: op.Status,
		Message:        op.Message,
		Profile:        cached,
		NeedLogout:     noOperation && cached == nil,
	}, nil
}
