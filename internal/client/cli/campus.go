package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/services"
)

// CampusProfile fetches and prints the campus-system profile.
func (a *App) CampusProfile(ctx context.Context) error {
	profile, err := a.campus.FetchProfile(ctx)
	if err != nil {
		if errors.Is(err, services.ErrCampusUnlinked) {
			fmt.Println("No campus session is linked to this account.")
			return nil
		}
		a.log.Error(ctx, "fetching campus profile failed", "error", err)
		return err
	}

	fmt.Printf("%s (%s)\n", profile.Name, profile.UID)
	fmt.Println("Email:     ", profile.Email)
	fmt.Println("Enrollment:", profile.EnrollmentID)
	fmt.Println("Birth date:", profile.BirthDate)
	return nil
}

// IDCard submits an identity-card request. When uid and password are given
// the request creates a campus user; left empty it updates the existing one.
func (a *App) IDCard(ctx context.Context) error {
	enrollment, err := getSimpleText(a.reader, "Enrollment id", os.Stdout)
	if err != nil {
		return err
	}
	birthDate, err := getSimpleText(a.reader, "Birth date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "Profile photo (base64, empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	uid, err := getSimpleText(a.reader, "Campus uid (empty to update the existing user)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.IDCardRequest{
		EnrollmentID: enrollment,
		BirthDate:    birthDate,
		ProfilePhoto: photo,
		UID:          uid,
	}
	if uid != "" {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		req.Password = password
	}

	resp, err := a.campus.SubmitIDCardRequest(ctx, req)
	if err != nil {
		a.log.Error(ctx, "identity-card submission failed", "error", err)
		return err
	}

	if resp.Success {
		fmt.Println("Submitted.")
	} else {
		fmt.Println("Rejected:", resp.Message)
	}
	return nil
}

// Resources lists the reservable campus resources.
func (a *App) Resources(ctx context.Context) error {
	resources, err := a.campus.ListResources(ctx)
	if err != nil {
		if errors.Is(err, services.ErrCampusUnlinked) {
			fmt.Println("No campus session is linked to this account.")
			return nil
		}
		a.log.Error(ctx, "listing resources failed", "error", err)
		return err
	}

	for _, r := range resources {
		fmt.Printf("#%d %s\n", r.ID, r.Name)
	}
	return nil
}

// Reserve submits a room reservation.
func (a *App) Reserve(ctx context.Context) error {
	begin, err := getSimpleText(a.reader, "Begin (YYYY-MM-DD hh:mm)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End (YYYY-MM-DD hh:mm)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	roomID, err := a.promptID("Room id")
	if err != nil {
		return err
	}
	ccrID, err := a.promptID("CCR id")
	if err != nil {
		return err
	}

	resp, err := a.campus.SubmitReservation(ctx, models.Reservation{
		Begin:       begin,
		End:         end,
		Description: description,
		RoomID:      roomID,
		CcrID:       ccrID,
	})
	if err != nil {
		if errors.Is(err, services.ErrCampusUnlinked) {
			fmt.Println("No campus session is linked to this account.")
			return nil
		}
		a.log.Error(ctx, "reservation failed", "error", err)
		return err
	}

	if resp.Success {
		fmt.Println("Reserved.")
	} else {
		fmt.Println("Rejected:", resp.Message)
	}
	return nil
}

// CampusStatus prints the state of the campus-profile creation operation.
func (a *App) CampusStatus(ctx context.Context) error {
	status, err := a.campus.Status(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching campus status failed", "error", err)
		return err
	}

	switch {
	case status.NoUser:
		fmt.Println("The campus system does not know this user yet.")
	case status.CreationError:
		fmt.Println("Profile creation failed:", status.Message)
	case status.Profile != nil:
		fmt.Println("Campus profile is ready:", status.Profile.Name)
	case status.NeedLogout:
		fmt.Println("Campus state is inconsistent; log out and back in.")
	default:
		fmt.Printf("Creation in progress: %s %s\n", status.CreatingStatus, status.Message)
	}
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Not a number:", raw)
		return 0, err
	}
	return id, nil
}
