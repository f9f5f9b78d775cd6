package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the institutional credentials and opens the session.
// The campus authentication is chained automatically by the session layer;
// its absence is not an error.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username (IdUFFS)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, userName, password); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.userName = userName
	fmt.Println("Logged in.")
	return nil
}

// Logout tears the session down. The retained profile survives so the next
// login can be prefilled.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}

// Refresh re-fetches the user profile from the backend.
func (a *App) Refresh(ctx context.Context) error {
	profile, err := a.session.RefreshUserData(ctx)
	if err != nil {
		a.log.Error(ctx, "profile refresh failed", "error", err)
		return err
	}

	fmt.Printf("%s <%s> (@%s)\n", profile.Name, profile.Email, profile.Username)
	return nil
}
