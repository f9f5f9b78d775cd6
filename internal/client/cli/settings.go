package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/murilodk/campushub/internal/client/models"
)

// Settings prints the persisted settings.
func (a *App) Settings(ctx context.Context) error {
	settings, err := a.store.Settings(ctx)
	if err != nil {
		a.log.Error(ctx, "loading settings failed", "error", err)
		return err
	}

	fmt.Println("devmode:      ", settings.DevMode)
	fmt.Println("testapi:      ", settings.TestAPI)
	fmt.Println("notifications:", settings.AllowNotifications)
	fmt.Println("offline:      ", settings.OfflineStorage)
	return nil
}

// Toggle flips one setting and persists the result. Changing devmode or
// testapi takes effect on the backend URL at the next start.
func (a *App) Toggle(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Setting (devmode, testapi, notifications, offline)", os.Stdout)
	if err != nil {
		return err
	}

	settings, err := a.store.Settings(ctx)
	if err != nil {
		a.log.Error(ctx, "loading settings failed", "error", err)
		return err
	}

	var flipped bool
	switch name {
	case "devmode":
		settings.DevMode = !settings.DevMode
		flipped = settings.DevMode
	case "testapi":
		settings.TestAPI = !settings.TestAPI
		flipped = settings.TestAPI
	case "notifications":
		settings.AllowNotifications = !settings.AllowNotifications
		flipped = settings.AllowNotifications
	case "offline":
		settings.OfflineStorage = !settings.OfflineStorage
		flipped = settings.OfflineStorage
	default:
		fmt.Println("Unknown setting:", name)
		return nil
	}

	if err := a.saveSettings(ctx, settings); err != nil {
		return err
	}
	fmt.Printf("%s is now %v\n", name, flipped)
	return nil
}

func (a *App) saveSettings(ctx context.Context, settings models.Settings) error {
	if err := a.store.SaveSettings(ctx, settings); err != nil {
		a.log.Error(ctx, "saving settings failed", "error", err)
		return err
	}
	return nil
}
