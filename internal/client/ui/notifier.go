// Package ui declares the contract the session layer has with the user
// interface. The core never renders anything itself; it only requests
// alerts and navigation.
package ui

import "context"

// Notifier surfaces user-facing interruptions.
type Notifier interface {
	// Alert shows a modal message to the user.
	Alert(ctx context.Context, message string)

	// NavigateToLogin routes the UI back to the login screen.
	NavigateToLogin(ctx context.Context)
}
