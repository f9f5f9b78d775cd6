package ui

import (
	"context"
	"fmt"
	"io"
)

// ConsoleNotifier renders alerts and navigation requests as plain lines on
// a writer. The CLI uses it; mobile builds plug in their own Notifier.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (c *ConsoleNotifier) Alert(ctx context.Context, message string) {
	fmt.Fprintf(c.w, "[!] %s\n", message)
}

func (c *ConsoleNotifier) NavigateToLogin(ctx context.Context) {
	fmt.Fprintln(c.w, "-- returning to login --")
}
