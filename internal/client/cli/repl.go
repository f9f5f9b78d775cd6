package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Comment(ctx context.Context) error
	CampusProfile(ctx context.Context) error
	IDCard(ctx context.Context) error
	Resources(ctx context.Context) error
	Reserve(ctx context.Context) error
	CampusStatus(ctx context.Context) error
	News(ctx context.Context) error
	Settings(ctx context.Context) error
	Toggle(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CampusHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate (chains the campus login)
//	  - idcard         — submit an identity-card request
//	  - news           — read the public news feed
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list service requests
//	  - show           — show one service request (interactive ID prompt)
//	  - comment        — comment on a service request
//	  - refresh        — refresh the user profile
//	  - profile        — show the campus profile
//	  - idcard         — submit or update an identity-card request
//	  - ccrs           — list reservable campus resources
//	  - reserve        — submit a room reservation
//	  - status         — show the campus-profile creation status
//	  - news           — read the public news feed
//	  - settings       — show the persisted settings
//	  - toggle         — flip one setting
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ch> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, comment, refresh, profile, idcard, ccrs, reserve, status, news, settings, toggle, logout, exit")
			} else {
				printlnFn("Available commands: login, idcard, news, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "profile":
			_ = a.CampusProfile(ctx)

		case "idcard":
			_ = a.IDCard(ctx)

		case "ccrs":
			_ = a.Resources(ctx)

		case "reserve":
			_ = a.Reserve(ctx)

		case "status":
			_ = a.CampusStatus(ctx)

		case "news":
			_ = a.News(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "toggle":
			_ = a.Toggle(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
