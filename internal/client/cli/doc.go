// Package cli provides the interactive CampusHub command-line client.
//
// It wires configuration, the local sqlite store, the shared HTTP transport,
// and the session/identity services into an interactive REPL. Typical flow:
// log in (which chains the optional campus authentication), browse and
// comment on service requests, manage the campus profile, and read the news
// feed.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
