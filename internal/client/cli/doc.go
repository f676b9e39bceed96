// Package cli provides the interactive clientdesk command-line client.
//
// It wires configuration, local storage, the REST client and the application
// services into a REPL whose commands are gated by the navigation state:
//
//	Not logged in: login, register, help, exit
//	Logged in:     home, clients, search name|id <query>, refresh, new,
//	               edit <id>, remove <id>, logout, help, exit
//
// A background watcher logs the user out once the session expires. The REPL
// is started via App.Run(ctx), which blocks until the user exits.
package cli
