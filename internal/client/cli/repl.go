package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Home(ctx context.Context) error
	Clients(ctx context.Context) error
	Search(ctx context.Context, filter services.Filter, query string) error
	Refresh(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, help, exit"
	helpLoggedIn  = "Available commands: home, (l)ist | clients, search name|id <query>, refresh, new, edit <id>, remove <id>, logout, help, exit"
)

// runREPL starts the read–eval–print loop of the clientdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands of the other navigation state are
// refused with a hint. The loop exits on EOF or when the user types "exit"
// or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("clientdesk %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first.")
				continue
			}
			if cmd == "login" {
				_ = a.Login(ctx)
			} else {
				_ = a.Register(ctx)
			}

		case "home", "clients", "l", "list", "search", "refresh", "new", "edit", "remove", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			dispatchAuthenticated(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatchAuthenticated(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "home":
		_ = a.Home(ctx)

	case "clients", "l", "list":
		_ = a.Clients(ctx)

	case "search":
		if len(args) < 2 {
			printlnFn("Usage: search name|id <query>")
			return
		}
		query := strings.Join(args[1:], " ")
		switch args[0] {
		case "name":
			_ = a.Search(ctx, services.FilterByName, query)
		case "id":
			_ = a.Search(ctx, services.FilterByIdentification, query)
		default:
			printlnFn("Usage: search name|id <query>")
		}

	case "refresh":
		_ = a.Refresh(ctx)

	case "new":
		_ = a.New(ctx)

	case "edit", "remove":
		if len(args) == 0 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return
		}
		if cmd == "edit" {
			_ = a.Edit(ctx, args[0])
		} else {
			_ = a.Remove(ctx, args[0])
		}

	case "logout":
		_ = a.Logout(ctx)
	}
}
