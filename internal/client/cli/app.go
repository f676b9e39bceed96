package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/config"
	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/navigation"
	"github.com/dmitrijs2005/clientdesk/internal/client/photo"
	"github.com/dmitrijs2005/clientdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/session"
	"github.com/dmitrijs2005/clientdesk/internal/client/storage"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// sessionView is the read side of the session store.
type sessionView interface {
	Current() models.Session
}

// navigator is the part of navigation.Gate the commands use.
type navigator interface {
	Navigate(ctx context.Context, screen navigation.Screen) error
	State() navigation.State
	Screen() navigation.Screen
	Watch(ctx context.Context, interval time.Duration)
}

type App struct {
	config    *config.Config
	log       logging.Logger
	sessions  sessionView
	gate      navigator
	auth      services.AuthService
	customers services.CustomerService
	interests services.InterestService
	backend   form.Backend
	picker    photo.Picker
	reader    *bufio.Reader
	closers   []func()

	// loggingOut marks a user-requested logout so the state listener stays quiet.
	loggingOut atomic.Bool
}

// NewApp opens the local database, restores any saved session and builds the
// services on top of the REST client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if c.ExpiryCheckInterval <= 0 {
		return nil, fmt.Errorf("invalid expiry check interval %v: must be positive", c.ExpiryCheckInterval)
	}

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(db, log.With("component", "session"))
	if err := store.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store, store, log.With("component", "http"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	interests := services.NewInterestService(apiClient)
	gate := navigation.NewGate(store, log.With("component", "navigation"))

	a := &App{
		config:    c,
		log:       log,
		sessions:  store,
		gate:      gate,
		auth:      services.NewAuthService(apiClient, store, metadata.NewSQLiteRepository(db), interests, log.With("component", "auth")),
		customers: services.NewCustomerService(apiClient),
		interests: interests,
		backend:   apiClient,
		reader:    bufio.NewReader(os.Stdin),
		closers:   []func(){gate.Close, func() { _ = db.Close() }},
	}
	a.picker = photo.NewFilePicker(func(label string) (string, error) {
		return getSimpleText(a.reader, label, os.Stdout)
	})
	gate.OnChange(a.onStateChange)

	if err := gate.Check(ctx, time.Now()); err != nil {
		log.Warn(ctx, "startup session check failed", "error", err)
	}
	if a.isLoggedIn() {
		if err := interests.Load(ctx); err != nil {
			log.Warn(ctx, "interest list not loaded", "error", err)
		}
	}
	return a, nil
}

// Run starts the expiry watcher and the REPL, and releases resources when the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.gate.Watch(ctx, a.config.ExpiryCheckInterval)

	printlnFn("Welcome to clientdesk (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	for _, fn := range a.closers {
		fn()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.gate.State() == navigation.Authenticated
}

func (a *App) status() string {
	screen := string(a.gate.Screen())
	if sess := a.sessions.Current(); sess.Token != "" {
		return fmt.Sprintf("(%s %s)", sess.Username, screen)
	}
	return fmt.Sprintf("(%s)", screen)
}

// onStateChange runs on every gate transition, possibly from the watcher.
func (a *App) onStateChange(s navigation.State) {
	if s != navigation.Unauthenticated {
		return
	}
	a.interests.Reset()
	if !a.loggingOut.Load() {
		printlnFn("Your session has ended. Please log in again.")
	}
}

// userID is the id sent with customer calls.
func (a *App) userID() string {
	return a.sessions.Current().UserID
}

// report prints the user-facing form of err and returns err.
func report(err error) error {
	if err != nil {
		printlnFn(reportText(err))
	}
	return err
}

func reportText(err error) string {
	if errors.Is(err, navigation.ErrUnreachable) {
		return "Not available right now."
	}
	return services.UserMessage(err)
}
