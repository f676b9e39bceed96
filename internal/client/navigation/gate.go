// Package navigation decides which screens are reachable from the state of
// the session, and forces a logout once the session expires.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/session"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenRegister   Screen = "register"
	ScreenHome       Screen = "home"
	ScreenClients    Screen = "clients"
	ScreenEditClient Screen = "edit-client"
)

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

var screens = map[State][]Screen{
	Unauthenticated: {ScreenLogin, ScreenRegister},
	Authenticated:   {ScreenHome, ScreenClients, ScreenEditClient},
}

// home is where each state lands after a transition.
var home = map[State]Screen{
	Unauthenticated: ScreenLogin,
	Authenticated:   ScreenHome,
}

var ErrUnreachable = errors.New("screen not reachable")

// Sessions is the view of the session store the gate needs.
type Sessions interface {
	Current() models.Session
	Clear(ctx context.Context) error
	Subscribe(fn func(models.Session)) func()
}

// Gate is the two-state navigation machine. It is safe for concurrent use:
// the expiry watcher and store notifications run beside the REPL.
type Gate struct {
	sessions Sessions
	log      logging.Logger
	now      func() time.Time

	mu          sync.Mutex
	state       State
	screen      Screen
	listeners   []func(State)
	unsubscribe func()
}

// NewGate starts in the state matching the current session and re-checks on
// every change of the store. Call Close to detach it.
func NewGate(sessions Sessions, log logging.Logger) *Gate {
	g := &Gate{sessions: sessions, log: log, now: time.Now, screen: ScreenLogin}
	if sessions.Current().IsAuthenticated(g.now()) {
		g.state = Authenticated
		g.screen = ScreenHome
	}
	g.unsubscribe = sessions.Subscribe(func(models.Session) {
		if err := g.Check(context.Background(), g.now()); err != nil {
			g.log.Error(context.Background(), "session check failed", "error", err)
		}
	})
	return g
}

func (g *Gate) Close() {
	g.unsubscribe()
}

// OnChange registers fn to run after every state transition.
func (g *Gate) OnChange(fn func(State)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Screen() Screen {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.screen
}

// Reachable reports whether screen belongs to the current state's set.
func (g *Gate) Reachable(screen Screen) bool {
	return reachable(g.State(), screen)
}

func reachable(state State, screen Screen) bool {
	for _, s := range screens[state] {
		if s == screen {
			return true
		}
	}
	return false
}

func requiresAuth(screen Screen) bool {
	return reachable(Authenticated, screen)
}

// Navigate moves to screen. Authenticated screens re-check the session first,
// so an expired session never renders one.
func (g *Gate) Navigate(ctx context.Context, screen Screen) error {
	if requiresAuth(screen) {
		if err := g.Check(ctx, g.now()); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !reachable(g.state, screen) {
		return fmt.Errorf("%w: %s while %s", ErrUnreachable, screen, g.state)
	}
	g.screen = screen
	return nil
}

// Check logs out when the session has expired at now, then settles the state
// on the current session.
func (g *Gate) Check(ctx context.Context, now time.Time) error {
	sess := g.sessions.Current()
	if sess.Token != "" && session.IsExpired(sess, now) {
		g.log.Info(ctx, "session expired, logging out", "user", sess.Username, "expiration", sess.Expiration)
		if err := g.sessions.Clear(ctx); err != nil {
			g.settle(models.Session{}, now)
			return fmt.Errorf("force logout: %w", err)
		}
		sess = g.sessions.Current()
	}
	g.settle(sess, now)
	return nil
}

func (g *Gate) settle(sess models.Session, now time.Time) {
	next := Unauthenticated
	if sess.IsAuthenticated(now) {
		next = Authenticated
	}

	g.mu.Lock()
	changed := g.state != next
	var notify []func(State)
	if changed {
		g.state = next
		g.screen = home[next]
		notify = append(notify, g.listeners...)
	}
	g.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
}

// Watch re-runs Check every interval until ctx is done. It is the client's
// only background task. A non-positive interval returns at once; sessions are
// still checked before every authenticated screen.
func (g *Gate) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		g.log.Error(ctx, "expiry watcher not started", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := g.Check(ctx, g.now()); err != nil {
				g.log.Error(ctx, "session check failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
