package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/navigation"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// ------------ output & input stubs ------------

// captureOutput replaces printlnFn and returns a function yielding everything
// printed so far.
func captureOutput(t *testing.T) func() string {
	t.Helper()
	var (
		mu  sync.Mutex
		buf strings.Builder
	)
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Fprintln(&buf, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return buf.String()
	}
}

// stubInputs answers text prompts from answers in order and the password
// prompt with password. Prompts are recorded.
func stubInputs(t *testing.T, password string, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return &prompts
}

// ------------ fakes ------------

type fakeGate struct {
	state    navigation.State
	screen   navigation.Screen
	visited  []navigation.Screen
	navErr   error
	watching bool
}

func (g *fakeGate) Navigate(_ context.Context, s navigation.Screen) error {
	if g.navErr != nil {
		return g.navErr
	}
	g.visited = append(g.visited, s)
	g.screen = s
	return nil
}

func (g *fakeGate) State() navigation.State   { return g.state }
func (g *fakeGate) Screen() navigation.Screen { return g.screen }
func (g *fakeGate) Watch(ctx context.Context, _ time.Duration) {
	g.watching = true
	<-ctx.Done()
}

type fakeSessions struct{ sess models.Session }

func (f *fakeSessions) Current() models.Session { return f.sess }

type fakeAuth struct {
	remembered string

	loginCreds    models.Credentials
	loginRemember bool
	loginErr      error
	onLogin       func()

	reg    models.Registration
	regErr error

	logoutCalled bool
	logoutErr    error
	onLogout     func()
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials, remember bool) error {
	f.loginCreds, f.loginRemember = creds, remember
	if f.loginErr == nil && f.onLogin != nil {
		f.onLogin()
	}
	return f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	if f.onLogout != nil {
		f.onLogout()
	}
	return f.logoutErr
}

func (f *fakeAuth) Register(_ context.Context, reg models.Registration) error {
	f.reg = reg
	return f.regErr
}

func (f *fakeAuth) RememberedUsername(context.Context) (string, error) {
	return f.remembered, nil
}

type fakeCustomers struct {
	items     []models.Customer
	err       error
	searches  []string
	refreshed int
}

func (f *fakeCustomers) Search(_ context.Context, filter services.Filter, query string, userID string) error {
	f.searches = append(f.searches, fmt.Sprintf("%s:%s:%s", filter, query, userID))
	return f.err
}

func (f *fakeCustomers) Refresh(context.Context) error {
	f.refreshed++
	return f.err
}

func (f *fakeCustomers) Items() []models.Customer { return f.items }
func (f *fakeCustomers) Loading() bool            { return false }
func (f *fakeCustomers) Refreshing() bool         { return false }

type fakeInterests struct {
	items   []models.Interest
	loaded  bool
	loadErr error
	resets  int
}

func (f *fakeInterests) Load(context.Context) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = true
	return nil
}

func (f *fakeInterests) List() []models.Interest { return f.items }

func (f *fakeInterests) Has(id string) bool {
	for _, it := range f.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeInterests) Loaded() bool { return f.loaded }
func (f *fakeInterests) Reset()       { f.resets++; f.loaded = false }

type fakeBackend struct {
	get     *models.CustomerResponse
	getErr  error
	created []models.CustomerPayload
	updated []models.CustomerPayload
}

func (b *fakeBackend) GetCustomer(context.Context, string) (*models.CustomerResponse, error) {
	return b.get, b.getErr
}

func (b *fakeBackend) CreateCustomer(_ context.Context, p models.CustomerPayload) error {
	b.created = append(b.created, p)
	return nil
}

func (b *fakeBackend) UpdateCustomer(_ context.Context, p models.CustomerPayload) error {
	b.updated = append(b.updated, p)
	return nil
}

type testApp struct {
	*App
	gate      *fakeGate
	sessions  *fakeSessions
	auth      *fakeAuth
	customers *fakeCustomers
	interests *fakeInterests
	backend   *fakeBackend
}

func newTestApp(loggedIn bool) *testApp {
	ta := &testApp{
		gate:      &fakeGate{screen: navigation.ScreenLogin},
		sessions:  &fakeSessions{},
		auth:      &fakeAuth{},
		customers: &fakeCustomers{},
		interests: &fakeInterests{items: []models.Interest{{ID: "i-1", Description: "Deportes"}}, loaded: true},
		backend:   &fakeBackend{},
	}
	if loggedIn {
		ta.gate.state = navigation.Authenticated
		ta.gate.screen = navigation.ScreenHome
		ta.sessions.sess = models.Session{Token: "tok", UserID: "u-1", Username: "ana", Expiration: time.Now().Add(time.Hour)}
	}
	ta.App = &App{
		log:       logging.Nop(),
		sessions:  ta.sessions,
		gate:      ta.gate,
		auth:      ta.auth,
		customers: ta.customers,
		interests: ta.interests,
		backend:   ta.backend,
		reader:    bufio.NewReader(strings.NewReader("")),
	}
	return ta
}
