package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/storage"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ---- fake client ----

// fakeClient implements client.Client and records every call.
type fakeClient struct {
	mu sync.Mutex

	LoginRet *models.LoginResponse
	LoginErr error

	RegisterRet *models.StatusResponse
	RegisterErr error

	ListRet []models.CustomerResponse
	ListErr error

	GetRet *models.CustomerResponse
	GetErr error

	CreateErr error
	UpdateErr error

	InterestsRet []models.Interest
	InterestsErr error

	Calls        []string
	LastLogin    models.Credentials
	LastRegister models.Registration
	ListRequests []models.ListRequest
	Created      []models.CustomerPayload
	Updated      []models.CustomerPayload
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	f.record("Login")
	f.LastLogin = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (*models.StatusResponse, error) {
	f.record("Register")
	f.LastRegister = reg
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ListCustomers(_ context.Context, req models.ListRequest) ([]models.CustomerResponse, error) {
	f.record("ListCustomers")
	f.ListRequests = append(f.ListRequests, req)
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetCustomer(_ context.Context, id string) (*models.CustomerResponse, error) {
	f.record("GetCustomer")
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateCustomer(_ context.Context, p models.CustomerPayload) error {
	f.record("CreateCustomer")
	f.Created = append(f.Created, p)
	return f.CreateErr
}

func (f *fakeClient) UpdateCustomer(_ context.Context, p models.CustomerPayload) error {
	f.record("UpdateCustomer")
	f.Updated = append(f.Updated, p)
	return f.UpdateErr
}

func (f *fakeClient) ListInterests(context.Context) ([]models.Interest, error) {
	f.record("ListInterests")
	return f.InterestsRet, f.InterestsErr
}
