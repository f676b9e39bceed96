package client

import (
	"context"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.StatusResponse, error)
	ListCustomers(ctx context.Context, req models.ListRequest) ([]models.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*models.CustomerResponse, error)
	CreateCustomer(ctx context.Context, p models.CustomerPayload) error
	UpdateCustomer(ctx context.Context, p models.CustomerPayload) error
	ListInterests(ctx context.Context) ([]models.Interest, error)
}

// TokenSource yields the bearer token for outgoing requests, "" if none.
type TokenSource interface {
	Token() string
}

// SessionClearer drops the local session when the backend rejects it.
type SessionClearer interface {
	Clear(ctx context.Context) error
}
