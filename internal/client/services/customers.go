package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// Filter selects which criterion a customer search uses. The two criteria are
// mutually exclusive.
type Filter int

const (
	FilterNone Filter = iota
	FilterByName
	FilterByIdentification
)

func (f Filter) String() string {
	switch f {
	case FilterByName:
		return "name"
	case FilterByIdentification:
		return "identification"
	default:
		return "none"
	}
}

// ListRequest builds the list body for f: the active criterion carries query,
// the other is empty.
func (f Filter) ListRequest(query, userID string) models.ListRequest {
	req := models.ListRequest{UserID: userID}
	switch f {
	case FilterByName:
		req.Name = query
	case FilterByIdentification:
		req.Identification = query
	}
	return req
}

// CustomerService holds the current customer list.
type CustomerService interface {
	Search(ctx context.Context, filter Filter, query string, userID string) error
	Refresh(ctx context.Context) error
	Items() []models.Customer
	Loading() bool
	Refreshing() bool
}

type search struct {
	filter Filter
	query  string
	userID string
}

type customerService struct {
	client client.Client

	mu         sync.RWMutex
	items      []models.Customer
	last       search
	loading    bool
	refreshing bool
}

func NewCustomerService(c client.Client) CustomerService {
	return &customerService{client: c}
}

// Search replaces the list with the backend's result. An empty result is a
// valid state; on error the previous list is kept.
func (s *customerService) Search(ctx context.Context, filter Filter, query string, userID string) error {
	q := search{filter: filter, query: strings.TrimSpace(query), userID: userID}
	if filter == FilterNone {
		q.query = ""
	}

	s.mu.Lock()
	s.last = q
	s.loading = true
	s.mu.Unlock()
	defer s.setFlag(&s.loading, false)

	return s.fetch(ctx, q)
}

// Refresh re-issues the last search, whether or not it succeeded.
func (s *customerService) Refresh(ctx context.Context) error {
	s.mu.RLock()
	q := s.last
	s.mu.RUnlock()

	s.setFlag(&s.refreshing, true)
	defer s.setFlag(&s.refreshing, false)

	return s.fetch(ctx, q)
}

func (s *customerService) fetch(ctx context.Context, q search) error {
	resp, err := s.client.ListCustomers(ctx, q.filter.ListRequest(q.query, q.userID))
	if err != nil {
		return fmt.Errorf("list customers: %w", err)
	}

	items := make([]models.Customer, 0, len(resp))
	for _, r := range resp {
		items = append(items, r.Customer())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

func (s *customerService) setFlag(flag *bool, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*flag = v
}

func (s *customerService) Items() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.items...)
}

func (s *customerService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *customerService) Refreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing
}
