package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// InterestService caches the interest reference list. It is filled once per
// session and read by the customer form.
type InterestService interface {
	Load(ctx context.Context) error
	List() []models.Interest
	Has(id string) bool
	Loaded() bool
	Reset()
}

type interestService struct {
	client client.Client

	mu     sync.RWMutex
	items  []models.Interest
	loaded bool
}

func NewInterestService(c client.Client) InterestService {
	return &interestService{client: c}
}

// Load fetches the list and replaces the cache. On failure the cache is left
// as it was.
func (s *interestService) Load(ctx context.Context) error {
	items, err := s.client.ListInterests(ctx)
	if err != nil {
		return fmt.Errorf("load interests: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
	return nil
}

func (s *interestService) List() []models.Interest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Interest(nil), s.items...)
}

func (s *interestService) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *interestService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *interestService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loaded = false
}
