// Package session owns the authenticated session of the client. The Store is
// created once in main and handed by reference to the HTTP client and to the
// navigation gate, each of which sees it through its own small interface.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/clientdesk/internal/dbx"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"github.com/dmitrijs2005/clientdesk/internal/timex"
)

// Durable keys, one per session field.
const (
	KeyToken      = "auth.token"
	KeyExpiration = "auth.expiration"
	KeyUserID     = "auth.userid"
	KeyUsername   = "auth.username"
)

var sessionKeys = []string{KeyToken, KeyExpiration, KeyUserID, KeyUsername}

// Store keeps the current session in memory and mirrors every field to the
// metadata table. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu        sync.RWMutex
	current   models.Session
	listeners map[int]func(models.Session)
	nextID    int
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, listeners: make(map[int]func(models.Session))}
}

// Restore loads a previously persisted session. Missing keys leave the
// corresponding fields empty; an unparseable expiration leaves it zero, which
// makes the session count as expired.
func (s *Store) Restore(ctx context.Context) error {
	values, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	restored := models.Session{
		Token:    values[KeyToken],
		UserID:   values[KeyUserID],
		Username: values[KeyUsername],
	}
	if exp, ok := timex.ParseServerTime(values[KeyExpiration]); ok {
		restored.Expiration = exp
	}

	s.swap(restored)
	if restored.Token != "" {
		s.log.Debug(ctx, "session restored", "user", restored.Username, "expiration", restored.Expiration)
	}
	return nil
}

// Set overwrites the session and persists every field in one transaction.
// Memory is only updated once the write has committed.
func (s *Store) Set(ctx context.Context, sess models.Session) error {
	values := map[string]string{
		KeyToken:      sess.Token,
		KeyExpiration: sess.Expiration.UTC().Format(time.RFC3339Nano),
		KeyUserID:     sess.UserID,
		KeyUsername:   sess.Username,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range sessionKeys {
			if err := repo.Set(ctx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.swap(sess)
	return nil
}

// Clear resets the session and removes every persisted key. The in-memory
// session is dropped even if the delete fails, so no further request carries
// the old token. Clearing an empty session is a no-op apart from the deletes.
func (s *Store) Clear(ctx context.Context) error {
	s.swap(models.Session{})

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range sessionKeys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Subscribe registers fn to be called after every change of the session,
// outside the store's lock.
func (s *Store) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) swap(next models.Session) {
	s.mu.Lock()
	changed := s.current != next
	s.current = next
	var notify []func(models.Session)
	if changed {
		notify = make([]func(models.Session), 0, len(s.listeners))
		for _, fn := range s.listeners {
			notify = append(notify, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
}

// IsExpired reports whether now is past the session's expiration. A zero
// expiration is expired.
func IsExpired(sess models.Session, now time.Time) bool {
	return sess.Expiration.IsZero() || now.After(sess.Expiration)
}
