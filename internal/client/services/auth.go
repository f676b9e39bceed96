package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/clientdesk/internal/client/session"
	"github.com/dmitrijs2005/clientdesk/internal/client/validation"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// KeyRememberedUsername holds the username prefilled on the next login.
const KeyRememberedUsername = "remembered_username"

// SessionStore is the part of session.Store the auth workflow writes to.
type SessionStore interface {
	Set(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: validate, authenticate, store the session, remember or forget the
//     username, then warm the interest cache.
//   - Logout: drop the local session and the interest cache. No backend call.
//   - Register: validate and create an account; success requires an explicit
//     "Success" status in the response.
//   - RememberedUsername: the username saved by the last "remember me" login.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials, remember bool) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, reg models.Registration) error
	RememberedUsername(ctx context.Context) (string, error)
}

type authService struct {
	client    client.Client
	store     SessionStore
	meta      metadata.Repository
	interests InterestService
	log       logging.Logger
}

func NewAuthService(c client.Client, store SessionStore, meta metadata.Repository, interests InterestService, log logging.Logger) AuthService {
	return &authService{client: c, store: store, meta: meta, interests: interests, log: log}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials, remember bool) error {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := validation.LoginSchema.Validate(creds); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return fmt.Errorf("login: %w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login: %w: empty token", ErrInvalidSession)
	}

	exp, ok := session.ParseExpiration(resp.Expiration, resp.Token)
	if !ok {
		return fmt.Errorf("login: %w: unreadable expiration %q", ErrInvalidSession, resp.Expiration)
	}

	username := resp.Username
	if username == "" {
		username = creds.Username
	}
	sess := models.Session{Token: resp.Token, UserID: resp.UserID, Username: username, Expiration: exp}
	if err := a.store.Set(ctx, sess); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "logged in", "user", username, "expiration", exp)

	if remember {
		err = a.meta.Set(ctx, KeyRememberedUsername, creds.Username)
	} else {
		err = a.meta.Delete(ctx, KeyRememberedUsername)
	}
	if err != nil {
		a.log.Warn(ctx, "failed to update remembered username", "error", err)
	}

	if err := a.interests.Load(ctx); err != nil {
		a.log.Warn(ctx, "interest list not loaded", "error", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.interests.Reset()
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	if err := validation.RegisterSchema.Validate(reg); err != nil {
		return err
	}

	resp, err := a.client.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if resp.Status != models.StatusSuccess {
		return &RejectedError{Status: resp.Status, Message: resp.Message}
	}
	a.log.Info(ctx, "account registered", "user", reg.Username)
	return nil
}

func (a *authService) RememberedUsername(ctx context.Context) (string, error) {
	v, _, err := a.meta.Get(ctx, KeyRememberedUsername)
	if err != nil {
		return "", fmt.Errorf("read remembered username: %w", err)
	}
	return v, nil
}
