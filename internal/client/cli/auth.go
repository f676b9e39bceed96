package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/navigation"
	"github.com/dmitrijs2005/clientdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, an email and a password and creates an
// account. Validation failures are printed per field and nothing is sent.
func (a *App) Register(ctx context.Context) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenRegister); err != nil {
		return report(err)
	}
	defer func() { _ = a.gate.Navigate(ctx, navigation.ScreenLogin) }()

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reg := models.Registration{Username: username, Email: email, Password: string(password)}
	if err := a.auth.Register(ctx, reg); err != nil {
		return report(err)
	}

	printlnFn("Account created. You can now login.")
	return nil
}

// Login prompts for credentials, prefilled with the remembered username, and
// asks whether to remember the username for next time.
func (a *App) Login(ctx context.Context) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenLogin); err != nil {
		return report(err)
	}

	remembered, err := a.auth.RememberedUsername(ctx)
	if err != nil {
		a.log.Warn(ctx, "remembered username unavailable", "error", err)
	}
	prompt := "Enter username"
	if remembered != "" {
		prompt = fmt.Sprintf("Enter username [%s]", remembered)
	}

	username, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		username = remembered
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := a.confirm("Remember username?")
	if err != nil {
		return err
	}

	creds := models.Credentials{Username: username, Password: string(password)}
	if err := a.auth.Login(ctx, creds, remember); err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.sessions.Current().Username))
	if !a.interests.Loaded() {
		printlnFn("Interest list could not be loaded; it will be retried when a client form opens.")
	}
	return nil
}

// Logout drops the session locally. No backend call is made.
func (a *App) Logout(ctx context.Context) error {
	a.loggingOut.Store(true)
	defer a.loggingOut.Store(false)

	if err := a.auth.Logout(ctx); err != nil {
		return report(err)
	}
	printlnFn("Logged out.")
	return nil
}
