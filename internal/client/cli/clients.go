package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/navigation"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
)

// Home shows who is logged in and until when.
func (a *App) Home(ctx context.Context) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenHome); err != nil {
		return report(err)
	}
	sess := a.sessions.Current()
	printlnFn(fmt.Sprintf("Logged in as %s (session valid until %s).", sess.Username, sess.Expiration.Local().Format("2006-01-02 15:04")))
	printlnFn(helpLoggedIn)
	return nil
}

// Clients lists every customer of the user.
func (a *App) Clients(ctx context.Context) error {
	return a.Search(ctx, services.FilterNone, "")
}

// Search lists the customers matching query under filter.
func (a *App) Search(ctx context.Context, filter services.Filter, query string) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenClients); err != nil {
		return report(err)
	}
	if err := a.customers.Search(ctx, filter, query, a.userID()); err != nil {
		return report(err)
	}
	printCustomers(a.customers.Items())
	return nil
}

// Refresh repeats the last search.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenClients); err != nil {
		return report(err)
	}
	if err := a.customers.Refresh(ctx); err != nil {
		return report(err)
	}
	printCustomers(a.customers.Items())
	return nil
}

func printCustomers(items []models.Customer) {
	if len(items) == 0 {
		printlnFn("No clients found.")
		return
	}
	for _, c := range items {
		line := fmt.Sprintf("%-36s  %-15s  %s %s", c.ID, c.Identification, c.FirstName, c.LastName)
		if !c.AffiliationDate.IsZero() {
			line += "  since " + c.AffiliationDate.Format(form.DateLayout)
		}
		printlnFn(line)
	}
	printlnFn(fmt.Sprintf("%d client(s).", len(items)))
}
