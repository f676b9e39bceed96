package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/navigation"
	"github.com/dmitrijs2005/clientdesk/internal/client/validation"
)

// New opens an empty customer form.
func (a *App) New(ctx context.Context) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenEditClient); err != nil {
		return report(err)
	}
	f := form.New(a.backend, a.interests, a.userID(), "", a.log)
	return a.runForm(ctx, f)
}

// Edit loads the customer with the given id into the form.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenEditClient); err != nil {
		return report(err)
	}
	f := form.New(a.backend, a.interests, a.userID(), id, a.log)
	if err := f.Load(ctx); err != nil {
		a.back(ctx)
		return report(err)
	}
	return a.runForm(ctx, f)
}

// Remove asks for confirmation before removing a customer.
func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.gate.Navigate(ctx, navigation.ScreenEditClient); err != nil {
		return report(err)
	}
	defer a.back(ctx)

	f := form.New(a.backend, a.interests, a.userID(), id, a.log)
	if err := f.Load(ctx); err != nil {
		return report(err)
	}
	err := f.Remove(ctx, func(c models.Customer) (bool, error) {
		return a.confirm(fmt.Sprintf("Remove %s %s (%s)?", c.FirstName, c.LastName, c.Identification))
	})
	return report(err)
}

// back returns to the client list after the form closes.
func (a *App) back(ctx context.Context) {
	_ = a.gate.Navigate(ctx, navigation.ScreenClients)
}

// runForm prompts for every field, offers a photo, then submits. When
// validation fails only the failing fields are asked again.
func (a *App) runForm(ctx context.Context, f *form.CustomerForm) error {
	defer a.back(ctx)

	if err := a.ensureInterests(ctx); err != nil {
		printlnFn("Interest list unavailable: " + reportText(err))
	}

	fields := form.Fields
	askPhoto := true
	for {
		for _, fld := range fields {
			if err := a.promptField(f, fld); err != nil {
				return err
			}
		}
		if askPhoto {
			if err := a.promptPhoto(ctx, f); err != nil {
				return err
			}
		}

		err := f.Submit(ctx, func(s models.CustomerSummary) {
			printlnFn(fmt.Sprintf("Saved %s %s (%s).", s.FirstName, s.LastName, s.Identification))
		})
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			return report(err)
		}

		printlnFn(reportText(err))
		again, cerr := a.confirm("Correct these fields?")
		if cerr != nil {
			return cerr
		}
		if !again {
			printlnFn("Changes discarded.")
			return err
		}
		fields = failing(verrs)
		askPhoto = verrs.Message("photo") != ""
		if askPhoto {
			f.Values.Photo = ""
		}
	}
}

func (a *App) ensureInterests(ctx context.Context) error {
	if a.interests.Loaded() {
		return nil
	}
	return a.interests.Load(ctx)
}

func (a *App) promptField(f *form.CustomerForm, fld form.Field) error {
	if fld.Name == "interestId" {
		a.printInterests()
	}

	prompt := fld.Label
	if cur := f.Get(fld); cur != "" {
		prompt = fmt.Sprintf("%s [%s]", fld.Label, cur)
	}

	for {
		raw, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		if err := f.Set(fld, raw); err != nil {
			printlnFn(err.Error())
			continue
		}
		return nil
	}
}

func (a *App) promptPhoto(ctx context.Context, f *form.CustomerForm) error {
	question := "Attach a photo?"
	if f.Values.Photo != "" {
		question = "Replace the photo?"
	}
	ok, err := a.confirm(question)
	if err != nil || !ok {
		return err
	}
	if err := f.AttachPhoto(ctx, a.picker); err != nil {
		printlnFn(err.Error())
	}
	return nil
}

func (a *App) printInterests() {
	items := a.interests.List()
	if len(items) == 0 {
		printlnFn("No interests available.")
		return
	}
	printlnFn("Interests:")
	for _, it := range items {
		printlnFn(fmt.Sprintf("  %s  %s", it.ID, it.Description))
	}
}

// failing keeps the form fields named in verrs, in prompt order.
func failing(verrs validation.Errors) []form.Field {
	var out []form.Field
	for _, fld := range form.Fields {
		if verrs.Message(fld.Name) != "" {
			out = append(out, fld)
		}
	}
	return out
}
