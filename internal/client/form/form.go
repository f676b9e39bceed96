// Package form implements the customer edit form: create and edit modes,
// rule-table validation, photo attachment and submission to the backend.
package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/photo"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/validation"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Backend is the part of the HTTP client the form calls.
type Backend interface {
	GetCustomer(ctx context.Context, id string) (*models.CustomerResponse, error)
	CreateCustomer(ctx context.Context, p models.CustomerPayload) error
	UpdateCustomer(ctx context.Context, p models.CustomerPayload) error
}

// Interests is the cached interest list.
type Interests interface {
	Has(id string) bool
	List() []models.Interest
}

// ErrNotSaved is returned by Remove in create mode.
var ErrNotSaved = errors.New("customer has not been saved yet")

// CustomerForm holds the values of one customer being created or edited.
type CustomerForm struct {
	backend   Backend
	interests Interests
	userID    string
	log       logging.Logger
	now       func() time.Time

	mode   Mode
	Values models.Customer
	errs   validation.Errors
}

// New opens a form. An empty id means create mode with default values; any
// other id means edit mode, and Load must be called to fetch the record.
func New(backend Backend, interests Interests, userID string, id string, log logging.Logger) *CustomerForm {
	f := &CustomerForm{
		backend:   backend,
		interests: interests,
		userID:    userID,
		log:       log,
		now:       time.Now,
	}
	if id == "" {
		f.mode = ModeCreate
		f.Values = f.defaults()
	} else {
		f.mode = ModeEdit
		f.Values = models.Customer{ID: id}
	}
	return f
}

func (f *CustomerForm) Mode() Mode { return f.mode }

// Errors returns the field errors of the last validation.
func (f *CustomerForm) Errors() validation.Errors { return f.errs }

func (f *CustomerForm) today() time.Time {
	y, m, d := f.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *CustomerForm) defaults() models.Customer {
	today := f.today()
	return models.Customer{
		Sex:             models.SexMale,
		BirthDate:       today.AddDate(-20, 0, 0),
		AffiliationDate: today.AddDate(-1, 0, 0),
	}
}

// Load fetches the record in edit mode and replaces the values with it.
// Missing or unparseable dates become today. It is a no-op in create mode.
func (f *CustomerForm) Load(ctx context.Context) error {
	if f.mode != ModeEdit {
		return nil
	}

	resp, err := f.backend.GetCustomer(ctx, f.Values.ID)
	if err != nil {
		return fmt.Errorf("load customer %s: %w", f.Values.ID, err)
	}

	c := resp.Customer()
	if c.ID == "" {
		c.ID = f.Values.ID
	}
	c.BirthDate = f.dateOrToday(c.BirthDate)
	c.AffiliationDate = f.dateOrToday(c.AffiliationDate)
	f.Values = c
	f.errs = nil
	return nil
}

func (f *CustomerForm) dateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return f.today()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the values against the customer rule table and keeps the
// field errors for display.
func (f *CustomerForm) Validate() error {
	err := validation.CustomerSchema(f.interests.Has).Validate(f.Values)
	f.errs = nil
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		f.errs = verrs
	}
	return err
}

// Submit validates and then creates or updates the record. onUpdate, when
// non-nil, receives the saved record's summary.
func (f *CustomerForm) Submit(ctx context.Context, onUpdate func(models.CustomerSummary)) error {
	if err := f.Validate(); err != nil {
		return err
	}

	payload := f.Values.Payload(f.userID)
	var err error
	if f.mode == ModeEdit {
		err = f.backend.UpdateCustomer(ctx, payload)
	} else {
		err = f.backend.CreateCustomer(ctx, payload)
	}
	if err != nil {
		return fmt.Errorf("%s customer: %w", f.mode, err)
	}
	f.log.Info(ctx, "customer saved", "mode", f.mode.String(), "id", f.Values.ID, "identification", f.Values.Identification)

	if onUpdate != nil {
		onUpdate(f.Values.Summary())
	}
	return nil
}

// AttachPhoto runs picker and stores the result as a data URI. Cancellation
// and permission denial leave the photo unchanged and are not errors.
func (f *CustomerForm) AttachPhoto(ctx context.Context, picker photo.Picker) error {
	asset, err := picker.Pick(ctx)
	switch {
	case errors.Is(err, photo.ErrCancelled), errors.Is(err, photo.ErrPermissionDenied):
		f.log.Debug(ctx, "photo not attached", "reason", err)
		return nil
	case err != nil:
		return fmt.Errorf("attach photo: %w", err)
	}
	f.Values.Photo = photo.EncodeDataURI(asset)
	return nil
}

// Remove asks confirm and, if the user agrees, reports that removal is not
// available: the backend has no delete endpoint.
func (f *CustomerForm) Remove(ctx context.Context, confirm func(models.Customer) (bool, error)) error {
	if f.mode != ModeEdit {
		return ErrNotSaved
	}
	ok, err := confirm(f.Values)
	if err != nil {
		return fmt.Errorf("confirm removal: %w", err)
	}
	if !ok {
		return nil
	}
	f.log.Warn(ctx, "customer removal requested but not supported by backend", "id", f.Values.ID)
	return services.ErrRemoveUnsupported
}
