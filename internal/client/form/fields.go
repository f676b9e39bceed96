package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// DateLayout is how dates are typed and shown.
const DateLayout = time.DateOnly

// Field describes one editable value. Name matches the validation field name.
type Field struct {
	Name  string
	Label string
	get   func(*models.Customer) string
	set   func(*models.Customer, string) error
}

func text(name, label string, ptr func(*models.Customer) *string) Field {
	return Field{
		Name:  name,
		Label: label,
		get:   func(c *models.Customer) string { return *ptr(c) },
		set: func(c *models.Customer, v string) error {
			*ptr(c) = strings.TrimSpace(v)
			return nil
		},
	}
}

func date(name, label string, ptr func(*models.Customer) *time.Time) Field {
	return Field{
		Name:  name,
		Label: label,
		get: func(c *models.Customer) string {
			if ptr(c).IsZero() {
				return ""
			}
			return ptr(c).Format(DateLayout)
		},
		set: func(c *models.Customer, v string) error {
			t, err := time.Parse(DateLayout, strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: expected YYYY-MM-DD", label)
			}
			*ptr(c) = t
			return nil
		},
	}
}

// Fields lists the editable values in prompt order. The photo is attached
// through AttachPhoto instead.
var Fields = []Field{
	text("identification", "Identification", func(c *models.Customer) *string { return &c.Identification }),
	text("firstName", "First name", func(c *models.Customer) *string { return &c.FirstName }),
	text("lastName", "Last name", func(c *models.Customer) *string { return &c.LastName }),
	{
		Name:  "sex",
		Label: "Sex (M/F)",
		get:   func(c *models.Customer) string { return string(c.Sex) },
		set: func(c *models.Customer, v string) error {
			c.Sex = models.Sex(strings.ToUpper(strings.TrimSpace(v)))
			return nil
		},
	},
	date("birthDate", "Birth date", func(c *models.Customer) *time.Time { return &c.BirthDate }),
	date("affiliationDate", "Affiliation date", func(c *models.Customer) *time.Time { return &c.AffiliationDate }),
	text("mobilePhone", "Mobile phone", func(c *models.Customer) *string { return &c.MobilePhone }),
	text("otherPhone", "Other phone", func(c *models.Customer) *string { return &c.OtherPhone }),
	text("address", "Address", func(c *models.Customer) *string { return &c.Address }),
	text("personalNote", "Personal note", func(c *models.Customer) *string { return &c.PersonalNote }),
	text("interestId", "Interest id", func(c *models.Customer) *string { return &c.InterestID }),
}

// Get returns the display value of a field.
func (f *CustomerForm) Get(field Field) string {
	return field.get(&f.Values)
}

// Set parses raw into a field. On error the value is left unchanged.
func (f *CustomerForm) Set(field Field, raw string) error {
	return field.set(&f.Values, raw)
}
