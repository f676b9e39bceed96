package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

func TestLoginSchema(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		field   string
		message string
	}{
		{"valid", models.Credentials{Username: "ana", Password: "Secret123"}, "", ""},
		{"empty username", models.Credentials{Username: "  ", Password: "Secret123"}, "username", "username is required"},
		{"too short", models.Credentials{Username: "ana", Password: "Se1"}, "password", "password must be at least 8 characters"},
		{"too long", models.Credentials{Username: "ana", Password: "Secret123Secret123abc"}, "password", "password must be at most 20 characters"},
		{"no lowercase", models.Credentials{Username: "ana", Password: "SECRET123"}, "password", "password must contain a lowercase letter"},
		{"no uppercase", models.Credentials{Username: "ana", Password: "secret123"}, "password", "password must contain an uppercase letter"},
		{"no digit", models.Credentials{Username: "ana", Password: "SecretSecret"}, "password", "password must contain a digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoginSchema.Validate(tt.creds)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.message, errs.Message(tt.field))
		})
	}
}

func TestLoginSchema_ReportsEveryFailingField(t *testing.T) {
	err := LoginSchema.Validate(models.Credentials{})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, Errors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password must be at least 8 characters"},
	}, errs)
	assert.Equal(t, "validation failed: username: username is required; password: password must be at least 8 characters", err.Error())
}

func TestRegisterSchema(t *testing.T) {
	valid := models.Registration{Username: "ana", Email: "ana@example.com", Password: "Secret123"}
	require.NoError(t, RegisterSchema.Validate(valid))

	tests := []struct {
		name    string
		mutate  func(*models.Registration)
		field   string
		message string
	}{
		{"short username", func(r *models.Registration) { r.Username = "an" }, "username", "username must be at least 3 characters"},
		{"missing email", func(r *models.Registration) { r.Email = "" }, "email", "email is required"},
		{"not an email", func(r *models.Registration) { r.Email = "not-an-email" }, "email", "invalid email"},
		{"display name", func(r *models.Registration) { r.Email = "Ana <ana@example.com>" }, "email", "invalid email"},
		{"no dotted domain", func(r *models.Registration) { r.Email = "ana@localhost" }, "email", "invalid email"},
		{"weak password", func(r *models.Registration) { r.Password = "secret123" }, "password", "password must contain an uppercase letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			var errs Errors
			require.ErrorAs(t, RegisterSchema.Validate(r), &errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs.Message(tt.field))
		})
	}
}

func validCustomer() models.Customer {
	return models.Customer{
		Identification:  "001-1234567-8",
		FirstName:       "Ana",
		LastName:        "Pérez",
		Sex:             models.SexFemale,
		BirthDate:       time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		AffiliationDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		MobilePhone:     "809-555-0101",
		OtherPhone:      "809-555-0102",
		Address:         "Calle 1",
		PersonalNote:    "VIP",
		InterestID:      "i-1",
	}
}

func TestCustomerSchema(t *testing.T) {
	schema := CustomerSchema(func(id string) bool { return id == "i-1" })
	require.NoError(t, schema.Validate(validCustomer()))

	tests := []struct {
		name    string
		mutate  func(*models.Customer)
		field   string
		message string
	}{
		{"identification", func(c *models.Customer) { c.Identification = "" }, "identification", "required"},
		{"first name", func(c *models.Customer) { c.FirstName = " " }, "firstName", "required"},
		{"last name", func(c *models.Customer) { c.LastName = "" }, "lastName", "required"},
		{"sex missing", func(c *models.Customer) { c.Sex = "" }, "sex", "required"},
		{"sex unknown", func(c *models.Customer) { c.Sex = "X" }, "sex", "sex must be M or F"},
		{"birth date", func(c *models.Customer) { c.BirthDate = time.Time{} }, "birthDate", "invalid date"},
		{"affiliation date", func(c *models.Customer) { c.AffiliationDate = time.Time{} }, "affiliationDate", "invalid date"},
		{"mobile phone", func(c *models.Customer) { c.MobilePhone = "" }, "mobilePhone", "required"},
		{"other phone", func(c *models.Customer) { c.OtherPhone = "" }, "otherPhone", "required"},
		{"address", func(c *models.Customer) { c.Address = "" }, "address", "required"},
		{"note", func(c *models.Customer) { c.PersonalNote = "" }, "personalNote", "required"},
		{"interest missing", func(c *models.Customer) { c.InterestID = "" }, "interestId", "required"},
		{"interest unknown", func(c *models.Customer) { c.InterestID = "i-9" }, "interestId", "unknown interest"},
		{"photo garbage", func(c *models.Customer) { c.Photo = "data:image/png;base64,@@@" }, "photo", "photo is not valid base64"},
		{"photo bad padding", func(c *models.Customer) { c.Photo = "aGVsbG8" }, "photo", "photo is not valid base64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)
			var errs Errors
			require.ErrorAs(t, schema.Validate(c), &errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs.Message(tt.field))
		})
	}
}

func TestCustomerSchema_Photo(t *testing.T) {
	schema := CustomerSchema(func(string) bool { return true })
	for _, p := range []string{"", "aGVsbG8=", "data:image/png;base64,aGVsbG8=", "data:image/jpeg;base64,"} {
		c := validCustomer()
		c.Photo = p
		assert.NoError(t, schema.Validate(c), p)
	}
}

func TestErrors_IsMatchable(t *testing.T) {
	err := LoginSchema.Validate(models.Credentials{Username: "ana"})
	var errs Errors
	assert.True(t, errors.As(err, &errs))
	assert.Empty(t, errs.Message("username"))
}
