package validation

import (
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/photo"
)

const msgRequired = "required"

// LoginSchema checks credentials before a login call.
var LoginSchema = Schema[models.Credentials]{
	{Name: "username", Rules: []Rule[models.Credentials]{
		str(credUsername, notBlank, "username is required"),
	}},
	{Name: "password", Rules: passwordRules(credPassword)},
}

// RegisterSchema checks sign-up data before a register call.
var RegisterSchema = Schema[models.Registration]{
	{Name: "username", Rules: []Rule[models.Registration]{
		str(regUsername, minLen(3), "username must be at least 3 characters"),
	}},
	{Name: "email", Rules: []Rule[models.Registration]{
		str(regEmail, notBlank, "email is required"),
		str(regEmail, isEmail, "invalid email"),
	}},
	{Name: "password", Rules: passwordRules(regPassword)},
}

// CustomerSchema checks a customer record. knownInterest reports whether an
// interest id is present in the cached interest list.
func CustomerSchema(knownInterest func(id string) bool) Schema[models.Customer] {
	required := func(get func(models.Customer) string) []Rule[models.Customer] {
		return []Rule[models.Customer]{str(get, notBlank, msgRequired)}
	}

	return Schema[models.Customer]{
		{Name: "identification", Rules: required(func(c models.Customer) string { return c.Identification })},
		{Name: "firstName", Rules: required(func(c models.Customer) string { return c.FirstName })},
		{Name: "lastName", Rules: required(func(c models.Customer) string { return c.LastName })},
		{Name: "sex", Rules: []Rule[models.Customer]{
			{Check: func(c models.Customer) bool { return c.Sex != "" }, Message: msgRequired},
			{Check: func(c models.Customer) bool { return c.Sex.Valid() }, Message: "sex must be M or F"},
		}},
		{Name: "birthDate", Rules: []Rule[models.Customer]{
			{Check: func(c models.Customer) bool { return !c.BirthDate.IsZero() }, Message: "invalid date"},
		}},
		{Name: "affiliationDate", Rules: []Rule[models.Customer]{
			{Check: func(c models.Customer) bool { return !c.AffiliationDate.IsZero() }, Message: "invalid date"},
		}},
		{Name: "mobilePhone", Rules: required(func(c models.Customer) string { return c.MobilePhone })},
		{Name: "otherPhone", Rules: required(func(c models.Customer) string { return c.OtherPhone })},
		{Name: "address", Rules: required(func(c models.Customer) string { return c.Address })},
		{Name: "personalNote", Rules: required(func(c models.Customer) string { return c.PersonalNote })},
		{Name: "interestId", Rules: []Rule[models.Customer]{
			str(customerInterest, notBlank, msgRequired),
			str(customerInterest, knownInterest, "unknown interest"),
		}},
		{Name: "photo", Rules: []Rule[models.Customer]{
			{
				Check: func(c models.Customer) bool {
					return c.Photo == "" || IsBase64(photo.StripDataURI(c.Photo))
				},
				Message: "photo is not valid base64",
			},
		}},
	}
}

func credUsername(c models.Credentials) string  { return c.Username }
func credPassword(c models.Credentials) string  { return c.Password }
func regUsername(r models.Registration) string  { return r.Username }
func regEmail(r models.Registration) string     { return r.Email }
func regPassword(r models.Registration) string  { return r.Password }
func customerInterest(c models.Customer) string { return c.InterestID }
