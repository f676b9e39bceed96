package models

import (
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/timex"
)

// Sex is the enumerated sex of a customer.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Valid reports whether s is one of the enumerated values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Customer is a client-side copy of a backend customer record. Photo holds an
// optional base64 image, possibly as a data URI.
type Customer struct {
	ID              string
	Identification  string
	FirstName       string
	LastName        string
	Sex             Sex
	BirthDate       time.Time
	AffiliationDate time.Time
	MobilePhone     string
	OtherPhone      string
	Address         string
	PersonalNote    string
	InterestID      string
	Photo           string
}

// CustomerSummary is the minimal projection of a saved record handed back to
// the caller of the edit form.
type CustomerSummary struct {
	ID             string
	Identification string
	FirstName      string
	LastName       string
	Photo          string
}

func (c Customer) Summary() CustomerSummary {
	return CustomerSummary{
		ID:             c.ID,
		Identification: c.Identification,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Photo:          c.Photo,
	}
}

// Interest is a reference category attached to customers.
type Interest struct {
	ID          string `json:"id"`
	Description string `json:"descripcion"`
}

// ListRequest is the body of POST /Cliente/Listado.
type ListRequest struct {
	Identification string `json:"identificacion"`
	Name           string `json:"nombre"`
	UserID         string `json:"usuarioId"`
}

// CustomerPayload is the body of POST /Cliente/Crear and /Cliente/Actualizar.
type CustomerPayload struct {
	ID              string `json:"id,omitempty"`
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellidos"`
	Identification  string `json:"identificacion"`
	MobilePhone     string `json:"celular"`
	OtherPhone      string `json:"otroTelefono"`
	Address         string `json:"direccion"`
	BirthDate       string `json:"fNacimiento"`
	AffiliationDate string `json:"fAfiliacion"`
	Sex             string `json:"sexo"`
	PersonalNote    string `json:"resennaPersonal"`
	InterestID      string `json:"interesFK"`
	UserID          string `json:"usuarioId"`
	Photo           string `json:"imagen"`
}

// Payload maps c to the backend's write field names.
func (c Customer) Payload(userID string) CustomerPayload {
	return CustomerPayload{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Identification:  c.Identification,
		MobilePhone:     c.MobilePhone,
		OtherPhone:      c.OtherPhone,
		Address:         c.Address,
		BirthDate:       timex.FormatISO(c.BirthDate),
		AffiliationDate: timex.FormatISO(c.AffiliationDate),
		Sex:             string(c.Sex),
		PersonalNote:    c.PersonalNote,
		InterestID:      c.InterestID,
		UserID:          userID,
		Photo:           c.Photo,
	}
}

// CustomerResponse is a customer as returned by /Cliente/Listado and
// /Cliente/Obtener. The backend is not consistent about the read names of a
// few fields, so both spellings are accepted.
type CustomerResponse struct {
	ID              string `json:"id"`
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellidos"`
	Identification  string `json:"identificacion"`
	MobilePhone     string `json:"celular"`
	MobilePhoneAlt  string `json:"telefonoCelular"`
	OtherPhone      string `json:"otroTelefono"`
	Address         string `json:"direccion"`
	BirthDate       string `json:"fNacimiento"`
	AffiliationDate string `json:"fAfiliacion"`
	Sex             string `json:"sexo"`
	PersonalNote    string `json:"resennaPersonal"`
	PersonalNoteAlt string `json:"resenaPersonal"`
	InterestID      string `json:"interesFK"`
	InterestIDAlt   string `json:"interesesId"`
	Photo           string `json:"imagen"`
}

// Customer converts the response into a Customer. Dates that are missing or
// unparseable are left zero; callers choose the fallback.
func (r CustomerResponse) Customer() Customer {
	c := Customer{
		ID:             r.ID,
		Identification: r.Identification,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Sex:            Sex(r.Sex),
		MobilePhone:    firstNonEmpty(r.MobilePhone, r.MobilePhoneAlt),
		OtherPhone:     r.OtherPhone,
		Address:        r.Address,
		PersonalNote:   firstNonEmpty(r.PersonalNote, r.PersonalNoteAlt),
		InterestID:     firstNonEmpty(r.InterestID, r.InterestIDAlt),
		Photo:          r.Photo,
	}
	if t, ok := timex.ParseServerTime(r.BirthDate); ok {
		c.BirthDate = t
	}
	if t, ok := timex.ParseServerTime(r.AffiliationDate); ok {
		c.AffiliationDate = t
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
