// Package models defines the client-side data types of clientdesk: the
// session, transient credentials, customer records and interests, plus the
// JSON shapes exchanged with the backend.
package models

import "time"

// Session is the authenticated identity held by the client between login and
// logout. A zero Session is the logged-out state.
type Session struct {
	Token      string
	UserID     string
	Username   string
	Expiration time.Time
}

// IsAuthenticated is true iff a token is present and now has not passed
// Expiration. A zero Expiration counts as already expired.
func (s Session) IsAuthenticated(now time.Time) bool {
	return s.Token != "" && !s.Expiration.IsZero() && !now.After(s.Expiration)
}

// Credentials are submitted on login. Never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is submitted on sign-up. Never persisted.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of POST /Authenticate/login.
type LoginResponse struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
	UserID     string `json:"userid"`
	Username   string `json:"username"`
}

// StatusResponse is the body of POST /Authenticate/register and the shape of
// most error bodies.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusSuccess is the only register status that counts as success.
const StatusSuccess = "Success"
