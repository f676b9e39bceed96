// Package client talks to the clientdesk REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services: login and
// registration, customer listing/fetch/create/update and the interest list.
// HTTPClient implements it over JSON/HTTP with a fixed base URL and request
// timeout.
//
// Every request goes through authTransport, which
//  1. attaches "Authorization: Bearer <token>" when the TokenSource has one,
//  2. tags the request with a fresh X-Request-ID,
//  3. clears the session through the SessionClearer when the backend answers
//     401, before the error reaches the caller.
//
// # Error Handling
//
// Non-2xx responses surface as *APIError carrying the status and the server's
// message. A 401 APIError also matches ErrUnauthorized. Timeouts and network
// failures match ErrUnavailable. Use errors.Is / errors.As.
package client
