// Package services contains the application services of the clientdesk
// client: authentication, the interest reference cache and customer listing.
// Services validate input before any network call and report failures as
// wrapped errors; UserMessage turns those into text for the user.
package services
