// Package photo picks an image for a customer record and converts it to and
// from the inline data-URI form the backend stores.
package photo

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrCancelled means the user backed out of the picker.
	ErrCancelled = errors.New("photo selection cancelled")
	// ErrPermissionDenied means the chosen image could not be read.
	ErrPermissionDenied = errors.New("photo access denied")
)

// Asset is a picked image.
type Asset struct {
	MIME string
	Data []byte
}

// Picker obtains an image from somewhere the user chooses.
type Picker interface {
	Pick(ctx context.Context) (Asset, error)
}

// EncodeDataURI renders a as data:<mime>;base64,<body>.
func EncodeDataURI(a Asset) string {
	mime := a.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// StripDataURI returns the base64 body of s: everything after the first comma,
// or s itself when it has none.
func StripDataURI(s string) string {
	if _, body, ok := strings.Cut(s, ","); ok {
		return body
	}
	return s
}
