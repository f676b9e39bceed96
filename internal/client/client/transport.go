package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

type authTransport struct {
	base    http.RoundTripper
	tokens  TokenSource
	clearer SessionClearer
	log     logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := logging.RequestID(req.Context())
	if id == "" {
		id = uuid.NewString()
	}
	req = req.Clone(logging.WithRequestID(req.Context(), id))
	req.Header.Del(headerAuthorization)
	if token := t.tokens.Token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}
	req.Header.Set(headerRequestID, id)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		ctx := context.WithoutCancel(req.Context())
		t.log.Warn(ctx, "backend rejected session, clearing it", "path", req.URL.Path)
		if err := t.clearer.Clear(ctx); err != nil {
			t.log.Error(ctx, "failed to clear session", "error", err)
		}
	}
	return resp, nil
}
