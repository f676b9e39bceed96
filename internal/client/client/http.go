package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for baseURL. The token source and clearer are
// normally the same session store.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, clearer SessionClearer, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid request timeout %v: must be positive", timeout)
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:    http.DefaultTransport,
				tokens:  tokens,
				clearer: clearer,
				log:     log,
			},
		},
		log: log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, &resp, creds, "Authenticate", "login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := c.do(ctx, http.MethodPost, &resp, reg, "Authenticate", "register"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListCustomers(ctx context.Context, req models.ListRequest) ([]models.CustomerResponse, error) {
	var resp []models.CustomerResponse
	if err := c.do(ctx, http.MethodPost, &resp, req, "Cliente", "Listado"); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) GetCustomer(ctx context.Context, id string) (*models.CustomerResponse, error) {
	var resp models.CustomerResponse
	if err := c.do(ctx, http.MethodGet, &resp, nil, "Cliente", "Obtener", id); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateCustomer(ctx context.Context, p models.CustomerPayload) error {
	return c.do(ctx, http.MethodPost, nil, p, "Cliente", "Crear")
}

func (c *HTTPClient) UpdateCustomer(ctx context.Context, p models.CustomerPayload) error {
	return c.do(ctx, http.MethodPost, nil, p, "Cliente", "Actualizar")
}

func (c *HTTPClient) ListInterests(ctx context.Context) ([]models.Interest, error) {
	var resp []models.Interest
	if err := c.do(ctx, http.MethodGet, &resp, nil, "Intereses", "Listado"); err != nil {
		return nil, err
	}
	return resp, nil
}

// do sends a JSON request to the path built from segments and decodes a 2xx
// body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method string, out any, in any, segments ...string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	ctx = logging.WithRequestID(ctx, uuid.NewString())
	endpoint := c.baseURL.JoinPath(segments...)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
		c.log.Debug(ctx, "backend error", "method", method, "path", endpoint.Path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError classifies transport failures. Cancellation by the caller is
// returned as is; everything else (timeouts, refused connections, DNS) means
// the server could not be reached.
func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// errorMessage pulls a human message out of an error body. It understands
// {"message": ...}, ASP.NET problem details ({"title": ...}) and plain text.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return ""
	}

	var payload struct {
		Message    string `json:"message"`
		MessageAlt string `json:"Message"`
		Title      string `json:"title"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.MessageAlt != "":
			return payload.MessageAlt
		default:
			return payload.Title
		}
	}
	if b[0] == '{' || b[0] == '[' || b[0] == '<' {
		return ""
	}
	return string(b)
}
