package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/models"
)

const maxErrorBody = 4 << 10

// RemoteError is a non-2xx answer from the REST endpoint.
type RemoteError struct {
	Status  int
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: status %d: %s (%s)", e.Status, e.Message, e.Code)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Message)
}

// Supabase reads a table through the PostgREST API with an anonymous key.
type Supabase struct {
	endpoint *url.URL
	anonKey  string
	client   *http.Client
}

func NewSupabase(rawURL, anonKey, table string, client *http.Client) (*Supabase, error) {
	base, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("supabase url must be http or https, got %q", rawURL)
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is required")
	}
	if table == "" {
		return nil, fmt.Errorf("table is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Supabase{
		endpoint: base.JoinPath("rest", "v1", table),
		anonKey:  anonKey,
		client:   client,
	}, nil
}

func (s *Supabase) Products(ctx context.Context, limit int) ([]models.Product, error) {
	q := url.Values{}
	q.Set("select", "*")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := *s.endpoint
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.endpoint.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeRemoteError(resp)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func decodeRemoteError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	remote := &RemoteError{Status: resp.StatusCode}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		remote.Code = payload.Code
		remote.Message = payload.Message
	} else {
		remote.Message = strings.TrimSpace(string(body))
	}
	if remote.Message == "" {
		remote.Message = http.StatusText(resp.StatusCode)
	}
	return remote
}
