// Package catalog is the single holder of catalog truth for the assistant:
// it talks to the store's product API, carries the static fallback dataset,
// and owns the store-policy texts and category synonym tables.
//
// The package is intentionally small and dependency-free:
//
//   - No logging in the library (callers decide how/what to log)
//   - Context-aware fetches with a bounded HTTP client
//   - Raw API records are returned as-is; normalization into domain.Product
//     is the repository's job
//
// Any non-2xx status or undecodable body is reported as an error; callers
// are expected to convert failures into their own fallback tier rather than
// surface them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProductRecord is one product as returned by the store API
// (GET /products). Price arrives as a string and may be malformed.
type ProductRecord struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Price            string           `json:"price"`
	Images           []ImageRecord    `json:"images"`
	Permalink        string           `json:"permalink"`
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	Categories       []CategoryRecord `json:"categories"`
}

// ImageRecord is a product image reference.
type ImageRecord struct {
	Src string `json:"src"`
}

// CategoryRecord is a category tag attached to a product record.
type CategoryRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryTerm is one entry of GET /product-categories.
type CategoryTerm struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Client fetches catalog data over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a Client rooted at baseURL (e.g. "https://host/api").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchProducts retrieves the full product listing.
func (c *Client) FetchProducts(ctx context.Context) ([]ProductRecord, error) {
	var out []ProductRecord
	if err := c.getJSON(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchFeatured retrieves the featured product listing.
func (c *Client) FetchFeatured(ctx context.Context) ([]ProductRecord, error) {
	var out []ProductRecord
	if err := c.getJSON(ctx, "/products?featured=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCategories retrieves the category terms.
func (c *Client) FetchCategories(ctx context.Context) ([]CategoryTerm, error) {
	var out []CategoryTerm
	if err := c.getJSON(ctx, "/product-categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getJSON performs a GET and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog: fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}
