package cryptocompare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cryptoquote/pkg/types/quotes"
)

//go:generate mockgen -package=cryptocompare_test -destination=mock_http_client_test.go -source=client.go HTTPClient

const DefaultBaseURL = "https://min-api.cryptocompare.com/data"

var (
	_ quotes.Fetcher = (*Client)(nil)

	ErrQuoteNotFound = errors.New("quote not found")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// APIError is CryptoCompare's in-band failure: HTTP 200 with Response "Error".
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "cryptocompare error: " + e.Message
}

type Client struct {
	BaseURL string
	HTTP    HTTPClient
	APIKey  string
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.BaseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		c.HTTP = h
	}
}

func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.APIKey = key
	}
}

// WithTimeout sets the overall request timeout on the underlying
// *http.Client. Zero means none. Custom HTTPClient implementations are left
// untouched and handle their own timeouts.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc, ok := c.HTTP.(*http.Client)
		if !ok {
			return
		}
		clone := *hc
		clone.Timeout = d
		c.HTTP = &clone
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) addAuth(req *http.Request) {
	if c.APIKey != "" {
		req.Header.Set("authorization", "Apikey "+c.APIKey)
	}
}

type envelope struct {
	Response string `json:"Response"`
	Message  string `json:"Message"`
}

func (e envelope) err() error {
	if e.Response == "Error" {
		return &APIError{Message: e.Message}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.BaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.addAuth(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status := resp.Status
		if status == "" {
			status = strconv.Itoa(resp.StatusCode) + " " + http.StatusText(resp.StatusCode)
		}
		return &StatusError{Code: resp.StatusCode, Status: status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// FetchCatalog returns the top assets by market cap in API order.
func (c *Client) FetchCatalog(ctx context.Context, limit int, referenceCurrency string) ([]quotes.CatalogEntry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("tsym", strings.ToUpper(referenceCurrency))

	// Error bodies carry "Data":{}, so Data is decoded only after the
	// envelope has been checked.
	var result struct {
		envelope
		Data json.RawMessage `json:"Data"`
	}
	if err := c.get(ctx, "/top/mktcapfull", query, &result); err != nil {
		return nil, err
	}
	if err := result.err(); err != nil {
		return nil, err
	}

	var coins []struct {
		CoinInfo struct {
			Name     string `json:"Name"`
			FullName string `json:"FullName"`
		} `json:"CoinInfo"`
	}
	if len(result.Data) > 0 && string(result.Data) != "null" {
		if err := json.Unmarshal(result.Data, &coins); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	}

	entries := make([]quotes.CatalogEntry, 0, len(coins))
	for _, coin := range coins {
		entries = append(entries, quotes.CatalogEntry{
			Symbol:      coin.CoinInfo.Name,
			DisplayName: coin.CoinInfo.FullName,
		})
	}
	return entries, nil
}

// FetchQuote returns the display object DISPLAY[cryptocurrency][currency].
func (c *Client) FetchQuote(ctx context.Context, cryptocurrency, currency string) (quotes.Snapshot, error) {
	fsym := strings.ToUpper(cryptocurrency)
	tsym := strings.ToUpper(currency)

	query := url.Values{}
	query.Set("fsyms", fsym)
	query.Set("tsyms", tsym)

	var result struct {
		envelope
		Display map[string]map[string]quotes.Snapshot `json:"DISPLAY"`
	}
	if err := c.get(ctx, "/pricemultifull", query, &result); err != nil {
		return quotes.Snapshot{}, err
	}
	if err := result.err(); err != nil {
		return quotes.Snapshot{}, err
	}

	snapshot, ok := result.Display[fsym][tsym]
	if !ok {
		return quotes.Snapshot{}, fmt.Errorf("%w for %s/%s", ErrQuoteNotFound, fsym, tsym)
	}
	return snapshot, nil
}
