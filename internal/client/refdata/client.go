// Package refdata wraps the reference-data sidecar, a small HTTP shim in
// front of the market-data terminal. One endpoint, request/response only.
package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	fieldLastPrice  = "PX_LAST"
	fieldAllDayVWAP = "ALL_DAY_VWAP"
	fieldChgPct1D   = "CHG_PCT_1D"
)

type Client struct {
	host       string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("refdata API error (%d): %s", e.Status, e.Body)
}

// SecurityError marks a ticker the terminal does not know.
type SecurityError struct {
	Ticker  string
	Message string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("security %q: %s", e.Ticker, e.Message)
}

type Quote struct {
	Ticker     string
	Price      *decimal.Decimal
	AllDayVWAP *decimal.Decimal
	ChgPct1D   *decimal.Decimal
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "http://localhost:5001"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

// ReferenceData fetches last price, all-day VWAP and 1-day change for one
// ticker. Per-field errors from the terminal arrive as string payloads and
// degrade to nil fields rather than failing the whole quote.
func (c *Client) ReferenceData(ctx context.Context, ticker string) (*Quote, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	query := url.Values{}
	query.Set("ticker", ticker)
	query.Set("fields", strings.Join([]string{fieldLastPrice, fieldAllDayVWAP, fieldChgPct1D}, ","))

	body, err := c.doRequest(ctx, "/api/reference_data", query)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode refdata response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty refdata response for %q", ticker)
	}

	row := rows[0]
	if msg, ok := row["securityError"].(string); ok && msg != "" {
		return nil, &SecurityError{Ticker: ticker, Message: msg}
	}
	security, _ := row["security"].(string)
	if security == "" {
		security = ticker
	}

	return &Quote{
		Ticker:     security,
		Price:      numericField(row, fieldLastPrice),
		AllDayVWAP: numericField(row, fieldAllDayVWAP),
		ChgPct1D:   numericField(row, fieldChgPct1D),
	}, nil
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func numericField(row map[string]any, key string) *decimal.Decimal {
	v, ok := row[key].(float64)
	if !ok {
		return nil
	}
	d := decimal.NewFromFloat(v)
	return &d
}
