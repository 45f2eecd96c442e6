package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fxledger/internal/domain"
)

// CurrencyAPIClient fetches the daily USD rate table from a provider whose URL
// is a template taking the calendar date, e.g.
// https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@%s/v1/currencies/usd.json
type CurrencyAPIClient struct {
	http        *http.Client
	urlTemplate string
}

type apiResponse struct {
	Date string             `json:"date"`
	USD  map[string]float64 `json:"usd"`
}

func (c *CurrencyAPIClient) GetUSDRates(ctx context.Context, date string) (domain.Rates, error) {
	u, err := url.Parse(c.buildURL(date))
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for date %q: %w", date, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for date %q: %w", date, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for date %q: %s", resp.StatusCode, date, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for date %q: %w", date, err)
	}

	if body.USD == nil {
		return nil, errors.New("response has no \"usd\" rate object")
	}

	rates := make(domain.Rates, len(body.USD))
	for code, v := range body.USD {
		rates[domain.NormalizeCode(code)] = v
	}
	return rates, nil
}

func (c *CurrencyAPIClient) buildURL(date string) string {
	if strings.Contains(c.urlTemplate, "%s") {
		return fmt.Sprintf(c.urlTemplate, date)
	}
	return c.urlTemplate
}

func NewCurrencyAPIClient(httpClient *http.Client, urlTemplate string) *CurrencyAPIClient {
	return &CurrencyAPIClient{http: httpClient, urlTemplate: urlTemplate}
}
