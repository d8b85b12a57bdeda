// Package cep resolves Brazilian postal codes through the public
// ViaCEP service. It lives outside the persistence core: resolved
// addresses enter the system as plain fields like any other input.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrInvalidCEP indicates input that is not an 8-digit postal code.
var ErrInvalidCEP = errors.New("invalid postal code")

// Address holds the fields ViaCEP resolves for a postal code.
type Address struct {
	Street     string `json:"street"`
	District   string `json:"district"`
	CityRegion string `json:"city_region"`
	PostalCode string `json:"postal_code"`
}

// Client queries ViaCEP with a bounded retry policy.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a lookup client against baseURL
// (e.g. "https://viacep.com.br/ws").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
	Erro       bool   `json:"erro"`
}

// Lookup resolves a postal code. Returns (nil, nil) when the service
// does not know the code. Transient failures are retried with
// exponential backoff before giving up.
func (c *Client) Lookup(ctx context.Context, code string) (*Address, error) {
	code = strings.ReplaceAll(strings.TrimSpace(code), "-", "")
	if len(code) != 8 || !isDigits(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCEP, code)
	}

	var resp viaCEPResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/%s/json/", c.baseURL, code), nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		res, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode >= 500 {
			return fmt.Errorf("viacep returned status %d", res.StatusCode)
		}
		if res.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("viacep returned status %d", res.StatusCode))
		}
		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode viacep response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("cep lookup failed: %w", err)
	}

	if resp.Erro {
		return nil, nil
	}
	return &Address{
		Street:     resp.Logradouro,
		District:   resp.Bairro,
		CityRegion: fmt.Sprintf("%s / %s", resp.Localidade, resp.UF),
		PostalCode: resp.CEP,
	}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
