package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingEndpoint = errors.New("pricing endpoint is required")
	ErrMissingAuthKey  = errors.New("pricing authorization key is required")
)

// Config holds the pricing API connection settings. The upstream expects
// the raw key in the Authorization header, no scheme prefix.
type Config struct {
	Endpoint         string        `envconfig:"ENDPOINT" required:"true"`
	AuthorizationKey string        `envconfig:"AUTHORIZATION_KEY" required:"true"`
	Timeout          time.Duration `split_words:"true" default:"1s"`
}

// Client queries the fuel pricing API by postal code.
type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	key := strings.TrimSpace(cfg.AuthorizationKey)
	if key == "" {
		return nil, ErrMissingAuthKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}

	http := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Authorization", key).
		SetTimeout(timeout)

	return &Client{http: http}, nil
}

func MustNewClient(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Lookup returns the first price record published for the postal code, or
// nil when the API has nothing for it. Transport and server failures are
// logged and also yield nil: a price outage must never break the
// interaction, only degrade it to "no local data".
func (c *Client) Lookup(ctx context.Context, postalCode string) *Record {
	record, err := c.fetch(ctx, postalCode)
	if err != nil {
		log.Error().Err(err).Str("postal_code", postalCode).Msg("cannot fetch quotes for postal code")
		return nil
	}
	return record
}

func (c *Client) fetch(ctx context.Context, postalCode string) (*Record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("postalCode", postalCode).
		Get("/postalCode/{postalCode}")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("pricing api status=%d body=%s", resp.StatusCode(), resp.String())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, nil
	}

	// The API normally returns a collection; the first element wins. Some
	// deployments return a bare object for single-station postal codes.
	var records []Record
	if err := json.Unmarshal(body, &records); err == nil {
		if len(records) == 0 {
			return nil, nil
		}
		return &records[0], nil
	}

	var single Record
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("decode pricing response: %w", err)
	}
	return &single, nil
}
