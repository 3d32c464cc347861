package device

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
)

// Config holds address-service client settings. The endpoint itself comes
// with every request envelope, only the timeout is configured here.
type Config struct {
	Timeout time.Duration `split_words:"true" default:"1s"`
}

// Address is the short address the device permission grants access to.
type Address struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

// Client reads the country and postal code configured for a device through
// the platform's device-address service.
type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Client{http: resty.New().SetTimeout(timeout)}
}

// CountryAndPostalCode resolves the device's short address using the API
// endpoint and access token carried in the request envelope. Any failure is
// logged and reported as absence; the skill then behaves as if the postal
// code were unknown.
func (c *Client) CountryAndPostalCode(ctx context.Context, sys alexa.System) *Address {
	addr, err := c.lookup(ctx, sys)
	if err != nil {
		log.Error().Err(err).Str("device_id", sys.Device.DeviceID).Msg("cannot read device address")
		return nil
	}
	return addr
}

func (c *Client) lookup(ctx context.Context, sys alexa.System) (*Address, error) {
	var addr Address
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(sys.APIAccessToken).
		SetPathParam("deviceId", sys.Device.DeviceID).
		SetResult(&addr).
		Get(sys.APIEndpoint + "/v1/devices/{deviceId}/settings/address/countryAndPostalCode")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("device address service status=%d", resp.StatusCode())
	}
	return &addr, nil
}
