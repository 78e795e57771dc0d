package client

import (
	"github.com/shipthis-co/shipthis-go/internal/constants"
)

// Headers implements the transport's HeaderSource. Precedence, lowest to
// highest: built-in defaults, API key, region/location, custom headers.
// Per-call overrides are applied on top by the transport itself.
func (c *Client) Headers() map[string]string {
	headers := map[string]string{
		constants.HeaderOrganisation: c.organisation,
		constants.HeaderUserType:     c.userType,
		"Content-Type":               "application/json",
		"Accept":                     "application/json",
	}

	if c.apiKey != "" {
		headers[constants.HeaderAPIKey] = c.apiKey
	}

	if c.regionID != "" {
		headers[constants.HeaderRegion] = c.regionID
	}

	if c.locationID != "" {
		headers[constants.HeaderLocation] = c.locationID
	}

	for key, value := range c.customHeaders {
		headers[key] = value
	}

	return headers
}
