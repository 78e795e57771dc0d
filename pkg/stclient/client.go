// Package stclient provides the main entry point for creating Shipthis API clients
package stclient

import (
	"strings"

	"github.com/shipthis-co/shipthis-go/internal/client"
	"github.com/shipthis-co/shipthis-go/internal/constants"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// New creates a new Shipthis API client from the given configuration.
func New(config *shipthis.Config) (shipthis.Client, error) {
	if config == nil {
		return nil, shipthis.ErrConfigRequired
	}

	if config.Organisation == "" {
		return nil, shipthis.ErrOrganisationRequired
	}

	// Normalize base URL
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = strings.TrimSuffix(baseURL, "/")

	return client.New(config)
}

// NewWithAPIKey creates a new client for an organisation and API key using
// the default endpoint.
func NewWithAPIKey(organisation, apiKey string) (shipthis.Client, error) {
	return New(&shipthis.Config{
		Organisation: organisation,
		APIKey:       apiKey,
	})
}
