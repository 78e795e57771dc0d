//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
	"github.com/shipthis-co/shipthis-go/pkg/stclient"
)

// TestConfig carries the live-API settings read from the environment.
type TestConfig struct {
	Organisation string
	APIKey       string
	BaseURL      string
	Collection   string
}

// LoadTestConfig reads integration settings from SHIPTHIS_* variables.
func LoadTestConfig() *TestConfig {
	collection := os.Getenv("SHIPTHIS_TEST_COLLECTION")
	if collection == "" {
		collection = "job"
	}

	return &TestConfig{
		Organisation: os.Getenv("SHIPTHIS_ORGANISATION"),
		APIKey:       os.Getenv("SHIPTHIS_API_KEY"),
		BaseURL:      os.Getenv("SHIPTHIS_BASE_URL"),
		Collection:   collection,
	}
}

// SkipIfMissingConfig skips the test when credentials are not configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Organisation == "" || c.APIKey == "" {
		t.Skip("Skipping integration test: SHIPTHIS_ORGANISATION and SHIPTHIS_API_KEY must be set")
	}
}

// NewClient builds a connected client from the config.
func (c *TestConfig) NewClient(t *testing.T) shipthis.Client {
	t.Helper()

	client, err := stclient.New(&shipthis.Config{
		Organisation: c.Organisation,
		APIKey:       c.APIKey,
		BaseURL:      c.BaseURL,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}

// GenerateTestName returns a unique name for test documents.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
