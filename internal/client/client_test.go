package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&shipthis.Config{
		Organisation: "acme",
		APIKey:       "test-key",
		BaseURL:      serverURL,
	})
	require.NoError(t, err)

	return client
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, shipthis.ErrConfigRequired)

	_, err = New(&shipthis.Config{BaseURL: "https://api.example.com"})
	require.ErrorIs(t, err, shipthis.ErrOrganisationRequired)

	_, err = New(&shipthis.Config{Organisation: "acme"})
	require.ErrorIs(t, err, ErrBaseURLRequired)
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(&shipthis.Config{
		Organisation: "acme",
		BaseURL:      "https://api.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "employee", client.userType)
	assert.False(t, client.IsConnected())
	assert.Nil(t, client.OrganisationInfo())
}

func TestClient_Info(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-auth/info", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "acme", r.Header.Get("organisation"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		_, _ = w.Write([]byte(`{"success":true,"data":{
			"organisation":{"organisation_id":"acme","name":"Acme Logistics","regions":[
				{"region_id":"usa","locations":[{"location_id":"new-york"},{"location_id":"chicago"}]},
				{"region_id":"ind","locations":[{"location_id":"mumbai"}]}
			]},
			"user":{"email":"ops@acme.test"}
		}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	info, err := client.Info(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info.Organisation)
	assert.Equal(t, "Acme Logistics", info.Organisation.Name)
	assert.Len(t, info.Organisation.Regions, 2)
	assert.Equal(t, "ops@acme.test", info.User["email"])

	// Info alone does not connect
	assert.False(t, client.IsConnected())
}

func TestClient_Connect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"organisation":{"organisation_id":"acme","regions":[
				{"region_id":"usa","locations":[{"location_id":"new-york"},{"location_id":"chicago"}]}
			]}
		}}`))
	}))
	defer server.Close()

	t.Run("defaults region and location", func(t *testing.T) {
		client := newTestClient(t, server.URL)

		result, err := client.Connect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "usa", result.RegionID)
		assert.Equal(t, "new-york", result.LocationID)
		assert.True(t, client.IsConnected())
		require.NotNil(t, client.OrganisationInfo())
		assert.Equal(t, "acme", client.OrganisationInfo().OrganisationID)
	})

	t.Run("keeps preset region and location", func(t *testing.T) {
		client, err := New(&shipthis.Config{
			Organisation: "acme",
			APIKey:       "test-key",
			BaseURL:      server.URL,
			RegionID:     "ind",
			LocationID:   "mumbai",
		})
		require.NoError(t, err)

		result, err := client.Connect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ind", result.RegionID)
		assert.Equal(t, "mumbai", result.LocationID)
	})

	t.Run("partial preset is overwritten from account", func(t *testing.T) {
		client, err := New(&shipthis.Config{
			Organisation: "acme",
			APIKey:       "test-key",
			BaseURL:      server.URL,
			RegionID:     "ind",
		})
		require.NoError(t, err)

		result, err := client.Connect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "usa", result.RegionID)
		assert.Equal(t, "new-york", result.LocationID)
	})
}

func TestClient_Connect_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, shipthis.IsAuthError(err))
	assert.False(t, client.IsConnected())
}

func TestClient_Disconnect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"organisation":{"regions":[{"region_id":"usa","locations":[{"location_id":"new-york"}]}]}}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Connect(context.Background())
	require.NoError(t, err)
	require.True(t, client.IsConnected())

	client.Disconnect()
	assert.False(t, client.IsConnected())
	assert.Empty(t, client.Headers()["x-api-key"])
}

func TestClient_SetRegionLocation(t *testing.T) {
	client, err := New(&shipthis.Config{
		Organisation: "acme",
		BaseURL:      "https://api.example.com",
	})
	require.NoError(t, err)

	client.SetRegionLocation("eur", "rotterdam")

	headers := client.Headers()
	assert.Equal(t, "eur", headers["region"])
	assert.Equal(t, "rotterdam", headers["location"])
}

func TestClient_ResourceAccessors(t *testing.T) {
	client, err := New(&shipthis.Config{
		Organisation: "acme",
		BaseURL:      "https://api.example.com",
	})
	require.NoError(t, err)

	assert.NotNil(t, client.Collections())
	assert.NotNil(t, client.Workflows())
	assert.NotNil(t, client.Reports())
	assert.NotNil(t, client.Conversations())
	assert.NotNil(t, client.ThirdParty())
	assert.NotNil(t, client.Files())
}
