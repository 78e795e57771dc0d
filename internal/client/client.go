// Package client implements the shipthis.Client interface: the connection
// facade plus the resource clients that map typed method calls onto the API's
// path, query, and body conventions.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the shipthis.Client interface. Region and location may be
// swapped between calls; mutating them concurrently with in-flight calls
// requires external synchronization.
type Client struct {
	httpClient *internalhttp.Client

	organisation  string
	apiKey        string
	userType      string
	regionID      string
	locationID    string
	timeout       time.Duration
	customHeaders map[string]string

	organisationInfo *shipthis.Organisation
	connected        bool

	// Resource clients
	collections   shipthis.CollectionsClient
	workflows     shipthis.WorkflowsClient
	reports       shipthis.ReportsClient
	conversations shipthis.ConversationsClient
	thirdParty    shipthis.ThirdPartyClient
	files         shipthis.FilesClient
}

// New creates a new Shipthis API client. The config must carry an
// organisation and a base URL; stclient.New applies the endpoint default and
// normalization before calling this.
func New(config *shipthis.Config) (*Client, error) {
	if config == nil {
		return nil, shipthis.ErrConfigRequired
	}

	if config.Organisation == "" {
		return nil, shipthis.ErrOrganisationRequired
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	userType := config.UserType
	if userType == "" {
		userType = constants.DefaultUserType
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	customHeaders := make(map[string]string, len(config.CustomHeaders))
	for key, value := range config.CustomHeaders {
		customHeaders[key] = value
	}

	client := &Client{
		organisation:  config.Organisation,
		apiKey:        config.APIKey,
		userType:      userType,
		regionID:      config.RegionID,
		locationID:    config.LocationID,
		timeout:       timeout,
		customHeaders: customHeaders,
	}

	// The client itself is the header source so region/location swaps and
	// Disconnect take effect on the next request.
	client.httpClient = internalhttp.NewClient(config.BaseURL, client, createHTTPClientOptions(config, timeout)...)

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *shipthis.Config, timeout time.Duration) []internalhttp.Option {
	httpOpts := []internalhttp.Option{internalhttp.WithTimeout(timeout)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// Info implements shipthis.Client.Info.
func (c *Client) Info(ctx context.Context) (*shipthis.AccountInfo, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account info: %w", err)
	}

	var info shipthis.AccountInfo

	err = json.Unmarshal(resp.Data, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing account info: %w", err)
	}

	return &info, nil
}

// Connect implements shipthis.Client.Connect. It fetches organisation
// metadata, defaults region and location to the first available entries when
// either is unset, and marks the client connected.
func (c *Client) Connect(ctx context.Context) (*shipthis.ConnectResult, error) {
	info, err := c.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}

	c.organisationInfo = info.Organisation

	if c.regionID == "" || c.locationID == "" {
		if org := info.Organisation; org != nil && len(org.Regions) > 0 {
			c.regionID = org.Regions[0].RegionID

			if len(org.Regions[0].Locations) > 0 {
				c.locationID = org.Regions[0].Locations[0].LocationID
			}
		}
	}

	c.connected = true

	return &shipthis.ConnectResult{
		RegionID:     c.regionID,
		LocationID:   c.locationID,
		Organisation: c.organisationInfo,
	}, nil
}

// Disconnect implements shipthis.Client.Disconnect. Local state change only;
// no network call.
func (c *Client) Disconnect() {
	c.apiKey = ""
	c.connected = false
}

// IsConnected implements shipthis.Client.IsConnected.
func (c *Client) IsConnected() bool {
	return c.connected
}

// SetRegionLocation implements shipthis.Client.SetRegionLocation.
func (c *Client) SetRegionLocation(regionID, locationID string) {
	c.regionID = regionID
	c.locationID = locationID
}

// OrganisationInfo implements shipthis.Client.OrganisationInfo.
func (c *Client) OrganisationInfo() *shipthis.Organisation {
	return c.organisationInfo
}

// Resource client accessors

// Collections implements shipthis.Client.Collections.
func (c *Client) Collections() shipthis.CollectionsClient {
	return c.collections
}

// Workflows implements shipthis.Client.Workflows.
func (c *Client) Workflows() shipthis.WorkflowsClient {
	return c.workflows
}

// Reports implements shipthis.Client.Reports.
func (c *Client) Reports() shipthis.ReportsClient {
	return c.reports
}

// Conversations implements shipthis.Client.Conversations.
func (c *Client) Conversations() shipthis.ConversationsClient {
	return c.conversations
}

// ThirdParty implements shipthis.Client.ThirdParty.
func (c *Client) ThirdParty() shipthis.ThirdPartyClient {
	return c.thirdParty
}

// Files implements shipthis.Client.Files.
func (c *Client) Files() shipthis.FilesClient {
	return c.files
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.collections = NewCollectionsClient(c.httpClient)
	c.workflows = NewWorkflowsClient(c.httpClient)
	c.conversations = NewConversationsClient(c.httpClient)
	c.reports = NewReportsClient(c)
	c.thirdParty = NewThirdPartyClient(c)
	c.files = NewFilesClient(c)
}

// loggerAdapter adapts shipthis.Logger to the transport's Logger.
type loggerAdapter struct {
	logger shipthis.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
