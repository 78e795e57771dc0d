package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// ThirdPartyClient implements the shipthis.ThirdPartyClient interface.
type ThirdPartyClient struct {
	client *Client
}

// NewThirdPartyClient creates a new ThirdPartyClient.
func NewThirdPartyClient(client *Client) *ThirdPartyClient {
	return &ThirdPartyClient{
		client: client,
	}
}

// ExchangeRate implements shipthis.ThirdPartyClient.ExchangeRate. An empty
// target defaults to USD; a zero date defaults to the current time in
// milliseconds.
func (c *ThirdPartyClient) ExchangeRate(ctx context.Context, source, target string, date int64) (shipthis.Document, error) {
	err := validateRequired("source currency", source)
	if err != nil {
		return nil, err
	}

	if target == "" {
		target = "USD"
	}

	if date == 0 {
		date = time.Now().UnixMilli()
	}

	values := url.Values{}
	values.Set("source", source)
	values.Set("target", target)
	values.Set("date", strconv.FormatInt(date, 10))

	resp, err := c.client.httpClient.Get(ctx, "thirdparty/currency", values)
	if err != nil {
		return nil, fmt.Errorf("getting exchange rate: %w", err)
	}

	return decodeDocument(resp.Data)
}

// Autocomplete implements shipthis.ThirdPartyClient.Autocomplete.
func (c *ThirdPartyClient) Autocomplete(ctx context.Context, referenceName string, data shipthis.Document) ([]shipthis.Document, error) {
	err := validateRequired("reference name", referenceName)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	if c.client.locationID != "" {
		values.Set("location", c.client.locationID)
	}

	resp, err := c.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "autocomplete-reference/" + referenceName,
		Query:  values,
		Body:   data,
	})
	if err != nil {
		return nil, fmt.Errorf("getting autocomplete suggestions: %w", err)
	}

	return decodeDocuments(resp.Data)
}

// SearchLocation implements shipthis.ThirdPartyClient.SearchLocation.
func (c *ThirdPartyClient) SearchLocation(ctx context.Context, query string) ([]shipthis.Document, error) {
	err := validateRequired("query", query)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("query", query)

	resp, err := c.client.httpClient.Get(ctx, "thirdparty/search-place-autocomplete", values)
	if err != nil {
		return nil, fmt.Errorf("searching locations: %w", err)
	}

	return decodeDocuments(resp.Data)
}

// PlaceDetails implements shipthis.ThirdPartyClient.PlaceDetails.
func (c *ThirdPartyClient) PlaceDetails(ctx context.Context, placeID, description string) (shipthis.Document, error) {
	err := validateRequired("place id", placeID)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("query", placeID)
	values.Set("description", description)

	resp, err := c.client.httpClient.Get(ctx, "thirdparty/select-google-place", values)
	if err != nil {
		return nil, fmt.Errorf("getting place details: %w", err)
	}

	return decodeDocument(resp.Data)
}
