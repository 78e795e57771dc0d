package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// ReportsClient implements the shipthis.ReportsClient interface. It holds
// the facade so report queries pick up the current location.
type ReportsClient struct {
	client *Client
}

// NewReportsClient creates a new ReportsClient.
func NewReportsClient(client *Client) *ReportsClient {
	return &ReportsClient{
		client: client,
	}
}

// View implements shipthis.ReportsClient.View.
func (c *ReportsClient) View(ctx context.Context, reportName, startDate, endDate string, opts *shipthis.ReportOptions) (shipthis.Document, error) {
	err := validateRequired("report name", reportName)
	if err != nil {
		return nil, err
	}

	err = validateRequired("start date", startDate)
	if err != nil {
		return nil, err
	}

	err = validateRequired("end date", endDate)
	if err != nil {
		return nil, err
	}

	outputType := "json"
	skipMeta := "true"

	var body interface{}

	if opts != nil {
		if opts.OutputType != "" {
			outputType = opts.OutputType
		}

		if opts.WithMeta {
			skipMeta = "false"
		}

		if len(opts.Data) > 0 {
			body = opts.Data
		}
	}

	values := url.Values{}
	values.Set("start_date", startDate)
	values.Set("end_date", endDate)
	values.Set("output_type", outputType)
	values.Set("skip_meta", skipMeta)

	if c.client.locationID != "" {
		values.Set("location", c.client.locationID)
	}

	resp, err := c.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "report-view/" + reportName,
		Query:  values,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("getting report view %s: %w", reportName, err)
	}

	return decodeDocument(resp.Data)
}
