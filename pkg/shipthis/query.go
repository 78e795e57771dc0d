package shipthis

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Default paging applied when options leave page or count unset.
const (
	DefaultPage              = 1
	DefaultPageSize          = 20
	DefaultConversationCount = 100
)

// GetOptions are the optional parameters for single-document fetches.
type GetOptions struct {
	// Filters narrows the match when no object ID is given. JSON-encoded
	// into the query_filter_v2 parameter.
	Filters map[string]interface{}
	// OnlyFields is a comma-separated projection of fields to return.
	OnlyFields string
}

// ToValues encodes the options as query parameters.
func (o *GetOptions) ToValues() (url.Values, error) {
	values := url.Values{}
	if o == nil {
		return values, nil
	}

	if len(o.Filters) > 0 {
		encoded, err := json.Marshal(o.Filters)
		if err != nil {
			return nil, fmt.Errorf("encoding filters: %w", err)
		}

		values.Set("query_filter_v2", string(encoded))
	}

	if o.OnlyFields != "" {
		values.Set("only", o.OnlyFields)
	}

	return values, nil
}

// ListOptions are the optional parameters for list fetches.
type ListOptions struct {
	// Filters is JSON-encoded into the query_filter_v2 parameter.
	Filters map[string]interface{}
	// SearchQuery is a free-text search over the collection.
	SearchQuery string
	// Page selects the result page. Defaults to 1.
	Page int
	// Count bounds the page size. Defaults to 20.
	Count int
	// OnlyFields is a comma-separated projection of fields to return.
	OnlyFields string
	// Sort is an ordered multi-field sort, JSON-encoded into multi_sort.
	Sort []SortField
	// OutputType selects the server-side output format.
	OutputType string
	// SkipMeta suppresses result metadata when true.
	SkipMeta bool
}

// NewListOptions creates list options with default paging.
func NewListOptions() *ListOptions {
	return &ListOptions{Page: DefaultPage, Count: DefaultPageSize}
}

// WithFilters sets the query filter.
func (o *ListOptions) WithFilters(filters map[string]interface{}) *ListOptions {
	o.Filters = filters

	return o
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithCount sets the page size.
func (o *ListOptions) WithCount(count int) *ListOptions {
	o.Count = count

	return o
}

// WithSort appends a sort field.
func (o *ListOptions) WithSort(field, order string) *ListOptions {
	o.Sort = append(o.Sort, SortField{Field: field, Order: order})

	return o
}

// ToValues encodes the options as query parameters. Unset page and count
// fall back to their defaults.
func (o *ListOptions) ToValues() (url.Values, error) {
	page := DefaultPage
	count := DefaultPageSize

	values := url.Values{}

	if o != nil {
		if o.Page > 0 {
			page = o.Page
		}

		if o.Count > 0 {
			count = o.Count
		}

		if len(o.Filters) > 0 {
			encoded, err := json.Marshal(o.Filters)
			if err != nil {
				return nil, fmt.Errorf("encoding filters: %w", err)
			}

			values.Set("query_filter_v2", string(encoded))
		}

		if o.SearchQuery != "" {
			values.Set("search_query", o.SearchQuery)
		}

		if o.OnlyFields != "" {
			values.Set("only", o.OnlyFields)
		}

		if len(o.Sort) > 0 {
			encoded, err := json.Marshal(o.Sort)
			if err != nil {
				return nil, fmt.Errorf("encoding sort: %w", err)
			}

			values.Set("multi_sort", string(encoded))
		}

		if o.OutputType != "" {
			values.Set("output_type", o.OutputType)
		}

		if o.SkipMeta {
			values.Set("meta", "false")
		}
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("count", strconv.Itoa(count))

	return values, nil
}

// SearchOptions are the optional parameters for search calls.
type SearchOptions struct {
	// Page selects the result page. Defaults to 1.
	Page int
	// Count bounds the page size. Defaults to 20.
	Count int
	// OnlyFields is a comma-separated projection of fields to return.
	OnlyFields string
}

// CreateOptions are the optional parameters for document creation.
type CreateOptions struct {
	// IgnoreNewRequired bypasses newly added required-field checks.
	IgnoreNewRequired bool
	// SkipSequenceIfExists skips sequence generation when a sequence value
	// is already present.
	SkipSequenceIfExists bool
	// ReplicateCount replicates the created document. Values above 100 are
	// clamped before dispatch.
	ReplicateCount int
	// InputFilters is JSON-encoded into the input_filters parameter.
	InputFilters map[string]interface{}
	// ActionOpData attaches workflow action metadata to the creation.
	ActionOpData map[string]interface{}
}

// BulkEditOptions are the optional parameters for bulk edits.
type BulkEditOptions struct {
	// ExternalUpdateData augments the update with external-system data.
	ExternalUpdateData map[string]interface{}
}

// PrimaryActionOptions are the optional parameters for primary workflow
// actions.
type PrimaryActionOptions struct {
	// StartStateID pins the expected current state of the transition.
	StartStateID string
}

// ReportOptions are the optional parameters for report views.
type ReportOptions struct {
	// OutputType selects the report format. Defaults to "json".
	OutputType string
	// WithMeta includes result metadata, which is skipped by default.
	WithMeta bool
	// Data carries extra filter data in the request body.
	Data Document
}

// ConversationListOptions are the optional parameters for conversation
// listings.
type ConversationListOptions struct {
	// MessageType filters by message type. Defaults to "all".
	MessageType string
	// Page selects the result page. Defaults to 1.
	Page int
	// Count bounds the page size. Defaults to 100.
	Count int
}

// UploadOptions are the optional parameters for file uploads.
type UploadOptions struct {
	// FileName overrides the name derived from the file path.
	FileName string
}
