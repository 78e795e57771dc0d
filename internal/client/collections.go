package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// CollectionsClient implements the shipthis.CollectionsClient interface.
type CollectionsClient struct {
	httpClient *internalhttp.Client
}

// NewCollectionsClient creates a new CollectionsClient.
func NewCollectionsClient(httpClient *internalhttp.Client) *CollectionsClient {
	return &CollectionsClient{
		httpClient: httpClient,
	}
}

// Get implements shipthis.CollectionsClient.Get. Without an object ID the
// call degrades to a list fetch returning the first match, or nil when the
// collection has none.
func (c *CollectionsClient) Get(ctx context.Context, collection, objectID string, opts *shipthis.GetOptions) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	if objectID != "" {
		err = validateObjectID(objectID)
		if err != nil {
			return nil, err
		}

		values := url.Values{}
		if opts != nil && opts.OnlyFields != "" {
			values.Set("only", opts.OnlyFields)
		}

		resp, err := c.httpClient.Get(ctx, collectionPath(collection)+"/"+objectID, values)
		if err != nil {
			return nil, fmt.Errorf("getting %s document: %w", collection, err)
		}

		return decodeDocument(resp.Data)
	}

	values, err := opts.ToValues()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, collectionPath(collection), values)
	if err != nil {
		return nil, fmt.Errorf("getting first %s document: %w", collection, err)
	}

	items, err := decodeItems(resp.Data)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	return items[0], nil
}

// List implements shipthis.CollectionsClient.List.
func (c *CollectionsClient) List(ctx context.Context, collection string, opts *shipthis.ListOptions) ([]shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	values, err := opts.ToValues()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, collectionPath(collection), values)
	if err != nil {
		return nil, fmt.Errorf("listing %s documents: %w", collection, err)
	}

	return decodeItems(resp.Data)
}

// Search implements shipthis.CollectionsClient.Search. It is a list fetch
// with the search-query parameter fixed.
func (c *CollectionsClient) Search(ctx context.Context, collection, query string, opts *shipthis.SearchOptions) ([]shipthis.Document, error) {
	listOpts := shipthis.NewListOptions()
	listOpts.SearchQuery = query

	if opts != nil {
		if opts.Page > 0 {
			listOpts.Page = opts.Page
		}

		if opts.Count > 0 {
			listOpts.Count = opts.Count
		}

		listOpts.OnlyFields = opts.OnlyFields
	}

	return c.List(ctx, collection, listOpts)
}

// Create implements shipthis.CollectionsClient.Create.
func (c *CollectionsClient) Create(ctx context.Context, collection string, data shipthis.Document, opts *shipthis.CreateOptions) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	payload := map[string]interface{}{
		"reqbody":                 data,
		"ignore_new_required":     false,
		"skip_sequence_if_exists": false,
	}

	if opts != nil {
		payload["ignore_new_required"] = opts.IgnoreNewRequired
		payload["skip_sequence_if_exists"] = opts.SkipSequenceIfExists

		if opts.ReplicateCount > 0 {
			count := opts.ReplicateCount
			if count > constants.MaxReplicateCount {
				count = constants.MaxReplicateCount
			}

			values.Set("replicate_count", strconv.Itoa(count))
		}

		if len(opts.InputFilters) > 0 {
			encoded, err := json.Marshal(opts.InputFilters)
			if err != nil {
				return nil, fmt.Errorf("encoding input filters: %w", err)
			}

			values.Set("input_filters", string(encoded))
		}

		if len(opts.ActionOpData) > 0 {
			payload["action_op_data"] = opts.ActionOpData
		}
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   collectionPath(collection),
		Query:  values,
		Body:   payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s document: %w", collection, err)
	}

	return unwrapMutation(resp.Data)
}

// Update implements shipthis.CollectionsClient.Update (full replacement).
func (c *CollectionsClient) Update(ctx context.Context, collection, objectID string, data shipthis.Document) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, collectionPath(collection)+"/"+objectID, map[string]interface{}{
		"reqbody": data,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s document: %w", collection, err)
	}

	return unwrapMutation(resp.Data)
}

// Patch implements shipthis.CollectionsClient.Patch. The field mapping is
// sent as-is; the server runs the full validation/workflow/audit pipeline.
func (c *CollectionsClient) Patch(ctx context.Context, collection, objectID string, fields map[string]interface{}) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, collectionPath(collection)+"/"+objectID, map[string]interface{}{
		"update_fields": fields,
	})
	if err != nil {
		return nil, fmt.Errorf("patching %s document: %w", collection, err)
	}

	return decodeDocument(resp.Data)
}

// Delete implements shipthis.CollectionsClient.Delete.
func (c *CollectionsClient) Delete(ctx context.Context, collection, objectID string) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, collectionPath(collection)+"/"+objectID)
	if err != nil {
		return nil, fmt.Errorf("deleting %s document: %w", collection, err)
	}

	return decodeDocument(resp.Data)
}

// BulkEdit implements shipthis.CollectionsClient.BulkEdit.
func (c *CollectionsClient) BulkEdit(ctx context.Context, collection string, ids []string, updateData map[string]interface{}, opts *shipthis.BulkEditOptions) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateBulkEdit(ids, updateData)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"ids":         ids,
		"update_data": updateData,
	}

	if opts != nil && len(opts.ExternalUpdateData) > 0 {
		data["external_update_data"] = opts.ExternalUpdateData
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathGroupEdit+"/"+collection, map[string]interface{}{
		"data": data,
	})
	if err != nil {
		return nil, fmt.Errorf("bulk editing %s documents: %w", collection, err)
	}

	return decodeDocument(resp.Data)
}

// CreateReferenceLinkedField implements
// shipthis.CollectionsClient.CreateReferenceLinkedField.
func (c *CollectionsClient) CreateReferenceLinkedField(ctx context.Context, collection, objectID string, payload shipthis.Document) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	path := constants.APIPathCollections + "/create-reference-linked-field/" + collection + "/" + objectID

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("creating reference linked field: %w", err)
	}

	return decodeDocument(resp.Data)
}

// collectionPath builds the uniform CRUD path for a collection.
func collectionPath(collection string) string {
	return constants.APIPathCollections + "/" + collection
}

// decodeItems extracts the items list from a list payload. A null payload or
// a payload without items yields an empty list.
func decodeItems(data json.RawMessage) ([]shipthis.Document, error) {
	if isEmptyPayload(data) {
		return []shipthis.Document{}, nil
	}

	var payload struct {
		Items []shipthis.Document `json:"items"`
	}

	err := json.Unmarshal(data, &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing list payload: %w", err)
	}

	if payload.Items == nil {
		return []shipthis.Document{}, nil
	}

	return payload.Items, nil
}
