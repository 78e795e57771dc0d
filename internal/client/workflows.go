package client

import (
	"context"
	"fmt"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// WorkflowsClient implements the shipthis.WorkflowsClient interface.
type WorkflowsClient struct {
	httpClient *internalhttp.Client
}

// NewWorkflowsClient creates a new WorkflowsClient.
func NewWorkflowsClient(httpClient *internalhttp.Client) *WorkflowsClient {
	return &WorkflowsClient{
		httpClient: httpClient,
	}
}

// Get implements shipthis.WorkflowsClient.Get.
func (c *WorkflowsClient) Get(ctx context.Context, workflowID string) (shipthis.Document, error) {
	err := validateObjectID(workflowID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathCollections+"/workflow/"+workflowID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workflow: %w", err)
	}

	return decodeDocument(resp.Data)
}

// JobStatus implements shipthis.WorkflowsClient.JobStatus.
func (c *WorkflowsClient) JobStatus(ctx context.Context, collection, objectID string) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, jobStatusPath(collection, objectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting job status: %w", err)
	}

	return decodeDocument(resp.Data)
}

// SetJobStatus implements shipthis.WorkflowsClient.SetJobStatus.
func (c *WorkflowsClient) SetJobStatus(ctx context.Context, collection, objectID string, actionIndex int) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, jobStatusPath(collection, objectID), map[string]interface{}{
		"action_index": actionIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("setting job status: %w", err)
	}

	return decodeDocument(resp.Data)
}

// PrimaryAction implements shipthis.WorkflowsClient.PrimaryAction: a status
// change on a record via an action index and an intended resulting state.
func (c *WorkflowsClient) PrimaryAction(ctx context.Context, collection, workflowID, objectID string, actionIndex int, intendedStateID string, opts *shipthis.PrimaryActionOptions) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateRequired("workflow id", workflowID)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"action_index":      actionIndex,
		"intended_state_id": intendedStateID,
	}

	if opts != nil && opts.StartStateID != "" {
		payload["start_state_id"] = opts.StartStateID
	}

	path := constants.APIPathWorkflow + "/" + collection + "/" + workflowID + "/" + objectID

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("executing primary workflow action: %w", err)
	}

	return decodeDocument(resp.Data)
}

// SecondaryAction implements shipthis.WorkflowsClient.SecondaryAction: a
// sub-status change targeting a specific sub-state.
func (c *WorkflowsClient) SecondaryAction(ctx context.Context, collection, workflowID, objectID, targetState string, additionalData shipthis.Document) (shipthis.Document, error) {
	err := validateCollection(collection)
	if err != nil {
		return nil, err
	}

	err = validateRequired("workflow id", workflowID)
	if err != nil {
		return nil, err
	}

	err = validateObjectID(objectID)
	if err != nil {
		return nil, err
	}

	err = validateRequired("target state", targetState)
	if err != nil {
		return nil, err
	}

	payload := additionalData
	if payload == nil {
		payload = shipthis.Document{}
	}

	path := constants.APIPathWorkflow + "/" + collection + "/" + workflowID + "/" + objectID + "/" + targetState

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("executing secondary workflow action: %w", err)
	}

	return decodeDocument(resp.Data)
}

// jobStatusPath builds the job-status path for a document.
func jobStatusPath(collection, objectID string) string {
	return constants.APIPathWorkflow + "/" + collection + "/job_status/" + objectID
}
