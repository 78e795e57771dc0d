package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	internalhttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// ConversationsClient implements the shipthis.ConversationsClient interface.
type ConversationsClient struct {
	httpClient *internalhttp.Client
}

// NewConversationsClient creates a new ConversationsClient.
func NewConversationsClient(httpClient *internalhttp.Client) *ConversationsClient {
	return &ConversationsClient{
		httpClient: httpClient,
	}
}

// Create implements shipthis.ConversationsClient.Create. The message type is
// lifted from the conversation's "type" field when present.
func (c *ConversationsClient) Create(ctx context.Context, viewName, documentID string, conversation shipthis.Document) (shipthis.Document, error) {
	err := validateRequired("view name", viewName)
	if err != nil {
		return nil, err
	}
	err = validateRequired("document id", documentID)
	if err != nil {
		return nil, err
	}

	messageType := ""
	if t, ok := conversation["type"].(string); ok {
		messageType = t
	}

	payload := map[string]interface{}{
		"conversation": conversation,
		"document_id":  documentID,
		"view_name":    viewName,
		"message_type": messageType,
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathConversation, payload)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	return decodeDocument(resp.Data)
}

// List implements shipthis.ConversationsClient.List.
func (c *ConversationsClient) List(ctx context.Context, viewName, documentID string, opts *shipthis.ConversationListOptions) (shipthis.Document, error) {
	err := validateRequired("view name", viewName)
	if err != nil {
		return nil, err
	}
	err = validateRequired("document id", documentID)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &shipthis.ConversationListOptions{}
	}

	messageType := opts.MessageType
	if messageType == "" {
		messageType = "all"
	}
	page := opts.Page
	if page <= 0 {
		page = shipthis.DefaultPage
	}
	count := opts.Count
	if count <= 0 {
		count = shipthis.DefaultConversationCount
	}

	values := url.Values{}
	values.Set("view_name", viewName)
	values.Set("document_id", documentID)
	values.Set("message_type", messageType)
	values.Set("page", strconv.Itoa(page))
	values.Set("count", strconv.Itoa(count))
	values.Set("version", "2")

	resp, err := c.httpClient.Get(ctx, constants.APIPathConversation, values)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	return decodeDocument(resp.Data)
}
