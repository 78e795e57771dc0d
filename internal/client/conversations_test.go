package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversation", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "job-1", body["document_id"])
		assert.Equal(t, "job", body["view_name"])
		assert.Equal(t, "note", body["message_type"])

		conversation, ok := body["conversation"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Cargo arrived", conversation["message"])

		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"conv-1"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	doc, err := client.Conversations().Create(context.Background(), "job", "job-1", shipthis.Document{
		"message": "Cargo arrived",
		"type":    "note",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-1", doc.ID())
}

func TestConversationsClient_Create_NoType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "", body["message_type"])

		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"conv-1"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Conversations().Create(context.Background(), "job", "job-1", shipthis.Document{"message": "hi"})
	require.NoError(t, err)
}

func TestConversationsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversation", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		query := r.URL.Query()
		assert.Equal(t, "job", query.Get("view_name"))
		assert.Equal(t, "job-1", query.Get("document_id"))
		assert.Equal(t, "all", query.Get("message_type"))
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "100", query.Get("count"))
		assert.Equal(t, "2", query.Get("version"))

		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[{"_id":"conv-1"}],"total":1}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	doc, err := client.Conversations().List(context.Background(), "job", "job-1", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1), doc["total"])
}

func TestConversationsClient_List_Options(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "email", query.Get("message_type"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "25", query.Get("count"))

		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Conversations().List(context.Background(), "job", "job-1", &shipthis.ConversationListOptions{
		MessageType: "email",
		Page:        2,
		Count:       25,
	})
	require.NoError(t, err)
}

func TestConversationsClient_Validation(t *testing.T) {
	client := newTestClient(t, "https://api.example.com")
	ctx := context.Background()

	_, err := client.Conversations().Create(ctx, "", "job-1", shipthis.Document{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view name")

	_, err = client.Conversations().List(ctx, "job", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document id")
}
