package client

import (
	"encoding/json"
	"fmt"

	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// decodeDocument parses an envelope data payload as a single document. A
// missing or null payload yields a nil document, which mutation-style calls
// returning no body are allowed to produce.
func decodeDocument(data json.RawMessage) (shipthis.Document, error) {
	if isEmptyPayload(data) {
		return nil, nil
	}

	var doc shipthis.Document

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return doc, nil
}

// decodeDocuments parses an envelope data payload as a document list.
func decodeDocuments(data json.RawMessage) ([]shipthis.Document, error) {
	if isEmptyPayload(data) {
		return []shipthis.Document{}, nil
	}

	var docs []shipthis.Document

	err := json.Unmarshal(data, &docs)
	if err != nil {
		return nil, fmt.Errorf("parsing document list: %w", err)
	}

	return docs, nil
}

// unwrapMutation applies the mutation unwrap rule: when the payload is an
// object holding a non-empty data field, that field is returned; otherwise
// the payload itself.
func unwrapMutation(data json.RawMessage) (shipthis.Document, error) {
	doc, err := decodeDocument(data)
	if err != nil || doc == nil {
		return doc, err
	}

	if inner, ok := doc["data"].(map[string]interface{}); ok && len(inner) > 0 {
		return shipthis.Document(inner), nil
	}

	return doc, nil
}

func isEmptyPayload(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}
