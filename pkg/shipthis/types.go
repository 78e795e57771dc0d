package shipthis

import (
	"encoding/json"
)

// Document is an arbitrary collection document. Collections are
// server-defined, so documents carry no fixed schema on the client side.
type Document map[string]interface{}

// ID returns the document's _id field, or an empty string.
func (d Document) ID() string {
	id, _ := d["_id"].(string)

	return id
}

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []APIError      `json:"errors,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// FirstErrorMessage resolves the message reported for a failed envelope:
// the first error's message, then the envelope-level message, then a
// generic fallback.
func (e *Envelope) FirstErrorMessage() string {
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return e.Errors[0].Message
	}

	if e.Message != "" {
		return e.Message
	}

	return "API call failed"
}

// Location is one location within a region.
type Location struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name,omitempty"`
}

// Region is one region within an organisation.
type Region struct {
	RegionID  string     `json:"region_id"`
	Name      string     `json:"name,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

// Organisation is the organisation metadata returned by the info endpoint.
type Organisation struct {
	OrganisationID string   `json:"organisation_id,omitempty"`
	Name           string   `json:"name,omitempty"`
	Regions        []Region `json:"regions,omitempty"`
}

// AccountInfo is the payload of the info endpoint: the calling account's
// organisation and user metadata.
type AccountInfo struct {
	Organisation *Organisation `json:"organisation"`
	User         Document      `json:"user,omitempty"`
}

// ConnectResult reports the identity resolved by Connect.
type ConnectResult struct {
	RegionID     string        `json:"region_id"`
	LocationID   string        `json:"location_id"`
	Organisation *Organisation `json:"organisation"`
}

// SortField is one entry of a multi-field sort, applied in order.
type SortField struct {
	Field string `json:"field"`
	Order string `json:"order"`
}
