package constants

import "time"

// Endpoint defaults.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.shipthis.co/api/v3/"

	// DefaultUserType tags requests from standard accounts.
	DefaultUserType = "employee"

	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "shipthis-go"
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default per-request timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadTimeoutFactor multiplies the configured timeout for uploads.
	UploadTimeoutFactor = 2
)

// Header names.
const (
	HeaderOrganisation = "organisation"
	HeaderUserType     = "usertype"
	HeaderAPIKey       = "x-api-key"
	HeaderRegion       = "region"
	HeaderLocation     = "location"
)

// API paths.
const (
	// APIPathInfo is the connect/info endpoint.
	APIPathInfo = "user-auth/info"

	// APIPathCollections prefixes the uniform collection CRUD paths.
	APIPathCollections = "incollection"

	// APIPathGroupEdit prefixes the bulk edit paths.
	APIPathGroupEdit = "incollection_group_edit"

	// APIPathWorkflow prefixes the workflow action paths.
	APIPathWorkflow = "workflow"

	// APIPathConversation is the conversation endpoint.
	APIPathConversation = "conversation"

	// APIPathFileUpload is the upload path on the derived upload host.
	APIPathFileUpload = "api/v3/file-upload"
)

// Limits.
const (
	// MaxReplicateCount caps client-requested replication before dispatch.
	MaxReplicateCount = 100

	// BodyExcerptLen bounds the raw-body excerpt included in malformed
	// response errors.
	BodyExcerptLen = 200

	// MinNameLength is the minimum length of collection names and object
	// ids accepted at operation boundaries.
	MinNameLength = 3
)
