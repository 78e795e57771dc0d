package shipthis

import (
	"context"
	"errors"
	"io"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrOrganisationRequired = errors.New("organisation is required")
)

// CollectionsClient provides access to collection documents through the
// uniform incollection CRUD paths.
type CollectionsClient interface {
	// Get fetches a single document. When objectID is empty the call is
	// translated into a one-item list fetch and the first match is
	// returned; a nil Document with a nil error means no match exists.
	Get(ctx context.Context, collection, objectID string, opts *GetOptions) (Document, error)
	List(ctx context.Context, collection string, opts *ListOptions) ([]Document, error)
	Search(ctx context.Context, collection, query string, opts *SearchOptions) ([]Document, error)
	Create(ctx context.Context, collection string, data Document, opts *CreateOptions) (Document, error)
	// Update performs a full document replacement.
	Update(ctx context.Context, collection, objectID string, data Document) (Document, error)
	// Patch updates individual fields. The server runs full field
	// validation, workflow triggers, and audit logging; the client sends
	// the field mapping as-is.
	Patch(ctx context.Context, collection, objectID string, fields map[string]interface{}) (Document, error)
	Delete(ctx context.Context, collection, objectID string) (Document, error)
	BulkEdit(ctx context.Context, collection string, ids []string, updateData map[string]interface{}, opts *BulkEditOptions) (Document, error)
	CreateReferenceLinkedField(ctx context.Context, collection, objectID string, payload Document) (Document, error)
}

// WorkflowsClient drives the server-defined status machines attached to
// documents.
type WorkflowsClient interface {
	Get(ctx context.Context, workflowID string) (Document, error)
	JobStatus(ctx context.Context, collection, objectID string) (Document, error)
	SetJobStatus(ctx context.Context, collection, objectID string, actionIndex int) (Document, error)
	PrimaryAction(ctx context.Context, collection, workflowID, objectID string, actionIndex int, intendedStateID string, opts *PrimaryActionOptions) (Document, error)
	SecondaryAction(ctx context.Context, collection, workflowID, objectID, targetState string, additionalData Document) (Document, error)
}

// ReportsClient fetches server-rendered report views.
type ReportsClient interface {
	View(ctx context.Context, reportName, startDate, endDate string, opts *ReportOptions) (Document, error)
}

// ConversationsClient manages document-scoped message threads.
type ConversationsClient interface {
	Create(ctx context.Context, viewName, documentID string, conversation Document) (Document, error)
	List(ctx context.Context, viewName, documentID string, opts *ConversationListOptions) (Document, error)
}

// ThirdPartyClient exposes the passthrough lookups backed by external
// providers (currency rates, Google Places, reference autocomplete).
type ThirdPartyClient interface {
	// ExchangeRate looks up the rate from source to target. An empty
	// target defaults to USD; a zero date defaults to the current time in
	// milliseconds.
	ExchangeRate(ctx context.Context, source, target string, date int64) (Document, error)
	Autocomplete(ctx context.Context, referenceName string, data Document) ([]Document, error)
	SearchLocation(ctx context.Context, query string) ([]Document, error)
	PlaceDetails(ctx context.Context, placeID, description string) (Document, error)
}

// FilesClient uploads files to the derived upload host.
type FilesClient interface {
	Upload(ctx context.Context, filePath string, opts *UploadOptions) (Document, error)
	UploadReader(ctx context.Context, fileName string, reader io.Reader) (Document, error)
}

// ConnectionClient manages the client's connection handshake and the
// region/location identity attached to subsequent requests.
type ConnectionClient interface {
	// Info fetches organisation and user metadata without changing state.
	Info(ctx context.Context) (*AccountInfo, error)
	// Connect fetches organisation metadata, defaults region and location
	// to the first available entries when unset, and marks the client
	// connected.
	Connect(ctx context.Context) (*ConnectResult, error)
	// Disconnect clears the API key and marks the client not connected.
	// Purely a local state change; no network call is made.
	Disconnect()
	IsConnected() bool
	// SetRegionLocation swaps the region/location sent with subsequent
	// requests. Not safe for concurrent use with in-flight calls without
	// external synchronization.
	SetRegionLocation(regionID, locationID string)
	// OrganisationInfo returns the organisation metadata cached by the
	// last successful Connect, or nil before that.
	OrganisationInfo() *Organisation
}

// Client is the full Shipthis API surface.
type Client interface {
	ConnectionClient

	Collections() CollectionsClient
	Workflows() WorkflowsClient
	Reports() ReportsClient
	Conversations() ConversationsClient
	ThirdParty() ThirdPartyClient
	Files() FilesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a shipthis.Client.
//
// # Identity headers
//
// Every request carries the organisation and user-type headers plus, when
// available, the API key and the region/location pair. CustomHeaders override
// the built-ins on key collision, and per-call option overrides win over
// everything (see the header precedence contract on the transport).
//
// # Timeouts
//
// Timeout bounds each individual dispatch via a context deadline. File
// uploads double it. There is no retry of any kind: a failed call surfaces
// exactly one error.
type Config struct {
	// Organisation is the organisation ID sent with every request. Required.
	Organisation string

	// APIKey is sent as the x-api-key header when set. Optional if
	// CustomHeaders carries authentication. Cleared by Disconnect.
	APIKey string

	// UserType tags requests with the calling user class. Defaults to
	// "employee".
	UserType string

	// RegionID is sent as the region header when set. When empty, Connect
	// resolves it to the organisation's first region.
	RegionID string

	// LocationID is sent as the location header when set. When empty,
	// Connect resolves it to the first location of the resolved region.
	LocationID string

	// Timeout bounds each request. Defaults to 30 seconds.
	Timeout time.Duration

	// BaseURL overrides the production endpoint
	// (https://api.shipthis.co/api/v3/). Intended for testing.
	BaseURL string

	// CustomHeaders are applied on top of the built-in headers for every
	// request.
	CustomHeaders map[string]string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose request/response logging when Logger is set.
	Debug bool

	// Logger is an optional structured logger used by the transport.
	Logger Logger

	// Interceptors is an optional chain run around every dispatch.
	Interceptors *InterceptorChain
}
