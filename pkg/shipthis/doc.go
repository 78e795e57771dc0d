// Package shipthis provides types, interfaces, and helpers for working with
// the Shipthis public API.
//
// # Overview
//
// The shipthis package defines the envelope and document types, the error
// taxonomy, and the interfaces for resource-oriented clients
// (CollectionsClient, WorkflowsClient, ReportsClient, ConversationsClient,
// ThirdPartyClient, FilesClient). A concrete implementation is provided by the
// stclient package, which wires configuration, transport, and identity
// headers. Most consumers should import stclient to construct a client and
// then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/shipthis-co/shipthis-go/pkg/shipthis"
//	  "github.com/shipthis-co/shipthis-go/pkg/stclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := stclient.New(&shipthis.Config{
//	    Organisation: "my-org",
//	    APIKey:       "my-api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Resolve region/location and validate credentials
//	  if _, err := cli.Connect(ctx); err != nil { log.Fatal(err) }
//
//	  // List the first page of shipments
//	  items, err := cli.Collections().List(ctx, "shipment", shipthis.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = items
//	}
//
// # Queries
//
// List-style calls take option structs (ListOptions, GetOptions,
// CreateOptions, ...) with named optional fields and documented defaults.
// Filter and sort values are JSON-encoded into the query string the way the
// API expects (query_filter_v2, multi_sort, input_filters).
//
// # Errors
//
// Every response is classified into exactly one of three kinds: AuthError for
// 401/403, RequestError for transport failures, timeouts, malformed bodies,
// non-2xx statuses, and success=false envelopes, and the base Error for
// anything unclassified. Helpers IsAuthError, IsRequestError, IsTimeout, and
// IsNotFound make it easy to branch on common cases. Failures are reported
// exactly once; nothing is retried.
//
// # Interceptors
//
// The package includes a request/response interceptor chain (logging, custom
// headers, call metrics) that the transport runs around every dispatch when
// configured via Config.Interceptors.
package shipthis
