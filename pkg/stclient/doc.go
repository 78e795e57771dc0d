// Package stclient provides the primary entry point for constructing a
// Shipthis API client that implements the shipthis.Client interface.
//
// It layers configuration, the HTTP transport, identity headers, and the
// connection handshake on top of the resource interfaces and types defined in
// the shipthis package. Most applications should import stclient to build a
// client, then use the returned shipthis.Client to access resource-specific
// clients, for example Collections(), Workflows(), Files(), etc.
//
// Quick start
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
//
//	  // Minimal: an organisation and an API key.
//	  cli, err := stclient.NewWithAPIKey("acme-logistics", "sk_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = stclient.New(&shipthis.Config{
//	    Organisation: "acme-logistics",
//	    APIKey:       "sk_live_...",
//	    RegionID:     "usa",
//	    LocationID:   "new-york",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Establish the session and default region/location from the account.
//	  if _, err := cli.Connect(ctx); err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the shipthis.Client interface
//	  jobs, err := cli.Collections().List(ctx, "job", shipthis.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = jobs
//	}
//
// # Helpers
//
// The package also provides the convenience constructor NewWithAPIKey that
// wraps New with the appropriate configuration.
package stclient
