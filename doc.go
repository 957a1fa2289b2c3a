// Package repox is a client for the REST management API of a REPOX
// instance.
//
// REPOX is a metadata aggregation service used by digital libraries: it
// organizes OAI-PMH and folder-based data sources into a tree of
// aggregators, providers and datasets, and runs scheduled harvests
// against them. This package wraps the management endpoints of a single
// instance:
//   - listing, creating, updating and deleting aggregators, providers
//     and datasets
//   - starting, scheduling and cancelling harvests
//   - reading records, mappings, option sets and instance statistics
//
// Every method issues one synchronous HTTP request with basic
// authentication and decodes the XML response. The client keeps no state
// beyond the base URL and credentials.
//
// Basic usage:
//
//	client := repox.New("http://localhost:8080", "admin", "admin")
//
//	ids, err := client.AggregatorIDs(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, id := range ids {
//		providers, err := client.Providers(ctx, id)
//		...
//	}
//
// An Inventory keeps an optional local SQLite snapshot of the
// aggregator/provider/dataset tree for offline inspection; see
// OpenInventory.
package repox
