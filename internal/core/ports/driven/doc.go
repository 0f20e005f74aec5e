// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogSource: Lists directories and documents from the catalog API
//   - DeliverySink / SinkDialer: Stores the rendered report at the destination
//   - TokenProvider: Supplies the bearer token for catalog API calls
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Export run history. Without it, runs are not recorded
//     and the history listing is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
