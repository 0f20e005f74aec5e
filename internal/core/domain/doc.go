// Package domain defines the core business entities for Docket.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: An entity fetched from the catalog API
//   - RelationshipRef: A typed reference from one record to another
//   - Directory: A node in the catalog's directory tree
//   - PathTable: Directory id to full path mapping
//   - ReportRow: One rendered line of the export report
//   - ExportRun: The recorded outcome of a single export
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
