// Package connectors provides implementations of the CatalogSource interface
// for content providers. Each connector knows how to list directories and
// documents from a specific API.
//
// The teamdocs connector is the only provider today; the layout leaves room
// for further catalog sources.
package connectors
