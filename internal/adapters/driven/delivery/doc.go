// Package delivery provides implementations of the DeliverySink driven port.
// Sinks receive the rendered report as a single payload and place it at the
// configured destination, replacing any previous report of the same name.
//
// Sinks:
//   - LocalSink: writes reports to a directory on the local filesystem
//   - DropboxSink: uploads reports to a Dropbox folder
//
// The Retrier wraps a SinkDialer and retries failed deliveries, dialling a
// fresh sink for every attempt.
package delivery
