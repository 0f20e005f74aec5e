package driven

import "context"

// DeliverySink stores a named report at the delivery destination.
type DeliverySink interface {
	// Deliver uploads payload under name, replacing any previous
	// report with the same name.
	Deliver(ctx context.Context, name string, payload []byte) error
}

// SinkDialer opens a fresh connection to the delivery destination.
// Each delivery attempt dials anew so a failed attempt's connection
// state is never reused.
type SinkDialer func(ctx context.Context) (DeliverySink, error)
