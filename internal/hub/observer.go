package hub

import (
	"context"

	"notifyd/pkg/types"
)

// Observer pairs a synchronous handler with an opaque context used as the
// subscription's identity. Removal matches on the context, never on the
// handler (function values are not comparable in Go, and two subscriptions
// sharing a method value must still be distinguishable by owner).
//
// The context must be a comparable value, typically a pointer to the owning
// component.
type Observer struct {
	handle  types.Handler
	context any
}

// NewObserver wraps handle with ctx as the removal identity.
func NewObserver(handle types.Handler, ctx any) *Observer {
	return &Observer{handle: handle, context: ctx}
}

// SetHandler replaces the wrapped handler.
func (o *Observer) SetHandler(handle types.Handler) { o.handle = handle }

// SetContext replaces the identity context.
func (o *Observer) SetContext(ctx any) { o.context = ctx }

// Notify invokes the wrapped handler. Errors propagate to the dispatch pass.
func (o *Observer) Notify(n types.Notification) error {
	return o.handle(n)
}

// CompareContext reports whether candidate is identical to the stored context.
func (o *Observer) CompareContext(candidate any) bool {
	return o.context == candidate
}

// AsyncObserver is the asynchronous counterpart of Observer.
type AsyncObserver struct {
	handle  types.AsyncHandler
	context any
}

// NewAsyncObserver wraps handle with ctx as the removal identity.
func NewAsyncObserver(handle types.AsyncHandler, ctx any) *AsyncObserver {
	return &AsyncObserver{handle: handle, context: ctx}
}

// SetHandler replaces the wrapped handler.
func (o *AsyncObserver) SetHandler(handle types.AsyncHandler) { o.handle = handle }

// SetContext replaces the identity context.
func (o *AsyncObserver) SetContext(ctx any) { o.context = ctx }

// NotifyAsync invokes the wrapped handler on the caller's goroutine; the hub
// decides where that runs.
func (o *AsyncObserver) NotifyAsync(ctx context.Context, n types.Notification) error {
	return o.handle(ctx, n)
}

// CompareContext reports whether candidate is identical to the stored context.
func (o *AsyncObserver) CompareContext(candidate any) bool {
	return o.context == candidate
}
