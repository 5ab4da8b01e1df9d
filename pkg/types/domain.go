package types

import "context"

// Notification is a named event value broadcast through the hub.
// The hub inspects only Name; Body, Type and Sender pass through opaque.
// Treat a Notification as immutable once constructed.
type Notification struct {
	// Name keys the observer lookup.
	// example: ORDER_PLACED
	Name string `json:"name"`
	// Body is the opaque payload.
	Body any `json:"body,omitempty"`
	// Type is an optional tag refining the name.
	// example: audit
	Type string `json:"type,omitempty"`
	// Sender identifies the producer; never inspected by the hub.
	Sender any `json:"sender,omitempty"`
}

// Handler consumes a notification synchronously. A non-nil error aborts
// delivery to the remaining observers of that dispatch pass.
type Handler func(Notification) error

// AsyncHandler consumes a notification on its own goroutine. The context
// comes from the NotifyAsync caller; the hub adds no deadline of its own.
type AsyncHandler func(context.Context, Notification) error

// Mediator is a long-lived named component whose declared interests are
// subscribed on registration and torn down on removal.
type Mediator interface {
	// Name must be unique among registered mediators.
	Name() string
	// NotificationInterests lists names delivered via HandleNotification.
	NotificationInterests() []string
	// AsyncNotificationInterests lists names delivered via HandleNotificationAsync.
	AsyncNotificationInterests() []string

	HandleNotification(Notification) error
	HandleNotificationAsync(context.Context, Notification) error

	// OnRegister runs after all interests are subscribed.
	OnRegister()
	// OnRemove runs after all derived subscriptions are gone.
	OnRemove()
}
