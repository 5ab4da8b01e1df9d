package types

// PublishRequest is the payload for POST /notify and POST /notify/async.
type PublishRequest struct {
	// Notification name to broadcast.
	// example: ORDER_PLACED
	Name string `json:"name" example:"ORDER_PLACED"`
	// Opaque body forwarded to observers untouched.
	Body any `json:"body,omitempty"`
	// Optional type tag.
	// example: audit
	Type string `json:"type,omitempty" example:"audit"`
	// Optional sender label. HTTP publishers are identified by string only.
	// example: checkout-service
	Sender string `json:"sender,omitempty" example:"checkout-service"`
}

// PublishResponse is returned after a dispatch pass completes.
type PublishResponse struct {
	// Notification name that was dispatched.
	// example: ORDER_PLACED
	Name string `json:"name" example:"ORDER_PLACED"`
	// Number of observers in the snapshot the pass delivered to.
	// example: 3
	Delivered int `json:"delivered" example:"3"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// MediatorStatus summarizes one registered mediator for GET /mediators.
type MediatorStatus struct {
	// Registered mediator name.
	// example: audit-log
	Name string `json:"name" example:"audit-log"`
	// Names delivered to the mediator synchronously.
	Interests []string `json:"interests,omitempty"`
	// Names delivered to the mediator asynchronously.
	AsyncInterests []string `json:"async_interests,omitempty"`
}

// SubscriptionStatus reports the observer count for one notification name.
type SubscriptionStatus struct {
	// Notification name.
	// example: ORDER_PLACED
	Name string `json:"name" example:"ORDER_PLACED"`
	// Observers on the synchronous list.
	// example: 2
	Observers int `json:"observers" example:"2"`
	// Observers on the asynchronous list.
	// example: 1
	AsyncObservers int `json:"async_observers" example:"1"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Per-name subscription counts, sorted by name.
	Subscriptions []SubscriptionStatus `json:"subscriptions"`
	// Registered mediators, sorted by name.
	Mediators []MediatorStatus `json:"mediators"`
	// Total notifications dispatched since start (sync + async passes).
	// example: 42
	DispatchesTotal uint64 `json:"dispatches_total" example:"42"`
	// Uptime of the hub in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
