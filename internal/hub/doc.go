// Package hub implements the in-process notification hub: a name-keyed
// publish/subscribe registry with synchronous and asynchronous dispatch and
// mediator lifecycle management. It is structured into small files by concern:
//
//   - hub.go: core Hub type, constructor, registry maps.
//   - config.go: HubConfig and defaults; NewWithConfig applies defaults.
//   - observer.go: Observer/AsyncObserver records and context matching.
//   - subscribe.go: observer list maintenance (register/remove).
//   - notify.go: snapshot fan-out for Notify and NotifyAsync.
//   - mediator.go: mediator registration, retrieval, teardown.
//   - singleton.go: optional process-wide instance with construction guard.
//   - status.go: Status snapshot for the HTTP surface.
//   - errors.go: error types and helpers (IsDispatchFailed).
//   - metrics.go: Prometheus instrumentation.
//
// A Hub is safe for concurrent use. Every dispatch pass iterates a snapshot of
// the observer list taken under the read lock, so handlers may freely register
// or remove observers (including themselves) while a pass is in flight.
//
// External packages should construct hubs with New/NewWithConfig and inject
// them; Instance/NewSingleton exist for collaborators that need a single
// process-wide authority.
package hub
