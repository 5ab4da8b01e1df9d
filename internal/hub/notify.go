package hub

import (
	"context"
	"errors"
	"sync"

	"notifyd/pkg/types"
)

// Notify delivers n to every synchronous observer registered under n.Name, in
// registration order. Broadcasting to zero listeners is a no-op.
//
// The pass iterates a snapshot taken under the read lock, so a handler may
// register or remove observers for the same name (including removing itself)
// without affecting the in-flight pass. The first handler error aborts
// delivery to the remaining snapshot entries and is returned to the caller;
// handlers needing isolation must wrap their own errors.
func (h *Hub) Notify(n types.Notification) error {
	h.mu.RLock()
	list := h.observers[n.Name]
	snapshot := make([]*Observer, len(list))
	copy(snapshot, list)
	h.mu.RUnlock()

	h.dispatches.Add(1)
	notificationsTotal.WithLabelValues(n.Name, modeSync).Inc()
	if len(snapshot) == 0 {
		return nil
	}
	h.log.Debug().Str("name", n.Name).Int("observers", len(snapshot)).Msg("notify")

	for _, o := range snapshot {
		if err := o.Notify(n); err != nil {
			observerErrorsTotal.WithLabelValues(n.Name, modeSync).Inc()
			return err
		}
	}
	return nil
}

// NotifyAsync delivers n to every asynchronous observer registered under
// n.Name. All snapshot entries are invoked concurrently, started in
// registration order, and the call returns only once every invocation has
// settled. Failures are collected, never short-circuiting in-flight siblings,
// and surfaced together as a dispatch error (see IsDispatchFailed).
//
// ctx is passed through to every handler; the hub sets no deadline of its own.
func (h *Hub) NotifyAsync(ctx context.Context, n types.Notification) error {
	h.mu.RLock()
	list := h.async[n.Name]
	snapshot := make([]*AsyncObserver, len(list))
	copy(snapshot, list)
	h.mu.RUnlock()

	h.dispatches.Add(1)
	notificationsTotal.WithLabelValues(n.Name, modeAsync).Inc()
	if len(snapshot) == 0 {
		return nil
	}
	h.log.Debug().Str("name", n.Name).Int("observers", len(snapshot)).Msg("notify async")

	errs := make([]error, len(snapshot))
	var wg sync.WaitGroup
	for i, o := range snapshot {
		wg.Add(1)
		go func(i int, o *AsyncObserver) {
			defer wg.Done()
			errs[i] = o.NotifyAsync(ctx, n)
		}(i, o)
	}
	wg.Wait()

	if joined := errors.Join(errs...); joined != nil {
		for _, err := range errs {
			if err != nil {
				observerErrorsTotal.WithLabelValues(n.Name, modeAsync).Inc()
			}
		}
		return &dispatchError{name: n.Name, err: joined}
	}
	return nil
}
