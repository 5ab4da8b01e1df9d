package hub

import "notifyd/pkg/types"

// RegisterMediator stores m by name and subscribes its declared interests.
//
// A name already present makes this a silent no-op (the original mediator
// stays, OnRegister does not fire again); the return value reports whether m
// was added for callers that care. On success the hub derives exactly one
// synchronous observer shared across all sync interests and one asynchronous
// observer shared across all async interests, both with m itself as the
// context, then invokes m.OnRegister. Interests are in place before
// OnRegister fires, so the mediator immediately receives notifications raised
// during its own OnRegister.
func (h *Hub) RegisterMediator(m types.Mediator) bool {
	if m == nil {
		return false
	}
	name := m.Name()

	h.mu.Lock()
	if _, exists := h.mediators[name]; exists {
		h.mu.Unlock()
		h.log.Debug().Str("mediator", name).Msg("mediator already registered, ignoring")
		return false
	}
	h.mediators[name] = m

	if interests := m.NotificationInterests(); len(interests) > 0 {
		o := NewObserver(m.HandleNotification, m)
		for _, in := range interests {
			h.observers[in] = append(h.observers[in], o)
			observersGauge.WithLabelValues(modeSync).Inc()
		}
	}
	if interests := m.AsyncNotificationInterests(); len(interests) > 0 {
		o := NewAsyncObserver(m.HandleNotificationAsync, m)
		for _, in := range interests {
			h.async[in] = append(h.async[in], o)
			observersGauge.WithLabelValues(modeAsync).Inc()
		}
	}
	h.mu.Unlock()

	mediatorsGauge.Inc()
	h.log.Info().Str("mediator", name).Msg("mediator registered")
	m.OnRegister()
	return true
}

// RetrieveMediator returns the mediator registered under name.
func (h *Hub) RetrieveMediator(name string) (types.Mediator, bool) {
	h.mu.RLock()
	m, ok := h.mediators[name]
	h.mu.RUnlock()
	return m, ok
}

// HasMediator reports whether a mediator is registered under name.
func (h *Hub) HasMediator(name string) bool {
	h.mu.RLock()
	_, ok := h.mediators[name]
	h.mu.RUnlock()
	return ok
}

// RemoveMediator takes the mediator out of the registry, unsubscribes every
// observer derived from it (matching by the mediator's own identity across
// the union of its interest lists, sync and async alike), then invokes
// OnRemove. A missing name is a no-op returning (nil, false); OnRemove never
// fires for a mediator that was not present.
func (h *Hub) RemoveMediator(name string) (types.Mediator, bool) {
	h.mu.Lock()
	m, ok := h.mediators[name]
	if !ok {
		h.mu.Unlock()
		return nil, false
	}
	delete(h.mediators, name)

	seen := make(map[string]struct{})
	for _, in := range append(m.NotificationInterests(), m.AsyncNotificationInterests()...) {
		if _, dup := seen[in]; dup {
			continue
		}
		seen[in] = struct{}{}
		if h.removeObserverLocked(in, m) {
			observersGauge.WithLabelValues(modeSync).Dec()
		}
		if h.removeAsyncObserverLocked(in, m) {
			observersGauge.WithLabelValues(modeAsync).Dec()
		}
	}
	h.mu.Unlock()

	mediatorsGauge.Dec()
	h.log.Info().Str("mediator", name).Msg("mediator removed")
	m.OnRemove()
	return m, true
}
