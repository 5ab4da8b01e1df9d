package hub

// RegisterObserver appends o to the synchronous list for name, creating the
// list if absent. No de-duplication happens here: the mediator adapter keeps
// the at-most-one-observer-per-(name, context) invariant by construction, and
// direct callers own that responsibility themselves.
func (h *Hub) RegisterObserver(name string, o *Observer) {
	if o == nil {
		return
	}
	h.mu.Lock()
	h.observers[name] = append(h.observers[name], o)
	h.mu.Unlock()
	observersGauge.WithLabelValues(modeSync).Inc()
}

// RegisterAsyncObserver appends o to the asynchronous list for name.
func (h *Hub) RegisterAsyncObserver(name string, o *AsyncObserver) {
	if o == nil {
		return
	}
	h.mu.Lock()
	h.async[name] = append(h.async[name], o)
	h.mu.Unlock()
	observersGauge.WithLabelValues(modeAsync).Inc()
}

// RemoveObserver removes the first synchronous observer under name whose
// context is identical to ctx. By invariant at most one match exists. The
// name's entry is deleted once its list empties; a missing name or context is
// a no-op.
func (h *Hub) RemoveObserver(name string, ctx any) {
	h.mu.Lock()
	removed := h.removeObserverLocked(name, ctx)
	h.mu.Unlock()
	if removed {
		observersGauge.WithLabelValues(modeSync).Dec()
	}
}

// RemoveAsyncObserver is the asynchronous counterpart of RemoveObserver.
func (h *Hub) RemoveAsyncObserver(name string, ctx any) {
	h.mu.Lock()
	removed := h.removeAsyncObserverLocked(name, ctx)
	h.mu.Unlock()
	if removed {
		observersGauge.WithLabelValues(modeAsync).Dec()
	}
}

// Subscribers reports the current observer counts for name on the sync and
// async lists. Counts are advisory: a concurrent mutation may change them
// before the caller acts.
func (h *Hub) Subscribers(name string) (syncCount, asyncCount int) {
	h.mu.RLock()
	syncCount = len(h.observers[name])
	asyncCount = len(h.async[name])
	h.mu.RUnlock()
	return syncCount, asyncCount
}

func (h *Hub) removeObserverLocked(name string, ctx any) bool {
	list, ok := h.observers[name]
	if !ok {
		return false
	}
	for i, o := range list {
		if o.CompareContext(ctx) {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				// absence of a key means "no one interested"; never leave
				// an empty list dangling
				delete(h.observers, name)
			} else {
				h.observers[name] = list
			}
			return true
		}
	}
	return false
}

func (h *Hub) removeAsyncObserverLocked(name string, ctx any) bool {
	list, ok := h.async[name]
	if !ok {
		return false
	}
	for i, o := range list {
		if o.CompareContext(ctx) {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(h.async, name)
			} else {
				h.async[name] = list
			}
			return true
		}
	}
	return false
}
