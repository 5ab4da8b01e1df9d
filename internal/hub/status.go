package hub

import (
	"sort"
	"time"

	"notifyd/pkg/types"
)

// Status returns a point-in-time snapshot of the hub's registries for the
// HTTP surface. Subscription counts and mediator lists are copied under the
// read lock and sorted by name for stable output.
func (h *Hub) Status() types.StatusResponse {
	h.mu.RLock()
	counts := make(map[string]*types.SubscriptionStatus, len(h.observers)+len(h.async))
	for name, list := range h.observers {
		counts[name] = &types.SubscriptionStatus{Name: name, Observers: len(list)}
	}
	for name, list := range h.async {
		s, ok := counts[name]
		if !ok {
			s = &types.SubscriptionStatus{Name: name}
			counts[name] = s
		}
		s.AsyncObservers = len(list)
	}
	mediators := make([]types.MediatorStatus, 0, len(h.mediators))
	for name, m := range h.mediators {
		mediators = append(mediators, types.MediatorStatus{
			Name:           name,
			Interests:      append([]string(nil), m.NotificationInterests()...),
			AsyncInterests: append([]string(nil), m.AsyncNotificationInterests()...),
		})
	}
	h.mu.RUnlock()

	subs := make([]types.SubscriptionStatus, 0, len(counts))
	for _, s := range counts {
		subs = append(subs, *s)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
	sort.Slice(mediators, func(i, j int) bool { return mediators[i].Name < mediators[j].Name })

	now := time.Now()
	return types.StatusResponse{
		Subscriptions:   subs,
		Mediators:       mediators,
		DispatchesTotal: h.dispatches.Load(),
		UptimeSeconds:   int64(now.Sub(h.startTime).Seconds()),
		ServerTimeUnix:  now.Unix(),
	}
}

// Mediators returns the registered mediator summaries, sorted by name.
func (h *Hub) Mediators() []types.MediatorStatus {
	h.mu.RLock()
	out := make([]types.MediatorStatus, 0, len(h.mediators))
	for name, m := range h.mediators {
		out = append(out, types.MediatorStatus{
			Name:           name,
			Interests:      append([]string(nil), m.NotificationInterests()...),
			AsyncInterests: append([]string(nil), m.AsyncNotificationInterests()...),
		})
	}
	h.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
