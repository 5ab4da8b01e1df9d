package hub

import "sync"

// Process-wide hub. The primary API is an explicit, injected *Hub; the
// singleton exists for collaborators that need one shared authority.
var (
	instMu sync.Mutex
	inst   *Hub
)

// Instance returns the process-wide hub, constructing exactly one via factory
// on first use. Subsequent calls ignore factory and return the existing hub.
func Instance(factory func() *Hub) *Hub {
	instMu.Lock()
	defer instMu.Unlock()
	if inst == nil {
		inst = factory()
		if inst == nil {
			inst = New()
		}
	}
	return inst
}

// NewSingleton constructs the process-wide hub directly. It returns
// ErrHubExists when an instance already holds authority, so a second
// construction fails at its call site instead of shadowing the first.
func NewSingleton(cfg HubConfig) (*Hub, error) {
	instMu.Lock()
	defer instMu.Unlock()
	if inst != nil {
		return nil, ErrHubExists
	}
	inst = NewWithConfig(cfg)
	return inst, nil
}

// resetInstance drops the process-wide hub. Tests only.
func resetInstance() {
	instMu.Lock()
	inst = nil
	instMu.Unlock()
}
