package hub

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"notifyd/pkg/types"
)

// Hub owns three independent name-keyed registries: the synchronous observer
// lists, the asynchronous observer lists, and the mediator map. It exclusively
// owns the lists and every observer it derives for mediators; mediators and
// externally supplied observers are held by reference only.
type Hub struct {
	mu        sync.RWMutex
	observers map[string][]*Observer
	async     map[string][]*AsyncObserver
	mediators map[string]types.Mediator

	log       zerolog.Logger
	startTime time.Time

	dispatches atomic.Uint64
}

// New constructs a Hub with default configuration.
func New() *Hub {
	return NewWithConfig(HubConfig{})
}
